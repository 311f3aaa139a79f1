package scanner

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ImageScanner decodes QR codes from a queue of image files, one file per
// activation. It stands in for a camera: each activation "points" at the
// next image and either decodes it or yields nothing.
type ImageScanner struct {
	paths []string

	accessOnce sync.Once
	granted    bool

	mu   sync.Mutex
	next int
}

// NewImageScanner builds a scanner over the given image paths.
func NewImageScanner(paths []string) *ImageScanner {
	return &ImageScanner{paths: paths}
}

// RequestAccess grants access when every queued image is readable. The
// check runs once; later calls return the cached decision.
func (s *ImageScanner) RequestAccess(_ context.Context) (bool, error) {
	s.accessOnce.Do(func() {
		if len(s.paths) == 0 {
			return
		}
		for _, path := range s.paths {
			if _, err := os.Stat(path); err != nil {
				return
			}
		}
		s.granted = true
	})
	return s.granted, nil
}

// BeginScan decodes the next queued image. The channel delivers one code on
// a successful decode and closes without an event on a failed decode or an
// exhausted queue.
func (s *ImageScanner) BeginScan(ctx context.Context) (<-chan Code, error) {
	s.mu.Lock()
	var path string
	if s.next < len(s.paths) {
		path = s.paths[s.next]
		s.next++
	}
	s.mu.Unlock()

	events := make(chan Code, 1)
	if path == "" {
		close(events)
		return events, nil
	}
	go func() {
		defer close(events)
		code, err := decodeQRFile(path)
		if err != nil {
			return
		}
		select {
		case events <- code:
		case <-ctx.Done():
		}
	}()
	return events, nil
}

// decodeQRFile decodes a single QR code from an image file.
func decodeQRFile(path string) (Code, error) {
	file, err := os.Open(path)
	if err != nil {
		return Code{}, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Code{}, fmt.Errorf("decode image: %w", err)
	}
	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Code{}, fmt.Errorf("build bitmap: %w", err)
	}
	result, err := qrcode.NewQRCodeReader().Decode(bitmap, nil)
	if err != nil {
		return Code{}, fmt.Errorf("decode qr: %w", err)
	}
	return Code{Format: result.GetBarcodeFormat().String(), Text: result.GetText()}, nil
}
