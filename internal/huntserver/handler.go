// Package huntserver hosts a hunt definition over HTTP for practice runs:
// it serves questions in the wire format the client consumes, accepts
// answer submissions, and renders the scannable QR code for each question.
package huntserver

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	qrgen "github.com/skip2/go-qrcode"

	"github.com/KiyoScript/scavenger-hunt/internal/hunt"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
)

// defaultQRSize is the pixel size of rendered QR codes.
const defaultQRSize = 256

// Handler serves one hunt definition.
type Handler struct {
	hunt    hunt.Hunt
	baseURL string
	mux     *http.ServeMux
}

// NewHandler builds the HTTP handler for a hunt. The base URL is embedded
// in question payloads and QR codes so scanned clients can find their way
// back.
func NewHandler(h hunt.Hunt, baseURL string) *Handler {
	if baseURL == "" {
		baseURL = h.BaseURL
	}
	handler := &Handler{hunt: h, baseURL: baseURL}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /q/{slug}", handler.serveQuestion)
	mux.HandleFunc("POST /q/{slug}/answer", handler.serveAnswer)
	mux.HandleFunc("GET /q/{slug}/qr.png", handler.serveQR)
	handler.mux = mux
	return handler
}

// ServeHTTP dispatches to the hunt routes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// wirePayload is the question JSON served to clients. Field names follow
// the contract the client decodes, including the unused "Age group".
type wirePayload struct {
	ImgSrc         string   `json:"img_src,omitempty"`
	Prompt         string   `json:"question"`
	Hint           string   `json:"hint,omitempty"`
	ResponseType   string   `json:"responseType,omitempty"`
	Choices        []string `json:"choices,omitempty"`
	PointsRewarded []int    `json:"pointsRewarded,omitempty"`
	AgeGroup       string   `json:"Age group,omitempty"`
	SubmitURL      string   `json:"url"`
	Answer         string   `json:"answer"`
}

// serveQuestion writes the wire payload for a slug.
func (h *Handler) serveQuestion(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.hunt.Find(r.PathValue("slug"))
	if !ok {
		http.Error(w, "unknown question", http.StatusNotFound)
		return
	}
	payload := wirePayload{
		ImgSrc:         entry.ImgSrc,
		Prompt:         entry.Prompt,
		Hint:           entry.Hint,
		ResponseType:   entry.ResponseType,
		Choices:        entry.Choices,
		PointsRewarded: entry.Points,
		AgeGroup:       entry.AgeGroup,
		SubmitURL:      entry.QuestionURL(h.baseURL) + "/answer",
		Answer:         entry.Answer,
	}
	writeJSON(w, http.StatusOK, payload)
}

// answerRequest is the submission body posted by clients.
type answerRequest struct {
	Answer       string `json:"answer"`
	SessionID    string `json:"session_id"`
	SubmissionID string `json:"submission_id"`
}

// serveAnswer evaluates a submission server-side and reports the verdict.
func (h *Handler) serveAnswer(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.hunt.Find(r.PathValue("slug"))
	if !ok {
		http.Error(w, "unknown question", http.StatusNotFound)
		return
	}
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid submission body", http.StatusBadRequest)
		return
	}
	correct := question.AnswerMatches(req.Answer, entry.Answer)
	log.Printf("submission slug=%s session=%s correct=%v", entry.Slug, req.SessionID, correct)
	writeJSON(w, http.StatusOK, map[string]bool{"correct": correct})
}

// serveQR renders the question URL as a QR PNG.
func (h *Handler) serveQR(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.hunt.Find(r.PathValue("slug"))
	if !ok {
		http.Error(w, "unknown question", http.StatusNotFound)
		return
	}
	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 64 || parsed > 2048 {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		size = parsed
	}
	png, err := qrgen.Encode(entry.QuestionURL(h.baseURL), qrgen.Medium, size)
	if err != nil {
		http.Error(w, "render qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// writeJSON encodes a JSON response body.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
