package scanner

import "testing"

// TestRecognized verifies payload recognition by http marker or host token.
func TestRecognized(t *testing.T) {
	hosts := []string{"example.mock.pstmn.io"}
	cases := []struct {
		name    string
		payload string
		want    bool
	}{
		{name: "https url", payload: "https://example.mock.pstmn.io/q1", want: true},
		{name: "plain http", payload: "http://hunt.local/q2", want: true},
		{name: "host token without scheme", payload: "example.mock.pstmn.io/q3", want: true},
		{name: "opaque string", payload: "WIFI:S:guest;;", want: false},
		{name: "empty", payload: "", want: false},
		{name: "whitespace", payload: "   ", want: false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Recognized(tc.payload, hosts); got != tc.want {
				t.Fatalf("Recognized(%q) = %v, want %v", tc.payload, got, tc.want)
			}
		})
	}
}

// TestRecognizedNoHosts verifies only the http marker applies without hosts.
func TestRecognizedNoHosts(t *testing.T) {
	if Recognized("example.mock.pstmn.io/q1", nil) {
		t.Fatalf("expected unrecognized without configured hosts")
	}
	if !Recognized("http://anything", nil) {
		t.Fatalf("expected http payload to be recognized")
	}
}
