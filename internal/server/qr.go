package server

import (
	"net/http"
	"regexp"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// room codes as minted by the engine: six characters, no 0/O/1/I
var codePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{6}$`)

const qrSize = 256

// qrHandler renders a join link QR for /qr/{code}. The code is only
// shape-checked; whether the room still exists is the joiner's problem,
// since invites outlive the rooms they point at.
func qrHandler(publicURL string) http.HandlerFunc {
	base := strings.TrimRight(publicURL, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/qr/"))
		if !codePattern.MatchString(code) {
			http.NotFound(w, r)
			return
		}

		png, err := qrcode.Encode(base+"/join/"+code, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr encoding failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(png)
	}
}
