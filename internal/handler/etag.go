package handler

import (
	"net/http"
	"strings"
)

// conditional tags the response with the catalog ETag and answers
// 304 Not Modified when the client already holds that version.
// The catalog never changes after load, so one tag covers every resource.
func (h *CatalogHandler) conditional(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", h.etag)
		w.Header().Set("Cache-Control", "public, no-cache")

		if etagMatches(r.Header.Get("If-None-Match"), h.etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		next(w, r)
	})
}

// etagMatches applies the weak comparison RFC 9110 requires for If-None-Match
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
