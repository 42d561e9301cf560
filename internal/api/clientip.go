package api

import (
	"net"
	"net/http"
	"strings"
)

// clientIP returns the address to attribute a reduction request to in
// the access log. The service is expected to sit behind at most one
// reverse proxy, so when trustProxy is set only the leftmost
// X-Forwarded-For entry is honoured; otherwise the peer address wins.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if i := strings.IndexByte(xff, ','); i > 0 {
				xff = xff[:i]
			}
			if ip := strings.TrimSpace(xff); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
