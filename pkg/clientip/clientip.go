// Package clientip resolves the originating client address of a request,
// looking through the proxy headers a typical reverse-proxy deployment
// sets before falling back to the socket address.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the client IP for r. X-Forwarded-For wins over
// X-Real-IP; the remote address is the last resort. Invalid values are
// skipped so a forged header cannot produce garbage.
func FromRequest(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for part := range strings.SplitSeq(forwarded, ",") {
			if ip := normalize(strings.TrimSpace(part)); ip != "" {
				return ip
			}
		}
	}

	if ip := normalize(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize validates an IP string and returns its canonical form, or ""
// when it does not parse.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
