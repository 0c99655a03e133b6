package handler

import (
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

func (resp redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.Redirect(resp.url)
	}
	http.Redirect(w, r, resp.url, resp.code)
	return nil
}

// Redirect responds with 303 See Other; datastar requests get a client-side
// redirect over SSE instead.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode is Redirect with an explicit status code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

type redirectBackResponse struct {
	fallback string
	code     int
}

func (resp redirectBackResponse) Render(w http.ResponseWriter, r *http.Request) error {
	target := resp.fallback
	if referer := r.Header.Get("Referer"); referer != "" && sameHost(referer, r) {
		target = referer
	}

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.Redirect(target)
	}
	http.Redirect(w, r, target, resp.code)
	return nil
}

// RedirectBack returns to the referrer when it belongs to the same host,
// otherwise to fallback.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{fallback: fallback, code: http.StatusSeeOther}
}

func sameHost(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
