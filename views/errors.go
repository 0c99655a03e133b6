package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/casaluz/website/handler"
)

// ErrorPage renders the full error page used for non-datastar failures.
func (v *Views) ErrorPage(p handler.ErrorPageParams) templ.Component {
	locale := p.Locale
	if locale == "" {
		locale = v.tr.DefaultLang()
	}
	message := p.Message
	if key := "errors.http." + p.Message; v.tr.HasTranslation(locale, key) {
		message = v.tr.T(locale, key)
	} else {
		message = v.translate(locale, message)
	}
	body := component(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error-page">
<h1>%d</h1>
<p>%s</p>
<p class="request-id">%s</p>
<a href="/%s">%s</a>
</section>
`, p.StatusCode, esc(message), esc(p.RequestID), esc(locale), esc(v.tr.T(locale, "errors.back_home")))
		return err
	})
	return v.layout(locale, v.tr.T(locale, "errors.title"), body)
}

// ErrorToast renders the toast fragment patched into the page on datastar
// requests.
func (v *Views) ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" data-on-click="el.remove()">%s</div>`+"\n",
			esc(p.Type), esc(p.Message))
		return err
	})
}
