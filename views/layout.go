package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/casaluz/website/pkg/i18n"
)

// component wraps a render func as a templ.Component.
func component(fn func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(fn)
}

func esc(s string) string { return templ.EscapeString(s) }

// layout renders the document shell: head, nav, toast container, body,
// footer with the locale switcher.
func (v *Views) layout(locale, title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		t := func(key string, args ...string) string { return v.tr.T(locale, key, args...) }

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · Casa Luz</title>
<link rel="stylesheet" href="/static/site.css">
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body>
<header class="site-header">
<a class="brand" href="%s">Casa Luz</a>
<nav>
<a href="%s">%s</a>
<a href="%s">%s</a>
<a href="%s">%s</a>
<a href="%s">%s</a>
<a href="%s">%s</a>
</nav>
</header>
<div id="toast-container"></div>
<main>
`,
			esc(locale), esc(title),
			i18n.LocalizePath(locale, "/"),
			i18n.LocalizePath(locale, "/menu"), esc(t("nav.menu")),
			i18n.LocalizePath(locale, "/about"), esc(t("nav.about")),
			i18n.LocalizePath(locale, "/contact"), esc(t("nav.contact")),
			i18n.LocalizePath(locale, "/reservations"), esc(t("nav.reservations")),
			i18n.LocalizePath(locale, "/signin"), esc(t("nav.signin")),
		); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `</main>
<footer class="site-footer">
<p>%s</p>
<p class="locales"><a href="/en">English</a> · <a href="/es">Español</a></p>
</footer>
</body>
</html>
`, esc(t("footer.tagline")))
		return err
	})
}
