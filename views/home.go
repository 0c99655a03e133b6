package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/casaluz/website/modules/pages"
	"github.com/casaluz/website/pkg/i18n"
)

func (v *Views) homePage(p pages.HomePageParams) templ.Component {
	fallback := v.tr.DefaultLang()
	body := component(func(ctx context.Context, w io.Writer) error {
		t := func(key string) string { return v.tr.T(p.Locale, key) }

		if _, err := fmt.Fprintf(w, `<section class="hero">
<h1>%s</h1>
<p>%s</p>
<a class="button" href="%s">%s</a>
</section>
`,
			esc(t("home.hero.title")),
			esc(t("home.hero.subtitle")),
			i18n.LocalizePath(p.Locale, "/reservations/new"),
			esc(t("home.hero.cta"))); err != nil {
			return err
		}

		if len(p.Specials) > 0 {
			if _, err := fmt.Fprintf(w, `<section class="specials"><h2>%s</h2><ul>`+"\n",
				esc(t("home.specials.title"))); err != nil {
				return err
			}
			for _, sp := range p.Specials {
				if _, err := fmt.Fprintf(w, `<li><h3>%s <span class="price">€%s</span></h3><p>%s</p></li>`+"\n",
					esc(i18n.Localized(sp.Name, p.Locale, fallback)),
					sp.Price(),
					esc(i18n.Localized(sp.Description, p.Locale, fallback))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul></section>\n"); err != nil {
				return err
			}
		}

		if len(p.Testimonials) > 0 {
			if _, err := fmt.Fprintf(w, `<section class="testimonials"><h2>%s</h2>`+"\n",
				esc(t("home.testimonials.title"))); err != nil {
				return err
			}
			for _, tm := range p.Testimonials {
				stars := strings.Repeat("★", tm.Rating)
				if _, err := fmt.Fprintf(w, `<blockquote><p>%s</p><footer>%s <span class="stars">%s</span></footer></blockquote>`+"\n",
					esc(i18n.Localized(tm.Quote, p.Locale, fallback)),
					esc(tm.Author), stars); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</section>\n"); err != nil {
				return err
			}
		}
		return nil
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, "home.title"), body)
}
