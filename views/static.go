package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/casaluz/website/modules/pages"
)

// staticPage renders a marketing page whose heading and paragraphs come
// straight out of the locale catalog.
func (v *Views) staticPage(locale, prefix string, paragraphKeys ...string) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="static-page"><h1>%s</h1>`+"\n",
			esc(v.tr.T(locale, prefix+".title"))); err != nil {
			return err
		}
		for _, key := range paragraphKeys {
			if _, err := fmt.Fprintf(w, `<p>%s</p>`+"\n", esc(v.tr.T(locale, key))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
	return v.layout(locale, v.tr.T(locale, prefix+".title"), body)
}

func (v *Views) menuPage(p pages.StaticPageParams) templ.Component {
	return v.staticPage(p.Locale, "menu", "menu.intro", "menu.starters", "menu.mains", "menu.desserts")
}

func (v *Views) aboutPage(p pages.StaticPageParams) templ.Component {
	return v.staticPage(p.Locale, "about", "about.story", "about.kitchen")
}

func (v *Views) contactPage(p pages.StaticPageParams) templ.Component {
	return v.staticPage(p.Locale, "contact", "contact.address", "contact.hours", "contact.phone")
}
