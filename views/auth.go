package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/casaluz/website/modules/auth"
	"github.com/casaluz/website/pkg/i18n"
)

func (v *Views) signUpPage(p auth.SignUpPageParams) templ.Component {
	form := v.signUpForm(auth.SignUpFormParams(p))
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="auth-page"><h1>%s</h1>`+"\n",
			esc(v.tr.T(p.Locale, "auth.signup.title"))); err != nil {
			return err
		}
		if err := form.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<p>%s <a href="%s">%s</a></p></section>`+"\n",
			esc(v.tr.T(p.Locale, "auth.signup.have_account")),
			i18n.LocalizePath(p.Locale, "/signin"),
			esc(v.tr.T(p.Locale, "nav.signin")))
		return err
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, "auth.signup.title"), body)
}

func (v *Views) signUpForm(p auth.SignUpFormParams) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		t := func(key string) string { return v.tr.T(p.Locale, key) }

		if _, err := fmt.Fprintf(w, `<form id="signup-form" method="post" action="%s">`+"\n",
			i18n.LocalizePath(p.Locale, "/signup")); err != nil {
			return err
		}
		if err := v.formAlert(w, p.Locale, p.Form); err != nil {
			return err
		}
		if p.Redirect != "" {
			if _, err := fmt.Fprintf(w, `<input type="hidden" name="redirect" value="%s">`+"\n", esc(p.Redirect)); err != nil {
				return err
			}
		}
		if err := v.textField(w, p.Locale, p.Form, "text", "name", t("auth.fields.name"), ""); err != nil {
			return err
		}
		if err := v.textField(w, p.Locale, p.Form, "email", "email", t("auth.fields.email"), ""); err != nil {
			return err
		}
		if err := v.textField(w, p.Locale, p.Form, "password", "password", t("auth.fields.password"), ""); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`+"\n", esc(t("auth.signup.submit")))
		return err
	})
}

func (v *Views) signUpSuccess(p auth.SignUpSuccessParams) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="auth-page">
<h1>%s</h1>
<p>%s</p>
</section>
`,
			esc(v.tr.T(p.Locale, "auth.signup.success_title")),
			esc(v.tr.T(p.Locale, "auth.signup.success_body", "email", p.Email)))
		return err
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, "auth.signup.success_title"), body)
}

func (v *Views) signInPage(p auth.SignInPageParams) templ.Component {
	form := v.signInForm(auth.SignInFormParams(p))
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="auth-page"><h1>%s</h1>`+"\n",
			esc(v.tr.T(p.Locale, "auth.signin.title"))); err != nil {
			return err
		}
		if err := form.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<p>%s <a href="%s">%s</a></p></section>`+"\n",
			esc(v.tr.T(p.Locale, "auth.signin.no_account")),
			i18n.LocalizePath(p.Locale, "/signup"),
			esc(v.tr.T(p.Locale, "auth.signup.title")))
		return err
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, "auth.signin.title"), body)
}

func (v *Views) signInForm(p auth.SignInFormParams) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		t := func(key string) string { return v.tr.T(p.Locale, key) }

		if _, err := fmt.Fprintf(w, `<form id="signin-form" method="post" action="%s">`+"\n",
			i18n.LocalizePath(p.Locale, "/signin")); err != nil {
			return err
		}
		if err := v.formAlert(w, p.Locale, p.Form); err != nil {
			return err
		}
		if p.Redirect != "" {
			if _, err := fmt.Fprintf(w, `<input type="hidden" name="redirect" value="%s">`+"\n", esc(p.Redirect)); err != nil {
				return err
			}
		}
		if err := v.textField(w, p.Locale, p.Form, "email", "email", t("auth.fields.email"), ""); err != nil {
			return err
		}
		if err := v.textField(w, p.Locale, p.Form, "password", "password", t("auth.fields.password"), ""); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`+"\n", esc(t("auth.signin.submit")))
		return err
	})
}

func (v *Views) verifyEmailPage(p auth.VerifyEmailPageParams) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		t := func(key string, args ...string) string { return v.tr.T(p.Locale, key, args...) }

		var heading, detail string
		switch {
		case p.Verified:
			heading = t("auth.verify.success_title")
			detail = t("auth.verify.success_body", "email", p.Email)
		case p.Expired:
			heading = t("auth.verify.expired_title")
			detail = t("auth.verify.expired_body")
		default:
			heading = t("auth.verify.invalid_title")
			detail = t("auth.verify.invalid_body")
		}

		if _, err := fmt.Fprintf(w, `<section class="auth-page">
<h1>%s</h1>
<p>%s</p>
`, esc(heading), esc(detail)); err != nil {
			return err
		}
		if p.Verified {
			if _, err := fmt.Fprintf(w, `<a class="button" href="%s">%s</a>`+"\n",
				i18n.LocalizePath(p.Locale, "/signin"), esc(t("nav.signin"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, "auth.verify.title"), body)
}
