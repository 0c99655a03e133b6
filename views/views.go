// Package views renders the site's HTML as templ components. Each module
// declares the view functions it needs; New wires them all against the
// shared layout and translator.
package views

import (
	"github.com/casaluz/website/modules/auth"
	"github.com/casaluz/website/modules/pages"
	"github.com/casaluz/website/modules/reservations"
	"github.com/casaluz/website/pkg/i18n"
)

// Views bundles every component the site renders.
type Views struct {
	tr *i18n.Translator

	Auth         *auth.Views
	Reservations *reservations.Views
	Pages        *pages.Views
}

func New(tr *i18n.Translator) *Views {
	v := &Views{tr: tr}

	v.Auth = &auth.Views{
		SignUpPage:      v.signUpPage,
		SignUpForm:      v.signUpForm,
		SignUpSuccess:   v.signUpSuccess,
		SignInPage:      v.signInPage,
		SignInForm:      v.signInForm,
		VerifyEmailPage: v.verifyEmailPage,
	}
	v.Reservations = &reservations.Views{
		ListPage: v.reservationListPage,
		ListBody: v.reservationListBody,
		NewPage:  v.reservationNewPage,
		NewForm:  v.reservationNewForm,
		EditPage: v.reservationEditPage,
		EditForm: v.reservationEditForm,
	}
	v.Pages = &pages.Views{
		HomePage:    v.homePage,
		MenuPage:    v.menuPage,
		AboutPage:   v.aboutPage,
		ContactPage: v.contactPage,
	}

	return v
}
