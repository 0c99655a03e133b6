package auth

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/casaluz/website/binder"
	"github.com/casaluz/website/handler"
	"github.com/casaluz/website/pkg/i18n"
	"github.com/casaluz/website/pkg/session"
)

// Views are the components the auth module renders. The views package
// supplies the implementations.
type Views struct {
	SignUpPage    func(SignUpPageParams) templ.Component
	SignUpForm    func(SignUpFormParams) templ.Component
	SignUpSuccess func(SignUpSuccessParams) templ.Component

	SignInPage func(SignInPageParams) templ.Component
	SignInForm func(SignInFormParams) templ.Component

	VerifyEmailPage func(VerifyEmailPageParams) templ.Component
}

// Module glues the auth service to HTTP: routes, session upgrades, and
// view rendering.
type Module struct {
	svc          *Service
	sessions     *session.Manager
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewModule(svc *Service, sessions *session.Manager, views *Views, errorHandler handler.ErrorHandler[handler.Context]) *Module {
	return &Module{
		svc:          svc,
		sessions:     sessions,
		views:        views,
		errorHandler: errorHandler,
	}
}

// Handle mounts the auth routes. Paths are locale-less; the locale
// middleware upstream has already stripped the prefix.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/signup", handler.Wrap(m.signUp,
		handler.WithBinders[handler.Context, SignUpRequest](binder.Query(), binder.Form()),
		handler.WithErrorHandler[handler.Context, SignUpRequest](m.errorHandler),
	))
	r.HandleFunc("/signin", handler.Wrap(m.signIn,
		handler.WithBinders[handler.Context, SignInRequest](binder.Query(), binder.Form()),
		handler.WithErrorHandler[handler.Context, SignInRequest](m.errorHandler),
	))
	r.Post("/signout", handler.Wrap(m.signOut,
		handler.WithErrorHandler[handler.Context, signOutRequest](m.errorHandler),
	))
	r.Get("/verify-email", handler.Wrap(m.verifyEmail,
		handler.WithBinders[handler.Context, VerifyEmailRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, VerifyEmailRequest](m.errorHandler),
	))

	return r
}

// SignUpRequest carries both GET query state and POST form fields.
type SignUpRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email" query:"email"`
	Password string `form:"password"`
	Redirect string `form:"redirect" query:"redirect"`
}

type SignUpPageParams struct {
	Locale   string
	Form     handler.FormResult
	Redirect string
}

type SignUpFormParams struct {
	Locale   string
	Form     handler.FormResult
	Redirect string
}

type SignUpSuccessParams struct {
	Locale string
	Email  string
}

func (m *Module) signUp(ctx handler.Context, req SignUpRequest) handler.Response {
	locale := i18n.GetLocale(ctx)

	if ctx.Request().Method == http.MethodGet {
		return handler.Templ(m.views.SignUpPage(SignUpPageParams{Locale: locale, Redirect: req.Redirect}))
	}

	user, err := m.svc.SignUp(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		form, ok := handler.FormFromValidation(err, "")
		if !ok && errors.Is(err, ErrEmailTaken) {
			form, ok = handler.FormError("auth.email_taken"), true
		}
		if !ok {
			return handler.Error(err)
		}
		form = form.WithValues(map[string]string{"name": req.Name, "email": req.Email})
		params := SignUpFormParams{Locale: locale, Form: form, Redirect: req.Redirect}
		return handler.TemplPartialWithStatus(http.StatusUnprocessableEntity,
			m.views.SignUpForm(params),
			m.views.SignUpPage(SignUpPageParams(params)),
			handler.WithTarget("#signup-form"),
		)
	}

	// A fresh account is signed in right away; verification gates nothing
	// but shows a banner until the link is clicked.
	if err := m.sessions.Authenticate(ctx, ctx.ResponseWriter(), ctx.Request(), user.ID); err != nil {
		return handler.Error(err)
	}

	return handler.TemplPartial(
		m.views.SignUpSuccess(SignUpSuccessParams{Locale: locale, Email: user.Email}),
		m.views.SignUpSuccess(SignUpSuccessParams{Locale: locale, Email: user.Email}),
		handler.WithTarget("#signup-form"),
	)
}

// SignInRequest carries both GET query state and POST form fields.
type SignInRequest struct {
	Email    string `form:"email" query:"email"`
	Password string `form:"password"`
	Redirect string `form:"redirect" query:"redirect"`
}

type SignInPageParams struct {
	Locale   string
	Form     handler.FormResult
	Redirect string
}

type SignInFormParams struct {
	Locale   string
	Form     handler.FormResult
	Redirect string
}

func (m *Module) signIn(ctx handler.Context, req SignInRequest) handler.Response {
	locale := i18n.GetLocale(ctx)

	if ctx.Request().Method == http.MethodGet {
		return handler.Templ(m.views.SignInPage(SignInPageParams{Locale: locale, Redirect: req.Redirect}))
	}

	user, err := m.svc.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		form, ok := handler.FormFromValidation(err, "")
		if !ok && errors.Is(err, ErrInvalidCredentials) {
			form, ok = handler.FormError("auth.invalid_credentials"), true
		}
		if !ok {
			return handler.Error(err)
		}
		form = form.WithValues(map[string]string{"email": req.Email})
		params := SignInFormParams{Locale: locale, Form: form, Redirect: req.Redirect}
		return handler.TemplPartialWithStatus(http.StatusUnprocessableEntity,
			m.views.SignInForm(params),
			m.views.SignInPage(SignInPageParams(params)),
			handler.WithTarget("#signin-form"),
		)
	}

	if err := m.sessions.Authenticate(ctx, ctx.ResponseWriter(), ctx.Request(), user.ID); err != nil {
		return handler.Error(err)
	}

	return handler.Redirect(SafeRedirect(req.Redirect, i18n.LocalizePath(locale, "/reservations")))
}

type signOutRequest struct{}

func (m *Module) signOut(ctx handler.Context, _ signOutRequest) handler.Response {
	if err := m.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect(i18n.LocalizePath(i18n.GetLocale(ctx), "/"))
}

// VerifyEmailRequest is the signed token from the email link.
type VerifyEmailRequest struct {
	Token string `query:"token"`
}

type VerifyEmailPageParams struct {
	Locale   string
	Verified bool
	Expired  bool
	Email    string
}

func (m *Module) verifyEmail(ctx handler.Context, req VerifyEmailRequest) handler.Response {
	locale := i18n.GetLocale(ctx)

	user, err := m.svc.Verify(ctx, req.Token)
	switch {
	case errors.Is(err, ErrAlreadyVerified):
		return handler.Templ(m.views.VerifyEmailPage(VerifyEmailPageParams{Locale: locale, Verified: true}))
	case err != nil:
		return handler.TemplWithStatus(http.StatusUnprocessableEntity, m.views.VerifyEmailPage(VerifyEmailPageParams{
			Locale:  locale,
			Expired: errors.Is(err, ErrTokenExpired),
		}))
	}

	return handler.Templ(m.views.VerifyEmailPage(VerifyEmailPageParams{
		Locale:   locale,
		Verified: true,
		Email:    user.Email,
	}))
}
