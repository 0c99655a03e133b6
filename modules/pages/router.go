package pages

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/casaluz/website/handler"
	"github.com/casaluz/website/pkg/i18n"
)

// Views are the components the marketing pages render.
type Views struct {
	HomePage    func(HomePageParams) templ.Component
	MenuPage    func(StaticPageParams) templ.Component
	AboutPage   func(StaticPageParams) templ.Component
	ContactPage func(StaticPageParams) templ.Component
}

// HomePageParams feeds the home page: content rows with localized fields
// still raw, resolved inside the view for the request locale.
type HomePageParams struct {
	Locale       string
	Specials     []Special
	Testimonials []Testimonial
}

type StaticPageParams struct {
	Locale string
}

// Module serves the marketing pages.
type Module struct {
	storage      Storage
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewModule(storage Storage, views *Views, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *Module {
	return &Module{storage: storage, views: views, log: log, errorHandler: errorHandler}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(m.home,
		handler.WithErrorHandler[handler.Context, staticRequest](m.errorHandler),
	))
	r.Get("/menu", m.static(func(v *Views) func(StaticPageParams) templ.Component { return v.MenuPage }))
	r.Get("/about", m.static(func(v *Views) func(StaticPageParams) templ.Component { return v.AboutPage }))
	r.Get("/contact", m.static(func(v *Views) func(StaticPageParams) templ.Component { return v.ContactPage }))

	return r
}

type staticRequest struct{}

func (m *Module) home(ctx handler.Context, _ staticRequest) handler.Response {
	params := HomePageParams{Locale: i18n.GetLocale(ctx)}

	// Content hiccups degrade to an emptier home page, never an error
	// page.
	var err error
	if params.Specials, err = m.storage.ActiveSpecials(ctx); err != nil {
		m.log.ErrorContext(ctx, "loading specials failed", slog.Any("error", err))
	}
	if params.Testimonials, err = m.storage.PublishedTestimonials(ctx); err != nil {
		m.log.ErrorContext(ctx, "loading testimonials failed", slog.Any("error", err))
	}

	return handler.Templ(m.views.HomePage(params))
}

func (m *Module) static(pick func(*Views) func(StaticPageParams) templ.Component) http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, _ staticRequest) handler.Response {
		return handler.Templ(pick(m.views)(StaticPageParams{Locale: i18n.GetLocale(ctx)}))
	}, handler.WithErrorHandler[handler.Context, staticRequest](m.errorHandler))
}
