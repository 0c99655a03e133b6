package reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/casaluz/website/binder"
	"github.com/casaluz/website/handler"
	"github.com/casaluz/website/pkg/i18n"
	"github.com/casaluz/website/pkg/session"
)

// Views are the components the reservations module renders.
type Views struct {
	ListPage func(ListPageParams) templ.Component
	ListBody func(ListPageParams) templ.Component

	NewPage  func(FormPageParams) templ.Component
	NewForm  func(FormPageParams) templ.Component
	EditPage func(FormPageParams) templ.Component
	EditForm func(FormPageParams) templ.Component
}

// Module glues the booking service to HTTP. All routes sit behind the
// route guard, so a session user is always present.
type Module struct {
	svc          *Service
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewModule(svc *Service, views *Views, errorHandler handler.ErrorHandler[handler.Context]) *Module {
	return &Module{svc: svc, views: views, errorHandler: errorHandler}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(m.list,
		handler.WithErrorHandler[handler.Context, listRequest](m.errorHandler),
	))
	r.HandleFunc("/new", handler.Wrap(m.create,
		handler.WithBinders[handler.Context, BookingRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, BookingRequest](m.errorHandler),
	))
	r.HandleFunc("/{id}/edit", handler.Wrap(m.edit,
		handler.WithBinders[handler.Context, BookingRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, BookingRequest](m.errorHandler),
	))
	r.Post("/{id}/cancel", handler.Wrap(m.cancel,
		handler.WithErrorHandler[handler.Context, cancelRequest](m.errorHandler),
	))

	return r
}

func currentUserID(ctx handler.Context) (uuid.UUID, error) {
	raw, ok := session.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, handler.ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, handler.ErrUnauthorized
	}
	return id, nil
}

// BookingRequest carries the reservation form fields.
type BookingRequest struct {
	Date      string `form:"date"`
	TimeSlot  string `form:"time_slot"`
	PartySize string `form:"party_size"`
	Note      string `form:"note"`
}

func (r BookingRequest) input() BookingInput {
	date, _ := time.Parse("2006-01-02", r.Date)
	size, _ := strconv.Atoi(r.PartySize)
	return BookingInput{
		Date:      date,
		TimeSlot:  r.TimeSlot,
		PartySize: size,
		Note:      r.Note,
	}
}

func (r BookingRequest) values() map[string]string {
	return map[string]string{
		"date":       r.Date,
		"time_slot":  r.TimeSlot,
		"party_size": r.PartySize,
		"note":       r.Note,
	}
}

// ListPageParams feeds the reservations list views.
type ListPageParams struct {
	Locale       string
	Reservations []*Reservation
}

// FormPageParams feeds the new/edit form views.
type FormPageParams struct {
	Locale        string
	Form          handler.FormResult
	ReservationID string
	Slots         []string
	MaxPartySize  int
}

type listRequest struct{}

func (m *Module) list(ctx handler.Context, _ listRequest) handler.Response {
	userID, err := currentUserID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	items, err := m.svc.List(ctx, userID)
	if err != nil {
		return handler.Error(err)
	}

	params := ListPageParams{Locale: i18n.GetLocale(ctx), Reservations: items}
	return handler.TemplPartial(
		m.views.ListBody(params),
		m.views.ListPage(params),
		handler.WithTarget("#reservations"),
	)
}

func (m *Module) create(ctx handler.Context, req BookingRequest) handler.Response {
	userID, err := currentUserID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	locale := i18n.GetLocale(ctx)
	params := FormPageParams{Locale: locale, Slots: OpenSlots(), MaxPartySize: MaxPartySize}

	if ctx.Request().Method == http.MethodGet {
		return handler.Templ(m.views.NewPage(params))
	}

	if _, err := m.svc.Create(ctx, userID, req.input()); err != nil {
		form, ok := m.formError(err)
		if !ok {
			return handler.Error(err)
		}
		params.Form = form.WithValues(req.values())
		return handler.TemplPartialWithStatus(http.StatusUnprocessableEntity,
			m.views.NewForm(params),
			m.views.NewPage(params),
			handler.WithTarget("#reservation-form"),
		)
	}

	return handler.Redirect(i18n.LocalizePath(locale, "/reservations"))
}

func (m *Module) edit(ctx handler.Context, req BookingRequest) handler.Response {
	userID, err := currentUserID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.Error(handler.ErrNotFound)
	}

	locale := i18n.GetLocale(ctx)
	params := FormPageParams{
		Locale:        locale,
		ReservationID: id.String(),
		Slots:         OpenSlots(),
		MaxPartySize:  MaxPartySize,
	}

	if ctx.Request().Method == http.MethodGet {
		current, err := m.svc.Get(ctx, userID, id)
		if err != nil {
			return handler.Error(m.notFound(err))
		}
		params.Form = handler.FormResult{}.WithValues(map[string]string{
			"date":       current.Date.Format("2006-01-02"),
			"time_slot":  current.TimeSlot,
			"party_size": strconv.Itoa(current.PartySize),
			"note":       current.Note,
		})
		return handler.Templ(m.views.EditPage(params))
	}

	if _, err := m.svc.Update(ctx, userID, id, req.input()); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotOwner) {
			return handler.Error(handler.ErrNotFound)
		}
		form, ok := m.formError(err)
		if !ok {
			return handler.Error(err)
		}
		params.Form = form.WithValues(req.values())
		return handler.TemplPartialWithStatus(http.StatusUnprocessableEntity,
			m.views.EditForm(params),
			m.views.EditPage(params),
			handler.WithTarget("#reservation-form"),
		)
	}

	return handler.Redirect(i18n.LocalizePath(locale, "/reservations"))
}

type cancelRequest struct{}

func (m *Module) cancel(ctx handler.Context, _ cancelRequest) handler.Response {
	userID, err := currentUserID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.Error(handler.ErrNotFound)
	}

	if _, err := m.svc.Cancel(ctx, userID, id); err != nil && !errors.Is(err, ErrCancelled) {
		return handler.Error(m.notFound(err))
	}

	return handler.Redirect(i18n.LocalizePath(i18n.GetLocale(ctx), "/reservations"))
}

// notFound hides other users' bookings: ownership failures read exactly
// like missing rows.
func (m *Module) notFound(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotOwner) {
		return handler.ErrNotFound
	}
	return err
}

// formError maps service failures onto form state when they are user
// input problems.
func (m *Module) formError(err error) (handler.FormResult, bool) {
	if form, ok := handler.FormFromValidation(err, ""); ok {
		return form, true
	}
	switch {
	case errors.Is(err, ErrSlotFull):
		return handler.FormError("reservations.slot_full"), true
	case errors.Is(err, ErrDuplicate):
		return handler.FormError("reservations.duplicate_booking"), true
	case errors.Is(err, ErrCancelled):
		return handler.FormError("reservations.already_cancelled"), true
	}
	return handler.FormResult{}, false
}
