package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/casaluz/website/pkg/validator"
)

// ErrorPageParams carries data into the full error page view.
type ErrorPageParams struct {
	Message    string
	StatusCode int
	RequestID  string
	Locale     string
}

// ErrorToastParams carries data into the toast view used for datastar
// requests.
type ErrorToastParams struct {
	Message string
	Type    string // "error" or "warning"
}

// ErrorHandlerConfig wires the views the error handler renders with.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget is the selector toasts are prepended into.
	ToastTarget string

	LocaleFromContext func(ctx Context) string
}

// NewErrorHandler builds the shared error handler: it classifies the error,
// logs it, and renders either a toast (datastar) or an error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		status, message := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request failed",
			slog.Int("status", status),
			slog.String("path", ctx.Request().URL.Path),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Any("error", err),
		)

		w, r := ctx.ResponseWriter(), ctx.Request()

		if IsDataStar(r) && cfg.ErrorToast != nil {
			toastType := "error"
			if status < http.StatusInternalServerError {
				toastType = "warning"
			}
			sse := datastar.NewSSE(w, r)
			_ = sse.PatchElementTempl(
				cfg.ErrorToast(ErrorToastParams{Message: message, Type: toastType}),
				datastar.WithSelector(cfg.ToastTarget),
				datastar.WithMode(PatchPrepend),
			)
			return
		}

		if cfg.ErrorPage != nil {
			var locale string
			if cfg.LocaleFromContext != nil {
				locale = cfg.LocaleFromContext(ctx)
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			_ = cfg.ErrorPage(ErrorPageParams{
				Message:    message,
				StatusCode: status,
				RequestID:  middleware.GetReqID(ctx),
				Locale:     locale,
			}).Render(ctx, w)
			return
		}

		http.Error(w, message, status)
	}
}

// classify maps an error chain onto an HTTP status and a safe message.
// Validation errors become 422; unknown errors stay generic to avoid
// leaking internals.
func classify(err error) (int, string) {
	if ve := validator.Extract(err); ve != nil {
		return http.StatusUnprocessableEntity, ve.Error()
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}

	return http.StatusInternalServerError, "internal_server_error"
}
