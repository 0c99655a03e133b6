package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/casaluz/website/modules/reservations"
	"github.com/casaluz/website/pkg/i18n"
)

func (v *Views) reservationListPage(p reservations.ListPageParams) templ.Component {
	bodyList := v.reservationListBody(p)
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="reservations">
<h1>%s</h1>
<a class="button" href="%s">%s</a>
`,
			esc(v.tr.T(p.Locale, "reservations.list.title")),
			i18n.LocalizePath(p.Locale, "/reservations/new"),
			esc(v.tr.T(p.Locale, "reservations.list.new"))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form class="signout" method="post" action="%s"><button type="submit">%s</button></form>`+"\n",
			i18n.LocalizePath(p.Locale, "/signout"),
			esc(v.tr.T(p.Locale, "nav.signout"))); err != nil {
			return err
		}
		if err := bodyList.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, "reservations.list.title"), body)
}

func (v *Views) reservationListBody(p reservations.ListPageParams) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		t := func(key string) string { return v.tr.T(p.Locale, key) }

		if len(p.Reservations) == 0 {
			_, err := fmt.Fprintf(w, `<div id="reservations"><p class="empty">%s</p></div>`+"\n",
				esc(t("reservations.list.empty")))
			return err
		}

		if _, err := io.WriteString(w, `<div id="reservations"><ul class="reservation-list">`+"\n"); err != nil {
			return err
		}
		for _, r := range p.Reservations {
			status := t("reservations.status." + r.Status)
			if _, err := fmt.Fprintf(w, `<li class="reservation %s">
<span class="date">%s</span>
<span class="slot">%s</span>
<span class="party">%s</span>
<span class="status">%s</span>
`,
				esc(r.Status),
				esc(r.Date.Format("2006-01-02")),
				esc(r.TimeSlot),
				esc(v.tr.N(p.Locale, "reservations.list.party", r.PartySize)),
				esc(status)); err != nil {
				return err
			}
			if r.Note != "" {
				if _, err := fmt.Fprintf(w, `<p class="note">%s</p>`+"\n", esc(r.Note)); err != nil {
					return err
				}
			}
			if !r.IsCancelled() {
				if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>
<form method="post" action="%s"><button type="submit">%s</button></form>
`,
					i18n.LocalizePath(p.Locale, "/reservations/"+r.ID.String()+"/edit"),
					esc(t("reservations.list.edit")),
					i18n.LocalizePath(p.Locale, "/reservations/"+r.ID.String()+"/cancel"),
					esc(t("reservations.list.cancel"))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</li>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></div>\n")
		return err
	})
}

func (v *Views) reservationNewPage(p reservations.FormPageParams) templ.Component {
	return v.reservationFormPage(p, "reservations.form.new_title", v.reservationNewForm(p))
}

func (v *Views) reservationNewForm(p reservations.FormPageParams) templ.Component {
	return v.bookingForm(p, i18n.LocalizePath(p.Locale, "/reservations/new"), "reservations.form.submit_new")
}

func (v *Views) reservationEditPage(p reservations.FormPageParams) templ.Component {
	return v.reservationFormPage(p, "reservations.form.edit_title", v.reservationEditForm(p))
}

func (v *Views) reservationEditForm(p reservations.FormPageParams) templ.Component {
	action := i18n.LocalizePath(p.Locale, "/reservations/"+p.ReservationID+"/edit")
	return v.bookingForm(p, action, "reservations.form.submit_edit")
}

func (v *Views) reservationFormPage(p reservations.FormPageParams, titleKey string, form templ.Component) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="reservations"><h1>%s</h1>`+"\n",
			esc(v.tr.T(p.Locale, titleKey))); err != nil {
			return err
		}
		if err := form.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<a href="%s">%s</a></section>`+"\n",
			i18n.LocalizePath(p.Locale, "/reservations"),
			esc(v.tr.T(p.Locale, "reservations.form.back")))
		return err
	})
	return v.layout(p.Locale, v.tr.T(p.Locale, titleKey), body)
}

// bookingForm is shared between the new and edit flows. The select options
// mark the previously submitted slot and party size as selected so a failed
// submission keeps the user's choices.
func (v *Views) bookingForm(p reservations.FormPageParams, action, submitKey string) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		t := func(key string) string { return v.tr.T(p.Locale, key) }

		if _, err := fmt.Fprintf(w, `<form id="booking-form" method="post" action="%s">`+"\n", action); err != nil {
			return err
		}
		if err := v.formAlert(w, p.Locale, p.Form); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>%s<input type="date" name="date" value="%s"></label>`+"\n",
			esc(t("reservations.fields.date")), esc(p.Form.Values["date"])); err != nil {
			return err
		}
		if err := v.fieldErrors(w, p.Locale, p.Form, "date"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>%s<select name="time_slot">`+"\n", esc(t("reservations.fields.time_slot"))); err != nil {
			return err
		}
		for _, slot := range p.Slots {
			selected := ""
			if slot == p.Form.Values["time_slot"] {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`+"\n", esc(slot), selected, esc(slot)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</select></label>\n"); err != nil {
			return err
		}
		if err := v.fieldErrors(w, p.Locale, p.Form, "time_slot"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>%s<select name="party_size">`+"\n", esc(t("reservations.fields.party_size"))); err != nil {
			return err
		}
		for size := 1; size <= p.MaxPartySize; size++ {
			val := strconv.Itoa(size)
			selected := ""
			if val == p.Form.Values["party_size"] {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`+"\n", val, selected, val); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</select></label>\n"); err != nil {
			return err
		}
		if err := v.fieldErrors(w, p.Locale, p.Form, "party_size"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>%s<textarea name="note">%s</textarea></label>`+"\n",
			esc(t("reservations.fields.note")), esc(p.Form.Values["note"])); err != nil {
			return err
		}
		if err := v.fieldErrors(w, p.Locale, p.Form, "note"); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`+"\n", esc(t(submitKey)))
		return err
	})
}
