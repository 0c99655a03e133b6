package views

import (
	"fmt"
	"io"

	"github.com/casaluz/website/handler"
)

// translate resolves a catalog key for the locale, passing plain text
// through untouched so literal messages still render.
func (v *Views) translate(locale, msg string) string {
	if msg == "" {
		return ""
	}
	if v.tr.HasTranslation(locale, msg) {
		return v.tr.T(locale, msg)
	}
	return msg
}

// formAlert writes the top-of-form message when the last submission failed
// or succeeded with a notice.
func (v *Views) formAlert(w io.Writer, locale string, form handler.FormResult) error {
	if form.Message == "" {
		return nil
	}
	kind := "error"
	if form.Success {
		kind = "success"
	}
	_, err := fmt.Fprintf(w, `<p class="form-alert form-alert-%s">%s</p>`+"\n",
		kind, esc(v.translate(locale, form.Message)))
	return err
}

// textField writes a labelled input, pre-filled from the last submission and
// followed by any field errors. Password inputs are never echoed back.
func (v *Views) textField(w io.Writer, locale string, form handler.FormResult, inputType, name, label, value string) error {
	if prev, ok := form.Values[name]; ok && inputType != "password" {
		value = prev
	}
	if _, err := fmt.Fprintf(w, `<label>%s<input type="%s" name="%s" value="%s"></label>`+"\n",
		esc(label), esc(inputType), esc(name), esc(value)); err != nil {
		return err
	}
	return v.fieldErrors(w, locale, form, name)
}

func (v *Views) fieldErrors(w io.Writer, locale string, form handler.FormResult, name string) error {
	for _, fm := range form.Fields[name] {
		msg := fm.Text
		if fm.Key != "" && v.tr.HasTranslation(locale, fm.Key) {
			args := make([]string, 0, len(fm.Values)*2)
			for k, val := range fm.Values {
				args = append(args, k, val)
			}
			msg = v.tr.T(locale, fm.Key, args...)
		}
		if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`+"\n", esc(msg)); err != nil {
			return err
		}
	}
	return nil
}
