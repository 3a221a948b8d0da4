package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/apperrs"
	"github.com/knorx/knorx-site/internal/contact"
	"github.com/knorx/knorx-site/internal/handler/components"
)

// maxContactBody caps the request body for both contact routes
const maxContactBody = 1 << 20

// contactResponse is the body of every /api/contact response
type contactResponse struct {
	Message string `json:"message"`
}

var (
	contactSuccess = contactResponse{Message: "Success"}
	contactError   = contactResponse{Message: "Error"}
)

var (
	errEmptyPayload = errors.New("empty contact payload")
	errTrailingData = errors.New("unexpected data after contact payload")
)

// ContactAPI accepts a JSON submission and relays it. It answers 200 Success
// or 500 Error and nothing else, whatever the payload looks like.
func (h *Handler) ContactAPI(w http.ResponseWriter, r *http.Request) {
	l := appctx.GetLogger(r.Context())

	sub, err := decodeSubmission(w, r)
	if err != nil {
		l.Warn("invalid contact payload", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, contactError)
		return
	}

	if _, err := h.contact.Submit(r.Context(), sub); err != nil {
		writeJSON(w, http.StatusInternalServerError, contactError)
		return
	}

	writeJSON(w, http.StatusOK, contactSuccess)
}

func decodeSubmission(w http.ResponseWriter, r *http.Request) (contact.Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	dec := json.NewDecoder(r.Body)

	// A pointer tells a JSON null apart from {}, which is accepted
	var sub *contact.Submission
	if err := dec.Decode(&sub); err != nil {
		return contact.Submission{}, err
	}
	if sub == nil {
		return contact.Submission{}, errEmptyPayload
	}
	if _, err := dec.Token(); err != io.EOF {
		return contact.Submission{}, errTrailingData
	}
	return *sub, nil
}

// ContactForm handles the plain form post used when JavaScript is unavailable.
// Success redirects back to the page; failures re-render it with the values kept.
func (h *Handler) ContactForm(w http.ResponseWriter, r *http.Request) {
	l := appctx.GetLogger(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		l.Warn("invalid contact form", slog.Any("error", err))
		h.renderContactError(w, r, contact.Submission{}, apperrs.Server("failed to parse form", err))
		return
	}

	sub := contact.FromForm(r.PostForm)
	if missing := sub.Missing(); len(missing) > 0 {
		err := apperrs.Client(apperrs.CodeInvalidInput, "Please fill in all required fields.").
			SetMeta("fields", missing)
		h.renderContactError(w, r, sub, err)
		return
	}

	if _, err := h.contact.Submit(r.Context(), sub); err != nil {
		h.renderContactError(w, r, sub, err)
		return
	}

	http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
}

// renderContactError shows the landing page with the form still filled in
func (h *Handler) renderContactError(w http.ResponseWriter, r *http.Request, sub contact.Submission, err error) {
	status := http.StatusInternalServerError
	message := components.ContactErrorText

	var appErr *apperrs.Error
	if errors.As(err, &appErr) && appErr.Kind == apperrs.KindClient {
		status = http.StatusBadRequest
		message = appErr.Msg
	}

	view := h.homeView(r)
	view.Contact = components.ContactForm{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
		Error:   message,
	}

	templ.Handler(components.HomePage(view), templ.WithStatus(status)).ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
