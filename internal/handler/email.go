package handler

import (
	"net/http"

	"github.com/fitsched/booking-platform/internal/mail"
)

// TestEmailHandler serves POST /api/test-email.
type TestEmailHandler struct {
	mailer mail.Mailer
}

func NewTestEmailHandler(mailer mail.Mailer) *TestEmailHandler {
	return &TestEmailHandler{mailer: mailer}
}

type testEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *TestEmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.To == "" || req.Subject == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "to, subject and message are required")
		return
	}

	res, err := h.mailer.Send(r.Context(), mail.Message{
		To:      req.To,
		Subject: req.Subject,
		HTML:    mail.WrapHTML(req.Message),
	})
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "failed to send email", err.Error())
		return
	}
	if !res.Success {
		writeErrorDetails(w, http.StatusInternalServerError, "failed to send email", res.Error)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Email sent",
		"messageId": res.MessageID,
	})
}
