package webserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/camionrouge/vitrine/internal/domain"
)

const (
	contactMissingFieldMsg = "Tous les champs sont requis"
	contactDeliveryOkMsg   = "Votre message a bien été envoyé"
	contactDeliveryErrMsg  = "Une erreur est survenue lors de l'envoi"
)

// submitContact relays one contact-form submission by email. Missing fields
// answer 400, delivery failures 500 with a generic message; the cause never
// reaches the submitter.
func (s *Server) submitContact(c echo.Context) error {
	var sub domain.ContactSubmission
	if err := c.Bind(&sub); err != nil {
		return message(c, http.StatusBadRequest, contactMissingFieldMsg)
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return message(c, http.StatusBadRequest, contactMissingFieldMsg)
	}

	id := s.app.NextID()
	if err := s.app.Mailer().Send(sub); err != nil {
		zap.L().Error("contact relay delivery failed",
			zap.String("submission_id", id),
			zap.Error(err),
		)
		return message(c, http.StatusInternalServerError, contactDeliveryErrMsg)
	}

	zap.L().Info("contact relay delivered",
		zap.String("submission_id", id),
		zap.String("from", sub.Email),
	)
	return message(c, http.StatusOK, contactDeliveryOkMsg)
}
