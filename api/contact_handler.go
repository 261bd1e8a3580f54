package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
	notifier    *services.ContactNotifier
}

func newContactHandler(messageRepo *database.MessageRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// submitMessage accepts a contact-form submission
// @Summary Submit contact message
// @Description Validates and stores an inbound contact-form message
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.NewMessage true "Contact message"
// @Success 201 {object} models.Message "Stored message with generated id and createdAt"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failure naming the field"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error storing message"
// @Router /contact [post]
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.NewMessage
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if validationErr := input.Validate(); validationErr != nil {
			h.responder.WriteError(w, validationErr)
			return
		}

		message := input.Model()
		if err := h.messageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		// Notification failures are logged inside the notifier and never
		// affect the submitter's response.
		if h.notifier != nil {
			go h.notifier.Notify(message)
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, message)
	}
}
