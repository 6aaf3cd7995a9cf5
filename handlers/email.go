package handlers

import (
	"context"
	"errors"
	"net/http"

	"coachly/models"
	"coachly/services/mailer"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler exposes the transactional email actions to the admin UI.
type EmailHandler struct {
	Service mailer.EmailService
}

// NewEmailHandler builds the handler.
func NewEmailHandler(service mailer.EmailService) *EmailHandler {
	return &EmailHandler{Service: service}
}

// SendAppointmentHandler handles POST /api/admin/emails/appointment.
func (h *EmailHandler) SendAppointmentHandler(c *gin.Context) {
	var req models.AppointmentEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment payload", err.Error())
		return
	}
	respond(c, func(ctx context.Context) (models.SendOutcome, error) {
		return h.Service.SendAppointmentConfirmation(ctx, req)
	})
}

// SendDataExportHandler handles POST /api/admin/emails/export.
func (h *EmailHandler) SendDataExportHandler(c *gin.Context) {
	var req models.DataExportEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid export payload", err.Error())
		return
	}
	respond(c, func(ctx context.Context) (models.SendOutcome, error) {
		return h.Service.SendDataExport(ctx, req)
	})
}

// SendTrainingHandler handles POST /api/admin/emails/training.
func (h *EmailHandler) SendTrainingHandler(c *gin.Context) {
	var req models.TrainingDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid training payload", err.Error())
		return
	}
	respond(c, func(ctx context.Context) (models.SendOutcome, error) {
		return h.Service.SendTrainingProgram(ctx, req)
	})
}

// respond maps the email action outcome onto HTTP: validation errors
// are 400 with the offending field, transport failures are 502 with an
// operator-facing reason, everything else is 500. The action never
// panics across this boundary.
func respond(c *gin.Context, action func(context.Context) (models.SendOutcome, error)) {
	logger := utils.GetLogger()

	outcome, err := action(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, outcome)
		return
	}

	var vErr *mailer.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid email payload", vErr.Error())
		return
	}

	var sErr *mailer.SendError
	if errors.As(err, &sErr) {
		logger.Error("Email transport failure", zap.String("code", string(sErr.Code)), zap.Error(err))
		c.JSON(http.StatusBadGateway, utils.ErrorResponse{Message: sErr.Reason(), Details: string(sErr.Code)})
		return
	}

	logger.Error("Email action failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Email action failed", err.Error())
}
