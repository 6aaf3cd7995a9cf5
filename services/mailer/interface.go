package mailer

import (
	"context"

	"coachly/models"
)

// Sender is the raw email transport capability.
type Sender interface {
	Send(ctx context.Context, settings models.EmailSettings, msg models.EmailMessage) error
}

// EmailService exposes the transactional email actions. Every method
// validates its payload before touching the network and returns a
// result-shaped outcome; failures come back as typed errors
// (*ValidationError, *SendError), never as panics.
type EmailService interface {
	SendAppointmentConfirmation(ctx context.Context, req models.AppointmentEmailRequest) (models.SendOutcome, error)
	SendDataExport(ctx context.Context, req models.DataExportEmailRequest) (models.SendOutcome, error)
	SendTrainingProgram(ctx context.Context, req models.TrainingDeliveryRequest) (models.SendOutcome, error)
}
