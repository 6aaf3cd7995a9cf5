package mailer

import (
	"context"
	"errors"
	"fmt"

	"coachly/models"
	"coachly/services/personalization"
	"coachly/services/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultEmailService is the production implementation. SMTP settings
// come from the live agency configuration; messages go through the
// asynq queue when one is wired, otherwise straight to the sender.
type DefaultEmailService struct {
	Personalization *personalization.Service
	Queue           *asynq.Client
	Sender          Sender
	Logger          *zap.Logger

	validate *validator.Validate
}

// NewDefaultEmailService wires the service with its own validator.
func NewDefaultEmailService(p *personalization.Service, queue *asynq.Client, sender Sender, logger *zap.Logger) *DefaultEmailService {
	return &DefaultEmailService{
		Personalization: p,
		Queue:           queue,
		Sender:          sender,
		Logger:          logger,
		validate:        validator.New(),
	}
}

// SendAppointmentConfirmation validates, renders and dispatches the
// appointment confirmation email.
func (s *DefaultEmailService) SendAppointmentConfirmation(ctx context.Context, req models.AppointmentEmailRequest) (models.SendOutcome, error) {
	if err := s.check(req); err != nil {
		return models.SendOutcome{}, err
	}
	msg, err := RenderAppointmentConfirmation(s.branding(), req)
	if err != nil {
		return models.SendOutcome{}, err
	}
	return s.dispatch(ctx, msg)
}

// SendDataExport validates, renders and dispatches the GDPR export
// notification.
func (s *DefaultEmailService) SendDataExport(ctx context.Context, req models.DataExportEmailRequest) (models.SendOutcome, error) {
	if err := s.check(req); err != nil {
		return models.SendOutcome{}, err
	}
	msg, err := RenderDataExport(s.branding(), req)
	if err != nil {
		return models.SendOutcome{}, err
	}
	return s.dispatch(ctx, msg)
}

// SendTrainingProgram validates, renders and dispatches the training
// program delivery email with its attachments.
func (s *DefaultEmailService) SendTrainingProgram(ctx context.Context, req models.TrainingDeliveryRequest) (models.SendOutcome, error) {
	if err := s.check(req); err != nil {
		return models.SendOutcome{}, err
	}
	msg, err := RenderTrainingProgram(s.branding(), req)
	if err != nil {
		return models.SendOutcome{}, err
	}
	return s.dispatch(ctx, msg)
}

// check runs schema validation and converts the first failure into a
// structured *ValidationError. Nothing touches the network past here
// with a malformed payload.
func (s *DefaultEmailService) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &ValidationError{
			Field:  first.Field(),
			Detail: fmt.Sprintf("failed %q validation", first.Tag()),
		}
	}
	return &ValidationError{Field: "payload", Detail: err.Error()}
}

// branding snapshots the resolved configuration; defaults apply when
// the remote document is absent or unreadable.
func (s *DefaultEmailService) branding() models.AgencyConfig {
	return s.Personalization.Snapshot().Config
}

// settings maps the tenant SMTP block onto the transport settings.
func (s *DefaultEmailService) settings() models.EmailSettings {
	smtp := s.branding().SMTP
	return models.EmailSettings{
		Host:      smtp.Host,
		Port:      smtp.Port,
		Secure:    smtp.Secure,
		User:      smtp.User,
		Pass:      smtp.Pass,
		FromEmail: smtp.FromEmail,
		FromName:  smtp.FromName,
	}
}

func (s *DefaultEmailService) dispatch(ctx context.Context, msg models.EmailMessage) (models.SendOutcome, error) {
	settings := s.settings()

	if s.Queue != nil {
		task, opts, err := tasks.NewEmailDeliveryTask(models.EmailTaskPayload{
			Settings: settings,
			Message:  msg,
		})
		if err != nil {
			return models.SendOutcome{}, fmt.Errorf("failed to build email task: %w", err)
		}
		if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
			s.Logger.Warn("email queue unavailable, sending directly", zap.Error(err))
		} else {
			return models.SendOutcome{Queued: true, Message: "Email mis en file d'envoi."}, nil
		}
	}

	if err := s.Sender.Send(ctx, settings, msg); err != nil {
		return models.SendOutcome{}, err
	}
	return models.SendOutcome{Sent: true, Message: "Email envoyé."}, nil
}
