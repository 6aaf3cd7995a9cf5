package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"coachly/models"
	"coachly/services/personalization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []models.EmailMessage
	err  error
}

func (f *fakeSender) Send(_ context.Context, _ models.EmailSettings, msg models.EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestService(sender Sender) *DefaultEmailService {
	p := personalization.New(nil, zap.NewNop())
	p.Start(context.Background())
	return NewDefaultEmailService(p, nil, sender, zap.NewNop())
}

func validAppointment() models.AppointmentEmailRequest {
	return models.AppointmentEmailRequest{
		ClientEmail:   "client@example.com",
		ClientName:    "Jean Dupont",
		CounselorName: "Claire Martin",
		StartsAt:      time.Date(2026, 9, 4, 14, 0, 0, 0, time.UTC),
		DurationMin:   60,
		Location:      "Cabinet, 12 rue des Lilas",
	}
}

func TestSendAppointmentConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	outcome, err := svc.SendAppointmentConfirmation(context.Background(), validAppointment())
	require.NoError(t, err)
	assert.True(t, outcome.Sent)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "client@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Claire Martin")
	assert.Contains(t, msg.HTML, "Jean Dupont")
}

func TestSendRejectsMalformedPayloadBeforeTransport(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	req := validAppointment()
	req.ClientEmail = "not-an-email"

	_, err := svc.SendAppointmentConfirmation(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ClientEmail", vErr.Field)
	assert.Empty(t, sender.sent, "no partial send on validation failure")
}

func TestSendDataExportValidation(t *testing.T) {
	svc := newTestService(&fakeSender{})

	_, err := svc.SendDataExport(context.Background(), models.DataExportEmailRequest{
		ClientEmail: "client@example.com",
		ClientName:  "Jean Dupont",
		DownloadURL: "not a url",
		ExpiresAt:   time.Now().Add(time.Hour),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "DownloadURL", vErr.Field)
}

func TestSendTrainingProgramCarriesAttachments(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	outcome, err := svc.SendTrainingProgram(context.Background(), models.TrainingDeliveryRequest{
		ClientEmail:  "client@example.com",
		ClientName:   "Jean Dupont",
		ProgramName:  "Confiance en soi",
		ModuleTitles: []string{"Module 1 — Les bases", "Module 2 — Pratique"},
		Attachments: []models.Attachment{
			{Filename: "programme.pdf", ContentType: "application/pdf", Content: []byte("pdf")},
		},
	})
	require.NoError(t, err)
	assert.True(t, outcome.Sent)

	require.Len(t, sender.sent, 1)
	require.Len(t, sender.sent[0].Attachments, 1)
	assert.Equal(t, "programme.pdf", sender.sent[0].Attachments[0].Filename)
}

func TestSendTrainingProgramRequiresModules(t *testing.T) {
	svc := newTestService(&fakeSender{})

	_, err := svc.SendTrainingProgram(context.Background(), models.TrainingDeliveryRequest{
		ClientEmail: "client@example.com",
		ClientName:  "Jean Dupont",
		ProgramName: "Confiance en soi",
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSendSurfacesTransportFailureAsValue(t *testing.T) {
	transportErr := &SendError{Code: SendErrConnection, Err: errors.New("dial tcp: connection refused")}
	svc := newTestService(&fakeSender{err: transportErr})

	outcome, err := svc.SendAppointmentConfirmation(context.Background(), validAppointment())
	assert.False(t, outcome.Sent)

	var sErr *SendError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, SendErrConnection, sErr.Code)
	assert.NotEmpty(t, sErr.Reason())
}
