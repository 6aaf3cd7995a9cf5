package models

import "time"

// EmailSettings is the SMTP transport configuration handed to the
// sender, resolved from the agency configuration with config-file
// fallbacks.
type EmailSettings struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Secure    bool   `json:"secure"`
	User      string `json:"user"`
	Pass      string `json:"-"`
	FromEmail string `json:"fromEmail"`
	FromName  string `json:"fromName"`
}

// Attachment is one file attached to an outbound email.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"content"`
}

// EmailMessage is a fully assembled outbound email.
type EmailMessage struct {
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// EmailTaskPayload is the queued form of an outbound email, carried by
// the asynq delivery task.
type EmailTaskPayload struct {
	Settings EmailSettings `json:"settings"`
	Message  EmailMessage  `json:"message"`
}

// AppointmentEmailRequest is the payload of the appointment
// confirmation action. Validated before any network call.
type AppointmentEmailRequest struct {
	ClientEmail   string    `json:"clientEmail" validate:"required,email"`
	ClientName    string    `json:"clientName" validate:"required"`
	CounselorName string    `json:"counselorName" validate:"required"`
	StartsAt      time.Time `json:"startsAt" validate:"required"`
	DurationMin   int       `json:"durationMin" validate:"gte=0"`
	Location      string    `json:"location"`
	MeetingURL    string    `json:"meetingUrl" validate:"omitempty,url"`
	Notes         string    `json:"notes"`
}

// DataExportEmailRequest is the payload of the GDPR data export
// notification action.
type DataExportEmailRequest struct {
	ClientEmail string    `json:"clientEmail" validate:"required,email"`
	ClientName  string    `json:"clientName" validate:"required"`
	DownloadURL string    `json:"downloadUrl" validate:"required,url"`
	ExpiresAt   time.Time `json:"expiresAt" validate:"required"`
}

// TrainingDeliveryRequest is the payload of the training program
// delivery action.
type TrainingDeliveryRequest struct {
	ClientEmail  string       `json:"clientEmail" validate:"required,email"`
	ClientName   string       `json:"clientName" validate:"required"`
	ProgramName  string       `json:"programName" validate:"required"`
	ModuleTitles []string     `json:"moduleTitles" validate:"min=1,dive,required"`
	StartDate    time.Time    `json:"startDate"`
	Attachments  []Attachment `json:"attachments,omitempty"`
}

// SendOutcome reports how an email action concluded: handed to the
// delivery queue, or sent synchronously.
type SendOutcome struct {
	Sent    bool   `json:"sent"`
	Queued  bool   `json:"queued"`
	Message string `json:"message,omitempty"`
}
