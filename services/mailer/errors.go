package mailer

import "fmt"

// SendErrorCode classifies transport failures for operator-facing
// display.
type SendErrorCode string

const (
	SendErrConnection SendErrorCode = "connection-refused"
	SendErrAuth       SendErrorCode = "authentication-failed"
	SendErrRecipient  SendErrorCode = "recipient-rejected"
	SendErrOther      SendErrorCode = "other"
)

// SendError is a structured transport failure. It is always returned
// as a value, never panicked across the handler boundary.
type SendError struct {
	Code SendErrorCode
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("email send failed (%s): %v", e.Code, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Reason returns the operator-facing message for the failure class.
func (e *SendError) Reason() string {
	switch e.Code {
	case SendErrConnection:
		return "Impossible de joindre le serveur d'envoi. Vérifiez l'hôte et le port SMTP."
	case SendErrAuth:
		return "Authentification SMTP refusée. Vérifiez l'identifiant et le mot de passe."
	case SendErrRecipient:
		return "L'adresse du destinataire a été refusée par le serveur."
	default:
		return "L'envoi de l'email a échoué. Réessayez plus tard."
	}
}

// ValidationError reports a malformed outbound payload, rejected
// before any network call.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid email payload: field %q %s", e.Field, e.Detail)
}
