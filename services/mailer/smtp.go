package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"coachly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SMTPSender delivers email over SMTP with STARTTLS, or implicit TLS
// when the settings mark the connection secure.
type SMTPSender struct {
	Logger *zap.Logger
}

// Send connects, authenticates and submits one message. Any failure is
// returned as a *SendError with a classified code.
func (s *SMTPSender) Send(ctx context.Context, settings models.EmailSettings, msg models.EmailMessage) error {
	addr := fmt.Sprintf("%s:%d", settings.Host, settings.Port)

	client, err := s.dial(ctx, addr, settings)
	if err != nil {
		return classify(err)
	}
	defer client.Close()

	if settings.User != "" {
		auth := smtp.PlainAuth("", settings.User, settings.Pass, settings.Host)
		if err := client.Auth(auth); err != nil {
			return classify(err)
		}
	}

	if err := client.Mail(settings.FromEmail); err != nil {
		return classify(err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return classify(err)
	}

	w, err := client.Data()
	if err != nil {
		return classify(err)
	}
	if _, err := w.Write(buildMIME(settings, msg)); err != nil {
		w.Close()
		return classify(err)
	}
	if err := w.Close(); err != nil {
		return classify(err)
	}

	if err := client.Quit(); err != nil {
		// Message already accepted; log and move on.
		s.Logger.Debug("smtp quit failed after accepted message", zap.Error(err))
	}
	return nil
}

func (s *SMTPSender) dial(ctx context.Context, addr string, settings models.EmailSettings) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	if settings.Secure {
		conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: settings.Host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, settings.Host)
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, settings.Host)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: settings.Host}); err != nil {
			client.Close()
			return nil, err
		}
	}
	return client, nil
}

// classify maps a raw transport error onto the failure taxonomy.
func classify(err error) *SendError {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &SendError{Code: SendErrConnection, Err: err}
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch {
		case protoErr.Code == 535 || protoErr.Code == 534 || protoErr.Code == 530:
			return &SendError{Code: SendErrAuth, Err: err}
		case protoErr.Code == 550 || protoErr.Code == 551 || protoErr.Code == 553:
			return &SendError{Code: SendErrRecipient, Err: err}
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "connection refused") {
		return &SendError{Code: SendErrConnection, Err: err}
	}
	return &SendError{Code: SendErrOther, Err: err}
}

// buildMIME assembles the RFC 2045 message body: a text/html part, an
// optional text/plain alternative, and base64 attachment parts.
func buildMIME(settings models.EmailSettings, msg models.EmailMessage) []byte {
	var buf bytes.Buffer

	from := settings.FromEmail
	if settings.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", settings.FromName), settings.FromEmail)
	}

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", uuid.NewString(), settings.Host)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")

	mixedBoundary := "mixed-" + uuid.NewString()
	altBoundary := "alt-" + uuid.NewString()
	hasAttachments := len(msg.Attachments) > 0

	if hasAttachments {
		fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mixedBoundary)
		fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
	}

	if msg.Text != "" {
		fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)
		fmt.Fprintf(&buf, "--%s\r\n", altBoundary)
		buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.Text)
		fmt.Fprintf(&buf, "\r\n--%s\r\n", altBoundary)
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.HTML)
		fmt.Fprintf(&buf, "\r\n--%s--\r\n", altBoundary)
	} else {
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.HTML)
		buf.WriteString("\r\n")
	}

	if hasAttachments {
		for _, att := range msg.Attachments {
			contentType := att.ContentType
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
			fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
			buf.WriteString("Content-Transfer-Encoding: base64\r\n")
			fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", att.Filename)
			buf.WriteString(base64.StdEncoding.EncodeToString(att.Content))
			buf.WriteString("\r\n")
		}
		fmt.Fprintf(&buf, "--%s--\r\n", mixedBoundary)
	}

	return buf.Bytes()
}
