package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"coachly/models"
)

// Templates render with the resolved agency branding so tenant colors
// and legal footer follow configuration changes without a deploy.

const layoutTmpl = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f5f5f5;font-family:Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:24px;">
      <table width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;overflow:hidden;">
        <tr><td style="background:{{.Branding.PrimaryColor}};padding:16px 24px;">
          <span style="color:#ffffff;font-size:20px;font-weight:bold;">{{.Branding.AgencyName}}</span>
        </td></tr>
        <tr><td style="padding:24px;color:#333333;font-size:14px;line-height:1.6;">
          {{block "body" .}}{{end}}
        </td></tr>
        <tr><td style="background:#fafafa;padding:16px 24px;color:#999999;font-size:11px;">
          {{.Branding.LegalInfo.CompanyName}} — {{.Branding.LegalInfo.Address}}<br>
          SIRET {{.Branding.LegalInfo.Siret}}
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`

const appointmentTmpl = `{{define "body"}}
<p>Bonjour {{.Req.ClientName}},</p>
<p>Votre rendez-vous avec <strong>{{.Req.CounselorName}}</strong> est confirmé :</p>
<p style="background:{{.Branding.SecondaryColor}};border-radius:6px;padding:12px 16px;color:#ffffff;">
  <strong>{{.When}}</strong>{{if .Req.Location}}<br>{{.Req.Location}}{{end}}
</p>
{{if .Req.MeetingURL}}<p>Lien de la séance : <a href="{{.Req.MeetingURL}}">{{.Req.MeetingURL}}</a></p>{{end}}
{{if .Req.Notes}}<p>{{.Req.Notes}}</p>{{end}}
<p>À très bientôt,<br>{{.Branding.AgencyName}}</p>
{{end}}`

const dataExportTmpl = `{{define "body"}}
<p>Bonjour {{.Req.ClientName}},</p>
<p>Comme demandé, voici le lien de téléchargement de l'export de vos données personnelles :</p>
<p><a href="{{.Req.DownloadURL}}" style="color:{{.Branding.PrimaryColor}};">Télécharger mes données</a></p>
<p>Ce lien expire le <strong>{{.Expires}}</strong>. Passé ce délai, vous pourrez demander un nouvel export depuis votre espace.</p>
<p>{{.Branding.AgencyName}}</p>
{{end}}`

const trainingTmpl = `{{define "body"}}
<p>Bonjour {{.Req.ClientName}},</p>
<p>Bienvenue dans le programme <strong>{{.Req.ProgramName}}</strong> !</p>
{{if .Start}}<p>Début du programme : <strong>{{.Start}}</strong></p>{{end}}
<p>Au programme :</p>
<ul>
{{range .Req.ModuleTitles}}<li>{{.}}</li>{{end}}
</ul>
<p>Les documents du programme sont joints à cet email.</p>
<p>Bonne progression,<br>{{.Branding.AgencyName}}</p>
{{end}}`

var (
	appointmentTemplate = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(appointmentTmpl))
	dataExportTemplate  = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(dataExportTmpl))
	trainingTemplate    = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(trainingTmpl))
)

// RenderAppointmentConfirmation produces the confirmation email.
func RenderAppointmentConfirmation(branding models.AgencyConfig, req models.AppointmentEmailRequest) (models.EmailMessage, error) {
	when := formatParisTime(req.StartsAt)
	html, err := render(appointmentTemplate, map[string]any{
		"Branding": branding,
		"Req":      req,
		"When":     when,
	})
	if err != nil {
		return models.EmailMessage{}, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Bonjour %s,\n\nVotre rendez-vous avec %s est confirmé : %s.\n",
		req.ClientName, req.CounselorName, when)
	if req.Location != "" {
		fmt.Fprintf(&text, "Lieu : %s\n", req.Location)
	}
	if req.MeetingURL != "" {
		fmt.Fprintf(&text, "Lien : %s\n", req.MeetingURL)
	}

	return models.EmailMessage{
		To:      req.ClientEmail,
		Subject: fmt.Sprintf("Votre rendez-vous avec %s est confirmé", req.CounselorName),
		HTML:    html,
		Text:    text.String(),
	}, nil
}

// RenderDataExport produces the GDPR export notification email.
func RenderDataExport(branding models.AgencyConfig, req models.DataExportEmailRequest) (models.EmailMessage, error) {
	expires := formatParisTime(req.ExpiresAt)
	html, err := render(dataExportTemplate, map[string]any{
		"Branding": branding,
		"Req":      req,
		"Expires":  expires,
	})
	if err != nil {
		return models.EmailMessage{}, err
	}
	return models.EmailMessage{
		To:      req.ClientEmail,
		Subject: "L'export de vos données personnelles est prêt",
		HTML:    html,
		Text: fmt.Sprintf("Bonjour %s,\n\nTéléchargez l'export de vos données : %s\nCe lien expire le %s.\n",
			req.ClientName, req.DownloadURL, expires),
	}, nil
}

// RenderTrainingProgram produces the program delivery email, carrying
// the request's attachments through unchanged.
func RenderTrainingProgram(branding models.AgencyConfig, req models.TrainingDeliveryRequest) (models.EmailMessage, error) {
	var start string
	if !req.StartDate.IsZero() {
		start = formatParisDate(req.StartDate)
	}
	html, err := render(trainingTemplate, map[string]any{
		"Branding": branding,
		"Req":      req,
		"Start":    start,
	})
	if err != nil {
		return models.EmailMessage{}, err
	}
	return models.EmailMessage{
		To:          req.ClientEmail,
		Subject:     fmt.Sprintf("Votre programme « %s » est disponible", req.ProgramName),
		HTML:        html,
		Text:        fmt.Sprintf("Bonjour %s,\n\nBienvenue dans le programme %s.\n", req.ClientName, req.ProgramName),
		Attachments: req.Attachments,
	}, nil
}

func render(t *template.Template, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

var parisLocation = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		return time.UTC
	}
	return loc
}()

func formatParisTime(t time.Time) string {
	return t.In(parisLocation).Format("02/01/2006 à 15h04")
}

func formatParisDate(t time.Time) string {
	return t.In(parisLocation).Format("02/01/2006")
}
