package mailer

import (
	"testing"
	"time"

	"coachly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBranding() models.AgencyConfig {
	return models.AgencyConfig{
		AgencyName:     "Atelier Élan",
		PrimaryColor:   "#336699",
		SecondaryColor: "#884422",
		LegalInfo: models.LegalInfo{
			CompanyName: "Atelier Élan SARL",
			Address:     "4 place du Marché, 69002 Lyon",
			Siret:       "123 456 789 00012",
		},
	}
}

func TestRenderAppointmentConfirmationUsesBranding(t *testing.T) {
	msg, err := RenderAppointmentConfirmation(testBranding(), models.AppointmentEmailRequest{
		ClientEmail:   "client@example.com",
		ClientName:    "Jean Dupont",
		CounselorName: "Claire Martin",
		StartsAt:      time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC),
		MeetingURL:    "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "client@example.com", msg.To)
	assert.Contains(t, msg.HTML, "#336699", "primary color drives the header")
	assert.Contains(t, msg.HTML, "Atelier Élan")
	assert.Contains(t, msg.HTML, "123 456 789 00012", "legal footer carries the SIRET")
	assert.Contains(t, msg.HTML, "https://meet.example.com/abc")
	assert.NotEmpty(t, msg.Text)
}

func TestRenderAppointmentOmitsEmptyOptionalBlocks(t *testing.T) {
	msg, err := RenderAppointmentConfirmation(testBranding(), models.AppointmentEmailRequest{
		ClientEmail:   "client@example.com",
		ClientName:    "Jean Dupont",
		CounselorName: "Claire Martin",
		StartsAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "Lien de la séance")
}

func TestRenderDataExport(t *testing.T) {
	msg, err := RenderDataExport(testBranding(), models.DataExportEmailRequest{
		ClientEmail: "client@example.com",
		ClientName:  "Jean Dupont",
		DownloadURL: "https://coachly.app/api/admin/exports/abc?token=xyz",
		ExpiresAt:   time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "https://coachly.app/api/admin/exports/abc?token=xyz")
	assert.Contains(t, msg.Subject, "données")
	assert.Contains(t, msg.Text, "expire")
}

func TestRenderTrainingProgramListsModules(t *testing.T) {
	msg, err := RenderTrainingProgram(testBranding(), models.TrainingDeliveryRequest{
		ClientEmail:  "client@example.com",
		ClientName:   "Jean Dupont",
		ProgramName:  "Confiance en soi",
		ModuleTitles: []string{"Les bases", "La pratique"},
		Attachments: []models.Attachment{
			{Filename: "programme.pdf", Content: []byte("x")},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, msg.Subject, "Confiance en soi")
	assert.Contains(t, msg.HTML, "<li>Les bases</li>")
	assert.Contains(t, msg.HTML, "<li>La pratique</li>")
	require.Len(t, msg.Attachments, 1)
}

func TestRenderEscapesClientInput(t *testing.T) {
	msg, err := RenderAppointmentConfirmation(testBranding(), models.AppointmentEmailRequest{
		ClientEmail:   "client@example.com",
		ClientName:    "<script>alert(1)</script>",
		CounselorName: "Claire Martin",
		StartsAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
}
