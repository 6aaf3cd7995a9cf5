package admin

import (
	"fmt"
	"time"

	"coachly/models"
)

// LegalSections renders the legal documents from the resolved agency
// configuration, so an edit of the remote legalInfo block shows up on
// the public site without a deploy.
func (a *DefaultAdminService) LegalSections() []models.LegalSection {
	info := a.Personalization.Snapshot().Config.LegalInfo
	now := time.Now().UTC().Format(time.RFC3339)

	return []models.LegalSection{
		{
			ID:      "mentions",
			Title:   "Mentions légales",
			Summary: "Identité de l'éditeur et de l'hébergeur du site.",
			Content: fmt.Sprintf(`Éditeur du site : %s (%s)
SIRET : %s — TVA intracommunautaire : %s
Siège social : %s
Directeur de la publication : %s

Hébergeur : %s, %s.`,
				info.CompanyName, info.LegalForm, info.Siret, info.VATNumber,
				info.Address, info.PublicationDirector, info.HostName, info.HostAddress),
			Version: "v1.0",
			Updated: now,
		},
		{
			ID:      "privacy",
			Title:   "Politique de confidentialité",
			Summary: "Collecte et traitement des données personnelles.",
			Content: fmt.Sprintf(`%s collecte uniquement les données nécessaires à la prise de rendez-vous et au suivi de l'accompagnement.

Conformément au RGPD, vous disposez d'un droit d'accès, de rectification, de portabilité et d'effacement de vos données. Toute demande d'export ou de suppression peut être adressée à l'adresse indiquée dans les mentions légales et sera traitée sous 30 jours.

Les données ne sont jamais cédées à des tiers.`, info.CompanyName),
			Version: "v1.0",
			Updated: now,
		},
		{
			ID:      "cgv",
			Title:   "Conditions générales de vente",
			Summary: "Conditions applicables aux prestations et programmes vendus.",
			Content: fmt.Sprintf(`Les prestations de coaching et les programmes de formation sont fournis par %s.

1. Réservation : toute séance réservée est confirmée par email.
2. Annulation : toute annulation doit intervenir au moins 48 heures avant la séance.
3. Paiement : les factures sont émises avec une numérotation séquentielle et payables à réception.
4. Litiges : en cas de litige, une solution amiable sera recherchée avant toute action.`, info.CompanyName),
			Version: "v1.0",
			Updated: now,
		},
	}
}
