package personalization

import (
	"coachly/config"
	"coachly/models"
)

// Section ids of the agency home page. Hero and footer are locked:
// configuration may reorder them but never disable them.
const (
	SectionHero         = "hero"
	SectionServices     = "services"
	SectionCounselors   = "counselors"
	SectionTestimonials = "testimonials"
	SectionBlog         = "blog"
	SectionContact      = "contact"
	SectionFooter       = "footer"
)

// Defaults returns the fully-populated fallback configuration. It is
// the configuration of record whenever no remote document exists, and
// the base every remote patch is merged over. A fresh copy is returned
// on each call so callers can never corrupt the table.
func Defaults() models.AgencyConfig {
	return models.AgencyConfig{
		AgencyName:     "Coachly",
		LogoURL:        "/assets/logo.svg",
		PrimaryColor:   "#2ff40a",
		SecondaryColor: "#25d408",
		Hero: models.HeroContent{
			Title:    "Avancez avec un coach à vos côtés",
			Subtitle: "Accompagnement individuel et collectif, en cabinet ou à distance.",
			CTALabel: "Prendre rendez-vous",
			CTALink:  "/contact",
			ImageURL: "/assets/hero.jpg",
		},
		Footer: models.FooterContent{
			Tagline:      "Coaching et conseil, partout en France.",
			ContactEmail: "contact@coachly.app",
			Phone:        "+33 1 23 45 67 89",
			Address:      "12 rue des Lilas, 75011 Paris",
			InstagramURL: "https://instagram.com/coachly",
			LinkedInURL:  "https://linkedin.com/company/coachly",
		},
		LegalInfo: models.LegalInfo{
			CompanyName:         "Coachly SAS",
			LegalForm:           "SAS",
			Siret:               "000 000 000 00000",
			VATNumber:           "FR00000000000",
			Address:             "12 rue des Lilas, 75011 Paris",
			PublicationDirector: "Coachly SAS",
			HostName:            "Google Cloud Platform",
			HostAddress:         "8 rue de Londres, 75009 Paris",
		},
		Payment: models.PaymentSettings{
			Enabled:        false,
			Currency:       "EUR",
			DepositPercent: 30,
		},
		SMTP: models.SMTPSettings{
			Host:      config.AppConfig.SMTPHost,
			Port:      config.AppConfig.SMTPPort,
			Secure:    config.AppConfig.SMTPSecure,
			User:      config.AppConfig.SMTPUser,
			Pass:      config.AppConfig.SMTPPass,
			FromEmail: config.AppConfig.SMTPFromEmail,
			FromName:  config.AppConfig.SMTPFromName,
		},
		HomeSections: []models.HomeSection{
			{ID: SectionHero, Label: "Accueil", Enabled: true, Locked: true},
			{ID: SectionServices, Label: "Nos services", Enabled: true},
			{ID: SectionCounselors, Label: "Nos coachs", Enabled: true},
			{ID: SectionTestimonials, Label: "Témoignages", Enabled: true},
			{ID: SectionBlog, Label: "Le blog", Enabled: false},
			{ID: SectionContact, Label: "Contact", Enabled: true},
			{ID: SectionFooter, Label: "Pied de page", Enabled: true, Locked: true},
		},
	}
}
