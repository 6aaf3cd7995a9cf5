package models

// LegalInfo describes the agency's legal identity, displayed in the
// footer and on the legal notices page.
type LegalInfo struct {
	CompanyName         string `firestore:"companyName" json:"companyName"`
	LegalForm           string `firestore:"legalForm" json:"legalForm"`
	Siret               string `firestore:"siret" json:"siret"`
	VATNumber           string `firestore:"vatNumber" json:"vatNumber"`
	Address             string `firestore:"address" json:"address"`
	PublicationDirector string `firestore:"publicationDirector" json:"publicationDirector"`
	HostName            string `firestore:"hostName" json:"hostName"`
	HostAddress         string `firestore:"hostAddress" json:"hostAddress"`
}

// LegalInfoPatch is the partial form of LegalInfo as stored remotely.
// A nil field means "keep the default"; a non-nil empty string is an
// explicit override.
type LegalInfoPatch struct {
	CompanyName         *string `firestore:"companyName" json:"companyName,omitempty"`
	LegalForm           *string `firestore:"legalForm" json:"legalForm,omitempty"`
	Siret               *string `firestore:"siret" json:"siret,omitempty"`
	VATNumber           *string `firestore:"vatNumber" json:"vatNumber,omitempty"`
	Address             *string `firestore:"address" json:"address,omitempty"`
	PublicationDirector *string `firestore:"publicationDirector" json:"publicationDirector,omitempty"`
	HostName            *string `firestore:"hostName" json:"hostName,omitempty"`
	HostAddress         *string `firestore:"hostAddress" json:"hostAddress,omitempty"`
}

// HomeSection is one toggleable block of the agency home page. List
// order is display order. Locked sections (hero, footer) cannot be
// disabled by configuration.
type HomeSection struct {
	ID      string `firestore:"id" json:"id"`
	Label   string `firestore:"label" json:"label"`
	Enabled bool   `firestore:"enabled" json:"enabled"`
	Locked  bool   `firestore:"locked" json:"locked"`
}

// HeroContent is the home page hero block.
type HeroContent struct {
	Title    string `firestore:"title" json:"title"`
	Subtitle string `firestore:"subtitle" json:"subtitle"`
	CTALabel string `firestore:"ctaLabel" json:"ctaLabel"`
	CTALink  string `firestore:"ctaLink" json:"ctaLink"`
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`
}

// FooterContent is the site-wide footer block.
type FooterContent struct {
	Tagline      string `firestore:"tagline" json:"tagline"`
	ContactEmail string `firestore:"contactEmail" json:"contactEmail"`
	Phone        string `firestore:"phone" json:"phone"`
	Address      string `firestore:"address" json:"address"`
	InstagramURL string `firestore:"instagramUrl" json:"instagramUrl"`
	LinkedInURL  string `firestore:"linkedinUrl" json:"linkedinUrl"`
}

// PaymentSettings carries tenant-level payment display options. Actual
// payment processing is out of scope for this service.
type PaymentSettings struct {
	Enabled        bool   `firestore:"enabled" json:"enabled"`
	Currency       string `firestore:"currency" json:"currency"`
	DepositPercent int    `firestore:"depositPercent" json:"depositPercent"`
}

// SMTPSettings are the tenant's outbound email credentials.
type SMTPSettings struct {
	Host      string `firestore:"host" json:"host"`
	Port      int    `firestore:"port" json:"port"`
	Secure    bool   `firestore:"secure" json:"secure"`
	User      string `firestore:"user" json:"user"`
	Pass      string `firestore:"pass" json:"-"`
	FromEmail string `firestore:"fromEmail" json:"fromEmail"`
	FromName  string `firestore:"fromName" json:"fromName"`
}

// AgencyConfig is the fully-populated tenant configuration. Every
// consumer works against this shape; partial remote documents are
// merged over the defaults before they ever reach a consumer.
type AgencyConfig struct {
	AgencyName     string          `firestore:"agencyName" json:"agencyName"`
	LogoURL        string          `firestore:"logoUrl" json:"logoUrl"`
	PrimaryColor   string          `firestore:"primaryColor" json:"primaryColor"`
	SecondaryColor string          `firestore:"secondaryColor" json:"secondaryColor"`
	Hero           HeroContent     `firestore:"hero" json:"hero"`
	Footer         FooterContent   `firestore:"footer" json:"footer"`
	LegalInfo      LegalInfo       `firestore:"legalInfo" json:"legalInfo"`
	Payment        PaymentSettings `firestore:"payment" json:"payment"`
	SMTP           SMTPSettings    `firestore:"smtp" json:"smtp"`
	HomeSections   []HomeSection   `firestore:"homePageSections" json:"homePageSections"`
}

// Clone returns a deep copy so callers can never alias the slice held
// by a resolved configuration.
func (c AgencyConfig) Clone() AgencyConfig {
	out := c
	if c.HomeSections != nil {
		out.HomeSections = make([]HomeSection, len(c.HomeSections))
		copy(out.HomeSections, c.HomeSections)
	}
	return out
}

// AgencyConfigPatch is the remote document shape: every field optional,
// presence signalled by a non-nil pointer. HomeSections is atomic: a
// non-empty list fully replaces the default list.
type AgencyConfigPatch struct {
	AgencyName     *string          `firestore:"agencyName" json:"agencyName,omitempty"`
	LogoURL        *string          `firestore:"logoUrl" json:"logoUrl,omitempty"`
	PrimaryColor   *string          `firestore:"primaryColor" json:"primaryColor,omitempty"`
	SecondaryColor *string          `firestore:"secondaryColor" json:"secondaryColor,omitempty"`
	Hero           *HeroContent     `firestore:"hero" json:"hero,omitempty"`
	Footer         *FooterContent   `firestore:"footer" json:"footer,omitempty"`
	LegalInfo      *LegalInfoPatch  `firestore:"legalInfo" json:"legalInfo,omitempty"`
	Payment        *PaymentSettings `firestore:"payment" json:"payment,omitempty"`
	SMTP           *SMTPSettings    `firestore:"smtp" json:"smtp,omitempty"`
	HomeSections   []HomeSection    `firestore:"homePageSections" json:"homePageSections,omitempty"`
}
