package models

import "time"

// SectionEnabled reports whether a mini-site section toggle is on. An
// unset toggle means the counselor never touched it, which counts as
// enabled; only an explicit false disables a section.
func SectionEnabled(enabled *bool) bool {
	return enabled == nil || *enabled
}

// HeroSection is the mini-site header block.
type HeroSection struct {
	Enabled  *bool  `firestore:"enabled" json:"enabled,omitempty"`
	Headline string `firestore:"headline" json:"headline"`
	Tagline  string `firestore:"tagline" json:"tagline"`
	PhotoURL string `firestore:"photoUrl" json:"photoUrl"`
}

// AttentionSection is the highlighted announcement banner.
type AttentionSection struct {
	Enabled     *bool  `firestore:"enabled" json:"enabled,omitempty"`
	Message     string `firestore:"message" json:"message"`
	BannerColor string `firestore:"bannerColor" json:"bannerColor"`
}

// AboutSection presents the counselor's background.
type AboutSection struct {
	Enabled        *bool    `firestore:"enabled" json:"enabled,omitempty"`
	Bio            string   `firestore:"bio" json:"bio"`
	Certifications []string `firestore:"certifications" json:"certifications"`
}

// ServiceItem is one service offered by a counselor.
type ServiceItem struct {
	Name        string `firestore:"name" json:"name"`
	Description string `firestore:"description" json:"description"`
	DurationMin int    `firestore:"durationMin" json:"durationMin"`
	PriceCents  int64  `firestore:"priceCents" json:"priceCents"`
}

// ServicesSection lists the counselor's services.
type ServicesSection struct {
	Enabled *bool         `firestore:"enabled" json:"enabled,omitempty"`
	Items   []ServiceItem `firestore:"items" json:"items"`
}

// PricingPackage is a bundled offer (e.g. five sessions).
type PricingPackage struct {
	Name         string `firestore:"name" json:"name"`
	Description  string `firestore:"description" json:"description"`
	PriceCents   int64  `firestore:"priceCents" json:"priceCents"`
	SessionCount int    `firestore:"sessionCount" json:"sessionCount"`
}

// PricingSection lists package pricing.
type PricingSection struct {
	Enabled  *bool            `firestore:"enabled" json:"enabled,omitempty"`
	Packages []PricingPackage `firestore:"packages" json:"packages"`
}

// Activity is a workshop, group session or public event.
type Activity struct {
	Title       string    `firestore:"title" json:"title"`
	Date        time.Time `firestore:"date" json:"date"`
	Location    string    `firestore:"location" json:"location"`
	Description string    `firestore:"description" json:"description"`
}

// ActivitiesSection lists upcoming activities.
type ActivitiesSection struct {
	Enabled *bool      `firestore:"enabled" json:"enabled,omitempty"`
	Events  []Activity `firestore:"events" json:"events"`
}

// ProductsSection toggles the product listing; the product data itself
// is fetched from the catalog, not stored inside the mini-site config.
type ProductsSection struct {
	Enabled  *bool  `firestore:"enabled" json:"enabled,omitempty"`
	Headline string `firestore:"headline" json:"headline"`
}

// BlogPost is one published article teaser.
type BlogPost struct {
	Title       string    `firestore:"title" json:"title"`
	Slug        string    `firestore:"slug" json:"slug"`
	Excerpt     string    `firestore:"excerpt" json:"excerpt"`
	PublishedAt time.Time `firestore:"publishedAt" json:"publishedAt"`
}

// BlogSection lists article teasers.
type BlogSection struct {
	Enabled *bool      `firestore:"enabled" json:"enabled,omitempty"`
	Posts   []BlogPost `firestore:"posts" json:"posts"`
}

// Testimonial is one client quote.
type Testimonial struct {
	Author string `firestore:"author" json:"author"`
	Quote  string `firestore:"quote" json:"quote"`
	Rating int    `firestore:"rating" json:"rating"`
}

// TestimonialsSection lists client testimonials.
type TestimonialsSection struct {
	Enabled *bool         `firestore:"enabled" json:"enabled,omitempty"`
	Entries []Testimonial `firestore:"entries" json:"entries"`
}

// ContactSection carries the contact block settings.
type ContactSection struct {
	Enabled    *bool  `firestore:"enabled" json:"enabled,omitempty"`
	Email      string `firestore:"email" json:"email"`
	Phone      string `firestore:"phone" json:"phone"`
	BookingURL string `firestore:"bookingUrl" json:"bookingUrl"`
	ShowForm   bool   `firestore:"showForm" json:"showForm"`
}

// MiniSite is the per-counselor public page configuration. SectionOrder
// holds section ids in display order; ids missing from the order are
// not rendered.
type MiniSite struct {
	PublicProfileName string              `firestore:"publicProfileName" json:"publicProfileName"`
	SectionOrder      []string            `firestore:"sectionOrder" json:"sectionOrder"`
	Hero              HeroSection         `firestore:"hero" json:"hero"`
	Attention         AttentionSection    `firestore:"attention" json:"attention"`
	About             AboutSection        `firestore:"about" json:"about"`
	Services          ServicesSection     `firestore:"services" json:"services"`
	Pricing           PricingSection      `firestore:"pricing" json:"pricing"`
	Activities        ActivitiesSection   `firestore:"activities" json:"activities"`
	Products          ProductsSection     `firestore:"products" json:"products"`
	Blog              BlogSection         `firestore:"blog" json:"blog"`
	Testimonials      TestimonialsSection `firestore:"testimonials" json:"testimonials"`
	Contact           ContactSection      `firestore:"contact" json:"contact"`
}

// Counselor is one service provider of the agency.
type Counselor struct {
	ID          string    `firestore:"id" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	FirstName   string    `firestore:"firstName" json:"firstName"`
	LastName    string    `firestore:"lastName" json:"lastName"`
	Title       string    `firestore:"title" json:"title"`
	PhotoURL    string    `firestore:"photoUrl" json:"photoUrl"`
	Specialties []string  `firestore:"specialties" json:"specialties"`
	MiniSite    MiniSite  `firestore:"miniSite" json:"miniSite"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// FullName returns the counselor's display name.
func (c *Counselor) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
