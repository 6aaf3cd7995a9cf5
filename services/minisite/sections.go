package minisite

import "coachly/models"

// SectionKind enumerates the closed set of mini-site section kinds.
type SectionKind string

const (
	KindHero         SectionKind = "hero"
	KindAttention    SectionKind = "attention"
	KindAbout        SectionKind = "about"
	KindServices     SectionKind = "services"
	KindPricing      SectionKind = "pricing"
	KindActivities   SectionKind = "activities"
	KindProducts     SectionKind = "products"
	KindBlog         SectionKind = "blog"
	KindTestimonials SectionKind = "testimonials"
	KindContact      SectionKind = "contact"
)

// SectionRef is one entry of a mini-site's display order: the section
// id plus its effective toggle state.
type SectionRef struct {
	ID      string
	Enabled bool
}

// Rendered is a displayable section: its kind tag plus the typed
// settings payload the front end renders from.
type Rendered struct {
	Kind SectionKind `json:"kind"`
	Data any         `json:"data"`
}

// Renderer produces the displayable form of one section.
type Renderer func() Rendered

// Registry maps section ids to their render capability for one
// resolution. Ids absent from the registry are skipped by Compose.
type Registry map[string]Renderer

// SectionRefs derives the ordered toggle list from a mini-site
// configuration. Order comes from SectionOrder; enablement from each
// section's own flag, where an unset flag counts as enabled. Ids the
// configuration does not know keep flowing through; Compose decides
// what to do with them.
func SectionRefs(site *models.MiniSite) []SectionRef {
	refs := make([]SectionRef, 0, len(site.SectionOrder))
	for _, id := range site.SectionOrder {
		refs = append(refs, SectionRef{ID: id, Enabled: sectionEnabled(site, id)})
	}
	return refs
}

// sectionEnabled matches exhaustively over the closed kind set. Unknown
// ids report enabled and are filtered later against the registry.
func sectionEnabled(site *models.MiniSite, id string) bool {
	switch SectionKind(id) {
	case KindHero:
		return models.SectionEnabled(site.Hero.Enabled)
	case KindAttention:
		return models.SectionEnabled(site.Attention.Enabled)
	case KindAbout:
		return models.SectionEnabled(site.About.Enabled)
	case KindServices:
		return models.SectionEnabled(site.Services.Enabled)
	case KindPricing:
		return models.SectionEnabled(site.Pricing.Enabled)
	case KindActivities:
		return models.SectionEnabled(site.Activities.Enabled)
	case KindProducts:
		return models.SectionEnabled(site.Products.Enabled)
	case KindBlog:
		return models.SectionEnabled(site.Blog.Enabled)
	case KindTestimonials:
		return models.SectionEnabled(site.Testimonials.Enabled)
	case KindContact:
		return models.SectionEnabled(site.Contact.Enabled)
	default:
		return true
	}
}

// NewRegistry builds the render registry for one counselor's page. The
// products section renders catalog data fetched alongside the profile;
// every other section renders its own settings payload.
func NewRegistry(c *models.Counselor, products []models.Product) Registry {
	site := &c.MiniSite
	return Registry{
		string(KindHero):      func() Rendered { return Rendered{Kind: KindHero, Data: site.Hero} },
		string(KindAttention): func() Rendered { return Rendered{Kind: KindAttention, Data: site.Attention} },
		string(KindAbout):     func() Rendered { return Rendered{Kind: KindAbout, Data: site.About} },
		string(KindServices):  func() Rendered { return Rendered{Kind: KindServices, Data: site.Services} },
		string(KindPricing):   func() Rendered { return Rendered{Kind: KindPricing, Data: site.Pricing} },
		string(KindActivities): func() Rendered {
			return Rendered{Kind: KindActivities, Data: site.Activities}
		},
		string(KindProducts): func() Rendered {
			return Rendered{Kind: KindProducts, Data: productsPayload{
				Headline: site.Products.Headline,
				Products: products,
			}}
		},
		string(KindBlog): func() Rendered { return Rendered{Kind: KindBlog, Data: site.Blog} },
		string(KindTestimonials): func() Rendered {
			return Rendered{Kind: KindTestimonials, Data: site.Testimonials}
		},
		string(KindContact): func() Rendered { return Rendered{Kind: KindContact, Data: site.Contact} },
	}
}

type productsPayload struct {
	Headline string           `json:"headline"`
	Products []models.Product `json:"products"`
}
