package personalization

import "coachly/models"

// Merge overlays a remote configuration patch on the defaults and
// returns the resolved configuration. It is pure: neither input is
// mutated and a fresh value is returned on every call.
//
// Field semantics:
//   - scalar and block fields: a non-nil pointer in the patch wins,
//     even when it points at a zero value (presence means the key
//     exists remotely); nil keeps the default;
//   - legalInfo: merged one level deep, each sub-field independently
//     falling back to the default;
//   - homePageSections: atomic. A non-empty remote list replaces the
//     default list in full, anything else keeps the defaults. Locked
//     sections are forced back on if the remote list disabled them.
func Merge(defaults models.AgencyConfig, patch *models.AgencyConfigPatch) models.AgencyConfig {
	out := defaults.Clone()
	if patch == nil {
		return out
	}

	if patch.AgencyName != nil {
		out.AgencyName = *patch.AgencyName
	}
	if patch.LogoURL != nil {
		out.LogoURL = *patch.LogoURL
	}
	if patch.PrimaryColor != nil {
		out.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		out.SecondaryColor = *patch.SecondaryColor
	}
	if patch.Hero != nil {
		out.Hero = *patch.Hero
	}
	if patch.Footer != nil {
		out.Footer = *patch.Footer
	}
	if patch.Payment != nil {
		out.Payment = *patch.Payment
	}
	if patch.SMTP != nil {
		out.SMTP = *patch.SMTP
	}

	if patch.LegalInfo != nil {
		out.LegalInfo = mergeLegalInfo(defaults.LegalInfo, patch.LegalInfo)
	}

	if len(patch.HomeSections) > 0 {
		// Lockedness follows the defaults table, not the remote list: a
		// patch can neither unlock nor disable hero/footer.
		locked := make(map[string]bool, len(defaults.HomeSections))
		for _, s := range defaults.HomeSections {
			if s.Locked {
				locked[s.ID] = true
			}
		}
		sections := make([]models.HomeSection, len(patch.HomeSections))
		copy(sections, patch.HomeSections)
		for i := range sections {
			if locked[sections[i].ID] {
				sections[i].Locked = true
				sections[i].Enabled = true
			}
		}
		out.HomeSections = sections
	}

	return out
}

func mergeLegalInfo(defaults models.LegalInfo, patch *models.LegalInfoPatch) models.LegalInfo {
	out := defaults
	if patch.CompanyName != nil {
		out.CompanyName = *patch.CompanyName
	}
	if patch.LegalForm != nil {
		out.LegalForm = *patch.LegalForm
	}
	if patch.Siret != nil {
		out.Siret = *patch.Siret
	}
	if patch.VATNumber != nil {
		out.VATNumber = *patch.VATNumber
	}
	if patch.Address != nil {
		out.Address = *patch.Address
	}
	if patch.PublicationDirector != nil {
		out.PublicationDirector = *patch.PublicationDirector
	}
	if patch.HostName != nil {
		out.HostName = *patch.HostName
	}
	if patch.HostAddress != nil {
		out.HostAddress = *patch.HostAddress
	}
	return out
}
