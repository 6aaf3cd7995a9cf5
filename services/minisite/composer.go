package minisite

import "go.uber.org/zap"

// Compose turns an ordered toggle list into the ordered list of
// displayable sections. Input order is authoritative; disabled entries
// are dropped, and ids with no registered renderer are logged and
// skipped so configuration written by newer admin builds never crashes
// an older server.
func Compose(sections []SectionRef, reg Registry, logger *zap.Logger) []Rendered {
	out := make([]Rendered, 0, len(sections))
	for _, ref := range sections {
		if !ref.Enabled {
			continue
		}
		render, ok := reg[ref.ID]
		if !ok {
			logger.Warn("skipping unknown mini-site section", zap.String("sectionId", ref.ID))
			continue
		}
		out = append(out, render())
	}
	return out
}
