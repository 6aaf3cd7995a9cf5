package models

// LegalSection is one legal document rendered on the public site
// (mentions légales, privacy policy, terms of sale).
type LegalSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	Version string `json:"version"`
	Updated string `json:"updated"`
}
