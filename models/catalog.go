package models

import "time"

// JobOffer is a position published on a counselor's mini-site.
type JobOffer struct {
	ID           string    `firestore:"id" json:"id"`
	CounselorID  string    `firestore:"counselorId" json:"counselorId"`
	Title        string    `firestore:"title" json:"title"`
	ContractType string    `firestore:"contractType" json:"contractType"`
	Location     string    `firestore:"location" json:"location"`
	Description  string    `firestore:"description" json:"description"`
	ApplyEmail   string    `firestore:"applyEmail" json:"applyEmail"`
	Active       bool      `firestore:"active" json:"active"`
	PostedAt     time.Time `firestore:"postedAt" json:"postedAt"`
}

// Product is a digital or physical product sold through a mini-site
// (workbooks, recorded programs, session bundles).
type Product struct {
	ID          string    `firestore:"id" json:"id"`
	CounselorID string    `firestore:"counselorId" json:"counselorId"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	PriceCents  int64     `firestore:"priceCents" json:"priceCents"`
	Currency    string    `firestore:"currency" json:"currency"`
	ImageURL    string    `firestore:"imageUrl" json:"imageUrl"`
	Available   bool      `firestore:"available" json:"available"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
