// Package assessment persists each user's latest layer scores.
package assessment

import (
	"context"
	"time"
)

// Record is one user's saved assessment: the five fixed score fields the
// submission form collects, plus the purpose framework they were scored
// under.
type Record struct {
	UserID           string    `json:"userId"`
	Purpose          string    `json:"purpose"`
	BioHardware      float64   `json:"bioHardware"`
	InternalOS       float64   `json:"internalOS"`
	CulturalSoftware float64   `json:"culturalSoftware"`
	SocialInstance   float64   `json:"socialInstance"`
	ConsciousUser    float64   `json:"consciousUser"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Vector returns the scores in layer order, ready to zip with a profile.
func (r Record) Vector() []float64 {
	return []float64{r.BioHardware, r.InternalOS, r.CulturalSoftware, r.SocialInstance, r.ConsciousUser}
}

// DefaultRecord is what a user who never saved an assessment gets back:
// midpoint scores under the personal framework.
func DefaultRecord(userID string) Record {
	return Record{
		UserID:           userID,
		Purpose:          "personal",
		BioHardware:      5,
		InternalOS:       5,
		CulturalSoftware: 5,
		SocialInstance:   5,
		ConsciousUser:    5,
	}
}

// Store owns assessment rows. GetOrDefault never fails on a missing row.
type Store interface {
	Upsert(ctx context.Context, rec Record) error
	GetOrDefault(ctx context.Context, userID string) (Record, error)
}
