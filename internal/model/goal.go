package model

import "time"

// Goal tracks progress toward a savings target. Progress updates are
// additive; once current reaches target the achieved flag is set and is
// never reset by later decreases.
type Goal struct {
	TargetDate    *time.Time
	CreatedAt     time.Time
	Name          string
	Description   string
	ID            int64
	Priority      int
	TargetAmount  float64
	CurrentAmount float64
	Progress      float64
	Achieved      bool
}
