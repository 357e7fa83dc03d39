package models

// TrackingType determines which fields a log entry for an exercise carries:
// reps-tracked exercises log reps (and optionally weight), time-tracked
// exercises log a duration in seconds.
type TrackingType string

const (
	TrackingTypeReps TrackingType = "reps"
	TrackingTypeTime TrackingType = "time"
)

type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  *string      `json:"description,omitempty"`
	VideoURL     *string      `json:"videoUrl,omitempty"`
	TrackingType TrackingType `json:"trackingType"`
}
