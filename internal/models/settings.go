package models

type Settings struct {
	RestTimerDuration int `json:"restTimerDuration"` // seconds
}
