package services

import (
	"sort"
	"time"

	"github.com/AdityaPradhan00/gymtracker/internal/models"
)

// SummaryStats are all-time totals derived from the full log history.
type SummaryStats struct {
	TotalWorkouts        int
	TotalLogsCount       int
	DaysActive           int
	MostFrequentExercise string
	HeaviestWeight       float64
	LongestDuration      int // seconds
}

// DayActivity is one calendar-day bucket of the weekly activity series.
type DayActivity struct {
	Day   string // abbreviated weekday name, e.g. "Mon"
	Date  time.Time
	Count int
}

// ExerciseCount ranks an exercise by how many workouts include it.
type ExerciseCount struct {
	Name  string
	Count int
}

// ComputeSummaryStats scans every workout, association and log once and
// derives the totals. Associations whose exercise no longer resolves in the
// catalog are skipped entirely: their logs count toward nothing here.
//
// Exercise frequency counts associations, not logged sets: an exercise that
// appears in three workouts scores 3 no matter how often it was performed.
// Ties go to the exercise encountered first.
func ComputeSummaryStats(workoutDays []models.WorkoutDay, exercises []models.Exercise) SummaryStats {
	stats := SummaryStats{TotalWorkouts: len(workoutDays)}

	byID := exercisesByID(exercises)
	counts := make(map[string]int)
	var nameOrder []string
	activeDays := make(map[string]struct{})

	for _, day := range workoutDays {
		for _, workoutExercise := range day.Exercises {
			exercise, ok := byID[workoutExercise.ExerciseID]
			if !ok {
				continue
			}

			if _, seen := counts[exercise.Name]; !seen {
				nameOrder = append(nameOrder, exercise.Name)
			}
			counts[exercise.Name]++

			for _, entry := range workoutExercise.Logs {
				stats.TotalLogsCount++
				activeDays[entry.Date.Local().Format("2006-01-02")] = struct{}{}

				if entry.Weight != nil && *entry.Weight > stats.HeaviestWeight {
					stats.HeaviestWeight = *entry.Weight
				}
				if entry.Duration != nil && *entry.Duration > stats.LongestDuration {
					stats.LongestDuration = *entry.Duration
				}
			}
		}
	}

	stats.DaysActive = len(activeDays)

	maxCount := 0
	for _, name := range nameOrder {
		if counts[name] > maxCount {
			maxCount = counts[name]
			stats.MostFrequentExercise = name
		}
	}

	return stats
}

// ComputeWeeklyActivity buckets every log into the 7 calendar days ending at
// reference inclusive, oldest bucket first. Day boundaries follow the
// reference's location; each log lands in at most one bucket, and logs
// outside the window land in none.
func ComputeWeeklyActivity(workoutDays []models.WorkoutDay, reference time.Time) []DayActivity {
	loc := reference.Location()

	buckets := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i)
		year, month, date := day.Date()
		start := time.Date(year, month, date, 0, 0, 0, 0, loc)
		buckets = append(buckets, DayActivity{Day: start.Format("Mon"), Date: start})
	}

	for _, day := range workoutDays {
		for _, workoutExercise := range day.Exercises {
			for _, entry := range workoutExercise.Logs {
				year, month, date := entry.Date.In(loc).Date()
				for i := range buckets {
					bYear, bMonth, bDate := buckets[i].Date.Date()
					if year == bYear && month == bMonth && date == bDate {
						buckets[i].Count++
						break
					}
				}
			}
		}
	}

	return buckets
}

// ComputeTopExercises ranks exercises by association count, descending,
// truncated to limit (5 when limit is not positive). Equal counts keep
// first-seen order. Orphaned associations are skipped.
func ComputeTopExercises(workoutDays []models.WorkoutDay, exercises []models.Exercise, limit int) []ExerciseCount {
	if limit <= 0 {
		limit = 5
	}

	byID := exercisesByID(exercises)
	counts := make(map[string]int)
	var nameOrder []string

	for _, day := range workoutDays {
		for _, workoutExercise := range day.Exercises {
			exercise, ok := byID[workoutExercise.ExerciseID]
			if !ok {
				continue
			}
			if _, seen := counts[exercise.Name]; !seen {
				nameOrder = append(nameOrder, exercise.Name)
			}
			counts[exercise.Name]++
		}
	}

	ranked := make([]ExerciseCount, 0, len(nameOrder))
	for _, name := range nameOrder {
		ranked = append(ranked, ExerciseCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func exercisesByID(exercises []models.Exercise) map[string]models.Exercise {
	byID := make(map[string]models.Exercise, len(exercises))
	for _, exercise := range exercises {
		byID[exercise.ID] = exercise
	}
	return byID
}

type workoutSource interface {
	List() []models.WorkoutDay
}

type exerciseSource interface {
	List() []models.Exercise
}

// ProgressService reads fresh snapshots from the repositories and hands them
// to the pure aggregation functions above. Nothing is cached; every call
// recomputes from the full history.
type ProgressService struct {
	workouts  workoutSource
	exercises exerciseSource
}

func NewProgressService(workouts workoutSource, exercises exerciseSource) *ProgressService {
	return &ProgressService{workouts: workouts, exercises: exercises}
}

func (s *ProgressService) Summary() SummaryStats {
	return ComputeSummaryStats(s.workouts.List(), s.exercises.List())
}

func (s *ProgressService) WeeklyActivity(reference time.Time) []DayActivity {
	return ComputeWeeklyActivity(s.workouts.List(), reference)
}

func (s *ProgressService) TopExercises(limit int) []ExerciseCount {
	return ComputeTopExercises(s.workouts.List(), s.exercises.List(), limit)
}
