// Package engagement derives usage-depth metrics from a user's event
// slice: weighted engagement scores, consecutive-day streaks, time spent
// and completion rates. All functions are read-only scans.
package engagement

import (
	"time"

	"mavericks/backend/models"
)

// Per-type engagement weights. Unlisted types score 1.
var activityWeights = map[models.ActivityType]float64{
	models.ActivityResumeUpload:          10,
	models.ActivityAssessmentCompleted:   15,
	models.ActivityMentorQuestion:        5,
	models.ActivityLearningPathGenerated: 8,
	models.ActivityHackathonApplied:      12,
	models.ActivityHackathonSubmitted:    20,
	models.ActivityDailyTipRequested:     2,
}

// Activity types that count as completions for the completion rate.
var completedTypes = map[models.ActivityType]struct{}{
	models.ActivityAssessmentCompleted:     {},
	models.ActivityLearningPathGenerated:   {},
	models.ActivityModuleCompleted:         {},
	models.ActivityLearningModuleCompleted: {},
	models.ActivitySkillCompleted:          {},
	models.ActivityHackathonSubmitted:      {},
}

type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt fixes the engine's clock; used by tests and backfills.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Score sums the per-type weights over all events. No decay, no cap, so
// it never decreases as events are appended.
func (e *Engine) Score(events []models.ActivityEvent) float64 {
	var score float64
	for _, event := range events {
		if weight, ok := activityWeights[event.Type]; ok {
			score += weight
		} else {
			score += 1
		}
	}
	return score
}

// Streak counts consecutive UTC calendar days with at least one event,
// walking backward from today. A user who has not been active today keeps
// the streak if they were active yesterday; any earlier gap breaks it.
func (e *Engine) Streak(events []models.ActivityEvent) int {
	if len(events) == 0 {
		return 0
	}

	active := make(map[string]bool, len(events))
	for _, event := range events {
		active[event.Timestamp.UTC().Format("2006-01-02")] = true
	}

	day := e.now().UTC()
	if !active[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
		if !active[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for active[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// TimeSpentMinutes sums the duration fields events carry: time_taken
// (seconds) on assessments, duration (minutes) on learning sessions and
// time_spent (minutes) on module completions. Events without a duration
// contribute zero.
func (e *Engine) TimeSpentMinutes(events []models.ActivityEvent) float64 {
	var minutes float64
	for _, event := range events {
		switch p := event.Payload.(type) {
		case models.AssessmentPayload:
			minutes += float64(p.TimeTakenSeconds) / 60
		case models.LearningSessionPayload:
			minutes += float64(p.DurationMinutes)
		case models.ModuleCompletedPayload:
			minutes += float64(p.TimeSpentMinutes)
		}
	}
	return minutes
}

// CompletionRate is the share of events whose type is in the completed
// whitelist, as a percentage. An empty slice yields 0, not an error.
func (e *Engine) CompletionRate(events []models.ActivityEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	completed := 0
	for _, event := range events {
		if _, ok := completedTypes[event.Type]; ok {
			completed++
		}
	}
	return float64(completed) / float64(len(events)) * 100
}

// ActiveWithin reports whether any event is strictly newer than
// now - window.
func (e *Engine) ActiveWithin(events []models.ActivityEvent, window time.Duration) bool {
	cutoff := e.now().UTC().Add(-window)
	for _, event := range events {
		if event.Timestamp.After(cutoff) {
			return true
		}
	}
	return false
}

func (e *Engine) IsActive24h(events []models.ActivityEvent) bool {
	return e.ActiveWithin(events, 24*time.Hour)
}

func (e *Engine) IsActive7d(events []models.ActivityEvent) bool {
	return e.ActiveWithin(events, 7*24*time.Hour)
}
