package engagement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mavericks/backend/models"
)

var testNow = time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)

func fixedEngine() *Engine {
	return NewEngineAt(func() time.Time { return testNow })
}

func eventAt(ts time.Time, activityType models.ActivityType, payload models.Payload) models.ActivityEvent {
	return models.ActivityEvent{
		ID:        "event",
		UserID:    "user1",
		Type:      activityType,
		Timestamp: ts,
		Payload:   payload,
	}
}

func TestScoreWeights(t *testing.T) {
	engine := fixedEngine()

	events := []models.ActivityEvent{
		eventAt(testNow, models.ActivityResumeUpload, nil),        // 10
		eventAt(testNow, models.ActivityAssessmentCompleted, nil), // 15
		eventAt(testNow, models.ActivityHackathonSubmitted, nil),  // 20
		eventAt(testNow, "something_unknown", nil),                // 1
	}

	assert.Equal(t, 46.0, engine.Score(events))
	assert.Equal(t, 0.0, engine.Score(nil))
}

func TestScoreNeverDecreases(t *testing.T) {
	engine := fixedEngine()

	var events []models.ActivityEvent
	previous := 0.0
	for _, activityType := range []models.ActivityType{
		models.ActivityDailyTipRequested,
		models.ActivityMentorQuestion,
		models.ActivityMentorSession,
		models.ActivityResumeUpload,
	} {
		events = append(events, eventAt(testNow, activityType, nil))
		score := engine.Score(events)
		assert.Greater(t, score, previous)
		previous = score
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	engine := fixedEngine()

	events := []models.ActivityEvent{
		eventAt(testNow.AddDate(0, 0, -2), models.ActivityResumeUpload, nil),
		eventAt(testNow.AddDate(0, 0, -1), models.ActivityMentorQuestion, nil),
		eventAt(testNow, models.ActivityAssessmentCompleted, nil),
	}

	assert.Equal(t, 3, engine.Streak(events))
}

func TestStreakStartsYesterday(t *testing.T) {
	engine := fixedEngine()

	// Not active today yet; the streak survives until tomorrow.
	events := []models.ActivityEvent{
		eventAt(testNow.AddDate(0, 0, -2), models.ActivityResumeUpload, nil),
		eventAt(testNow.AddDate(0, 0, -1), models.ActivityResumeUpload, nil),
	}

	assert.Equal(t, 2, engine.Streak(events))
}

func TestStreakBrokenByGap(t *testing.T) {
	engine := fixedEngine()

	events := []models.ActivityEvent{
		eventAt(testNow.AddDate(0, 0, -3), models.ActivityResumeUpload, nil),
		eventAt(testNow, models.ActivityResumeUpload, nil),
	}

	// The gap at yesterday cuts the streak to today alone.
	assert.Equal(t, 1, engine.Streak(events))
}

func TestStreakZeroWhenStale(t *testing.T) {
	engine := fixedEngine()

	events := []models.ActivityEvent{
		eventAt(testNow.AddDate(0, 0, -2), models.ActivityResumeUpload, nil),
	}

	assert.Equal(t, 0, engine.Streak(events))
	assert.Equal(t, 0, engine.Streak(nil))
}

func TestTimeSpentMinutes(t *testing.T) {
	engine := fixedEngine()

	events := []models.ActivityEvent{
		eventAt(testNow, models.ActivityAssessmentCompleted, models.AssessmentPayload{TimeTakenSeconds: 300}), // 5 minutes
		eventAt(testNow, models.ActivityLearningSession, models.LearningSessionPayload{DurationMinutes: 30}),
		eventAt(testNow, models.ActivityModuleCompleted, models.ModuleCompletedPayload{ModuleID: "m1", TimeSpentMinutes: 20}),
		eventAt(testNow, models.ActivityResumeUpload, nil), // no duration
	}

	assert.Equal(t, 55.0, engine.TimeSpentMinutes(events))
}

func TestCompletionRate(t *testing.T) {
	engine := fixedEngine()

	events := []models.ActivityEvent{
		eventAt(testNow, models.ActivityAssessmentCompleted, nil),
		eventAt(testNow, models.ActivityModuleCompleted, nil),
		eventAt(testNow, models.ActivityResumeUpload, nil),
		eventAt(testNow, models.ActivityMentorQuestion, nil),
	}

	assert.Equal(t, 50.0, engine.CompletionRate(events))
	assert.Equal(t, 0.0, engine.CompletionRate(nil))
}

func TestActiveWithinStrictCutoff(t *testing.T) {
	engine := fixedEngine()

	atCutoff := []models.ActivityEvent{
		eventAt(testNow.Add(-24*time.Hour), models.ActivityResumeUpload, nil),
	}
	inside := []models.ActivityEvent{
		eventAt(testNow.Add(-23*time.Hour), models.ActivityResumeUpload, nil),
	}

	// An event exactly at the cutoff is outside the window.
	assert.False(t, engine.IsActive24h(atCutoff))
	assert.True(t, engine.IsActive24h(inside))

	assert.True(t, engine.IsActive7d(atCutoff))
	assert.False(t, engine.IsActive7d([]models.ActivityEvent{
		eventAt(testNow.Add(-8*24*time.Hour), models.ActivityResumeUpload, nil),
	}))
}
