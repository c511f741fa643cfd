package pathprogress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mavericks/backend/models"
)

var progressTestBase = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func pathEvent(pathID string, modules ...models.PathModule) models.ActivityEvent {
	return models.ActivityEvent{
		ID:        "path-event",
		UserID:    "user1",
		Type:      models.ActivityLearningPathGenerated,
		Timestamp: progressTestBase,
		Payload:   models.PathGeneratedPayload{PathID: pathID, Modules: modules},
	}
}

func completionEvent(moduleID string, minutes int) models.ActivityEvent {
	return models.ActivityEvent{
		ID:        "completion-event",
		UserID:    "user1",
		Type:      models.ActivityModuleCompleted,
		Timestamp: progressTestBase.Add(time.Hour),
		Payload:   models.ModuleCompletedPayload{ModuleID: moduleID, TimeSpentMinutes: minutes},
	}
}

func module(id string, estimatedMinutes int) models.PathModule {
	return models.PathModule{ModuleID: id, Skill: "go", EstimatedMinutes: estimatedMinutes}
}

func TestProgressNoPath(t *testing.T) {
	_, ok := Progress(nil)
	assert.False(t, ok)

	_, ok = Progress([]models.ActivityEvent{completionEvent("m1", 30)})
	assert.False(t, ok)
}

func TestProgressCountsCompletions(t *testing.T) {
	events := []models.ActivityEvent{
		pathEvent("path-1", module("m1", 120), module("m2", 120), module("m3", 120), module("m4", 120)),
		completionEvent("m1", 60),
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, "path-1", progress.PathID)
	assert.Equal(t, 4, progress.TotalModules)
	assert.Equal(t, 1, progress.CompletedModules)
	assert.Equal(t, 25.0, progress.ProgressPercentage)
	// Average pace is 60 minutes per module, 3 remain.
	assert.Equal(t, "3 hours", progress.EstimatedCompletion)
}

func TestProgressEstimateFallsBackToModuleEstimates(t *testing.T) {
	events := []models.ActivityEvent{
		pathEvent("path-1", module("m1", 120), module("m2", 180), module("m3", 240)),
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, 0, progress.CompletedModules)
	assert.Equal(t, 0.0, progress.ProgressPercentage)
	assert.Equal(t, "9 hours", progress.EstimatedCompletion)
}

func TestProgressCompleted(t *testing.T) {
	events := []models.ActivityEvent{
		pathEvent("path-1", module("m1", 120), module("m2", 120)),
		completionEvent("m1", 50),
		completionEvent("m2", 70),
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, 100.0, progress.ProgressPercentage)
	assert.Equal(t, "Completed", progress.EstimatedCompletion)
}

func TestProgressIgnoresForeignAndEarlierCompletions(t *testing.T) {
	earlier := completionEvent("m1", 60)
	earlier.Timestamp = progressTestBase.Add(-time.Hour)

	events := []models.ActivityEvent{
		earlier, // logged before the path existed
		pathEvent("path-1", module("m1", 120), module("m2", 120)),
		completionEvent("other_module", 60), // not part of the path
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, 0, progress.CompletedModules)
}

func TestProgressLatestPathWins(t *testing.T) {
	events := []models.ActivityEvent{
		pathEvent("path-old", module("m1", 120)),
		completionEvent("m1", 60),
		pathEvent("path-new", module("m2", 120), module("m3", 120)),
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, "path-new", progress.PathID)
	assert.Equal(t, 2, progress.TotalModules)
	assert.Equal(t, 0, progress.CompletedModules)
}

func TestProgressDuplicateCompletionCountsOnce(t *testing.T) {
	events := []models.ActivityEvent{
		pathEvent("path-1", module("m1", 120), module("m2", 120)),
		completionEvent("m1", 30),
		completionEvent("m1", 40),
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, 1, progress.CompletedModules)
	assert.Equal(t, 50.0, progress.ProgressPercentage)
}

func TestProgressNoEstimateData(t *testing.T) {
	events := []models.ActivityEvent{
		pathEvent("path-1", module("m1", 0), module("m2", 0)),
	}

	progress, ok := Progress(events)
	assert.True(t, ok)
	assert.Equal(t, models.NoData, progress.EstimatedCompletion)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 minutes", FormatDuration(45))
	assert.Equal(t, "1 hours", FormatDuration(60))
	assert.Equal(t, "3 hours", FormatDuration(180))
	assert.Equal(t, "23 hours", FormatDuration(1439))
	assert.Equal(t, "1 days", FormatDuration(1440))
	assert.Equal(t, "2 days", FormatDuration(3000))
}
