// Package pathprogress measures a user against their most recently
// generated learning path using nothing but the activity log.
package pathprogress

import (
	"fmt"

	"mavericks/backend/models"
)

const minutesPerHour, minutesPerDay = 60, 1440

// Progress finds the latest learning_path_generated event in the user's
// events (insertion order) and counts module_completed events for its
// modules logged after the path was generated. The second return value is
// false when the user has never generated a path.
func Progress(events []models.ActivityEvent) (models.PathProgress, bool) {
	pathIdx := -1
	var path models.PathGeneratedPayload
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != models.ActivityLearningPathGenerated {
			continue
		}
		if p, ok := events[i].Payload.(models.PathGeneratedPayload); ok {
			pathIdx, path = i, p
			break
		}
	}
	if pathIdx < 0 {
		return models.PathProgress{}, false
	}

	moduleIDs := make(map[string]struct{}, len(path.Modules))
	for _, module := range path.Modules {
		moduleIDs[module.ModuleID] = struct{}{}
	}

	completed := make(map[string]struct{})
	var spentMinutes float64
	var timedCompletions int
	for _, event := range events[pathIdx+1:] {
		if event.Type != models.ActivityModuleCompleted {
			continue
		}
		p, ok := event.Payload.(models.ModuleCompletedPayload)
		if !ok {
			continue
		}
		if _, inPath := moduleIDs[p.ModuleID]; !inPath {
			continue
		}
		completed[p.ModuleID] = struct{}{}
		if p.TimeSpentMinutes > 0 {
			spentMinutes += float64(p.TimeSpentMinutes)
			timedCompletions++
		}
	}

	progress := models.PathProgress{
		PathID:           path.PathID,
		TotalModules:     len(path.Modules),
		CompletedModules: len(completed),
	}
	if progress.TotalModules > 0 {
		progress.ProgressPercentage = float64(progress.CompletedModules) / float64(progress.TotalModules) * 100
	}
	progress.EstimatedCompletion = estimateCompletion(path.Modules, completed, spentMinutes, timedCompletions)
	return progress, true
}

// estimateCompletion multiplies the average observed minutes per completed
// module by the remaining count. With no timed completions yet it falls
// back to the modules' own estimates.
func estimateCompletion(modules []models.PathModule, completed map[string]struct{}, spentMinutes float64, timedCompletions int) string {
	var remaining []models.PathModule
	for _, module := range modules {
		if _, done := completed[module.ModuleID]; !done {
			remaining = append(remaining, module)
		}
	}
	if len(remaining) == 0 {
		return "Completed"
	}

	var minutes float64
	if timedCompletions > 0 {
		minutes = spentMinutes / float64(timedCompletions) * float64(len(remaining))
	} else {
		for _, module := range remaining {
			minutes += float64(module.EstimatedMinutes)
		}
	}
	if minutes <= 0 {
		return models.NoData
	}
	return FormatDuration(minutes)
}

// FormatDuration renders minutes into the minutes/hours/days bands used
// across the platform.
func FormatDuration(minutes float64) string {
	switch {
	case minutes < minutesPerHour:
		return fmt.Sprintf("%d minutes", int(minutes))
	case minutes < minutesPerDay:
		return fmt.Sprintf("%d hours", int(minutes/minutesPerHour))
	default:
		return fmt.Sprintf("%d days", int(minutes/minutesPerDay))
	}
}
