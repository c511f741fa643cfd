package models

import "time"

// PathModule is one step of a generated learning path.
type PathModule struct {
	ModuleID         string   `json:"module_id"`
	Skill            string   `json:"skill"`
	Title            string   `json:"title"`
	Priority         string   `json:"priority"` // high, medium, low
	EstimatedMinutes int      `json:"estimated_minutes"`
	Objectives       []string `json:"learning_objectives,omitempty"`
	Resources        []string `json:"resources,omitempty"`
}

// LearningPath is produced by the recommendation generator and tracked
// here only through completion events referencing its module IDs.
type LearningPath struct {
	PathID      string       `json:"path_id"`
	UserID      string       `json:"user_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Skills      []string     `json:"skills"`
	Goals       []string     `json:"goals,omitempty"`
	Modules     []PathModule `json:"modules"`
}

// PathProgress measures a user against their most recent learning path.
type PathProgress struct {
	PathID              string  `json:"path_id"`
	TotalModules        int     `json:"total_modules"`
	CompletedModules    int     `json:"completed_modules"`
	ProgressPercentage  float64 `json:"progress_percentage"`
	EstimatedCompletion string  `json:"estimated_completion"`
}
