package models

import "time"

// UserProfile is the denormalized per-user summary maintained by the
// tracker. It is a cache over the activity log: replaying the user's
// events always reproduces it.
type UserProfile struct {
	UserID              string               `json:"user_id"`
	FirstSeen           time.Time            `json:"first_seen"`
	LastActivity        time.Time            `json:"last_activity"`
	TotalActivities     int                  `json:"total_activities"`
	ActivityBreakdown   map[ActivityType]int `json:"activity_breakdown"`
	SkillsSeen          []string             `json:"skills_assessed"` // sorted
	MentorSessions      int                  `json:"mentor_sessions_count"`
	ModulesCompleted    int                  `json:"learning_modules_completed"`
	CurrentLearningPath string               `json:"current_learning_path,omitempty"`
	RecentActivities    []ActivityEvent      `json:"recent_activities,omitempty"`
}

// AssessmentRecord is one entry of a user's assessment history.
type AssessmentRecord struct {
	ActivityID string             `json:"activity_id"`
	Timestamp  time.Time          `json:"timestamp"`
	Skills     []string           `json:"skills"`
	Scores     map[string]float64 `json:"scores"`
}
