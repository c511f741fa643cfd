package models

import "time"

type ActivityType string

const (
	ActivityResumeUpload            ActivityType = "resume_upload"
	ActivityAssessmentCompleted     ActivityType = "assessment_completed"
	ActivityMentorSession           ActivityType = "mentor_session"
	ActivityMentorQuestion          ActivityType = "mentor_question"
	ActivityLearningPathGenerated   ActivityType = "learning_path_generated"
	ActivityModuleCompleted         ActivityType = "module_completed"
	ActivityLearningModuleCompleted ActivityType = "learning_module_completed"
	ActivityLearningSession         ActivityType = "learning_session"
	ActivitySkillCompleted          ActivityType = "skill_completed"
	ActivityHackathonApplied        ActivityType = "hackathon_applied"
	ActivityHackathonSubmitted      ActivityType = "hackathon_project_submitted"
	ActivityDailyTipRequested       ActivityType = "daily_tip_requested"
)

// ActivityEvent is one immutable record of a user action. Events are never
// mutated after they have been appended to the store.
type ActivityEvent struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Type      ActivityType `json:"activity_type"`
	Timestamp time.Time    `json:"timestamp"`
	Payload   Payload      `json:"details,omitempty"`
}

// Payload carries the type-specific data of an activity event. Known
// activity kinds get their own struct; anything else is stored as a
// GenericPayload so appending never fails on an unknown type.
type Payload interface {
	Kind() string
}

type ResumeUploadPayload struct {
	FileName string   `json:"file_name,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

func (ResumeUploadPayload) Kind() string { return "resume_upload" }

type AssessmentPayload struct {
	Skills           []string           `json:"skills,omitempty"`
	Scores           map[string]float64 `json:"scores,omitempty"`
	AverageScore     float64            `json:"average_score,omitempty"`
	TimeTakenSeconds int                `json:"time_taken,omitempty"` // seconds
}

func (AssessmentPayload) Kind() string { return "assessment" }

type MentorSessionPayload struct {
	Topic     string `json:"topic,omitempty"`
	Questions int    `json:"questions,omitempty"`
}

func (MentorSessionPayload) Kind() string { return "mentor_session" }

type PathGeneratedPayload struct {
	PathID  string       `json:"path_id"`
	Skills  []string     `json:"skills,omitempty"`
	Goals   []string     `json:"goals,omitempty"`
	Modules []PathModule `json:"modules,omitempty"`
}

func (PathGeneratedPayload) Kind() string { return "path_generated" }

type ModuleCompletedPayload struct {
	ModuleID             string  `json:"module_id"`
	Skill                string  `json:"skill,omitempty"`
	CompletionPercentage float64 `json:"completion_percentage,omitempty"`
	TimeSpentMinutes     int     `json:"time_spent,omitempty"` // minutes
	Feedback             string  `json:"feedback,omitempty"`
}

func (ModuleCompletedPayload) Kind() string { return "module_completed" }

type LearningSessionPayload struct {
	ModuleID        string `json:"module_id,omitempty"`
	DurationMinutes int    `json:"duration,omitempty"` // minutes
}

func (LearningSessionPayload) Kind() string { return "learning_session" }

type HackathonPayload struct {
	HackathonID string `json:"hackathon_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	RepoURL     string `json:"repo_url,omitempty"`
}

func (HackathonPayload) Kind() string { return "hackathon" }

// GenericPayload is the open variant for activity types the platform does
// not know about yet.
type GenericPayload map[string]interface{}

func (GenericPayload) Kind() string { return "generic" }
