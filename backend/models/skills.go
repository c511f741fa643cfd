package models

// Band thresholds: a score of exactly 8.0 is strong, exactly 6.0 is medium.
const (
	StrongSkillThreshold = 8.0
	MediumSkillThreshold = 6.0
)

// NoAssessmentData is returned in place of an analysis when the score map
// is empty.
const NoAssessmentData = "No assessment data available"

type ScoreBreakdown struct {
	Strong map[string]float64 `json:"strong"`
	Medium map[string]float64 `json:"medium"`
	Weak   map[string]float64 `json:"weak"`
}

type OverallMetrics struct {
	AverageScore        float64 `json:"average_score"`
	TotalSkillsAssessed int     `json:"total_skills_assessed"`
	StrongSkillsCount   int     `json:"strong_skills_count"`
	MediumSkillsCount   int     `json:"medium_skills_count"`
	WeakSkillsCount     int     `json:"weak_skills_count"`
}

// SkillClassification partitions assessed skills into strong/medium/weak
// bands. Band slices are sorted by skill name so the same scores always
// produce the same output.
type SkillClassification struct {
	StrongSkills    []string       `json:"strong_skills"`
	MediumSkills    []string       `json:"medium_skills"`
	WeakSkills      []string       `json:"weak_skills"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
	OverallMetrics  OverallMetrics `json:"overall_metrics"`
	OverallAnalysis string         `json:"overall_analysis,omitempty"`
}

type SkillProgressEntry struct {
	InitialScore          float64 `json:"initial_score"`
	CurrentScore          float64 `json:"current_score"`
	Improvement           float64 `json:"improvement"`
	ImprovementPercentage float64 `json:"improvement_percentage"`
}

type ProgressSummary struct {
	TotalSkillsTracked  int      `json:"total_skills_tracked"`
	AverageImprovement  float64  `json:"average_improvement"`
	ImprovedSkillsCount int      `json:"improved_skills_count"`
	DeclinedSkillsCount int      `json:"declined_skills_count"`
	ImprovedSkills      []string `json:"improved_skills"`
	DeclinedSkills      []string `json:"declined_skills"`
}

// ProgressDelta compares two assessments of the same user.
type ProgressDelta struct {
	UserID   string                        `json:"user_id"`
	Progress map[string]SkillProgressEntry `json:"progress_data"`
	Summary  ProgressSummary               `json:"summary"`
}
