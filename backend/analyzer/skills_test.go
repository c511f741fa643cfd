package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mavericks/backend/models"
)

func TestAnalyzeSkillStrengths(t *testing.T) {
	scores := map[string]float64{"python": 9.0, "sql": 6.5, "css": 3.0}
	result := AnalyzeSkillStrengths(scores)

	assert.Equal(t, []string{"python"}, result.StrongSkills)
	assert.Equal(t, []string{"sql"}, result.MediumSkills)
	assert.Equal(t, []string{"css"}, result.WeakSkills)
	assert.Equal(t, 6.17, result.OverallMetrics.AverageScore)
	assert.Equal(t, 3, result.OverallMetrics.TotalSkillsAssessed)
	assert.Equal(t, 1, result.OverallMetrics.StrongSkillsCount)
	assert.Equal(t, 1, result.OverallMetrics.MediumSkillsCount)
	assert.Equal(t, 1, result.OverallMetrics.WeakSkillsCount)
	assert.Equal(t, 9.0, result.ScoreBreakdown.Strong["python"])
	assert.Equal(t, 6.5, result.ScoreBreakdown.Medium["sql"])
	assert.Equal(t, 3.0, result.ScoreBreakdown.Weak["css"])
	assert.Empty(t, result.OverallAnalysis)
}

func TestAnalyzeSkillStrengthsBoundaries(t *testing.T) {
	result := AnalyzeSkillStrengths(map[string]float64{
		"a": 8.0,
		"b": 7.999,
		"c": 6.0,
		"d": 5.999,
	})

	assert.Equal(t, []string{"a"}, result.StrongSkills)
	assert.Equal(t, []string{"b", "c"}, result.MediumSkills)
	assert.Equal(t, []string{"d"}, result.WeakSkills)
}

func TestAnalyzeSkillStrengthsPartition(t *testing.T) {
	scores := map[string]float64{
		"go": 10, "python": 8, "sql": 7.5, "react": 6, "css": 5.5, "html": 0,
	}
	result := AnalyzeSkillStrengths(scores)

	// Every skill lands in exactly one band.
	total := len(result.StrongSkills) + len(result.MediumSkills) + len(result.WeakSkills)
	assert.Equal(t, len(scores), total)

	seen := map[string]int{}
	for _, skill := range result.StrongSkills {
		seen[skill]++
	}
	for _, skill := range result.MediumSkills {
		seen[skill]++
	}
	for _, skill := range result.WeakSkills {
		seen[skill]++
	}
	for skill := range scores {
		assert.Equal(t, 1, seen[skill], skill)
	}
}

func TestAnalyzeSkillStrengthsDeterministic(t *testing.T) {
	scores := map[string]float64{"go": 9, "rust": 9, "zig": 9, "c": 9}

	first := AnalyzeSkillStrengths(scores)
	second := AnalyzeSkillStrengths(scores)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c", "go", "rust", "zig"}, first.StrongSkills)
}

func TestAnalyzeSkillStrengthsEmpty(t *testing.T) {
	result := AnalyzeSkillStrengths(nil)

	assert.Equal(t, models.NoAssessmentData, result.OverallAnalysis)
	assert.NotNil(t, result.StrongSkills)
	assert.Empty(t, result.StrongSkills)
	assert.Empty(t, result.MediumSkills)
	assert.Empty(t, result.WeakSkills)
	assert.Equal(t, 0, result.OverallMetrics.TotalSkillsAssessed)
}

func TestTrackSkillProgress(t *testing.T) {
	delta, err := TrackSkillProgress("user1",
		map[string]float64{"python": 5.0},
		map[string]float64{"python": 8.0},
	)

	assert.NoError(t, err)
	assert.Equal(t, "user1", delta.UserID)

	entry := delta.Progress["python"]
	assert.Equal(t, 5.0, entry.InitialScore)
	assert.Equal(t, 8.0, entry.CurrentScore)
	assert.Equal(t, 3.0, entry.Improvement)
	assert.Equal(t, 60.0, entry.ImprovementPercentage)

	assert.Equal(t, 1, delta.Summary.TotalSkillsTracked)
	assert.Equal(t, 3.0, delta.Summary.AverageImprovement)
	assert.Equal(t, []string{"python"}, delta.Summary.ImprovedSkills)
	assert.Empty(t, delta.Summary.DeclinedSkills)
}

func TestTrackSkillProgressUnionOfSkills(t *testing.T) {
	delta, err := TrackSkillProgress("user1",
		map[string]float64{"python": 6.0, "sql": 7.0},
		map[string]float64{"python": 4.0, "go": 5.0},
	)

	assert.NoError(t, err)
	assert.Len(t, delta.Progress, 3)

	// Missing scores count as zero on that side.
	assert.Equal(t, 0.0, delta.Progress["go"].InitialScore)
	assert.Equal(t, 500.0, delta.Progress["go"].ImprovementPercentage)
	assert.Equal(t, 0.0, delta.Progress["sql"].CurrentScore)
	assert.Equal(t, -100.0, delta.Progress["sql"].ImprovementPercentage)

	assert.Equal(t, []string{"go"}, delta.Summary.ImprovedSkills)
	assert.Equal(t, []string{"python", "sql"}, delta.Summary.DeclinedSkills)
	assert.Equal(t, 1, delta.Summary.ImprovedSkillsCount)
	assert.Equal(t, 2, delta.Summary.DeclinedSkillsCount)
}

func TestTrackSkillProgressLowInitialDenominator(t *testing.T) {
	delta, err := TrackSkillProgress("user1",
		map[string]float64{"html": 0.5},
		map[string]float64{"html": 2.0},
	)

	// Initial scores below 1 divide by 1, not by the score.
	assert.NoError(t, err)
	assert.Equal(t, 150.0, delta.Progress["html"].ImprovementPercentage)
}

func TestTrackSkillProgressInsufficientData(t *testing.T) {
	_, err := TrackSkillProgress("user1", nil, map[string]float64{"python": 8})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = TrackSkillProgress("user1", map[string]float64{"python": 5}, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
