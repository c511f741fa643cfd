// Package analyzer classifies assessment scores into skill bands and
// tracks progress between assessments. Everything here is a pure function
// of its inputs.
package analyzer

import (
	"errors"
	"math"
	"sort"

	"mavericks/backend/models"
)

var ErrInsufficientData = errors.New("insufficient data for progress tracking")

// AnalyzeSkillStrengths partitions scores into strong (>= 8.0), medium
// (>= 6.0) and weak (< 6.0) bands. Boundary scores belong to the higher
// band. An empty map yields empty bands and the no-data sentinel, never an
// error.
func AnalyzeSkillStrengths(scores map[string]float64) models.SkillClassification {
	classification := models.SkillClassification{
		StrongSkills: []string{},
		MediumSkills: []string{},
		WeakSkills:   []string{},
		ScoreBreakdown: models.ScoreBreakdown{
			Strong: map[string]float64{},
			Medium: map[string]float64{},
			Weak:   map[string]float64{},
		},
	}

	if len(scores) == 0 {
		classification.OverallAnalysis = models.NoAssessmentData
		return classification
	}

	var total float64
	for skill, score := range scores {
		total += score
		switch {
		case score >= models.StrongSkillThreshold:
			classification.StrongSkills = append(classification.StrongSkills, skill)
			classification.ScoreBreakdown.Strong[skill] = score
		case score >= models.MediumSkillThreshold:
			classification.MediumSkills = append(classification.MediumSkills, skill)
			classification.ScoreBreakdown.Medium[skill] = score
		default:
			classification.WeakSkills = append(classification.WeakSkills, skill)
			classification.ScoreBreakdown.Weak[skill] = score
		}
	}

	// Map iteration order must not leak into the output.
	sort.Strings(classification.StrongSkills)
	sort.Strings(classification.MediumSkills)
	sort.Strings(classification.WeakSkills)

	classification.OverallMetrics = models.OverallMetrics{
		AverageScore:        round2(total / float64(len(scores))),
		TotalSkillsAssessed: len(scores),
		StrongSkillsCount:   len(classification.StrongSkills),
		MediumSkillsCount:   len(classification.MediumSkills),
		WeakSkillsCount:     len(classification.WeakSkills),
	}
	return classification
}

// TrackSkillProgress compares two assessments over the union of their
// skills. A missing score on either side counts as 0.
func TrackSkillProgress(userID string, initial, current map[string]float64) (models.ProgressDelta, error) {
	if len(initial) == 0 || len(current) == 0 {
		return models.ProgressDelta{}, ErrInsufficientData
	}

	skills := make(map[string]struct{}, len(initial)+len(current))
	for skill := range initial {
		skills[skill] = struct{}{}
	}
	for skill := range current {
		skills[skill] = struct{}{}
	}

	delta := models.ProgressDelta{
		UserID:   userID,
		Progress: make(map[string]models.SkillProgressEntry, len(skills)),
	}

	var totalImprovement float64
	for skill := range skills {
		initialScore := initial[skill]
		currentScore := current[skill]
		improvement := currentScore - initialScore

		delta.Progress[skill] = models.SkillProgressEntry{
			InitialScore:          initialScore,
			CurrentScore:          currentScore,
			Improvement:           improvement,
			ImprovementPercentage: round2(improvement / math.Max(initialScore, 1) * 100),
		}
		totalImprovement += improvement

		if improvement > 0 {
			delta.Summary.ImprovedSkills = append(delta.Summary.ImprovedSkills, skill)
		} else if improvement < 0 {
			delta.Summary.DeclinedSkills = append(delta.Summary.DeclinedSkills, skill)
		}
	}

	sort.Strings(delta.Summary.ImprovedSkills)
	sort.Strings(delta.Summary.DeclinedSkills)

	delta.Summary.TotalSkillsTracked = len(delta.Progress)
	delta.Summary.AverageImprovement = round2(totalImprovement / float64(len(delta.Progress)))
	delta.Summary.ImprovedSkillsCount = len(delta.Summary.ImprovedSkills)
	delta.Summary.DeclinedSkillsCount = len(delta.Summary.DeclinedSkills)
	return delta, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
