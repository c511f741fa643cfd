// Package mentor provides deterministic substitutes for the external AI
// collaborator. Failures at that boundary must never crash the core, so
// every generator here works from fixed templates and always succeeds.
package mentor

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"mavericks/backend/models"
)

var moduleTemplates = []struct {
	title    string
	minutes  int
	resource string
}{
	{"%s Fundamentals", 120, "Official %s documentation"},
	{"%s in Practice", 180, "Guided %s exercises"},
	{"%s Project Work", 240, "Build and review a small %s project"},
}

var dailyTips = map[string]string{
	"python":     "Write a small script today: automating one chore teaches more than an hour of reading.",
	"javascript": "Open the browser console and step through one of your own functions.",
	"react":      "Rebuild one class component as a function component with hooks.",
	"sql":        "Take a query you use often and read its execution plan.",
	"go":         "Run your tests with the race detector enabled and read what it finds.",
}

const defaultDailyTip = "Spend 25 focused minutes on the weakest skill from your last assessment."

// GenerateLearningPath builds a path from the user's weak and medium
// skills: weak skills first at high priority, then medium at medium
// priority, three templated modules per skill.
func GenerateLearningPath(userID string, weakSkills, mediumSkills []string, generatedAt time.Time) models.LearningPath {
	weak := sortedCopy(weakSkills)
	medium := sortedCopy(mediumSkills)

	path := models.LearningPath{
		PathID:      uuid.NewString(),
		UserID:      userID,
		GeneratedAt: generatedAt.UTC(),
		Skills:      append(append([]string{}, weak...), medium...),
	}
	for _, skill := range weak {
		path.Modules = append(path.Modules, skillModules(skill, "high")...)
	}
	for _, skill := range medium {
		path.Modules = append(path.Modules, skillModules(skill, "medium")...)
	}
	return path
}

func skillModules(skill, priority string) []models.PathModule {
	modules := make([]models.PathModule, 0, len(moduleTemplates))
	for i, tmpl := range moduleTemplates {
		modules = append(modules, models.PathModule{
			ModuleID:         fmt.Sprintf("%s_%d", skill, i),
			Skill:            skill,
			Title:            fmt.Sprintf(tmpl.title, skill),
			Priority:         priority,
			EstimatedMinutes: tmpl.minutes,
			Objectives: []string{
				fmt.Sprintf("Master %s fundamentals", skill),
				fmt.Sprintf("Apply %s in practical scenarios", skill),
			},
			Resources: []string{fmt.Sprintf(tmpl.resource, skill)},
		})
	}
	return modules
}

// DailyTip picks a tip for the user's first known skill (sorted, so the
// same skills always give the same tip).
func DailyTip(skills []string) string {
	for _, skill := range sortedCopy(skills) {
		if tip, ok := dailyTips[skill]; ok {
			return tip
		}
	}
	return defaultDailyTip
}

// SkillNarrative renders a plain-text reading of a classification, used
// where the AI-written analysis would normally go.
func SkillNarrative(classification models.SkillClassification) map[string]string {
	narrative := map[string]string{
		"strength_analysis": "No strong skills identified yet; keep assessing.",
		"improvement_areas": "Focus on skills with scores below 6.0.",
	}
	if len(classification.StrongSkills) > 0 {
		narrative["strength_analysis"] = fmt.Sprintf(
			"Strong in %v; look for projects that exercise these.", classification.StrongSkills)
	}
	if len(classification.WeakSkills) > 0 {
		narrative["improvement_areas"] = fmt.Sprintf(
			"Prioritize %v; structured practice will move these fastest.", classification.WeakSkills)
	}
	return narrative
}

func sortedCopy(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
