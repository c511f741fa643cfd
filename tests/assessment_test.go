package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func submitAssessment(token string, scores map[string]float64) {
	skills := make([]string, 0, len(scores))
	for skill := range scores {
		skills = append(skills, skill)
	}
	jsonData, _ := json.Marshal(map[string]interface{}{
		"skills": skills,
		"scores": scores,
	})

	req := httptest.NewRequest("POST", "/api/assessment/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	app.Test(req)
}

func TestSubmitAssessment(t *testing.T) {
	token := newUserToken()

	jsonData, _ := json.Marshal(map[string]interface{}{
		"skills": []string{"python", "css"},
		"scores": map[string]float64{"python": 9.0, "css": 3.0},
	})

	req := httptest.NewRequest("POST", "/api/assessment/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	data := result["data"].(map[string]interface{})
	analysis := data["analysis"].(map[string]interface{})
	assert.Equal(t, []interface{}{"python"}, analysis["strong_skills"])
	assert.Equal(t, []interface{}{"css"}, analysis["weak_skills"])
	assert.Equal(t, 6.0, analysis["overall_metrics"].(map[string]interface{})["average_score"])
	assert.NotEmpty(t, data["narrative"])
	assert.NotEmpty(t, data["activity"].(map[string]interface{})["id"])
}

func TestAnalyzeSkills(t *testing.T) {
	token := newUserToken()

	jsonData, _ := json.Marshal(map[string]interface{}{
		"scores": map[string]float64{"go": 8.0, "sql": 6.0, "html": 5.9},
	})

	req := httptest.NewRequest("POST", "/api/assessment/analyze", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	analysis := result["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"go"}, analysis["strong_skills"])
	assert.Equal(t, []interface{}{"sql"}, analysis["medium_skills"])
	assert.Equal(t, []interface{}{"html"}, analysis["weak_skills"])
}

func TestAssessmentHistory(t *testing.T) {
	token := newUserToken()
	submitAssessment(token, map[string]float64{"python": 5.0})
	submitAssessment(token, map[string]float64{"python": 7.0})

	req := httptest.NewRequest("GET", "/api/assessment/history", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, 2, int(data["total_assessments"].(float64)))
	assert.Len(t, data["history"].([]interface{}), 2)
}

func TestSkillProgress(t *testing.T) {
	token := newUserToken()

	// One assessment is not enough to compare
	req := httptest.NewRequest("GET", "/api/assessment/progress", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	submitAssessment(token, map[string]float64{"python": 5.0})
	submitAssessment(token, map[string]float64{"python": 8.0})

	req = httptest.NewRequest("GET", "/api/assessment/progress", nil)
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	delta := result["data"].(map[string]interface{})
	python := delta["progress_data"].(map[string]interface{})["python"].(map[string]interface{})
	assert.Equal(t, 3.0, python["improvement"])
	assert.Equal(t, 60.0, python["improvement_percentage"])

	summary := delta["summary"].(map[string]interface{})
	assert.Equal(t, []interface{}{"python"}, summary["improved_skills"])
}
