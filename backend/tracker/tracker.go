// Package tracker owns the activity log and the per-user profile cache.
// Every append updates the profile synchronously, in the same per-user
// critical section, so a reader can never observe the log and the profile
// disagreeing.
package tracker

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mavericks/backend/models"
	"mavericks/backend/store"
)

var (
	ErrEmptyUserID     = errors.New("user id must not be empty")
	ErrProfileNotFound = errors.New("user profile not found")
)

const recentActivityCount = 10

type Tracker struct {
	store store.ActivityStore
	locks *userLocks

	mu          sync.RWMutex
	profiles    map[string]*models.UserProfile
	assessments map[string][]models.AssessmentRecord

	now func() time.Time
}

func New(s store.ActivityStore) *Tracker {
	return NewAt(s, time.Now)
}

// NewAt fixes the tracker's clock; used by tests and backfills.
func NewAt(s store.ActivityStore, now func() time.Time) *Tracker {
	return &Tracker{
		store:       s,
		locks:       newUserLocks(),
		profiles:    make(map[string]*models.UserProfile),
		assessments: make(map[string][]models.AssessmentRecord),
		now:         now,
	}
}

// LogActivity appends one event and updates the user's profile. The only
// validation is a non-empty user id; unknown activity types are accepted
// as-is.
func (t *Tracker) LogActivity(userID string, activityType models.ActivityType, payload models.Payload) (models.ActivityEvent, error) {
	if userID == "" {
		return models.ActivityEvent{}, ErrEmptyUserID
	}

	t.locks.lock(userID)
	defer t.locks.unlock(userID)

	event := models.ActivityEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      activityType,
		Timestamp: t.now().UTC(),
		Payload:   payload,
	}

	if err := t.store.Append(event); err != nil {
		return models.ActivityEvent{}, err
	}
	t.updateProfile(event)
	return event, nil
}

// LogAssessmentResult logs an assessment_completed event and records it in
// the user's assessment history for later progress tracking.
func (t *Tracker) LogAssessmentResult(userID string, skills []string, scores map[string]float64) (models.ActivityEvent, error) {
	var average float64
	if len(scores) > 0 {
		for _, score := range scores {
			average += score
		}
		average /= float64(len(scores))
	}

	event, err := t.LogActivity(userID, models.ActivityAssessmentCompleted, models.AssessmentPayload{
		Skills:       skills,
		Scores:       scores,
		AverageScore: average,
	})
	if err != nil {
		return models.ActivityEvent{}, err
	}

	t.mu.Lock()
	t.assessments[userID] = append(t.assessments[userID], models.AssessmentRecord{
		ActivityID: event.ID,
		Timestamp:  event.Timestamp,
		Skills:     skills,
		Scores:     scores,
	})
	t.mu.Unlock()

	return event, nil
}

// LogMentorSession logs a mentor_session event.
func (t *Tracker) LogMentorSession(userID string, payload models.MentorSessionPayload) (models.ActivityEvent, error) {
	return t.LogActivity(userID, models.ActivityMentorSession, payload)
}

// GetUserActivities returns up to limit of the user's events, most recent
// first. A non-positive limit returns everything.
func (t *Tracker) GetUserActivities(userID string, limit int) []models.ActivityEvent {
	events, err := t.store.UserEvents(userID)
	if err != nil {
		return nil
	}
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}

	// Newest first.
	reversed := make([]models.ActivityEvent, len(events))
	for i, event := range events {
		reversed[len(events)-1-i] = event
	}
	return reversed
}

// GetAllActivities returns up to limit events across all users, sorted by
// timestamp descending.
func (t *Tracker) GetAllActivities(limit int) []models.ActivityEvent {
	events, err := t.store.AllEvents()
	if err != nil {
		return nil
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}

// GetUserProfile returns a snapshot of the user's profile, including their
// ten most recent activities. The only error is an unknown user.
func (t *Tracker) GetUserProfile(userID string) (models.UserProfile, error) {
	t.mu.RLock()
	profile, ok := t.profiles[userID]
	if !ok {
		t.mu.RUnlock()
		return models.UserProfile{}, ErrProfileNotFound
	}
	snapshot := snapshotProfile(profile)
	t.mu.RUnlock()

	snapshot.RecentActivities = t.GetUserActivities(userID, recentActivityCount)
	return snapshot, nil
}

// ProfileSnapshots returns a copy of every user profile, sorted by user id.
func (t *Tracker) ProfileSnapshots() []models.UserProfile {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshots := make([]models.UserProfile, 0, len(t.profiles))
	for _, profile := range t.profiles {
		snapshots = append(snapshots, snapshotProfile(profile))
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].UserID < snapshots[j].UserID
	})
	return snapshots
}

// AssessmentHistory returns the user's assessments in submission order.
func (t *Tracker) AssessmentHistory(userID string) []models.AssessmentRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	history := make([]models.AssessmentRecord, len(t.assessments[userID]))
	copy(history, t.assessments[userID])
	return history
}

// updateProfile applies one event to the profile cache. It never fails:
// payloads with missing fields contribute nothing.
func (t *Tracker) updateProfile(event models.ActivityEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	profile, ok := t.profiles[event.UserID]
	if !ok {
		profile = &models.UserProfile{
			UserID:            event.UserID,
			FirstSeen:         event.Timestamp,
			ActivityBreakdown: make(map[models.ActivityType]int),
		}
		t.profiles[event.UserID] = profile
	}

	// Latest processed event wins, even if timestamps arrive out of order.
	profile.LastActivity = event.Timestamp
	profile.TotalActivities++
	profile.ActivityBreakdown[event.Type]++

	switch event.Type {
	case models.ActivityResumeUpload:
		if p, ok := event.Payload.(models.ResumeUploadPayload); ok {
			profile.SkillsSeen = mergeSkills(profile.SkillsSeen, p.Skills)
		}
	case models.ActivityAssessmentCompleted:
		if p, ok := event.Payload.(models.AssessmentPayload); ok {
			profile.SkillsSeen = mergeSkills(profile.SkillsSeen, p.Skills)
		}
	case models.ActivityMentorSession:
		profile.MentorSessions++
	case models.ActivityLearningModuleCompleted, models.ActivityModuleCompleted:
		profile.ModulesCompleted++
	case models.ActivityLearningPathGenerated:
		if p, ok := event.Payload.(models.PathGeneratedPayload); ok {
			profile.CurrentLearningPath = p.PathID
		}
	}
}

// mergeSkills unions new skills into the sorted seen-set; re-adding a
// skill is a no-op.
func mergeSkills(seen []string, skills []string) []string {
	if len(skills) == 0 {
		return seen
	}

	set := make(map[string]struct{}, len(seen)+len(skills))
	for _, skill := range seen {
		set[skill] = struct{}{}
	}
	for _, skill := range skills {
		if skill != "" {
			set[skill] = struct{}{}
		}
	}

	merged := make([]string, 0, len(set))
	for skill := range set {
		merged = append(merged, skill)
	}
	sort.Strings(merged)
	return merged
}

func snapshotProfile(profile *models.UserProfile) models.UserProfile {
	snapshot := *profile
	snapshot.ActivityBreakdown = make(map[models.ActivityType]int, len(profile.ActivityBreakdown))
	for activityType, count := range profile.ActivityBreakdown {
		snapshot.ActivityBreakdown[activityType] = count
	}
	snapshot.SkillsSeen = append([]string(nil), profile.SkillsSeen...)
	return snapshot
}
