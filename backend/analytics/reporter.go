// Package analytics builds the admin-facing reports. Everything here is a
// fresh aggregation over the activity log and the profile cache; nothing
// is memoized between requests.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"mavericks/backend/engagement"
	"mavericks/backend/models"
	"mavericks/backend/tracker"
)

const recentActivityLimit = 20

type Reporter struct {
	tracker *tracker.Tracker
	engine  *engagement.Engine
	now     func() time.Time
}

func NewReporter(t *tracker.Tracker, e *engagement.Engine) *Reporter {
	return &Reporter{tracker: t, engine: e, now: time.Now}
}

// NewReporterAt fixes the reporter's clock; used by tests.
func NewReporterAt(t *tracker.Tracker, e *engagement.Engine, now func() time.Time) *Reporter {
	return &Reporter{tracker: t, engine: e, now: now}
}

// DashboardData assembles the full admin dashboard.
func (r *Reporter) DashboardData() models.DashboardData {
	now := r.now().UTC()
	events := r.tracker.GetAllActivities(0)
	profiles := r.tracker.ProfileSnapshots()

	data := models.DashboardData{
		Timestamp:   now,
		Last24Hours: r.windowStats(events, now, 24*time.Hour),
		Last7Days:   r.windowStats(events, now, 7*24*time.Hour),
		Last30Days:  r.windowStats(events, now, 30*24*time.Hour),
		AllTime:     r.windowStats(events, now, 0),
	}
	data.Last7Days.GrowthRate = r.growthRate(events, now, 7*24*time.Hour)

	recent := events
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	data.RecentActivities = recent

	users := r.userEngagement()
	var totalEngagement float64
	for _, user := range users {
		totalEngagement += user.EngagementScore
		if user.IsActive24h {
			data.Overview.ActiveUsers24h++
		}
		if user.IsActive7d {
			data.Overview.ActiveUsers7d++
		}
	}

	data.Overview.TotalUsers = len(profiles)
	data.Overview.TotalActivities = len(events)
	for _, profile := range profiles {
		data.Overview.TotalMentorSessions += profile.MentorSessions
		data.Overview.TotalModulesCompleted += profile.ModulesCompleted
	}
	if len(users) > 0 {
		data.Overview.AverageEngagement = round2(totalEngagement / float64(len(users)))
	}

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].EngagementScore != users[j].EngagementScore {
			return users[i].EngagementScore > users[j].EngagementScore
		}
		return users[i].UserID < users[j].UserID
	})
	if len(users) > 10 {
		users = users[:10]
	}
	data.TopUsers = users
	return data
}

// DetailedAnalytics aggregates one date range: 1d, 7d, 30d or all.
func (r *Reporter) DetailedAnalytics(dateRange string) models.DetailedAnalytics {
	now := r.now().UTC()
	events := r.tracker.GetAllActivities(0)

	var cutoff time.Time
	switch dateRange {
	case "1d":
		cutoff = now.Add(-24 * time.Hour)
	case "7d":
		cutoff = now.Add(-7 * 24 * time.Hour)
	case "30d":
		cutoff = now.Add(-30 * 24 * time.Hour)
	default:
		dateRange = "all"
	}
	filtered := filterAfter(events, cutoff)

	return models.DetailedAnalytics{
		DateRange:       dateRange,
		TotalActivities: len(filtered),
		UniqueUsers:     uniqueUsers(filtered),
		Trends:          dailyTrends(filtered),
		Retention:       retention(filtered),
		FeatureUsage:    featureUsage(filtered),
	}
}

// Users pages through per-user engagement rows, most recently active
// first.
func (r *Reporter) Users(limit, offset int) models.UserListing {
	users := r.userEngagement()
	sort.SliceStable(users, func(i, j int) bool {
		if !users[i].LastActivity.Equal(users[j].LastActivity) {
			return users[i].LastActivity.After(users[j].LastActivity)
		}
		return users[i].UserID < users[j].UserID
	})

	listing := models.UserListing{
		TotalUsers: len(users),
		Limit:      limit,
		Offset:     offset,
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(users) {
		listing.Users = []models.UserEngagement{}
		return listing
	}
	end := len(users)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	listing.Users = users[offset:end]
	listing.HasMore = end < len(users)
	return listing
}

// Leaderboard ranks all users by engagement score.
func (r *Reporter) Leaderboard(limit int) []models.UserEngagement {
	users := r.userEngagement()
	sort.SliceStable(users, func(i, j int) bool {
		if users[i].EngagementScore != users[j].EngagementScore {
			return users[i].EngagementScore > users[j].EngagementScore
		}
		return users[i].UserID < users[j].UserID
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users
}

func (r *Reporter) userEngagement() []models.UserEngagement {
	profiles := r.tracker.ProfileSnapshots()
	users := make([]models.UserEngagement, 0, len(profiles))
	for _, profile := range profiles {
		events := r.tracker.GetUserActivities(profile.UserID, 0)
		types := make([]string, 0, len(profile.ActivityBreakdown))
		for activityType := range profile.ActivityBreakdown {
			types = append(types, string(activityType))
		}
		sort.Strings(types)

		users = append(users, models.UserEngagement{
			UserID:          profile.UserID,
			TotalActivities: profile.TotalActivities,
			LastActivity:    profile.LastActivity,
			ActivityTypes:   types,
			EngagementScore: r.engine.Score(events),
			IsActive24h:     r.engine.IsActive24h(events),
			IsActive7d:      r.engine.IsActive7d(events),
		})
	}
	return users
}

// windowStats aggregates events newer than now-window; a zero window means
// all time.
func (r *Reporter) windowStats(events []models.ActivityEvent, now time.Time, window time.Duration) models.WindowStats {
	var cutoff time.Time
	if window > 0 {
		cutoff = now.Add(-window)
	}
	filtered := filterAfter(events, cutoff)

	stats := models.WindowStats{
		TotalActivities:   len(filtered),
		UniqueUsers:       uniqueUsers(filtered),
		ActivityBreakdown: make(map[models.ActivityType]int),
		PeakHour:          peakHour(filtered),
	}
	for _, event := range filtered {
		stats.ActivityBreakdown[event.Type]++
	}
	return stats
}

// growthRate compares the current window against the adjacent previous
// window of the same length. A zero previous count yields 0.0.
func (r *Reporter) growthRate(events []models.ActivityEvent, now time.Time, window time.Duration) float64 {
	cutoff := now.Add(-window)
	previousCutoff := now.Add(-2 * window)

	var current, previous int
	for _, event := range events {
		switch {
		case event.Timestamp.After(cutoff):
			current++
		case event.Timestamp.After(previousCutoff):
			previous++
		}
	}
	if previous == 0 {
		return 0.0
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

// peakHour returns the modal hour of day as "HH:00", preferring the
// earlier hour on ties. Empty input yields the no-data sentinel.
func peakHour(events []models.ActivityEvent) string {
	if len(events) == 0 {
		return models.NoData
	}

	var counts [24]int
	for _, event := range events {
		counts[event.Timestamp.UTC().Hour()]++
	}
	peak := 0
	for hour, count := range counts {
		if count > counts[peak] {
			peak = hour
		}
	}
	return fmt.Sprintf("%02d:00", peak)
}

func dailyTrends(events []models.ActivityEvent) []models.DailyTrend {
	type dayAgg struct {
		count int
		users map[string]struct{}
		types map[string]struct{}
	}
	days := make(map[string]*dayAgg)
	for _, event := range events {
		date := event.Timestamp.UTC().Format("2006-01-02")
		agg, ok := days[date]
		if !ok {
			agg = &dayAgg{users: map[string]struct{}{}, types: map[string]struct{}{}}
			days[date] = agg
		}
		agg.count++
		agg.users[event.UserID] = struct{}{}
		agg.types[string(event.Type)] = struct{}{}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trends := make([]models.DailyTrend, 0, len(dates))
	for _, date := range dates {
		agg := days[date]
		types := make([]string, 0, len(agg.types))
		for activityType := range agg.types {
			types = append(types, activityType)
		}
		sort.Strings(types)
		trends = append(trends, models.DailyTrend{
			Date:            date,
			TotalActivities: agg.count,
			UniqueUsers:     len(agg.users),
			ActivityTypes:   types,
		})
	}
	return trends
}

// retention counts users seen on two or more distinct days of the window.
func retention(events []models.ActivityEvent) models.RetentionStats {
	daysByUser := make(map[string]map[string]struct{})
	for _, event := range events {
		if daysByUser[event.UserID] == nil {
			daysByUser[event.UserID] = map[string]struct{}{}
		}
		daysByUser[event.UserID][event.Timestamp.UTC().Format("2006-01-02")] = struct{}{}
	}

	stats := models.RetentionStats{TotalUsers: len(daysByUser)}
	for _, days := range daysByUser {
		if len(days) >= 2 {
			stats.ReturningUsers++
		}
	}
	if stats.TotalUsers > 0 {
		stats.RetentionRate = round2(float64(stats.ReturningUsers) / float64(stats.TotalUsers) * 100)
	}
	return stats
}

// featureUsage counts events per type. On a count tie the most popular
// feature prefers the earlier type name, the least popular the later one.
func featureUsage(events []models.ActivityEvent) models.FeatureUsage {
	usage := models.FeatureUsage{
		Counts:              make(map[models.ActivityType]int),
		MostPopularFeature:  "None",
		LeastPopularFeature: "None",
	}
	for _, event := range events {
		usage.Counts[event.Type]++
	}
	if len(usage.Counts) == 0 {
		return usage
	}

	types := make([]models.ActivityType, 0, len(usage.Counts))
	for activityType := range usage.Counts {
		types = append(types, activityType)
	}
	sort.Slice(types, func(i, j int) bool {
		if usage.Counts[types[i]] != usage.Counts[types[j]] {
			return usage.Counts[types[i]] > usage.Counts[types[j]]
		}
		return types[i] < types[j]
	})
	usage.MostPopularFeature = string(types[0])
	usage.LeastPopularFeature = string(types[len(types)-1])
	return usage
}

func filterAfter(events []models.ActivityEvent, cutoff time.Time) []models.ActivityEvent {
	if cutoff.IsZero() {
		return events
	}
	filtered := make([]models.ActivityEvent, 0, len(events))
	for _, event := range events {
		if event.Timestamp.After(cutoff) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func uniqueUsers(events []models.ActivityEvent) int {
	users := make(map[string]struct{}, len(events))
	for _, event := range events {
		users[event.UserID] = struct{}{}
	}
	return len(users)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
