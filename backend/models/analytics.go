package models

import "time"

// NoData is the sentinel used where a windowed aggregate has nothing to
// aggregate (e.g. peak hour over an empty window).
const NoData = "No data"

// WindowStats aggregates activity over one time window.
type WindowStats struct {
	TotalActivities   int                  `json:"total_activities"`
	UniqueUsers       int                  `json:"unique_users"`
	ActivityBreakdown map[ActivityType]int `json:"activity_breakdown"`
	PeakHour          string               `json:"peak_hour,omitempty"`
	GrowthRate        float64              `json:"growth_rate"`
}

// UserEngagement is one row of the per-user engagement listing.
type UserEngagement struct {
	UserID          string    `json:"user_id"`
	TotalActivities int       `json:"total_activities"`
	LastActivity    time.Time `json:"last_activity"`
	ActivityTypes   []string  `json:"activity_types"` // sorted
	EngagementScore float64   `json:"engagement_score"`
	IsActive24h     bool      `json:"is_active_24h"`
	IsActive7d      bool      `json:"is_active_7d"`
}

type DashboardOverview struct {
	TotalUsers            int     `json:"total_users"`
	TotalActivities       int     `json:"total_activities"`
	ActiveUsers24h        int     `json:"active_users_24h"`
	ActiveUsers7d         int     `json:"active_users_7d"`
	TotalMentorSessions   int     `json:"total_mentor_sessions"`
	TotalModulesCompleted int     `json:"total_modules_completed"`
	AverageEngagement     float64 `json:"average_engagement"`
}

// DashboardData is the full admin dashboard report, recomputed on every
// request.
type DashboardData struct {
	Timestamp        time.Time        `json:"timestamp"`
	Overview         DashboardOverview `json:"overview"`
	Last24Hours      WindowStats      `json:"last_24_hours"`
	Last7Days        WindowStats      `json:"last_7_days"`
	Last30Days       WindowStats      `json:"last_30_days"`
	AllTime          WindowStats      `json:"all_time"`
	RecentActivities []ActivityEvent  `json:"recent_activities"`
	TopUsers         []UserEngagement `json:"top_users"`
}

// DailyTrend is one day of the detailed-analytics trend series.
type DailyTrend struct {
	Date            string   `json:"date"` // YYYY-MM-DD, UTC
	TotalActivities int      `json:"total_activities"`
	UniqueUsers     int      `json:"unique_users"`
	ActivityTypes   []string `json:"activity_types"` // sorted
}

type RetentionStats struct {
	TotalUsers     int     `json:"total_users"`
	ReturningUsers int     `json:"returning_users"` // active on 2+ distinct days
	RetentionRate  float64 `json:"retention_rate"`
}

type FeatureUsage struct {
	Counts              map[ActivityType]int `json:"feature_usage"`
	MostPopularFeature  string               `json:"most_popular_feature"`
	LeastPopularFeature string               `json:"least_popular_feature"`
}

type DetailedAnalytics struct {
	DateRange       string         `json:"date_range"` // 1d, 7d, 30d, all
	TotalActivities int            `json:"total_activities"`
	UniqueUsers     int            `json:"unique_users"`
	Trends          []DailyTrend   `json:"activity_trends"`
	Retention       RetentionStats `json:"user_retention"`
	FeatureUsage    FeatureUsage   `json:"feature_usage"`
}

// UserListing is a paginated slice of per-user engagement rows.
type UserListing struct {
	Users      []UserEngagement `json:"users"`
	TotalUsers int              `json:"total_users"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
	HasMore    bool             `json:"has_more"`
}
