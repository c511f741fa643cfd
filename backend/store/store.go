// Package store holds the activity log backends. The tracker only ever
// talks to the ActivityStore interface, so the in-memory log can be
// swapped for a database without touching the analytics code.
package store

import "mavericks/backend/models"

type ActivityStore interface {
	// Append adds one event to the log. Insertion order per user is
	// preserved by every implementation.
	Append(event models.ActivityEvent) error

	// UserEvents returns all events of one user in insertion order.
	UserEvents(userID string) ([]models.ActivityEvent, error)

	// AllEvents returns every event across all users in global insertion
	// order.
	AllEvents() ([]models.ActivityEvent, error)

	// UserIDs returns the ids of all users with at least one event.
	UserIDs() ([]string, error)
}
