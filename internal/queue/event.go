// Package queue defines the message payloads exchanged over the broker and
// the background consumer that drains them.
package queue

// StatusChangedQueue is the durable queue carrying lifecycle transitions.
const StatusChangedQueue = "user.status.changed"

// UserStatusChangedEvent is published when an admin moves a user between
// lifecycle states. It carries enough for downstream consumers to audit or
// notify without querying the primary database.
type UserStatusChangedEvent struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChangedBy string `json:"changed_by"`
	ChangedAt string `json:"changed_at"`
}
