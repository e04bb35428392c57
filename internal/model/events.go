// internal/model/events.go
package model

// Assignment records that a user holds a license for an application.
type Assignment struct {
	OrgID        string    `csv:"org_id"`
	AssignmentID string    `csv:"assignment_id"`
	UserID       string    `csv:"user_id"`
	AppID        string    `csv:"app_id"`
	AssignedAt   Timestamp `csv:"assigned_at"`
	AssignedBy   string    `csv:"assigned_by"`
}

type LoginEvent struct {
	OrgID     string    `csv:"org_id"`
	LoginID   string    `csv:"login_id"`
	UserID    string    `csv:"user_id"`
	AppID     string    `csv:"app_id"`
	LoginTS   Timestamp `csv:"login_ts"`
	Device    string    `csv:"device"`
	IPAddress string    `csv:"ip_address"`
}

type UsageEvent struct {
	OrgID           string    `csv:"org_id"`
	UsageID         string    `csv:"usage_id"`
	UserID          string    `csv:"user_id"`
	AppID           string    `csv:"app_id"`
	ActivityTS      Timestamp `csv:"activity_ts"`
	ActivityType    string    `csv:"activity_type"`
	DurationMinutes int       `csv:"duration_minutes"`
}
