package schema

import "time"

// Enrollment represents the enrollments table - an active registration of an
// account for an event. At most one row per (account, event); cancelling an
// enrollment deletes the row rather than soft-marking it.
type Enrollment struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AccountID is the enrolled account
	AccountID int64 `gorm:"column:account_id;uniqueIndex:idx_enrollment_account_event;not null"`
	// EventID is the event enrolled into
	EventID int64 `gorm:"column:event_id;uniqueIndex:idx_enrollment_account_event;not null"`
	// RewardGranted marks whether the one-time enrollment reward has been
	// committed for this (account, event) pair. It survives in the
	// badge_index even after the enrollment row is deleted; this flag only
	// gates the grant while the row lives.
	RewardGranted bool      `gorm:"column:reward_granted;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for the Enrollment model
func (Enrollment) TableName() string {
	return "enrollments"
}
