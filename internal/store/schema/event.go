package schema

// Event represents the events table. The capacity counters satisfy
// 0 <= seats_available <= seats_total and
// attendee_count = seats_total - seats_available at all times; both sides of
// every change are applied in one transaction.
type Event struct {
	// ID is the event identifier (fixture ids are stable, so no auto-increment)
	ID int64 `gorm:"column:id;primaryKey"`
	// Title is the event display name
	Title string `gorm:"column:title;not null;type:text"`
	// Date is the event date as shown to students (fixture format)
	Date string `gorm:"column:date;type:text"`
	// Time and EndTime bound the event window
	Time    string `gorm:"column:time;type:text"`
	EndTime string `gorm:"column:end_time;type:text"`
	// Location is the venue description
	Location string `gorm:"column:location;type:text"`
	// Campus identifies which campus hosts the event
	Campus string `gorm:"column:campus;type:text"`
	// Description is the long-form event description
	Description string `gorm:"column:description;type:text"`
	// HostGroup and HostGroupID reference the organizing group
	HostGroup   string `gorm:"column:host_group;type:text"`
	HostGroupID int64  `gorm:"column:host_group_id"`
	// Category is a JSON-encoded list of category labels
	Category string `gorm:"column:category;type:text"`
	// SeatsTotal is the fixed capacity
	SeatsTotal int64 `gorm:"column:seats_total;not null"`
	// SeatsAvailable is the number of unreserved seats
	SeatsAvailable int64 `gorm:"column:seats_available;not null"`
	// AttendeeCount is the number of reserved seats
	AttendeeCount int64 `gorm:"column:attendee_count;not null"`
	// RSVPRequired gates enrollment
	RSVPRequired bool `gorm:"column:rsvp_required;not null;default:true"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
