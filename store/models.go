package store

import "time"

// Mirror rows are complete snapshots replaced or upserted wholesale, so
// columns are plain types; every row carries CachedAt for staleness pruning.

type Child struct {
	ChildId     string `gorm:"column:child_id;primary_key"`
	Name        string
	ClassName   string
	Email       string
	ParentName  string
	ParentPhone string
	Status      string
	CachedAt    time.Time
}

func (Child) TableName() string {
	return "cached_children"
}

type Attendance struct {
	ID           uint   `gorm:"primary_key;auto_increment"`
	AttendanceId string `gorm:"column:attendance_id"`
	ChildId      string `gorm:"column:child_id;unique_index:uix_attendance_child_date"`
	Date         string `gorm:"unique_index:uix_attendance_child_date"` // yyyy-mm-dd
	Status       string
	CheckInTime  string
	CheckOutTime string
	CachedAt     time.Time
}

func (Attendance) TableName() string {
	return "cached_attendance"
}

type Activity struct {
	ActivityId   string `gorm:"column:activity_id;primary_key"`
	ChildId      string `gorm:"column:child_id;index"`
	Title        string
	Content      string
	MediaUrls    string // json-encoded list
	ActivityType string
	Mood         string
	TeacherName  string
	PostedAt     string
	CachedAt     time.Time
}

func (Activity) TableName() string {
	return "cached_activities"
}

type Announcement struct {
	AnnouncementId string `gorm:"column:announcement_id;primary_key"`
	Title          string
	Content        string
	Priority       string
	PublishedAt    string
	CachedAt       time.Time
}

func (Announcement) TableName() string {
	return "cached_announcements"
}

type Event struct {
	EventId     string `gorm:"column:event_id;primary_key"`
	Title       string
	Description string
	EventDate   string
	EventTime   string
	EventType   string
	CachedAt    time.Time
}

func (Event) TableName() string {
	return "cached_events"
}

// PendingAction is a write deferred because the device was offline at
// submission time, replayed at-least-once in FIFO order by creation time.
type PendingAction struct {
	ID         uint   `gorm:"primary_key;auto_increment"`
	ActionId   string `gorm:"column:action_id"` // idempotency key sent on replay
	ActionType string
	Payload    string // json
	RetryCount int
	CreatedAt  time.Time
}

func (PendingAction) TableName() string {
	return "pending_actions"
}

type SyncMetadata struct {
	Key       string `gorm:"column:key;primary_key"`
	Value     string
	UpdatedAt time.Time
}

func (SyncMetadata) TableName() string {
	return "sync_metadata"
}
