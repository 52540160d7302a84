package api

const (
	AttendancePresent   = "present"
	AttendanceAbsent    = "absent"
	AttendanceLate      = "late"
	AttendanceNotMarked = "not_marked"
)

const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

const (
	EventTypeHoliday = "holiday"
)

const (
	TripStatusWaiting = "waiting"
	TripStatusBoarded = "boarded"
	TripStatusDropped = "dropped"
	TripStatusAbsent  = "absent"
)

type UserTransport struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ChildTransport struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	ClassName   string `json:"class"`
	Email       string `json:"email"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
	Status      string `json:"status"`
}

type AttendanceTransport struct {
	Id           string `json:"id"`
	ChildId      string `json:"childId"`
	Date         string `json:"date"` // yyyy-mm-dd
	Status       string `json:"status"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
}

type DailyUpdateTransport struct {
	Id           string   `json:"id"`
	ChildId      string   `json:"childId"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	MediaUrls    []string `json:"mediaUrls"`
	ActivityType string   `json:"activityType"`
	Mood         string   `json:"mood"`
	TeacherName  string   `json:"teacherName"`
	PostedAt     string   `json:"postedAt"`
}

type AnnouncementTransport struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Priority    string `json:"priority"`
	PublishedAt string `json:"publishedAt"`
}

type EventTransport struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"` // yyyy-mm-dd
	EventTime   string `json:"eventTime,omitempty"`
	EventType   string `json:"eventType"`
}

type InstallmentTransport struct {
	Id      string  `json:"id"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
	Status  string  `json:"status"`
	PaidAt  string  `json:"paidAt,omitempty"`
}

type FeeSummaryTransport struct {
	ChildId      string                 `json:"childId"`
	TotalAmount  float64                `json:"totalAmount"`
	PaidAmount   float64                `json:"paidAmount"`
	DueAmount    float64                `json:"dueAmount"`
	Installments []InstallmentTransport `json:"installments"`
}

type BusLocationTransport struct {
	BusId      string  `json:"busId"`
	RouteName  string  `json:"routeName"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Speed      float64 `json:"speed,omitempty"`
	Heading    float64 `json:"heading,omitempty"`
	RecordedAt string  `json:"recordedAt"`
}

type TeacherDashboardTransport struct {
	ClassName     string `json:"class"`
	TotalStudents int    `json:"totalStudents"`
	PresentToday  int    `json:"presentToday"`
	AbsentToday   int    `json:"absentToday"`
}

type StudentTransport struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	ClassName   string `json:"class"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
}

type AttendanceMarkTransport struct {
	StudentId   string `json:"studentId"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CheckInTime string `json:"checkInTime,omitempty"`
}

type ActivityPostTransport struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	ActivityType string   `json:"activityType"`
	Mood         string   `json:"mood,omitempty"`
	MediaUrls    []string `json:"mediaUrls,omitempty"`
	ChildIds     []string `json:"childIds"`
}

type DriverDashboardTransport struct {
	RouteName    string `json:"routeName"`
	BusNumber    string `json:"busNumber"`
	StopCount    int    `json:"stopCount"`
	StudentCount int    `json:"studentCount"`
	ActiveTripId string `json:"activeTripId,omitempty"`
}

type TripTransport struct {
	Id        string `json:"id"`
	RouteId   string `json:"routeId"`
	Status    string `json:"status"`
	StartedAt string `json:"startedAt"`
	EndedAt   string `json:"endedAt,omitempty"`
}

type LocationPingTransport struct {
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Speed      *float64 `json:"speed,omitempty"`
	Heading    *float64 `json:"heading,omitempty"`
	RecordedAt string   `json:"recordedAt,omitempty"`
}

type LoginResult struct {
	User     UserTransport    `json:"user"`
	Children []ChildTransport `json:"children"`
}
