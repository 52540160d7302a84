package mocks

import (
	"context"

	"github.com/Sproutly/SPROUT-MOBILE/api"
	"github.com/stretchr/testify/mock"
)

type MockApiClient struct {
	mock.Mock
}

func (m *MockApiClient) Login(ctx context.Context, phone, password string) (api.LoginResult, error) {
	args := m.Called(ctx, phone, password)
	return args.Get(0).(api.LoginResult), args.Error(1)
}

func (m *MockApiClient) ChangePassword(ctx context.Context, newPassword string) error {
	args := m.Called(ctx, newPassword)
	return args.Error(0)
}

func (m *MockApiClient) ChangePasswordStaff(ctx context.Context, oldPassword, newPassword string) error {
	args := m.Called(ctx, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockApiClient) Children(ctx context.Context) ([]api.ChildTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.ChildTransport), args.Error(1)
}

func (m *MockApiClient) Attendance(ctx context.Context, childId string, days int) ([]api.AttendanceTransport, error) {
	args := m.Called(ctx, childId, days)
	return args.Get(0).([]api.AttendanceTransport), args.Error(1)
}

func (m *MockApiClient) TodayAttendance(ctx context.Context, childId string) (*api.AttendanceTransport, error) {
	args := m.Called(ctx, childId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AttendanceTransport), args.Error(1)
}

func (m *MockApiClient) DailyUpdates(ctx context.Context, childId string, limit int) ([]api.DailyUpdateTransport, error) {
	args := m.Called(ctx, childId, limit)
	return args.Get(0).([]api.DailyUpdateTransport), args.Error(1)
}

func (m *MockApiClient) StudentFees(ctx context.Context, childId string) (api.FeeSummaryTransport, error) {
	args := m.Called(ctx, childId)
	return args.Get(0).(api.FeeSummaryTransport), args.Error(1)
}

func (m *MockApiClient) Announcements(ctx context.Context) ([]api.AnnouncementTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.AnnouncementTransport), args.Error(1)
}

func (m *MockApiClient) Events(ctx context.Context) ([]api.EventTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.EventTransport), args.Error(1)
}

func (m *MockApiClient) BusLocation(ctx context.Context, childId string) (api.BusLocationTransport, error) {
	args := m.Called(ctx, childId)
	return args.Get(0).(api.BusLocationTransport), args.Error(1)
}

func (m *MockApiClient) LiveBusLocation(ctx context.Context, busId string) (api.BusLocationTransport, error) {
	args := m.Called(ctx, busId)
	return args.Get(0).(api.BusLocationTransport), args.Error(1)
}

func (m *MockApiClient) TeacherDashboard(ctx context.Context) (api.TeacherDashboardTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).(api.TeacherDashboardTransport), args.Error(1)
}

func (m *MockApiClient) TeacherStudents(ctx context.Context) ([]api.StudentTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.StudentTransport), args.Error(1)
}

func (m *MockApiClient) MarkAttendanceBulk(ctx context.Context, records []api.AttendanceMarkTransport) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockApiClient) PostActivity(ctx context.Context, post api.ActivityPostTransport) (api.DailyUpdateTransport, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(api.DailyUpdateTransport), args.Error(1)
}

func (m *MockApiClient) UploadMedia(ctx context.Context, encodedImage string) (string, error) {
	args := m.Called(ctx, encodedImage)
	return args.String(0), args.Error(1)
}

func (m *MockApiClient) TodayAttendanceAll(ctx context.Context) ([]api.AttendanceTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.AttendanceTransport), args.Error(1)
}

func (m *MockApiClient) StudentAttendanceHistory(ctx context.Context, studentId string, days int) ([]api.AttendanceTransport, error) {
	args := m.Called(ctx, studentId, days)
	return args.Get(0).([]api.AttendanceTransport), args.Error(1)
}

func (m *MockApiClient) OrganizationHolidays(ctx context.Context) ([]api.EventTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.EventTransport), args.Error(1)
}

func (m *MockApiClient) DriverDashboard(ctx context.Context) (api.DriverDashboardTransport, error) {
	args := m.Called(ctx)
	return args.Get(0).(api.DriverDashboardTransport), args.Error(1)
}

func (m *MockApiClient) UpdateBusLocation(ctx context.Context, ping api.LocationPingTransport) error {
	args := m.Called(ctx, ping)
	return args.Error(0)
}

func (m *MockApiClient) StartTrip(ctx context.Context, routeId string) (api.TripTransport, error) {
	args := m.Called(ctx, routeId)
	return args.Get(0).(api.TripTransport), args.Error(1)
}

func (m *MockApiClient) EndTrip(ctx context.Context, tripId string) error {
	args := m.Called(ctx, tripId)
	return args.Error(0)
}

func (m *MockApiClient) ActiveTrip(ctx context.Context) (*api.TripTransport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TripTransport), args.Error(1)
}

func (m *MockApiClient) UpdateStudentTripStatus(ctx context.Context, tripId, studentId, status string) error {
	args := m.Called(ctx, tripId, studentId, status)
	return args.Error(0)
}
