package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidImage = errors.New("only jpeg is supported. the image must have the following pattern: 'data:image/jpeg;base64,[64encoded image string]'")

func (c *DefaultClient) TeacherDashboard(ctx context.Context) (TeacherDashboardTransport, error) {
	dashboard := TeacherDashboardTransport{}
	if err := c.get(ctx, "/teacher/dashboard", &dashboard); err != nil {
		return TeacherDashboardTransport{}, errors.Wrap(err, "failed to get teacher dashboard")
	}
	return dashboard, nil
}

func (c *DefaultClient) TeacherStudents(ctx context.Context) ([]StudentTransport, error) {
	students := []StudentTransport{}
	if err := c.get(ctx, "/teacher/students", &students); err != nil {
		return nil, errors.Wrap(err, "failed to get students")
	}
	return students, nil
}

// MarkAttendanceBulk submits one status record per student in a single call.
func (c *DefaultClient) MarkAttendanceBulk(ctx context.Context, records []AttendanceMarkTransport) error {
	payload := map[string]interface{}{"records": records}
	if err := c.post(ctx, "/teacher/attendance/bulk", payload, nil); err != nil {
		return errors.Wrap(err, "failed to mark attendance")
	}
	return nil
}

func (c *DefaultClient) PostActivity(ctx context.Context, post ActivityPostTransport) (DailyUpdateTransport, error) {
	created := DailyUpdateTransport{}
	if err := c.post(ctx, "/teacher/activities", post, &created); err != nil {
		return DailyUpdateTransport{}, errors.Wrap(err, "failed to post activity")
	}
	return created, nil
}

// UploadMedia sends a base64 data-URI jpeg and returns the hosted URL.
func (c *DefaultClient) UploadMedia(ctx context.Context, encodedImage string) (string, error) {
	if !strings.HasPrefix(encodedImage, "data:image/jpeg;base64,") {
		return "", ErrInvalidImage
	}

	uploaded := struct {
		Url string `json:"url"`
	}{}
	payload := map[string]string{"image": encodedImage}
	if err := c.post(ctx, "/teacher/media", payload, &uploaded); err != nil {
		return "", errors.Wrap(err, "failed to upload media")
	}
	return uploaded.Url, nil
}

func (c *DefaultClient) TodayAttendanceAll(ctx context.Context) ([]AttendanceTransport, error) {
	records := []AttendanceTransport{}
	if err := c.get(ctx, "/teacher/attendance/today", &records); err != nil {
		return nil, errors.Wrap(err, "failed to get today attendance")
	}
	return records, nil
}

func (c *DefaultClient) StudentAttendanceHistory(ctx context.Context, studentId string, days int) ([]AttendanceTransport, error) {
	records := []AttendanceTransport{}
	endpoint := fmt.Sprintf("/teacher/student/%s/attendance?days=%d", studentId, days)
	if err := c.get(ctx, endpoint, &records); err != nil {
		return nil, errors.Wrap(err, "failed to get student attendance history")
	}
	return records, nil
}

func (c *DefaultClient) OrganizationHolidays(ctx context.Context) ([]EventTransport, error) {
	holidays := []EventTransport{}
	if err := c.get(ctx, "/teacher/holidays", &holidays); err != nil {
		return nil, errors.Wrap(err, "failed to get organization holidays")
	}
	return holidays, nil
}
