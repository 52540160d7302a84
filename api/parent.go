package api

import (
	"context"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

func (c *DefaultClient) Children(ctx context.Context) ([]ChildTransport, error) {
	children := []ChildTransport{}
	if err := c.get(ctx, "/parent/children", &children); err != nil {
		return nil, errors.Wrap(err, "failed to get children")
	}
	return children, nil
}

func (c *DefaultClient) Attendance(ctx context.Context, childId string, days int) ([]AttendanceTransport, error) {
	records := []AttendanceTransport{}
	endpoint := fmt.Sprintf("/parent/child/%s/attendance?days=%d", childId, days)
	if err := c.get(ctx, endpoint, &records); err != nil {
		return nil, errors.Wrap(err, "failed to get attendance")
	}
	return records, nil
}

// TodayAttendance returns the most recent attendance record when it belongs
// to the current date in the configured timezone, nil otherwise. Both sides
// of the comparison are normalized to that timezone, never the device locale.
func (c *DefaultClient) TodayAttendance(ctx context.Context, childId string) (*AttendanceTransport, error) {
	records, err := c.Attendance(ctx, childId, 7)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	latest := records[0]
	loc := c.Config.Location()
	recordDate, err := dateparse.ParseIn(latest.Date, loc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse attendance date %q", latest.Date)
	}

	today := c.Clock.Now().In(loc).Format("2006-01-02")
	if recordDate.In(loc).Format("2006-01-02") != today {
		return nil, nil
	}
	return &latest, nil
}

func (c *DefaultClient) DailyUpdates(ctx context.Context, childId string, limit int) ([]DailyUpdateTransport, error) {
	updates := []DailyUpdateTransport{}
	endpoint := fmt.Sprintf("/parent/child/%s/activities?limit=%d", childId, limit)
	if err := c.get(ctx, endpoint, &updates); err != nil {
		return nil, errors.Wrap(err, "failed to get daily updates")
	}
	return updates, nil
}

func (c *DefaultClient) StudentFees(ctx context.Context, childId string) (FeeSummaryTransport, error) {
	fees := FeeSummaryTransport{}
	if err := c.get(ctx, "/parent/child/"+childId+"/fees", &fees); err != nil {
		return FeeSummaryTransport{}, errors.Wrap(err, "failed to get student fees")
	}
	return fees, nil
}

func (c *DefaultClient) Announcements(ctx context.Context) ([]AnnouncementTransport, error) {
	announcements := []AnnouncementTransport{}
	if err := c.get(ctx, "/parent/announcements", &announcements); err != nil {
		return nil, errors.Wrap(err, "failed to get announcements")
	}
	return announcements, nil
}

func (c *DefaultClient) Events(ctx context.Context) ([]EventTransport, error) {
	events := []EventTransport{}
	if err := c.get(ctx, "/parent/events", &events); err != nil {
		return nil, errors.Wrap(err, "failed to get events")
	}
	return events, nil
}

func (c *DefaultClient) BusLocation(ctx context.Context, childId string) (BusLocationTransport, error) {
	location := BusLocationTransport{}
	if err := c.get(ctx, "/parent/child/"+childId+"/bus-location", &location); err != nil {
		return BusLocationTransport{}, errors.Wrap(err, "failed to get bus location")
	}
	return location, nil
}

func (c *DefaultClient) LiveBusLocation(ctx context.Context, busId string) (BusLocationTransport, error) {
	location := BusLocationTransport{}
	if err := c.get(ctx, "/parent/bus/"+busId+"/live-location", &location); err != nil {
		return BusLocationTransport{}, errors.Wrap(err, "failed to get live bus location")
	}
	return location, nil
}
