package syncer

import (
	"context"
	"time"

	"github.com/Sproutly/SPROUT-MOBILE/api"
	"github.com/Sproutly/SPROUT-MOBILE/shared"

	"github.com/pkg/errors"
)

// Refresher pulls the server's read-mostly collections into the local mirror.
// A failed entity pull is logged and skipped; the cache is advisory, so a
// partial refresh beats no refresh.
type Refresher struct {
	Client api.Client `inject:""`
	Cache  interface {
		CacheChildren(children []api.ChildTransport) error
		CacheAttendance(childId string, records []api.AttendanceTransport) error
		CacheActivities(childId string, updates []api.DailyUpdateTransport) error
		CacheAnnouncements(announcements []api.AnnouncementTransport) error
		CacheEvents(events []api.EventTransport) error
		SetLastSync(kind string, at time.Time) error
		ClearOldCache(retentionDays int) error
	} `inject:""`
	Config *shared.AppConfig `inject:""`
	Logger *shared.Logger    `inject:""`
	Clock  shared.Clock      `inject:""`
}

const (
	attendanceWindowDays = 30
	activityFetchLimit   = 50
)

func (r *Refresher) RefreshAll(ctx context.Context) error {
	children, err := r.Client.Children(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to refresh children")
	}
	if err := r.Cache.CacheChildren(children); err != nil {
		return errors.Wrap(err, "failed to mirror children")
	}
	r.markSynced(ctx, "children")

	for _, child := range children {
		r.refreshChild(ctx, child.Id)
	}
	r.markSynced(ctx, "attendance")
	r.markSynced(ctx, "activities")

	if announcements, err := r.Client.Announcements(ctx); err != nil {
		r.Logger.Warn(ctx, "failed to refresh announcements", "err", err.Error())
	} else if err := r.Cache.CacheAnnouncements(announcements); err != nil {
		r.Logger.Warn(ctx, "failed to mirror announcements", "err", err.Error())
	} else {
		r.markSynced(ctx, "announcements")
	}

	if events, err := r.Client.Events(ctx); err != nil {
		r.Logger.Warn(ctx, "failed to refresh events", "err", err.Error())
	} else if err := r.Cache.CacheEvents(events); err != nil {
		r.Logger.Warn(ctx, "failed to mirror events", "err", err.Error())
	} else {
		r.markSynced(ctx, "events")
	}

	if err := r.Cache.ClearOldCache(r.Config.CacheRetentionDays); err != nil {
		r.Logger.Warn(ctx, "failed to prune stale cache rows", "err", err.Error())
	}

	return nil
}

func (r *Refresher) refreshChild(ctx context.Context, childId string) {
	if records, err := r.Client.Attendance(ctx, childId, attendanceWindowDays); err != nil {
		r.Logger.Warn(ctx, "failed to refresh attendance", "childId", childId, "err", err.Error())
	} else if err := r.Cache.CacheAttendance(childId, records); err != nil {
		r.Logger.Warn(ctx, "failed to mirror attendance", "childId", childId, "err", err.Error())
	}

	if updates, err := r.Client.DailyUpdates(ctx, childId, activityFetchLimit); err != nil {
		r.Logger.Warn(ctx, "failed to refresh daily updates", "childId", childId, "err", err.Error())
	} else if err := r.Cache.CacheActivities(childId, updates); err != nil {
		r.Logger.Warn(ctx, "failed to mirror daily updates", "childId", childId, "err", err.Error())
	}
}

func (r *Refresher) markSynced(ctx context.Context, kind string) {
	if err := r.Cache.SetLastSync(kind, r.Clock.Now()); err != nil {
		r.Logger.Warn(ctx, "failed to record last sync", "kind", kind, "err", err.Error())
	}
}
