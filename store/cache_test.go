package store_test

import (
	"time"

	"github.com/Sproutly/SPROUT-MOBILE/api"
	"github.com/Sproutly/SPROUT-MOBILE/generator"
	. "github.com/Sproutly/SPROUT-MOBILE/store"

	"github.com/Pallinder/go-randomdata"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cache mirror", func() {

	var (
		clock      *fakeClock
		cacheStore *Store
	)

	BeforeEach(func() {
		clock = &fakeClock{}
		clock.Set(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
		cacheStore = &Store{
			Db:              testDb,
			StringGenerator: &generator.StringGenerator{},
			Clock:           clock,
		}
		Expect(cacheStore.ClearAllCache()).To(Succeed())
	})

	Context("children", func() {

		It("should wholesale-replace the collection on every cache write", func() {
			first := []api.ChildTransport{
				{Id: "c1", Name: randomdata.FirstName(randomdata.Female), ClassName: "Nursery"},
				{Id: "c2", Name: randomdata.FirstName(randomdata.Male), ClassName: "LKG"},
			}
			Expect(cacheStore.CacheChildren(first)).To(Succeed())

			second := []api.ChildTransport{
				{Id: "c3", Name: "Asha", ClassName: "UKG", ParentPhone: "9999999999"},
			}
			Expect(cacheStore.CacheChildren(second)).To(Succeed())

			cached, err := cacheStore.CachedChildren()
			Expect(err).To(BeNil())
			Expect(cached).To(HaveLen(1))
			Expect(cached[0].Id).To(Equal("c3"))
			Expect(cached[0].ParentPhone).To(Equal("9999999999"))
		})
	})

	Context("attendance", func() {

		It("should upsert by child and date, keeping the latest status", func() {
			Expect(cacheStore.CacheAttendance("5", []api.AttendanceTransport{
				{Id: "a1", ChildId: "5", Date: "2024-01-01", Status: api.AttendanceAbsent},
			})).To(Succeed())

			Expect(cacheStore.CacheAttendance("5", []api.AttendanceTransport{
				{Id: "a1", ChildId: "5", Date: "2024-01-01", Status: api.AttendancePresent, CheckInTime: "09:10"},
			})).To(Succeed())

			records, err := cacheStore.CachedAttendance("5", 30)
			Expect(err).To(BeNil())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Status).To(Equal(api.AttendancePresent))
			Expect(records[0].CheckInTime).To(Equal("09:10"))
		})

		It("should window reads by the requested number of days", func() {
			Expect(cacheStore.CacheAttendance("5", []api.AttendanceTransport{
				{Id: "a1", ChildId: "5", Date: "2024-01-14", Status: api.AttendancePresent},
				{Id: "a2", ChildId: "5", Date: "2023-11-01", Status: api.AttendanceAbsent},
			})).To(Succeed())

			records, err := cacheStore.CachedAttendance("5", 30)
			Expect(err).To(BeNil())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Date).To(Equal("2024-01-14"))
		})

		It("should not leak records across children", func() {
			Expect(cacheStore.CacheAttendance("5", []api.AttendanceTransport{
				{Id: "a1", ChildId: "5", Date: "2024-01-14", Status: api.AttendancePresent},
			})).To(Succeed())

			records, err := cacheStore.CachedAttendance("6", 30)
			Expect(err).To(BeNil())
			Expect(records).To(BeEmpty())
		})
	})

	Context("activities", func() {

		It("should upsert by id and round-trip media urls", func() {
			update := api.DailyUpdateTransport{
				Id:           "act1",
				Title:        "Finger painting",
				MediaUrls:    []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
				ActivityType: "art",
				Mood:         "happy",
				TeacherName:  "Meera",
				PostedAt:     "2024-01-15T09:30:00Z",
			}
			Expect(cacheStore.CacheActivities("c1", []api.DailyUpdateTransport{update})).To(Succeed())
			update.Title = "Finger painting (updated)"
			Expect(cacheStore.CacheActivities("c1", []api.DailyUpdateTransport{update})).To(Succeed())

			cached, err := cacheStore.CachedActivities("c1", 10)
			Expect(err).To(BeNil())
			Expect(cached).To(HaveLen(1))
			Expect(cached[0].Title).To(Equal("Finger painting (updated)"))
			Expect(cached[0].MediaUrls).To(HaveLen(2))
		})

		It("should honor the read limit, newest first", func() {
			Expect(cacheStore.CacheActivities("c1", []api.DailyUpdateTransport{
				{Id: "act1", Title: "old", PostedAt: "2024-01-10T09:00:00Z"},
				{Id: "act2", Title: "new", PostedAt: "2024-01-15T09:00:00Z"},
			})).To(Succeed())

			cached, err := cacheStore.CachedActivities("c1", 1)
			Expect(err).To(BeNil())
			Expect(cached).To(HaveLen(1))
			Expect(cached[0].Title).To(Equal("new"))
		})
	})

	Context("announcements and events", func() {

		It("should mirror announcements wholesale", func() {
			Expect(cacheStore.CacheAnnouncements([]api.AnnouncementTransport{
				{Id: "n1", Title: "Sports day", Priority: api.PriorityHigh, PublishedAt: "2024-01-10T08:00:00Z"},
			})).To(Succeed())
			Expect(cacheStore.CacheAnnouncements([]api.AnnouncementTransport{
				{Id: "n2", Title: "PTM", Priority: api.PriorityNormal, PublishedAt: "2024-01-12T08:00:00Z"},
			})).To(Succeed())

			cached, err := cacheStore.CachedAnnouncements()
			Expect(err).To(BeNil())
			Expect(cached).To(HaveLen(1))
			Expect(cached[0].Id).To(Equal("n2"))
		})

		It("should mirror events wholesale", func() {
			Expect(cacheStore.CacheEvents([]api.EventTransport{
				{Id: "e1", Title: "Republic Day", EventDate: "2024-01-26", EventType: api.EventTypeHoliday},
			})).To(Succeed())

			cached, err := cacheStore.CachedEvents()
			Expect(err).To(BeNil())
			Expect(cached).To(HaveLen(1))
			Expect(cached[0].EventType).To(Equal(api.EventTypeHoliday))
		})
	})

	Context("retention", func() {

		It("should prune attendance and activities past the retention window", func() {
			clock.Set(time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC))
			Expect(cacheStore.CacheAttendance("5", []api.AttendanceTransport{
				{Id: "a-old", ChildId: "5", Date: "2023-12-01", Status: api.AttendancePresent},
			})).To(Succeed())
			Expect(cacheStore.CacheActivities("5", []api.DailyUpdateTransport{
				{Id: "act-old", Title: "old activity", PostedAt: "2023-12-01T09:00:00Z"},
			})).To(Succeed())

			clock.Set(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
			Expect(cacheStore.CacheAttendance("5", []api.AttendanceTransport{
				{Id: "a-new", ChildId: "5", Date: "2024-01-15", Status: api.AttendancePresent},
			})).To(Succeed())

			Expect(cacheStore.ClearOldCache(30)).To(Succeed())

			records, err := cacheStore.CachedAttendance("5", 365)
			Expect(err).To(BeNil())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Date).To(Equal("2024-01-15"))

			activities, err := cacheStore.CachedActivities("5", 10)
			Expect(err).To(BeNil())
			Expect(activities).To(BeEmpty())
		})
	})

	Context("logout wipe", func() {

		It("should leave every mirrored collection empty", func() {
			Expect(cacheStore.CacheChildren([]api.ChildTransport{{Id: "c1", Name: "Asha"}})).To(Succeed())
			Expect(cacheStore.CacheAttendance("c1", []api.AttendanceTransport{
				{Id: "a1", ChildId: "c1", Date: "2024-01-15", Status: api.AttendancePresent},
			})).To(Succeed())
			Expect(cacheStore.CacheAnnouncements([]api.AnnouncementTransport{{Id: "n1", Title: "x"}})).To(Succeed())
			Expect(cacheStore.CacheEvents([]api.EventTransport{{Id: "e1", Title: "y"}})).To(Succeed())
			_, err := cacheStore.QueueAction("mark_attendance", map[string]string{"k": "v"})
			Expect(err).To(BeNil())

			Expect(cacheStore.ClearAllCache()).To(Succeed())

			children, err := cacheStore.CachedChildren()
			Expect(err).To(BeNil())
			Expect(children).To(BeEmpty())

			attendance, err := cacheStore.CachedAttendance("c1", 365)
			Expect(err).To(BeNil())
			Expect(attendance).To(BeEmpty())

			announcements, err := cacheStore.CachedAnnouncements()
			Expect(err).To(BeNil())
			Expect(announcements).To(BeEmpty())

			events, err := cacheStore.CachedEvents()
			Expect(err).To(BeNil())
			Expect(events).To(BeEmpty())

			actions, err := cacheStore.PendingActions()
			Expect(err).To(BeNil())
			Expect(actions).To(BeEmpty())
		})
	})
})
