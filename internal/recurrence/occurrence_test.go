package recurrence_test

import (
	"testing"
	"time"

	"github.com/mshevelin/calendar-backend/internal/recurrence"
	. "github.com/smartystreets/goconvey/convey"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestOccurrences(t *testing.T) {
	Convey("Given a weekly rule anchored Monday 2024-01-01 09:00 UTC", t, func() {
		r, err := recurrence.Parse("FREQ=WEEKLY", anchor)
		So(err, ShouldBeNil)

		Convey("When expanding over [2024-01-01, 2024-01-22)", func() {
			occ := r.Occurrences(day(1), day(22))

			Convey("Then exactly the three Mondays are produced", func() {
				So(occ, ShouldHaveLength, 3)
				So(occ[0].Equal(anchor), ShouldBeTrue)
				So(occ[1].Equal(anchor.AddDate(0, 0, 7)), ShouldBeTrue)
				So(occ[2].Equal(anchor.AddDate(0, 0, 14)), ShouldBeTrue)
			})
		})

		Convey("When the window end falls exactly on an occurrence", func() {
			occ := r.Occurrences(day(1), anchor.AddDate(0, 0, 7))

			Convey("Then that occurrence is excluded", func() {
				So(occ, ShouldHaveLength, 1)
				So(occ[0].Equal(anchor), ShouldBeTrue)
			})
		})

		Convey("When the window start falls exactly on an occurrence", func() {
			occ := r.Occurrences(anchor, anchor.Add(time.Hour))

			Convey("Then that occurrence is included", func() {
				So(occ, ShouldHaveLength, 1)
				So(occ[0].Equal(anchor), ShouldBeTrue)
			})
		})

		Convey("When the window starts after the anchor", func() {
			occ := r.Occurrences(day(9), day(30))

			Convey("Then only in-window occurrences are produced", func() {
				So(occ, ShouldHaveLength, 3)
				So(occ[0].Equal(anchor.AddDate(0, 0, 14)), ShouldBeTrue)
				So(occ[2].Equal(anchor.AddDate(0, 0, 28)), ShouldBeTrue)
			})
		})

		Convey("When the window is empty", func() {
			So(r.Occurrences(day(1), day(1)), ShouldBeEmpty)
			So(r.Occurrences(day(22), day(1)), ShouldBeEmpty)
		})
	})

	Convey("Given a daily rule with interval three", t, func() {
		r, err := recurrence.Parse("FREQ=DAILY;INTERVAL=3", anchor)
		So(err, ShouldBeNil)

		Convey("When expanding over an arbitrary window", func() {
			from, to := day(1), day(10)
			occ := r.Occurrences(from, to)

			Convey("Then every instant lies inside the half-open window", func() {
				So(occ, ShouldHaveLength, 3)
				for _, o := range occ {
					So(o.Before(from), ShouldBeFalse)
					So(o.Before(to), ShouldBeTrue)
				}
			})

			Convey("Then the expansion is restartable", func() {
				again := r.Occurrences(from, to)
				So(again, ShouldResemble, occ)
			})
		})
	})
}
