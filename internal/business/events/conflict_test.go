package events_test

import (
	"testing"
	"time"

	events "github.com/mshevelin/calendar-backend/internal/business/events"
	"github.com/mshevelin/calendar-backend/internal/model"
	. "github.com/smartystreets/goconvey/convey"
)

func at(h, m int) time.Time {
	return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC)
}

func record(id string, from, to time.Time) *model.Event {
	return &model.Event{
		ID:        id,
		Kind:      model.KindSingle,
		Title:     id,
		StartTime: from,
		EndTime:   to,
	}
}

func TestFindConflict(t *testing.T) {
	Convey("Given a candidate interval [10:00, 11:00)", t, func() {
		from, to := at(10, 0), at(11, 0)

		Convey("When an existing event spans [10:30, 11:30)", func() {
			existing := record("a", at(10, 30), at(11, 30))

			Convey("Then the overlap is reported with the record", func() {
				c := events.FindConflict(from, to, []*model.Event{existing})
				So(c, ShouldNotBeNil)
				So(c.ID, ShouldEqual, "a")
			})
		})

		Convey("When an existing event only touches the boundary", func() {
			before := record("b", at(9, 0), at(10, 0))
			after := record("c", at(11, 0), at(12, 0))

			Convey("Then no conflict is reported", func() {
				So(events.FindConflict(from, to, []*model.Event{before, after}), ShouldBeNil)
			})
		})

		Convey("When an existing event contains the candidate entirely", func() {
			outer := record("d", at(9, 0), at(13, 0))

			Convey("Then the overlap is reported", func() {
				So(events.FindConflict(from, to, []*model.Event{outer}), ShouldNotBeNil)
			})
		})

		Convey("When several events overlap", func() {
			first := record("e", at(10, 15), at(10, 30))
			second := record("f", at(10, 45), at(11, 30))

			Convey("Then the first conflicting record is returned", func() {
				c := events.FindConflict(from, to, []*model.Event{first, second})
				So(c, ShouldNotBeNil)
				So(c.ID, ShouldEqual, "e")
			})
		})

		Convey("When the conflicting record is excluded by identity", func() {
			existing := record("g", at(10, 30), at(11, 30))

			Convey("Then no conflict is reported", func() {
				So(events.FindConflict(from, to, []*model.Event{existing}, "g"), ShouldBeNil)
			})
		})
	})

	Convey("Given arbitrary interval pairs", t, func() {
		pairs := []struct {
			aFrom, aTo time.Time
			bFrom, bTo time.Time
		}{
			{at(10, 0), at(11, 0), at(10, 30), at(11, 30)},
			{at(10, 0), at(11, 0), at(11, 0), at(12, 0)},
			{at(9, 0), at(13, 0), at(10, 0), at(11, 0)},
			{at(10, 0), at(10, 1), at(10, 0), at(10, 1)},
			{at(8, 0), at(9, 0), at(12, 0), at(13, 0)},
		}

		Convey("Then the overlap predicate is symmetric", func() {
			for _, p := range pairs {
				ab := events.FindConflict(p.aFrom, p.aTo, []*model.Event{record("x", p.bFrom, p.bTo)})
				ba := events.FindConflict(p.bFrom, p.bTo, []*model.Event{record("y", p.aFrom, p.aTo)})
				So(ab == nil, ShouldEqual, ba == nil)
			}
		})
	})
}
