package events_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/database/events"
	. "github.com/smartystreets/goconvey/convey"
)

// queryRecorder captures the statements a repository method issues.
type queryRecorder struct {
	last database.Sqlizer
	tag  pgconn.CommandTag
}

func (q *queryRecorder) Exec(_ context.Context, sqlizer database.Sqlizer) (pgconn.CommandTag, error) {
	q.last = sqlizer
	return q.tag, nil
}

func (q *queryRecorder) Get(_ context.Context, _ interface{}, sqlizer database.Sqlizer) error {
	q.last = sqlizer
	return nil
}

func (q *queryRecorder) Select(_ context.Context, _ interface{}, sqlizer database.Sqlizer) error {
	q.last = sqlizer
	return nil
}

func TestDeleteOrphanExceptions(t *testing.T) {
	Convey("Given the events repository", t, func() {
		repo := events.NewRepository()
		db := &queryRecorder{tag: pgconn.CommandTag("DELETE 2")}

		Convey("When sweeping orphaned exceptions", func() {
			n, err := repo.DeleteOrphanExceptions(context.Background(), db)

			Convey("Then it reports the number of removed rows", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})

			Convey("Then only exception rows are candidates", func() {
				sql, _, err := db.last.ToSql()
				So(err, ShouldBeNil)
				So(sql, ShouldContainSubstring, "recurrence_id IS NOT NULL")
			})

			Convey("Then a row survives only when its parent is a recurring master", func() {
				sql, _, err := db.last.ToSql()
				So(err, ShouldBeNil)
				So(sql, ShouldContainSubstring, "NOT EXISTS")
				So(sql, ShouldContainSubstring, "m.id = e.recurrence_id AND m.recurrence_rule <> ''")
			})
		})
	})
}

func TestDeleteExceptions(t *testing.T) {
	Convey("Given the events repository", t, func() {
		repo := events.NewRepository()
		db := &queryRecorder{tag: pgconn.CommandTag("DELETE 1")}

		Convey("When deleting the exceptions of a master", func() {
			err := repo.DeleteExceptions(context.Background(), db, "m1")

			Convey("Then the delete is scoped to that master's children", func() {
				So(err, ShouldBeNil)
				sql, args, err := db.last.ToSql()
				So(err, ShouldBeNil)
				So(strings.HasPrefix(sql, "DELETE FROM events"), ShouldBeTrue)
				So(sql, ShouldContainSubstring, "recurrence_id = $1")
				So(args, ShouldResemble, []interface{}{"m1"})
			})
		})
	})
}
