package events

import "github.com/mshevelin/calendar-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"title",
		"start_date",
		"end_date",
		"recurrence_rule",
		"recurrence_id",
		"original_start",
		"is_cancelled",
	).
	From(database.EventsTable)
