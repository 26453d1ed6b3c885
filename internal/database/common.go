package database

import sq "github.com/Masterminds/squirrel"

const EventsTable = "events"

var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
