package timeslot

import "github.com/fixtrackhq/FixTrack-AppointmentService/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
