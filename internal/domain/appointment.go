package domain

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusArrived   AppointmentStatus = "arrived"
	StatusNoShow    AppointmentStatus = "no_show"
	StatusCanceled  AppointmentStatus = "canceled"
)

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusArrived, StatusNoShow, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether s releases slot capacity. No transition is
// defined out of a terminal status; re-booking requires a new appointment.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCanceled || s == StatusNoShow
}

// Appointment represents a repair-shop appointment in the system
type Appointment struct {
	ID         int64
	CustomerID int64
	DeviceID   *int64
	// TimeSlotID is nil for legacy or manually-entered appointments that
	// were never tied to a bookable slot. Such appointments never count
	// toward any slot's occupancy.
	TimeSlotID    *int64
	StoreID       *int64
	ScheduledDate time.Time
	// ScheduledStart/ScheduledEnd are explicit times independent of the
	// slot's nominal window, used for manual overrides.
	ScheduledStart *types.TimeString
	ScheduledEnd   *types.TimeString
	Status         AppointmentStatus
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies reports whether this appointment holds a unit of capacity in
// the given slot: exactly when the status is non-terminal and the
// appointment references that slot.
func (a *Appointment) Occupies(timeSlotID int64) bool {
	return a.OccupiesAnySlot() && *a.TimeSlotID == timeSlotID
}

// OccupiesAnySlot reports whether this appointment contributes to any
// slot's occupancy at all.
func (a *Appointment) OccupiesAnySlot() bool {
	return a.TimeSlotID != nil && !a.Status.IsTerminal()
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCanceled
}

// DateAppointmentsFilter filters the appointments returned for a date.
// Every status is included unless IncludeTerminal is false.
type DateAppointmentsFilter struct {
	Date            time.Time
	StoreID         *int64             // nil = all stores
	Status          *AppointmentStatus // nil = no status filter
	IncludeTerminal bool               // include canceled / no_show rows
}

// StatusHistoryEntry is one row of the appointment status audit trail,
// written alongside every create, status change and cancellation.
type StatusHistoryEntry struct {
	ID            int64
	AppointmentID int64
	OldStatus     *AppointmentStatus // nil for the creation entry
	NewStatus     AppointmentStatus
	ChangedBy     int64
	Note          *string
	CreatedAt     time.Time
}
