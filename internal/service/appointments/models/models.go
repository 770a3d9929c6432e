package models

import (
	"fmt"
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// AppointmentResponse is the service-level view of an appointment.
type AppointmentResponse struct {
	ID             int64
	CustomerID     int64
	DeviceID       *int64
	TimeSlotID     *int64
	StoreID        *int64
	ScheduledDate  time.Time
	ScheduledStart *string
	ScheduledEnd   *string
	Status         string
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// HistoryEntryResponse is one row of an appointment's status trail.
type HistoryEntryResponse struct {
	ID        int64
	OldStatus *string
	NewStatus string
	ChangedBy int64
	Note      *string
	CreatedAt time.Time
}

// ListForDateRequest filters a day's appointments.
type ListForDateRequest struct {
	Date            time.Time
	StoreID         *int64
	Status          *string
	IncludeTerminal bool
}

// ListByCustomerRequest filters a customer's appointments.
type ListByCustomerRequest struct {
	CustomerID int64
	Status     *string
}

// UpdateStatusRequest asks to overwrite an appointment's status.
type UpdateStatusRequest struct {
	Status    string
	ChangedBy int64
	Note      *string
}

// CancelRequest asks to cancel an appointment with a reason.
type CancelRequest struct {
	Reason    string
	ChangedBy int64
}

// ToDomainStatus validates and converts a status string.
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return status, nil
}

// FromDomainAppointment converts a domain appointment into the service view.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 a.ID,
		CustomerID:         a.CustomerID,
		DeviceID:           a.DeviceID,
		TimeSlotID:         a.TimeSlotID,
		StoreID:            a.StoreID,
		ScheduledDate:      a.ScheduledDate,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.ScheduledStart != nil {
		s := a.ScheduledStart.String()
		resp.ScheduledStart = &s
	}
	if a.ScheduledEnd != nil {
		s := a.ScheduledEnd.String()
		resp.ScheduledEnd = &s
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain appointments.
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]*AppointmentResponse, len(list))
	for i, a := range list {
		appointments[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	}
}

// FromDomainHistory converts a status history trail.
func FromDomainHistory(entries []*domain.StatusHistoryEntry) []*HistoryEntryResponse {
	result := make([]*HistoryEntryResponse, len(entries))
	for i, e := range entries {
		resp := &HistoryEntryResponse{
			ID:        e.ID,
			NewStatus: string(e.NewStatus),
			ChangedBy: e.ChangedBy,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		}
		if e.OldStatus != nil {
			s := string(*e.OldStatus)
			resp.OldStatus = &s
		}
		result[i] = resp
	}
	return result
}
