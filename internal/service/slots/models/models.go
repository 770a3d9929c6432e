package models

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// SlotResponse is the service-level view of a time slot. MaxBookings is
// the effective capacity, with the business default already applied.
type SlotResponse struct {
	ID          int64
	StoreID     *int64
	Name        string
	StartTime   string
	EndTime     string
	MaxBookings int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlotListResponse wraps a list of slots.
type SlotListResponse struct {
	Slots []*SlotResponse
	Total int
}

// CreateSlotRequest defines a new bookable slot.
type CreateSlotRequest struct {
	StoreID     *int64
	Name        string
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	MaxBookings int    // 0 = use the business default
	IsActive    bool
}

// UpdateSlotRequest rewrites a slot's configuration. Setting IsActive to
// false soft-disables the slot without touching existing appointments.
type UpdateSlotRequest struct {
	Name        string
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	MaxBookings int    // 0 = use the business default
	IsActive    bool
}

// ListSlotsRequest filters the slot list.
type ListSlotsRequest struct {
	StoreID         *int64
	IncludeInactive bool
}

// FromDomainSlot converts a domain slot into the service view.
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		StoreID:     s.StoreID,
		Name:        s.Name,
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		MaxBookings: s.EffectiveMaxBookings(),
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSlotList converts a list of domain slots.
func FromDomainSlotList(list []*domain.TimeSlot) *SlotListResponse {
	slots := make([]*SlotResponse, len(list))
	for i, s := range list {
		slots[i] = FromDomainSlot(s)
	}
	return &SlotListResponse{
		Slots: slots,
		Total: len(slots),
	}
}
