package get_availability

import "github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"

// countBookingsBySlot groups the occupying appointments by slot and
// counts each group. An appointment occupies exactly one capacity unit
// when its status is non-terminal and it references a slot; canceled and
// no_show rows, and rows without a slot, contribute nothing. A dangling
// slot reference is harmless here: the count simply never matches an
// active slot and is dropped when reports are built.
func countBookingsBySlot(appointments []*domain.Appointment) map[int64]int {
	counts := make(map[int64]int, len(appointments))

	for _, appt := range appointments {
		if !appt.OccupiesAnySlot() {
			continue
		}
		counts[*appt.TimeSlotID]++
	}

	return counts
}

// buildReports derives one availability report per active slot,
// preserving the slot iteration order. A slot absent from counts has
// zero bookings and is maximally available.
func buildReports(slots []*domain.TimeSlot, counts map[int64]int) []domain.SlotAvailability {
	reports := make([]domain.SlotAvailability, len(slots))

	for i, slot := range slots {
		reports[i] = domain.NewSlotAvailability(slot, counts[slot.ID])
	}

	return reports
}
