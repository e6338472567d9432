package tool

import (
	"strings"
	"time"
)

var weekdayNames = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

// weekdayFor derives a lowercase weekday from free-text input: a literal
// weekday name wins, then an ISO date is parsed, and anything unparseable
// falls back to monday rather than erroring.
func weekdayFor(date string) string {
	d := strings.ToLower(strings.TrimSpace(date))
	if _, ok := weekdayNames[d]; ok {
		return d
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(date)); err == nil {
		return strings.ToLower(t.Weekday().String())
	}
	return "monday"
}

func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CheckAvailability reports open slots for the derived weekday. With a barber
// name it returns that barber's list (or every known barber's name when the
// barber is unknown); without one it returns the per-barber map, omitting
// barbers with no slots that day.
func (s *Set) CheckAvailability(date string, barberName string) AvailabilityResult {
	weekday := weekdayFor(date)

	if strings.TrimSpace(barberName) != "" {
		barber := titleCase(barberName)
		slots, ok := s.store.Slots(barber, weekday)
		if !ok {
			return AvailabilityResult{
				Status:  StatusBarberNotFound,
				Weekday: weekday,
				Barbers: s.store.Barbers(),
				Message: "unknown barber " + barber + "; available barbers: " + strings.Join(s.store.Barbers(), ", "),
			}
		}
		return AvailabilityResult{
			Status:  StatusOK,
			Weekday: weekday,
			Barber:  barber,
			Slots:   slots,
		}
	}

	byBarber := make(map[string][]string)
	for _, barber := range s.store.Barbers() {
		slots, ok := s.store.Slots(barber, weekday)
		if !ok || len(slots) == 0 {
			continue
		}
		byBarber[barber] = slots
	}
	return AvailabilityResult{
		Status:   StatusOK,
		Weekday:  weekday,
		ByBarber: byBarber,
	}
}

// openSlots flattens availability for a booking check: the named barber's
// list when a preference is given, otherwise the union across barbers in
// fixed order with duplicates dropped.
func (s *Set) openSlots(date string, barberName string) ([]string, *AvailabilityResult) {
	avail := s.CheckAvailability(date, barberName)
	if avail.Status == StatusBarberNotFound {
		return nil, &avail
	}
	if strings.TrimSpace(barberName) != "" {
		return avail.Slots, nil
	}

	seen := make(map[string]struct{})
	var union []string
	for _, barber := range s.store.Barbers() {
		for _, slot := range avail.ByBarber[barber] {
			if _, dup := seen[slot]; dup {
				continue
			}
			seen[slot] = struct{}{}
			union = append(union, slot)
		}
	}
	return union, nil
}
