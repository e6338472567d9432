package store

import (
	"fmt"
	"strings"
	"sync"
)

// Customer is a seeded customer record. The map key is the normalized name
// (lowercase, spaces replaced by underscores); phone and email are matched
// raw during fallback lookup.
type Customer struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	HairType        string   `json:"hair_type"`
	PreferredBarber string   `json:"preferred_barber"`
	LastVisit       string   `json:"last_visit"`
	Preferences     []string `json:"preferences"`
}

// Appointment references its customer by display name, not by key; bookings
// carry whatever name the caller gave.
type Appointment struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Barber   string `json:"barber"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Service  string `json:"service"`
	Status   string `json:"status"`
}

type Service struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
}

// Store owns every mock collection. It is constructed once with the fixed
// seed; the only mutation is the appointment append. The mutex guards the
// read-modify-append id counter, which HTTP handlers hit concurrently.
type Store struct {
	mu           sync.Mutex
	customers    map[string]Customer
	customerKeys []string
	appointments []Appointment
	services     []Service
	barbers      []string
	schedules    map[string]map[string][]string

	hairCareTips  []string
	stylingAdvice []string
	shopPolicies  []string
}

// NormalizeIdentifier lowercases an identifier and replaces spaces with
// underscores, producing the customer map key form.
func NormalizeIdentifier(identifier string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(identifier)), " ", "_")
}

// Customer looks up a customer by normalized key.
func (s *Store) Customer(key string) (Customer, bool) {
	c, ok := s.customers[key]
	return c, ok
}

// CustomerByContact scans customers in seed order for an exact raw match on
// phone or email.
func (s *Store) CustomerByContact(raw string) (Customer, bool) {
	for _, key := range s.customerKeys {
		c := s.customers[key]
		if c.Phone == raw || c.Email == raw {
			return c, true
		}
	}
	return Customer{}, false
}

// Appointments returns a copy of the appointment collection.
func (s *Store) Appointments() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// AppendAppointment assigns the next sequential id ("apt" + zero-padded
// collection size + 1, width 3), appends the record, and returns it.
func (s *Store) AppendAppointment(a Appointment) Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = fmt.Sprintf("apt%03d", len(s.appointments)+1)
	s.appointments = append(s.appointments, a)
	return a
}

// AppointmentCount reports the current collection size.
func (s *Store) AppointmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

// Services returns the service list in its fixed seed order.
func (s *Store) Services() []Service {
	out := make([]Service, len(s.services))
	copy(out, s.services)
	return out
}

// Barbers returns barber display names in fixed seed order.
func (s *Store) Barbers() []string {
	out := make([]string, len(s.barbers))
	copy(out, s.barbers)
	return out
}

// Slots returns a barber's slot list for a lowercase weekday. A barber with
// no entry for the weekday has zero slots that day; the second return value
// reports whether the barber exists at all.
func (s *Store) Slots(barber string, weekday string) ([]string, bool) {
	sched, ok := s.schedules[barber]
	if !ok {
		return nil, false
	}
	slots := sched[weekday]
	out := make([]string, len(slots))
	copy(out, slots)
	return out, true
}

func (s *Store) HairCareTips() []string {
	return s.hairCareTips
}

func (s *Store) StylingAdvice() []string {
	return s.stylingAdvice
}

func (s *Store) ShopPolicies() []string {
	return s.shopPolicies
}
