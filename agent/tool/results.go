package tool

import storex "github.com/premierbarber/barber-crew/agent/store"

// Status tags every tool result. Not-found and unavailable conditions are
// statuses, not errors; tools only return hard errors for malformed internal
// state.
type Status string

const (
	StatusOK               Status = "ok"
	StatusFound            Status = "found"
	StatusNotFound         Status = "not_found"
	StatusNoAppointments   Status = "no_appointments"
	StatusCustomerNotFound Status = "customer_not_found"
	StatusConfirmed        Status = "confirmed"
	StatusUnavailable      Status = "unavailable"
	StatusBarberNotFound   Status = "barber_not_found"
)

type CustomerInfoResult struct {
	Status   Status         `json:"status"`
	Customer storex.Customer `json:"customer,omitempty"`
	Message  string         `json:"message,omitempty"`
}

type KnowledgeResult struct {
	Status  Status `json:"status"`
	Content string `json:"content"`
}

type AppointmentStatusResult struct {
	Status       Status               `json:"status"`
	Appointment  *storex.Appointment  `json:"appointment,omitempty"`
	Appointments []storex.Appointment `json:"appointments,omitempty"`
	Count        int                  `json:"count,omitempty"`
	Message      string               `json:"message,omitempty"`
}

type BookingResult struct {
	Status       Status             `json:"status"`
	Appointment  storex.Appointment `json:"appointment,omitempty"`
	Alternatives []string           `json:"alternatives,omitempty"`
	Message      string             `json:"message,omitempty"`
	Notification string             `json:"notification,omitempty"`
}

type AvailabilityResult struct {
	Status   Status              `json:"status"`
	Weekday  string              `json:"weekday"`
	Barber   string              `json:"barber,omitempty"`
	Slots    []string            `json:"slots,omitempty"`
	ByBarber map[string][]string `json:"by_barber,omitempty"`
	Barbers  []string            `json:"barbers,omitempty"`
	Message  string              `json:"message,omitempty"`
}

type ServiceListing struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

type ServicesResult struct {
	Status   Status           `json:"status"`
	Services []ServiceListing `json:"services"`
}
