package tool

import (
	"context"
	"fmt"
	"strings"

	storex "github.com/premierbarber/barber-crew/agent/store"
)

// GetAppointmentStatus looks up by appointment id when one is given (the
// customer name is ignored for id lookups); otherwise it collects every
// appointment whose customer field equals the name case-insensitively.
func (s *Set) GetAppointmentStatus(customerName string, appointmentID string) AppointmentStatusResult {
	if strings.TrimSpace(appointmentID) != "" {
		for _, a := range s.store.Appointments() {
			if a.ID == appointmentID {
				appt := a
				return AppointmentStatusResult{Status: StatusFound, Appointment: &appt}
			}
		}
		return AppointmentStatusResult{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("no appointment with id %q", appointmentID),
		}
	}

	var matches []storex.Appointment
	for _, a := range s.store.Appointments() {
		if strings.EqualFold(a.Customer, customerName) {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return AppointmentStatusResult{
			Status:  StatusNoAppointments,
			Message: fmt.Sprintf("no appointments found for %s", customerName),
		}
	}
	return AppointmentStatusResult{
		Status:       StatusFound,
		Appointments: matches,
		Count:        len(matches),
	}
}

// MakeAppointment books a slot for a known customer. Unlike GetCustomerInfo,
// only the normalized-name key is recognized here; phone/email values do not
// book. A requested time outside the open slots returns alternatives and
// leaves the collection untouched. Notification delivery is best-effort: its
// outcome is appended to the confirmation but never fails the booking.
func (s *Set) MakeAppointment(ctx context.Context, customerName, service, preferredDate, preferredTime, barberPreference string) BookingResult {
	key := storex.NormalizeIdentifier(customerName)
	cust, ok := s.store.Customer(key)
	if !ok {
		return BookingResult{
			Status:  StatusCustomerNotFound,
			Message: fmt.Sprintf("customer not found: %q", customerName),
		}
	}

	slots, barberErr := s.openSlots(preferredDate, barberPreference)
	if barberErr != nil {
		return BookingResult{
			Status:  StatusBarberNotFound,
			Message: barberErr.Message,
		}
	}

	available := false
	for _, slot := range slots {
		if slot == preferredTime {
			available = true
			break
		}
	}
	if !available {
		return BookingResult{
			Status:       StatusUnavailable,
			Alternatives: slots,
			Message: fmt.Sprintf("%s is not available on %s; available times: %s",
				preferredTime, preferredDate, strings.Join(slots, ", ")),
		}
	}

	barber := "Available"
	if strings.TrimSpace(barberPreference) != "" {
		barber = titleCase(barberPreference)
	}

	appt := s.store.AppendAppointment(storex.Appointment{
		Customer: cust.Name,
		Barber:   barber,
		Date:     preferredDate,
		Time:     preferredTime,
		Service:  service,
		Status:   "confirmed",
	})

	notification := s.notify(ctx, cust, appt)
	return BookingResult{
		Status:      StatusConfirmed,
		Appointment: appt,
		Message: fmt.Sprintf("Appointment %s confirmed for %s: %s on %s at %s with %s. %s",
			appt.ID, cust.Name, appt.Service, appt.Date, appt.Time, appt.Barber, notification),
		Notification: notification,
	}
}

func (s *Set) notify(ctx context.Context, cust storex.Customer, appt storex.Appointment) string {
	message := fmt.Sprintf("Hi %s, your %s appointment is confirmed for %s at %s with %s.",
		cust.Name, appt.Service, appt.Date, appt.Time, appt.Barber)
	status, err := s.notifier.Send(ctx, cust.Phone, message)
	if err != nil {
		return "Notification could not be sent: " + err.Error()
	}
	return "Notification: " + status
}
