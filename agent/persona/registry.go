package persona

import (
	_ "embed"
	"strings"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

var (
	//go:embed template/customer_service_manager.txt
	managerBackstoryRaw string

	//go:embed template/appointment_booking_specialist.txt
	appointmentBackstoryRaw string

	//go:embed template/service_consultant.txt
	consultantBackstoryRaw string

	//go:embed template/pricing_payment_specialist.txt
	pricingBackstoryRaw string

	//go:embed template/customer_support_agent.txt
	supportBackstoryRaw string
)

// The five fixed personas. There is no dynamic registration; the tool lists
// double as the capability sets enforced by the gateway.
var personas = map[contractx.PersonaID]contractx.Persona{
	contractx.PersonaCustomerServiceManager: {
		ID:   contractx.PersonaCustomerServiceManager,
		Role: "Customer Service Manager",
		Goal: "Provide excellent customer service by helping customers with appointments, " +
			"answering questions about services, and resolving any issues they may have",
		Backstory: strings.TrimSpace(managerBackstoryRaw),
		Tools: []contractx.ToolName{
			contractx.ToolGetCustomerInfo,
			contractx.ToolSearchKnowledgeBase,
			contractx.ToolGetAppointmentStatus,
			contractx.ToolMakeAppointment,
			contractx.ToolCheckAvailability,
			contractx.ToolGetServicesAndPrices,
		},
	},
	contractx.PersonaAppointmentSpecialist: {
		ID:   contractx.PersonaAppointmentSpecialist,
		Role: "Appointment Booking Specialist",
		Goal: "Efficiently schedule appointments, manage the booking calendar, and ensure " +
			"optimal time slot utilization for all barbers",
		Backstory: strings.TrimSpace(appointmentBackstoryRaw),
		Tools: []contractx.ToolName{
			contractx.ToolCheckAvailability,
			contractx.ToolMakeAppointment,
			contractx.ToolGetAppointmentStatus,
			contractx.ToolGetCustomerInfo,
		},
	},
	contractx.PersonaServiceConsultant: {
		ID:   contractx.PersonaServiceConsultant,
		Role: "Service Consultant",
		Goal: "Provide expert hair care advice, recommend appropriate services, and educate " +
			"customers about proper hair maintenance",
		Backstory: strings.TrimSpace(consultantBackstoryRaw),
		Tools: []contractx.ToolName{
			contractx.ToolSearchKnowledgeBase,
			contractx.ToolGetServicesAndPrices,
			contractx.ToolGetCustomerInfo,
		},
	},
	contractx.PersonaPricingSpecialist: {
		ID:   contractx.PersonaPricingSpecialist,
		Role: "Pricing and Payment Specialist",
		Goal: "Provide accurate pricing information, explain payment options, and handle " +
			"billing inquiries with transparency and professionalism",
		Backstory: strings.TrimSpace(pricingBackstoryRaw),
		Tools: []contractx.ToolName{
			contractx.ToolGetServicesAndPrices,
			contractx.ToolSearchKnowledgeBase,
			contractx.ToolGetCustomerInfo,
		},
	},
	contractx.PersonaSupportAgent: {
		ID:   contractx.PersonaSupportAgent,
		Role: "Customer Support Agent",
		Goal: "Resolve customer issues promptly and professionally, ensure customer " +
			"satisfaction, and maintain positive relationships",
		Backstory: strings.TrimSpace(supportBackstoryRaw),
		Tools: []contractx.ToolName{
			contractx.ToolGetCustomerInfo,
			contractx.ToolGetAppointmentStatus,
			contractx.ToolSearchKnowledgeBase,
			contractx.ToolMakeAppointment,
		},
	},
}

// categoryOwners binds each trigger category to the persona responsible for
// its tasks. Information tasks belong to the manager, who is in the active
// set regardless of routing.
var categoryOwners = map[contractx.Category]contractx.PersonaID{
	contractx.CategoryAppointment:    contractx.PersonaAppointmentSpecialist,
	contractx.CategoryRecommendation: contractx.PersonaServiceConsultant,
	contractx.CategoryPricing:        contractx.PersonaPricingSpecialist,
	contractx.CategoryComplaint:      contractx.PersonaSupportAgent,
	contractx.CategoryInformation:    contractx.PersonaCustomerServiceManager,
}

// Get returns a persona definition by id.
func Get(id contractx.PersonaID) (contractx.Persona, bool) {
	p, ok := personas[id]
	return p, ok
}

// ForCategory returns the persona that owns a trigger category.
func ForCategory(c contractx.Category) (contractx.PersonaID, bool) {
	id, ok := categoryOwners[c]
	return id, ok
}

// Allows reports whether a persona's capability set includes a tool.
func Allows(id contractx.PersonaID, tool contractx.ToolName) bool {
	p, ok := personas[id]
	if !ok {
		return false
	}
	for _, t := range p.Tools {
		if t == tool {
			return true
		}
	}
	return false
}

// IDs returns every persona id in a stable order.
func IDs() []contractx.PersonaID {
	return []contractx.PersonaID{
		contractx.PersonaCustomerServiceManager,
		contractx.PersonaAppointmentSpecialist,
		contractx.PersonaServiceConsultant,
		contractx.PersonaPricingSpecialist,
		contractx.PersonaSupportAgent,
	}
}
