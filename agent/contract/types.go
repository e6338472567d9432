package contract

type PersonaID string

const (
	PersonaCustomerServiceManager PersonaID = "customer_service_manager"
	PersonaAppointmentSpecialist  PersonaID = "appointment_booking_specialist"
	PersonaServiceConsultant      PersonaID = "service_consultant"
	PersonaPricingSpecialist      PersonaID = "pricing_payment_specialist"
	PersonaSupportAgent           PersonaID = "customer_support_agent"
)

// ToolName is the closed enumeration of operations a persona may allow-list.
type ToolName string

const (
	ToolGetCustomerInfo      ToolName = "get_customer_info"
	ToolSearchKnowledgeBase  ToolName = "search_knowledge_base"
	ToolGetAppointmentStatus ToolName = "get_appointment_status"
	ToolMakeAppointment      ToolName = "make_appointment"
	ToolCheckAvailability    ToolName = "check_availability"
	ToolGetServicesAndPrices ToolName = "get_services_and_prices"
)

// Category is a request trigger category produced by the router.
type Category string

const (
	CategoryAppointment    Category = "appointment"
	CategoryRecommendation Category = "recommendation"
	CategoryPricing        Category = "pricing"
	CategoryComplaint      Category = "complaint"
	CategoryInformation    Category = "information"
)

// Persona is an immutable role definition bound to a tool allow-list.
type Persona struct {
	ID        PersonaID  `json:"id"`
	Role      string     `json:"role"`
	Goal      string     `json:"goal"`
	Backstory string     `json:"backstory"`
	Tools     []ToolName `json:"tools"`
}

// Task is a generated instruction bound to exactly one persona. Tasks are
// built fresh per request and never persisted.
type Task struct {
	Persona        PersonaID `json:"persona"`
	Description    string    `json:"description"`
	ExpectedOutput string    `json:"expected_output"`
}

// Plan is what the execution engine receives: the active personas, the
// composed tasks in trigger order, and the memory toggle (always off here).
type Plan struct {
	Personas []Persona `json:"personas"`
	Tasks    []Task    `json:"tasks"`
	Memory   bool      `json:"memory"`
}

// Request is the process entry surface: a customer name, free request text,
// and an optional bag of structured details consumed by the task composer.
type Request struct {
	CustomerName string            `json:"customer_name"`
	Text         string            `json:"text"`
	Details      map[string]string `json:"details,omitempty"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
