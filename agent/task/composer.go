package task

import (
	"fmt"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	personax "github.com/premierbarber/barber-crew/agent/persona"
)

// Input carries the request fields the composer may embed in a description.
// Details keys follow the entry-surface contract (preferred_date,
// service_type, membership_status, ...); missing keys render as the fixed
// per-category defaults. The placeholder wording is load-bearing: it is
// part of the text handed to the execution engine.
type Input struct {
	CustomerName string
	RequestText  string
	Details      map[string]string
}

func (in Input) detail(key, fallback string) string {
	if v, ok := in.Details[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Compose builds the task for a trigger category, bound to the category's
// persona.
func Compose(category contractx.Category, in Input) (contractx.Task, error) {
	owner, ok := personax.ForCategory(category)
	if !ok {
		return contractx.Task{}, fmt.Errorf("%w: unknown category %q", contractx.ErrValidation, category)
	}

	switch category {
	case contractx.CategoryAppointment:
		return contractx.Task{
			Persona: owner,
			Description: fmt.Sprintf(
				"Book or update an appointment for %s on %s at %s for service: %s.\nSpecial notes: %s",
				in.CustomerName,
				in.detail("preferred_date", "flexible"),
				in.detail("preferred_time", "flexible"),
				in.detail("service_type", "haircut"),
				in.detail("special_requests", "None"),
			),
			ExpectedOutput: "A confirmation of the appointment with time, date, service, and assigned barber (if available).",
		}, nil

	case contractx.CategoryRecommendation:
		return contractx.Task{
			Persona: owner,
			Description: fmt.Sprintf(
				"Based on the customer profile '%s', hair type '%s', lifestyle '%s',\nand budget '%s', recommend the most suitable grooming services. Special occasion: %s",
				in.detail("profile", "new customer"),
				in.detail("hair_type", "unknown"),
				in.detail("lifestyle", "busy professional"),
				in.detail("budget", "$50-100"),
				in.detail("special_occasions", "None"),
			),
			ExpectedOutput: "A list of recommended grooming services with reasons.",
		}, nil

	case contractx.CategoryPricing:
		return contractx.Task{
			Persona: owner,
			Description: fmt.Sprintf(
				"The customer is interested in the following services: %s.\nThey are a %s, looking for pricing details and deals (package available: %s).\nOther questions: %s",
				in.detail("services_interested", "haircut and beard trim"),
				in.detail("membership_status", "non-member"),
				in.detail("package_deals", "true"),
				in.detail("pricing_questions", "None"),
			),
			ExpectedOutput: "Clear, transparent pricing information and explanations of any available packages.",
		}, nil

	case contractx.CategoryComplaint:
		return contractx.Task{
			Persona: owner,
			Description: fmt.Sprintf(
				"Handle a customer issue: %s.\nCustomer history: %s. Urgency: %s. Preferred resolution: %s",
				in.detail("issue_description", in.RequestText),
				in.detail("customer_history", "regular customer"),
				in.detail("urgency", "medium"),
				in.detail("preferred_resolution", "not specified"),
			),
			ExpectedOutput: "A proposed resolution or apology that is fair and resolves the concern.",
		}, nil

	case contractx.CategoryInformation:
		return contractx.Task{
			Persona: owner,
			Description: fmt.Sprintf(
				"Provide detailed shop information about '%s' based on the customer's questions.\nQuestions might include: %s",
				in.detail("info_type", "general"),
				in.detail("specific_questions", "none provided"),
			),
			ExpectedOutput: "A friendly and detailed explanation about the shop's services, hours, or general policies.",
		}, nil

	default:
		return contractx.Task{}, fmt.Errorf("%w: unknown category %q", contractx.ErrValidation, category)
	}
}

// ComposeFallback builds the sole task used when no trigger matched: a
// general-inquiry recommendation.
func ComposeFallback(in Input) (contractx.Task, error) {
	return Compose(contractx.CategoryRecommendation, Input{
		CustomerName: in.CustomerName,
		RequestText:  in.RequestText,
		Details: map[string]string{
			"profile":   "general inquiry",
			"hair_type": "unknown",
			"lifestyle": "unknown",
			"budget":    "flexible",
		},
	})
}
