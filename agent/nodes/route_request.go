package crewnode

import (
	"fmt"
	"strings"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

type trigger struct {
	category contractx.Category
	keywords []string
}

// Triggers are substring tests over the lowercased request text, evaluated
// independently and in this fixed order; overlapping matches all fire.
// "price" also sits in the knowledge-base policy keyword set, so pricing
// questions can surface policy text too.
var triggers = []trigger{
	{contractx.CategoryAppointment, []string{"appointment"}},
	{contractx.CategoryRecommendation, []string{"recommend", "service"}},
	{contractx.CategoryPricing, []string{"price", "cost"}},
	{contractx.CategoryComplaint, []string{"complaint", "issue"}},
	{contractx.CategoryInformation, []string{"information", "hours"}},
}

func RouteRequest(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	for _, tr := range triggers {
		for _, kw := range tr.keywords {
			if strings.Contains(in.LoweredText, kw) {
				in.Categories = append(in.Categories, tr.category)
				break
			}
		}
	}

	if len(in.Categories) == 0 {
		in.Fallback = true
	}
	return in, nil
}
