package crewnode

import (
	"fmt"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	personax "github.com/premierbarber/barber-crew/agent/persona"
	taskx "github.com/premierbarber/barber-crew/agent/task"
)

// ComposeTasks turns the triggered categories into the execution plan. The
// customer service manager always opens the active set; each category then
// adds its persona once, in trigger order, with one composed task each. With
// no triggers the plan degrades to the single general-inquiry recommendation.
func ComposeTasks(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	input := taskx.Input{
		CustomerName: in.Request.CustomerName,
		RequestText:  in.Request.Text,
		Details:      in.Request.Details,
	}

	active := []contractx.PersonaID{contractx.PersonaCustomerServiceManager}
	seen := map[contractx.PersonaID]struct{}{
		contractx.PersonaCustomerServiceManager: {},
	}
	var tasks []contractx.Task

	appendPersona := func(id contractx.PersonaID) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		active = append(active, id)
	}

	if in.Fallback {
		t, err := taskx.ComposeFallback(input)
		if err != nil {
			return nil, err
		}
		appendPersona(t.Persona)
		tasks = append(tasks, t)
	} else {
		for _, category := range in.Categories {
			t, err := taskx.Compose(category, input)
			if err != nil {
				return nil, err
			}
			appendPersona(t.Persona)
			tasks = append(tasks, t)
		}
	}

	personas := make([]contractx.Persona, 0, len(active))
	for _, id := range active {
		p, ok := personax.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown persona %q", contractx.ErrValidation, id)
		}
		personas = append(personas, p)
	}

	in.Plan = contractx.Plan{
		Personas: personas,
		Tasks:    tasks,
		Memory:   false,
	}
	return in, nil
}
