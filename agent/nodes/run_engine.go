package crewnode

import (
	"context"
	"fmt"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

func RunEngine(ctx context.Context, in *GraphState, engine contractx.Engine) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if len(in.Plan.Tasks) == 0 {
		return nil, fmt.Errorf("%w: plan has no tasks", contractx.ErrValidation)
	}

	out, err := engine.Run(ctx, in.Plan)
	if err != nil {
		return nil, err
	}
	in.Reply = out
	return in, nil
}
