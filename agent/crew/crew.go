package crew

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	crewnode "github.com/premierbarber/barber-crew/agent/nodes"
)

// Crew routes a customer request to the right personas, composes their
// tasks, and hands the plan to the execution engine.
type Crew struct {
	engine contractx.Engine

	graphRunner compose.Runnable[contractx.Request, crewnode.GraphOutput]
}

func New(engine contractx.Engine) (*Crew, error) {
	if engine == nil {
		return nil, errors.New("execution engine is required")
	}

	c := &Crew{engine: engine}

	graphRunner, err := c.compileHandleRequestGraph(context.Background())
	if err != nil {
		return nil, err
	}
	c.graphRunner = graphRunner

	return c, nil
}

// Handle runs one request and returns the engine's aggregate text.
func (c *Crew) Handle(ctx context.Context, req contractx.Request) (string, error) {
	out, err := c.graphRunner.Invoke(ctx, req)
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

// Run is the degrading entry surface: any routing, composition, or
// collaborator failure becomes a descriptive reply string. The caller
// process is never crashed by a request.
func (c *Crew) Run(ctx context.Context, req contractx.Request) string {
	reply, err := c.Handle(ctx, req)
	if err != nil {
		log.Error().Err(err).
			Str("customer", req.CustomerName).
			Msg("crew request failed")
		return fmt.Sprintf("Error running crew: %v", err)
	}
	return reply
}
