package crew

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	crewnode "github.com/premierbarber/barber-crew/agent/nodes"
)

func (c *Crew) compileHandleRequestGraph(
	ctx context.Context,
) (compose.Runnable[contractx.Request, crewnode.GraphOutput], error) {
	graph := compose.NewGraph[contractx.Request, crewnode.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in contractx.Request) (*crewnode.GraphState, error) {
			return crewnode.ValidateRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("route_request",
		compose.InvokableLambda(func(ctx context.Context, in *crewnode.GraphState) (*crewnode.GraphState, error) {
			return crewnode.RouteRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node route_request: %w", err)
	}

	if err := graph.AddLambdaNode("compose_tasks",
		compose.InvokableLambda(func(ctx context.Context, in *crewnode.GraphState) (*crewnode.GraphState, error) {
			return crewnode.ComposeTasks(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node compose_tasks: %w", err)
	}

	if err := graph.AddLambdaNode("run_engine",
		compose.InvokableLambda(func(ctx context.Context, in *crewnode.GraphState) (*crewnode.GraphState, error) {
			return crewnode.RunEngine(ctx, in, c.engine)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_engine: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *crewnode.GraphState) (crewnode.GraphOutput, error) {
			return crewnode.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "route_request"},
		{"route_request", "compose_tasks"},
		{"compose_tasks", "run_engine"},
		{"run_engine", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("crew.handle_request"))
	if err != nil {
		return nil, fmt.Errorf("compile crew graph: %w", err)
	}
	return runner, nil
}
