package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	llmx "github.com/premierbarber/barber-crew/agent/llm"
	personax "github.com/premierbarber/barber-crew/agent/persona"
)

// maxToolRounds bounds the tool loop per task so a model that keeps
// requesting tools cannot spin forever.
const maxToolRounds = 3

// Engine carries out a plan with one tool-bound model runner per persona.
// It is the concrete execution collaborator; the crew only sees the
// contract interface.
type Engine struct {
	workers map[contractx.PersonaID]*worker
	gateway contractx.ToolGateway
}

var _ contractx.Engine = (*Engine)(nil)

type worker struct {
	persona contractx.Persona
	runner  compose.Runnable[map[string]any, *schema.Message]
	allowed map[string]struct{}
}

func New(ctx context.Context, cfg llmx.Config, gateway contractx.ToolGateway) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gateway == nil {
		return nil, fmt.Errorf("%w: tool gateway is required", contractx.ErrValidation)
	}

	workers := make(map[contractx.PersonaID]*worker, len(personax.IDs()))
	for _, id := range personax.IDs() {
		w, err := newWorker(ctx, cfg, id)
		if err != nil {
			return nil, err
		}
		workers[id] = w
	}

	return &Engine{workers: workers, gateway: gateway}, nil
}

func newWorker(ctx context.Context, cfg llmx.Config, id contractx.PersonaID) (*worker, error) {
	p, ok := personax.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: unknown persona %q", contractx.ErrValidation, id)
	}

	modelCfg := cfg.OpenRouterFor(id)
	chatModel, err := modelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create model for persona=%s: %v", contractx.ErrModelInvoke, id, err)
	}

	return newWorkerFromModel(ctx, p, chatModel)
}

func newWorkerFromModel(ctx context.Context, p contractx.Persona, chatModel einomodel.ToolCallingChatModel) (*worker, error) {
	id := p.ID
	infos := personax.ToolInfos(id)
	toolModel, err := chatModel.WithTools(infos)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools for persona=%s: %v", contractx.ErrModelInvoke, id, err)
	}

	runner, err := compileWorkerGraph(ctx, toolModel, systemPrompt(p), string(id))
	if err != nil {
		return nil, fmt.Errorf("%w: compile worker graph for persona=%s: %v", contractx.ErrModelInvoke, id, err)
	}

	allowed := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		if info == nil || strings.TrimSpace(info.Name) == "" {
			continue
		}
		allowed[info.Name] = struct{}{}
	}

	return &worker{persona: p, runner: runner, allowed: allowed}, nil
}

// Run executes each task with its persona's worker and joins the final
// texts, in task order, into one aggregate result.
func (e *Engine) Run(ctx context.Context, plan contractx.Plan) (string, error) {
	if len(plan.Tasks) == 0 {
		return "", fmt.Errorf("%w: plan has no tasks", contractx.ErrValidation)
	}

	sections := make([]string, 0, len(plan.Tasks))
	for _, t := range plan.Tasks {
		w, ok := e.workers[t.Persona]
		if !ok {
			return "", fmt.Errorf("%w: no worker for persona=%s", contractx.ErrValidation, t.Persona)
		}
		text, err := e.runTask(ctx, w, t)
		if err != nil {
			return "", err
		}
		sections = append(sections, text)
	}
	return strings.Join(sections, "\n\n"), nil
}

func (e *Engine) runTask(ctx context.Context, w *worker, t contractx.Task) (string, error) {
	var toolResults []contractx.ToolResult

	for round := 0; round <= maxToolRounds; round++ {
		payload := map[string]any{
			"task":            t.Description,
			"expected_output": t.ExpectedOutput,
		}
		if len(toolResults) > 0 {
			payload["tool_results"] = toolResults
		}
		input, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("%w: marshal task payload: %v", contractx.ErrValidation, err)
		}

		msg, err := w.runner.Invoke(ctx, map[string]any{
			"input": string(input),
		})
		if err != nil {
			return "", fmt.Errorf("%w: persona=%s invoke: %v", contractx.ErrModelInvoke, w.persona.ID, err)
		}
		if msg == nil {
			return "", fmt.Errorf("%w: empty model response", contractx.ErrSchemaViolation)
		}

		if len(msg.ToolCalls) == 0 || round == maxToolRounds {
			content := strings.TrimSpace(msg.Content)
			if content == "" {
				return "", fmt.Errorf("%w: persona=%s returned empty content", contractx.ErrSchemaViolation, w.persona.ID)
			}
			return content, nil
		}

		reqs, err := toToolRequests(msg.ToolCalls)
		if err != nil {
			return "", err
		}
		for _, req := range reqs {
			if _, ok := w.allowed[req.Tool]; !ok {
				return "", fmt.Errorf("%w: tool=%s is not allowed for persona=%s",
					contractx.ErrSchemaViolation, req.Tool, w.persona.ID)
			}
		}

		results, err := e.gateway.Execute(ctx, w.persona.ID, reqs)
		if err != nil {
			return "", fmt.Errorf("%w: execute tools for persona=%s: %v", contractx.ErrModelInvoke, w.persona.ID, err)
		}
		toolResults = append(toolResults, results...)
	}

	return "", fmt.Errorf("%w: persona=%s produced no final content", contractx.ErrSchemaViolation, w.persona.ID)
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{Tool: tool, Args: args})
	}
	return reqs, nil
}

func systemPrompt(p contractx.Persona) string {
	return fmt.Sprintf(
		"You are the %s at Premier Barber Shop.\n\nGoal: %s\n\n%s\n\n"+
			"You receive one task as JSON with fields task, expected_output, and "+
			"optionally tool_results from your own earlier tool calls. Use only "+
			"your available tools, then answer the task directly in plain text.",
		p.Role, p.Goal, p.Backstory,
	)
}
