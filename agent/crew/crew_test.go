package crew

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

type fakeEngine struct {
	plan  contractx.Plan
	reply string
	err   error
}

func (f *fakeEngine) Run(_ context.Context, plan contractx.Plan) (string, error) {
	f.plan = plan
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestCrew(t *testing.T, engine *fakeEngine) *Crew {
	t.Helper()
	c, err := New(engine)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func personaIDs(plan contractx.Plan) []contractx.PersonaID {
	ids := make([]contractx.PersonaID, 0, len(plan.Personas))
	for _, p := range plan.Personas {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestNewRequiresEngine(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil engine")
	}
}

func TestHandlePricingRequest(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{reply: "A haircut is $25."}
	c := newTestCrew(t, engine)

	out, err := c.Handle(context.Background(), contractx.Request{
		CustomerName: "John Smith",
		Text:         "I want pricing for a haircut",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if out != "A haircut is $25." {
		t.Fatalf("reply = %q", out)
	}

	ids := personaIDs(engine.plan)
	if len(ids) != 2 || ids[0] != contractx.PersonaCustomerServiceManager || ids[1] != contractx.PersonaPricingSpecialist {
		t.Fatalf("active personas = %v", ids)
	}
	if len(engine.plan.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(engine.plan.Tasks))
	}
	if engine.plan.Tasks[0].Persona != contractx.PersonaPricingSpecialist {
		t.Fatalf("task persona = %s", engine.plan.Tasks[0].Persona)
	}
	if engine.plan.Memory {
		t.Fatal("memory must be off")
	}
}

func TestHandleMultipleTriggersInOrder(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{reply: "done"}
	c := newTestCrew(t, engine)

	_, err := c.Handle(context.Background(), contractx.Request{
		CustomerName: "Sarah Johnson",
		Text:         "I need an appointment and the price of a beard trim",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	ids := personaIDs(engine.plan)
	want := []contractx.PersonaID{
		contractx.PersonaCustomerServiceManager,
		contractx.PersonaAppointmentSpecialist,
		contractx.PersonaPricingSpecialist,
	}
	if len(ids) != len(want) {
		t.Fatalf("active personas = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("active personas = %v, want %v", ids, want)
		}
	}

	if len(engine.plan.Tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(engine.plan.Tasks))
	}
	if engine.plan.Tasks[0].Persona != contractx.PersonaAppointmentSpecialist ||
		engine.plan.Tasks[1].Persona != contractx.PersonaPricingSpecialist {
		t.Fatalf("task order = [%s, %s]", engine.plan.Tasks[0].Persona, engine.plan.Tasks[1].Persona)
	}
}

func TestHandleInformationRequestDeduplicatesManager(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{reply: "open 9 to 6"}
	c := newTestCrew(t, engine)

	_, err := c.Handle(context.Background(), contractx.Request{
		Text: "what are your hours",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	// The information category is owned by the manager, who already opens
	// the active set; the persona list must not repeat.
	ids := personaIDs(engine.plan)
	if len(ids) != 1 || ids[0] != contractx.PersonaCustomerServiceManager {
		t.Fatalf("active personas = %v", ids)
	}
	if len(engine.plan.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(engine.plan.Tasks))
	}
}

func TestHandleFallback(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{reply: "how about a classic cut"}
	c := newTestCrew(t, engine)

	_, err := c.Handle(context.Background(), contractx.Request{
		CustomerName: "John Smith",
		Text:         "hello there",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(engine.plan.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(engine.plan.Tasks))
	}
	task := engine.plan.Tasks[0]
	if task.Persona != contractx.PersonaServiceConsultant {
		t.Fatalf("fallback persona = %s", task.Persona)
	}
	if !strings.Contains(task.Description, "'general inquiry'") {
		t.Fatalf("fallback description = %q", task.Description)
	}
}

func TestHandleEmptyText(t *testing.T) {
	t.Parallel()

	c := newTestCrew(t, &fakeEngine{reply: "x"})

	_, err := c.Handle(context.Background(), contractx.Request{Text: "   "})
	if !errors.Is(err, contractx.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestRunDegradesOnError(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{err: errors.New("model timeout")}
	c := newTestCrew(t, engine)

	out := c.Run(context.Background(), contractx.Request{Text: "price please"})
	if !strings.HasPrefix(out, "Error running crew: ") {
		t.Fatalf("degraded reply = %q", out)
	}
	if !strings.Contains(out, "model timeout") {
		t.Fatalf("degraded reply must carry the cause: %q", out)
	}
}

func TestRunDegradesOnEmptyReply(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{reply: "   "}
	c := newTestCrew(t, engine)

	out := c.Run(context.Background(), contractx.Request{Text: "price please"})
	if !strings.HasPrefix(out, "Error running crew: ") {
		t.Fatalf("degraded reply = %q", out)
	}
}
