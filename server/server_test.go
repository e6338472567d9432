package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

type fakeCrew struct {
	req   contractx.Request
	reply string
}

func (f *fakeCrew) Run(_ context.Context, req contractx.Request) string {
	f.req = req
	return f.reply
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := New(Config{}, &fakeCrew{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandleRequest(t *testing.T) {
	t.Parallel()

	crew := &fakeCrew{reply: "A haircut is $25."}
	srv := New(Config{}, crew)

	body := `{"customer_name":" John Smith ","request":"price of a haircut","details":{"membership_status":"member"}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var out struct {
		RequestID string `json:"request_id"`
		Result    string `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RequestID == "" {
		t.Fatal("request_id must be set")
	}
	if out.Result != "A haircut is $25." {
		t.Fatalf("result = %q", out.Result)
	}

	if crew.req.CustomerName != "John Smith" {
		t.Fatalf("customer name = %q, want trimmed", crew.req.CustomerName)
	}
	if crew.req.Details["membership_status"] != "member" {
		t.Fatalf("details = %#v", crew.req.Details)
	}
}

func TestHandleRequestDegradedReplyIsStillOK(t *testing.T) {
	t.Parallel()

	crew := &fakeCrew{reply: "Error running crew: model timeout"}
	srv := New(Config{}, crew)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{"request":"price"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(rec, req)

	// Routing and collaborator failures degrade to text, never to 5xx.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error running crew") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandleRequestBadJSON(t *testing.T) {
	t.Parallel()

	srv := New(Config{}, &fakeCrew{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleRequestMissingText(t *testing.T) {
	t.Parallel()

	srv := New(Config{}, &fakeCrew{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{"customer_name":"John Smith"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
