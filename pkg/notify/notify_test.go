package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{URL: "", Token: "tok"}); err == nil {
		t.Fatal("expected error for missing url")
	}
	if _, err := NewClient(Config{URL: "://bad", Token: "tok"}); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewClient(Config{URL: "https://sms.example.com", Token: " "}); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestSendSuccess(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"queued"}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, Token: "secret", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	status, err := client.Send(context.Background(), "555-0101", "your appointment is confirmed")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if status != "queued" {
		t.Fatalf("status = %q", status)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotBody.To != "555-0101" || !strings.Contains(gotBody.Message, "confirmed") {
		t.Fatalf("body = %#v", gotBody)
	}
}

func TestSendProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"invalid recipient"}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, Token: "secret"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Send(context.Background(), "555-0101", "hi")
	if err == nil || !strings.Contains(err.Error(), "invalid recipient") {
		t.Fatalf("error = %v", err)
	}
}

func TestSendHTTPFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, Token: "secret"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Send(context.Background(), "555-0101", "hi")
	if err == nil || !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("error = %v", err)
	}
}

func TestSendValidation(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{URL: "https://sms.example.com", Token: "secret"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.Send(context.Background(), "", "hi"); err == nil {
		t.Fatal("expected error for empty phone")
	}
	if _, err := client.Send(context.Background(), "555-0101", "  "); err == nil {
		t.Fatal("expected error for empty message")
	}
}
