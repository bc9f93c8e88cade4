package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume-optimizer/internal/llm"
)

func newTestClient(t *testing.T, srv *httptest.Server, apiKey string, timeout time.Duration) *Client {
	t.Helper()
	c, err := NewClient(srv.URL, apiKey, "test-model", timeout)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func completionBody(content string) string {
	resp := map[string]any{
		"id":    "cmpl-1",
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  Go\nPython  ")))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "test-key", time.Second)
	got, err := c.Complete(context.Background(), "rewrite this")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Go\nPython" {
		t.Fatalf("Complete = %q, want trimmed content", got)
	}

	if gotReq.Model != "test-model" {
		t.Fatalf("request model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "rewrite this" {
		t.Fatalf("unexpected messages %+v", gotReq.Messages)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0 {
		t.Fatalf("expected temperature zero, got %v", gotReq.Temperature)
	}
	if gotReq.MaxTokens != maxTokens {
		t.Fatalf("expected max_tokens %d, got %d", maxTokens, gotReq.MaxTokens)
	}
}

func TestCompleteMissingKeyUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer " {
			http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
			return
		}
		w.Write([]byte(completionBody("ok")))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "", time.Second)
	_, err := c.Complete(context.Background(), "prompt")

	var upErr *llm.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *llm.UpstreamError, got %T: %v", err, err)
	}
	if upErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 status, got %d", upErr.Status)
	}
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "key", time.Second)
	_, err := c.Complete(context.Background(), "prompt")

	var upErr *llm.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *llm.UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 status, got %d", upErr.Status)
	}
}

func TestCompleteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "key", time.Second)
	var upErr *llm.UpstreamError
	if _, err := c.Complete(context.Background(), "prompt"); !errors.As(err, &upErr) {
		t.Fatalf("expected *llm.UpstreamError for malformed body, got %v", err)
	}
}

func TestCompleteMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"cmpl-1","choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "key", time.Second)
	var upErr *llm.UpstreamError
	if _, err := c.Complete(context.Background(), "prompt"); !errors.As(err, &upErr) {
		t.Fatalf("expected *llm.UpstreamError for missing choices, got %v", err)
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("   ")))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "key", time.Second)
	var upErr *llm.UpstreamError
	if _, err := c.Complete(context.Background(), "prompt"); !errors.As(err, &upErr) {
		t.Fatalf("expected *llm.UpstreamError for empty content, got %v", err)
	}
}

func TestCompleteTimeoutBounded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv, "key", 100*time.Millisecond)

	start := time.Now()
	_, err := c.Complete(context.Background(), "prompt")
	elapsed := time.Since(start)

	var upErr *llm.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *llm.UpstreamError on timeout, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("timeout not bounded, took %v", elapsed)
	}
}

func TestCompleteHonorsContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv, "key", time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := c.Complete(ctx, "prompt")
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("cancellation not honored promptly")
	}
}
