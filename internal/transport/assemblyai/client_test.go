package assemblyai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/upload" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("unexpected auth header: %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "RIFF-audio" {
			t.Errorf("unexpected body: %q", string(body))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"upload_url": "https://cdn.example/audio/1"}`))
	}))
	defer server.Close()

	c := New(Config{APIKey: "test-key", BaseURL: server.URL})
	got, err := c.Upload(context.Background(), strings.NewReader("RIFF-audio"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got != "https://cdn.example/audio/1" {
		t.Errorf("unexpected upload url: %q", got)
	}
}

func TestClient_StartTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/transcript" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["audio_url"] != "https://cdn.example/audio/1" {
			t.Errorf("unexpected audio_url: %q", req["audio_url"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "job-42", "status": "queued"}`))
	}))
	defer server.Close()

	id, err := New(Config{APIKey: "k", BaseURL: server.URL}).StartTranscript(context.Background(), "https://cdn.example/audio/1")
	if err != nil {
		t.Fatalf("StartTranscript failed: %v", err)
	}
	if id != "job-42" {
		t.Errorf("unexpected id: %q", id)
	}
}

func TestClient_GetTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v2/transcript/job-42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "job-42", "status": "completed", "text": "we pack turmeric by hand"}`))
	}))
	defer server.Close()

	job, err := New(Config{APIKey: "k", BaseURL: server.URL}).GetTranscript(context.Background(), "job-42")
	if err != nil {
		t.Fatalf("GetTranscript failed: %v", err)
	}
	if !job.Done() || job.Failed() || job.Text != "we pack turmeric by hand" {
		t.Errorf("unexpected job: %+v", job)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Authentication error, API token missing/invalid"}`))
	}))
	defer server.Close()

	c := New(Config{APIKey: "bad", BaseURL: server.URL})
	if _, err := c.Upload(context.Background(), strings.NewReader("x")); err == nil {
		t.Error("expected upload error")
	}
	if _, err := c.StartTranscript(context.Background(), "u"); err == nil {
		t.Error("expected start error")
	}
	if _, err := c.GetTranscript(context.Background(), "id"); err == nil {
		t.Error("expected poll error")
	}
}

func TestClient_MissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(Config{APIKey: "k", BaseURL: server.URL})
	if _, err := c.Upload(context.Background(), strings.NewReader("x")); err == nil {
		t.Error("expected error for missing upload_url")
	}
	if _, err := c.StartTranscript(context.Background(), "u"); err == nil {
		t.Error("expected error for missing id")
	}
}
