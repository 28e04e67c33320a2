package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeometryClientModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/model" {
			t.Errorf("path %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type %q", ct)
		}

		body, _ := io.ReadAll(r.Body)
		var req struct {
			BHK   int             `json:"bhk"`
			Sqft  int             `json:"sqft"`
			Rooms json.RawMessage `json:"rooms"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("bad body: %v", err)
		}
		if req.BHK != 3 || req.Sqft != 1500 {
			t.Errorf("request %+v", req)
		}

		w.Write([]byte("glTF-payload"))
	}))
	defer srv.Close()

	client := NewGeometryClient(srv.URL)
	data, err := client.Model(context.Background(), 3, 1500, json.RawMessage(`[{"name":"Bedroom"}]`))
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if string(data) != "glTF-payload" {
		t.Errorf("got %q", data)
	}
}

func TestGeometryClientPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/plan" {
			t.Errorf("path %q", r.URL.Path)
		}
		w.Write([]byte("<svg></svg>"))
	}))
	defer srv.Close()

	svg, err := NewGeometryClient(srv.URL).Plan(context.Background(), 2)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if svg != "<svg></svg>" {
		t.Errorf("got %q", svg)
	}
}

func TestGeometryClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewGeometryClient(srv.URL).Model(context.Background(), 2, 1000, nil); err == nil {
		t.Error("expected error for 500 upstream")
	}
}
