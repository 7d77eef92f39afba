package ro

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetMonster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Monster/1002" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Errorf("missing apiKey, got query %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("server") != "iRO" {
			t.Errorf("missing server, got query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"id":1002,"name":"Poring","stats":{"level":1,"health":50,"attack":{"minimum":7,"maximum":10}}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "iRO")
	c.BaseURL = srv.URL

	m, err := c.GetMonster(1002)
	if err != nil {
		t.Fatalf("GetMonster failed: %v", err)
	}
	if m.Name != "Poring" || m.Stats.Health != 50 || m.Stats.Attack.Maximum != 10 {
		t.Errorf("unexpected monster: %+v", m)
	}
}

func TestGetItemNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("test-key", "")
	c.BaseURL = srv.URL

	_, err := c.GetItem(999999)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
}
