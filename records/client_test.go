package records

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wasif-mahmood1/Todo-app/internal/httpapi"
)

func TestListDecodesRows(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"task":"Buy milk","is_completed":false,"created_at":"2024-06-01T10:00:00Z"},
			{"id":2,"task":"Buy eggs","is_completed":true,"image_path":"img/eggs.png","created_at":"2024-06-01T11:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	tasks, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if gotPath != "/rest/v1/todos" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "select=*&order=created_at.asc" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotKey != "secret" {
		t.Errorf("apikey header = %q", gotKey)
	}

	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[0].Text != "Buy milk" || tasks[0].Completed {
		t.Errorf("tasks[0] = %+v", tasks[0])
	}
	if tasks[1].ImagePath != "img/eggs.png" || !tasks[1].Completed {
		t.Errorf("tasks[1] = %+v", tasks[1])
	}
	if !tasks[0].CreatedAt.Before(tasks[1].CreatedAt) {
		t.Error("expected ascending created_at order to survive decoding")
	}
}

func TestListServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"relation does not exist"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.List(context.Background())
	if err == nil {
		t.Fatal("List() expected error")
	}
	var serviceErr *httpapi.Error
	if !errors.As(err, &serviceErr) {
		t.Fatalf("List() error = %T, want *httpapi.Error", err)
	}
	if serviceErr.Detail != "relation does not exist" {
		t.Errorf("Detail = %q", serviceErr.Detail)
	}
}

func TestDelete(t *testing.T) {
	var gotMethod, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if err := client.Delete(context.Background(), 42); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
	if gotQuery != "id=eq.42" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestDeleteServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.Delete(context.Background(), 1)
	if !httpapi.IsService(err) {
		t.Fatalf("Delete() error = %v, want service error", err)
	}
}

func TestNewClientNormalizesAddress(t *testing.T) {
	client := NewClient("localhost:8000/", "")
	if client.baseURL != "http://localhost:8000" {
		t.Errorf("baseURL = %q", client.baseURL)
	}
}
