package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/common"
)

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/register" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "alice@example.com" {
			t.Fatalf("unexpected body: %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"userId": "u-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	id, err := c.Register(context.Background(), "Alice", "alice@example.com", "password1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if id != "u-1" {
		t.Fatalf("unexpected user id: %q", id)
	}
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "a user with this email already exists"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Register(context.Background(), "Alice", "alice@example.com", "password1")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Login(context.Background(), "alice@example.com", "password1"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if c.Token() != "tok-123" {
		t.Fatalf("token not stored: %q", c.Token())
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want common.ErrorUnauthorized, got %v", err)
	}
	if c.Token() != "" {
		t.Fatalf("token must stay empty after failed login, got %q", c.Token())
	}
}

func TestLogout_ClearsTokenEvenOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")
	if err := c.Logout(context.Background()); err == nil {
		t.Fatal("expected an error from the server")
	}
	if c.Token() != "" {
		t.Fatalf("token must be cleared on logout, got %q", c.Token())
	}
}

func TestAuthenticatedCalls_SendBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]*Text{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")
	if _, err := c.ListTexts(context.Background(), ""); err != nil {
		t.Fatalf("ListTexts error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
}

func TestListTexts_SearchQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		_ = json.NewEncoder(w).Encode([]*Text{
			{ID: "t-1", Title: "Psalm 23"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.ListTexts(context.Background(), "psalm 23")
	if err != nil {
		t.Fatalf("ListTexts error: %v", err)
	}
	if gotQuery != "psalm 23" {
		t.Fatalf("search query not passed: %q", gotQuery)
	}
	if len(got) != 1 || got[0].Title != "Psalm 23" {
		t.Fatalf("unexpected texts: %+v", got)
	}
}

func TestGetText_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetText(context.Background(), "t-404")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/texts/new" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"textId": "t-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	id, err := c.CreateText(context.Background(), "Hamlet", "To be", "play")
	if err != nil {
		t.Fatalf("CreateText error: %v", err)
	}
	if id != "t-1" {
		t.Fatalf("unexpected text id: %q", id)
	}
}

func TestMarkPracticed(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/texts/practice/t-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"lastPracticedAt": at})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.MarkPracticed(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("MarkPracticed error: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("unexpected timestamp: %v", got)
	}
}
