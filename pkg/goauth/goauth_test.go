package goauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestAuthCodeURL(t *testing.T) {
	c := New(Config{
		ClientID:     "client-1",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/oauth2/callback",
	})

	raw := c.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid URL %q: %v", raw, err)
	}
	if !strings.Contains(u.Host, "google.com") {
		t.Errorf("host = %q, want Google's endpoint", u.Host)
	}

	q := u.Query()
	want := map[string]string{
		"client_id":              "client-1",
		"redirect_uri":           "http://localhost:8080/oauth2/callback",
		"state":                  "state-123",
		"access_type":            "offline",
		"prompt":                 "consent",
		"include_granted_scopes": "true",
		"scope":                  ScopeCalendarEvents,
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("query[%q] = %q, want %q", k, got, v)
		}
	}
}

func TestExchange(t *testing.T) {
	var gotCode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotCode = r.FormValue("code")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "access-1", "refresh_token": "refresh-1", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer srv.Close()

	c := New(Config{
		ClientID:     "client-1",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
		HTTPClient:   srv.Client(),
	})

	tok, err := c.Exchange(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("Exchange() error = %v", err)
	}
	if gotCode != "code-1" {
		t.Errorf("code sent = %q", gotCode)
	}
	if tok.AccessToken != "access-1" || tok.RefreshToken != "refresh-1" {
		t.Errorf("token = %+v", tok)
	}
	if remaining := time.Until(tok.Expiry); remaining < 55*time.Minute || remaining > 61*time.Minute {
		t.Errorf("expiry %v not near expires_in", tok.Expiry)
	}
}

func TestExchange_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(Config{
		ClientID: "client-1",
		Endpoint: oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
	})

	_, err := c.Exchange(context.Background(), "bad-code")
	if !errors.Is(err, ErrTokenExchange) {
		t.Fatalf("Exchange() error = %v, want ErrTokenExchange", err)
	}
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.FormValue("grant_type") != "refresh_token" || r.FormValue("refresh_token") != "refresh-1" {
			http.Error(w, `{"error": "invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "access-2", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer srv.Close()

	c := New(Config{
		ClientID: "client-1",
		Endpoint: oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
	})

	tok, err := c.Refresh(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if tok.AccessToken != "access-2" {
		t.Errorf("AccessToken = %q", tok.AccessToken)
	}
	// Google does not resend the refresh token; the stored one is carried over.
	if tok.RefreshToken != "refresh-1" {
		t.Errorf("RefreshToken = %q, want carried over", tok.RefreshToken)
	}
}

func TestRefresh_Revoked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(Config{
		ClientID: "client-1",
		Endpoint: oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
	})

	_, err := c.Refresh(context.Background(), "revoked")
	if !errors.Is(err, ErrRefresh) {
		t.Fatalf("Refresh() error = %v, want ErrRefresh", err)
	}
}

func TestUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
			http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "g-1", "email": "a@example.com"}`))
	}))
	defer srv.Close()

	c := New(Config{ClientID: "client-1", UserInfoURL: srv.URL})

	t.Run("ok", func(t *testing.T) {
		info, err := c.UserInfo(context.Background(), "access-1")
		if err != nil {
			t.Fatalf("UserInfo() error = %v", err)
		}
		if info.Email != "a@example.com" || info.ID != "g-1" {
			t.Errorf("info = %+v", info)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := c.UserInfo(context.Background(), "wrong")
		if !errors.Is(err, ErrUserInfo) {
			t.Fatalf("UserInfo() error = %v, want ErrUserInfo", err)
		}
	})
}

func TestUserInfo_EmptyEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "g-1"}`))
	}))
	defer srv.Close()

	c := New(Config{ClientID: "client-1", UserInfoURL: srv.URL})

	_, err := c.UserInfo(context.Background(), "access-1")
	if !errors.Is(err, ErrUserInfo) {
		t.Fatalf("UserInfo() error = %v, want ErrUserInfo", err)
	}
}
