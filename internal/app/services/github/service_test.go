package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/celery8911/nest-aws/internal/apperr"
)

func TestGetProfile_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("unexpected Accept header %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"octocat","id":1,"name":"The Octocat","avatar_url":"https://example.test/a.png","company":"GitHub"}`))
	}))
	defer upstream.Close()

	svc := New(upstream.Client(), upstream.URL, "tok", nil)

	profile, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.Login != "octocat" || profile.Name != "The Octocat" || profile.AvatarURL != "https://example.test/a.png" {
		t.Fatalf("unexpected profile: %#v", profile)
	}
}

func TestGetProfile_MissingToken(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer upstream.Close()

	svc := New(upstream.Client(), upstream.URL, "", nil)

	_, err := svc.GetProfile(context.Background())
	var unavailable *apperr.DependencyUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected dependency-unavailable error, got %v", err)
	}
	if unavailable.Hint == "" {
		t.Fatal("expected a remediation hint")
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected no upstream calls without a token, got %d", n)
	}
}

func TestGetProfile_Unreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	svc := New(nil, upstream.URL, "tok", nil)

	_, err := svc.GetProfile(context.Background())
	var unavailable *apperr.DependencyUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected dependency-unavailable error, got %v", err)
	}
	if unavailable.Err == nil {
		t.Fatal("expected the transport error to be wrapped")
	}
	if unavailable.Hint == "set GITHUB_TOKEN in the environment" {
		t.Fatal("unreachable hint should differ from the missing-token hint")
	}
}

func TestGetProfile_UpstreamErrorPassthrough(t *testing.T) {
	const body = `{"message":"Bad credentials","documentation_url":"https://docs.github.com"}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(body))
	}))
	defer upstream.Close()

	svc := New(upstream.Client(), upstream.URL, "expired", nil)

	_, err := svc.GetProfile(context.Background())
	var upstreamErr *apperr.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", upstreamErr.StatusCode)
	}
	if string(upstreamErr.Body) != body {
		t.Fatalf("upstream body was not preserved: %q", upstreamErr.Body)
	}
}

func TestNew_Defaults(t *testing.T) {
	svc := New(nil, "  ", "tok", nil)
	if svc.baseURL != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", svc.baseURL)
	}
	if svc.client == nil || svc.client.Timeout != requestTimeout {
		t.Fatalf("expected default client with %v timeout", requestTimeout)
	}

	svc = New(nil, "https://gh.example.test/", "tok", nil)
	if svc.baseURL != "https://gh.example.test" {
		t.Fatalf("trailing slash not trimmed: %q", svc.baseURL)
	}
}
