package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ternarybob/arbor"
)

func TestRobotsCacheAllowsAndDisallowsPerGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("User-agent: *\nDisallow: /private\n"))
	}))
	defer srv.Close()

	rc := NewRobotsCache(time.Minute, srv.Client(), arbor.NewLogger())
	ctx := context.Background()

	if !rc.Allowed(ctx, srv.URL+"/jobs", "hireradar/1.0") {
		t.Error("expected /jobs to be allowed")
	}
	if rc.Allowed(ctx, srv.URL+"/private/secret", "hireradar/1.0") {
		t.Error("expected /private/secret to be disallowed")
	}
}

func TestRobotsCacheFailsOpenOnFetchError(t *testing.T) {
	rc := NewRobotsCache(time.Minute, &http.Client{Timeout: time.Second}, arbor.NewLogger())
	ctx := context.Background()

	if !rc.Allowed(ctx, "http://127.0.0.1:1/jobs", "hireradar/1.0") {
		t.Error("expected fail-open (allowed) when robots.txt is unreachable")
	}
}

func TestRobotsCacheFailsOpenOnUnparseableURL(t *testing.T) {
	rc := NewRobotsCache(time.Minute, &http.Client{}, arbor.NewLogger())
	if !rc.Allowed(context.Background(), "://bad-url", "hireradar/1.0") {
		t.Error("expected fail-open (allowed) for an unparseable URL")
	}
}

func TestRobotsCacheReusesCachedEntryWithinTTL(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("User-agent: *\nDisallow:\n"))
	}))
	defer srv.Close()

	rc := NewRobotsCache(time.Minute, srv.Client(), arbor.NewLogger())
	ctx := context.Background()

	rc.Allowed(ctx, srv.URL+"/a", "hireradar/1.0")
	rc.Allowed(ctx, srv.URL+"/b", "hireradar/1.0")

	if calls != 1 {
		t.Errorf("expected robots.txt to be fetched once and cached, fetched %d times", calls)
	}
}
