package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeRenderer struct {
	html string
	err  error
	url  string
}

func (f *fakeRenderer) Render(_ context.Context, url string) (string, error) {
	f.url = url
	return f.html, f.err
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(New(nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q", body["status"])
	}
}

func TestLiquipediaRequiresPage(t *testing.T) {
	srv := httptest.NewServer(New(nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/liquipedia")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLiquipediaUnwrapsParseText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "parse" {
			t.Errorf("action = %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "FURIA" {
			t.Errorf("page = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"parse":{"text":{"*":"<table>roster</table>"}}}`)
	}))
	defer upstream.Close()

	s := New(nil)
	s.liquipedia = upstream.URL
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/liquipedia?page=FURIA")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var body htmlResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.HTML != "<table>roster</table>" || !body.Success {
		t.Errorf("body = %+v", body)
	}
}

func TestDraft5ProxiesRawHTML(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("expected browser user agent, got %q", ua)
		}
		fmt.Fprint(w, "<html>draft5</html>")
	}))
	defer upstream.Close()

	srv := httptest.NewServer(New(nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/draft5?url=" + upstream.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var body htmlResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.HTML != "<html>draft5</html>" {
		t.Errorf("html = %q", body.HTML)
	}
}

func TestDraft5RenderedUsesRenderer(t *testing.T) {
	renderer := &fakeRenderer{html: "<html>rendered</html>"}
	srv := httptest.NewServer(New(renderer).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/draft5/puppeteer?url=https://draft5.gg/x")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var body htmlResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.HTML != "<html>rendered</html>" {
		t.Errorf("html = %q", body.HTML)
	}
	if renderer.url != "https://draft5.gg/x" {
		t.Errorf("renderer url = %q", renderer.url)
	}
}

func TestDraft5RenderedError(t *testing.T) {
	srv := httptest.NewServer(New(&fakeRenderer{err: errors.New("chrome crashed")}).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/draft5/puppeteer?url=https://draft5.gg/x")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
