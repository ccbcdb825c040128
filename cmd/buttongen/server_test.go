package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/render/template"
	"github.com/goliatone/go-buttongen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-buttongen/pkg/testsupport"
)

func newTestServer(t *testing.T, withPages bool) func(path string) (int, string, string) {
	t.Helper()
	store := testsupport.MustLoadStore(t, os.DirFS(filepath.Join("testdata", "widgets")))

	var pages template.TemplateRenderer
	if withPages {
		engine, err := gotemplate.New(
			gotemplate.WithFS(os.DirFS(filepath.Join("testdata", "pages"))),
			gotemplate.WithWidgets(store),
		)
		if err != nil {
			t.Fatalf("engine: %v", err)
		}
		pages = engine
	}
	app := newServer(store, pages, zap.NewNop())

	return func(path string) (int, string, string) {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return resp.StatusCode, resp.Header.Get("Content-Type"), string(body)
	}
}

func TestServer_Widget(t *testing.T) {
	get := newTestServer(t, false)

	status, contentType, body := get("/widgets/buttons/cancel")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", status, body)
	}
	if !strings.HasPrefix(contentType, "text/html") {
		t.Fatalf("unexpected content type %q", contentType)
	}
	want := `<button class="btn btn-default" type="button" id="cancel">Cancel</button>`
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestServer_ListAndHealth(t *testing.T) {
	get := newTestServer(t, false)

	status, _, body := get("/widgets/button")
	if status != http.StatusOK || body != `{"data":["cancel","save"]}` {
		t.Fatalf("unexpected list response %d %s", status, body)
	}
	status, _, body = get("/widgets/toolbar")
	if status != http.StatusOK || body != `{"data":[]}` {
		t.Fatalf("unexpected empty list response %d %s", status, body)
	}
	if status, _, body := get("/healthz"); status != http.StatusOK || body != "ok" {
		t.Fatalf("unexpected health response %d %s", status, body)
	}
}

func TestServer_NotFound(t *testing.T) {
	get := newTestServer(t, false)

	for _, path := range []string{
		"/widgets/button/missing",
		"/widgets/widget/cancel",
		"/widgets/widget",
		"/pages/home",
	} {
		t.Run(path, func(t *testing.T) {
			if status, _, _ := get(path); status != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", status)
			}
		})
	}
}

func TestServer_MissingPage(t *testing.T) {
	get := newTestServer(t, true)

	status, _, body := get("/pages/does-not-exist")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", status, body)
	}
	if !strings.Contains(body, "does-not-exist.html") {
		t.Fatalf("expected template name in body, got %q", body)
	}
}

func TestServer_Page(t *testing.T) {
	get := newTestServer(t, true)

	status, contentType, body := get("/pages/home")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", status, body)
	}
	if !strings.HasPrefix(contentType, "text/html") {
		t.Fatalf("unexpected content type %q", contentType)
	}
	want := `<main><button class="btn btn-default" type="button" id="cancel">Cancel</button></main>` + "\n"
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}
