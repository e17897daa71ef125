package countries

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/api/countries" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin"); got != "/admin/api/countries" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/admin/", WithRoutePath("api/c")); got != "/admin/api/c" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(""); got != "/api/countries" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/admin", WithEntries(testEntries))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/admin/api/countries" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?q=fr&limit=1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/admin"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestComponent_EndpointMatchesMount(t *testing.T) {
	c := New(WithSearchParam("search"), WithDefaultLimit(25))

	got := c.Endpoint("/admin")
	want := EndpointConfig{
		URL:           "/admin/api/countries",
		Method:        "GET",
		ResultsPath:   "data",
		Params:        map[string]string{"limit": "25"},
		DynamicParams: map[string]string{"search": "{{self}}"},
		Mapping:       EndpointMapping{Value: "value", Label: "label"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected endpoint (-want +got):\n%s", diff)
	}

	mux := http.NewServeMux()
	pattern, err := c.RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pattern != got.URL {
		t.Fatalf("endpoint URL %q does not match mount %q", got.URL, pattern)
	}
}

func TestComponent_NilUsesDefaults(t *testing.T) {
	var c *Component
	if c.Options().RoutePath != "/api/countries" {
		t.Fatalf("expected default options for nil component")
	}
	if c.Handler() == nil {
		t.Fatalf("expected handler for nil component")
	}
}

func TestMountPath_KeepsSubtreeSlash(t *testing.T) {
	if got := MountPath("/admin", WithRoutePath("/api/countries/")); got != "/admin/api/countries/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/", WithRoutePath("/")); got != "/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_MountServesEndpoint(t *testing.T) {
	c := New(WithEntries(testEntries))
	mux := http.NewServeMux()

	endpoint, err := c.Mount(mux, "/admin")
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if endpoint.URL != "/admin/api/countries" {
		t.Fatalf("unexpected endpoint URL: %q", endpoint.URL)
	}
	if _, err := c.Mount(mux, "/v2"); err != nil {
		t.Fatalf("second mount: %v", err)
	}

	for _, target := range []string{"/admin/api/countries?q=fr", "/v2/api/countries?q=fr"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", target, rec.Code)
		}
	}

	if _, err := c.Mount(nil, "/admin"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
