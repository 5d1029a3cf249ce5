package module

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	modkit "mouthsoap/internal/modkit"
	phttp "mouthsoap/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestModule_HealthAndVersion(t *testing.T) {
	m := chi.NewRouter()
	mod := New(modkit.Deps{})
	mod.MountRoutes(phttp.AdaptChi(m))

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/meta/health", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	var env struct {
		Data struct {
			OK      bool   `json:"ok"`
			Service string `json:"service"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Data.OK || env.Data.Service != "mouthsoap-api" {
		t.Fatalf("health data = %+v", env.Data)
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/meta/version", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("version status = %d", rec.Code)
	}
	var venv struct {
		Data struct {
			Service string `json:"service"`
			Version string `json:"version"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&venv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if venv.Data.Service != "mouthsoap-api" || venv.Data.Version == "" {
		t.Fatalf("version data = %+v", venv.Data)
	}
}

func TestModule_NameDefault(t *testing.T) {
	mod := New(modkit.Deps{})
	if mod.Name() != "meta" {
		t.Fatalf("name = %q", mod.Name())
	}
}
