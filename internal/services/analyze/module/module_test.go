package module

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	modkit "mouthsoap/internal/modkit"
	phttp "mouthsoap/internal/platform/net/http"
	"mouthsoap/internal/services/analyze/domain"

	"github.com/go-chi/chi/v5"
)

func mountedMux(t *testing.T, opts ...modkit.Option) *chi.Mux {
	t.Helper()
	m := chi.NewRouter()
	mod := New(modkit.Deps{}, opts...)
	mod.MountRoutes(phttp.AdaptChi(m))
	return m
}

func TestModule_AnalyzeEndpoint(t *testing.T) {
	m := mountedMux(t)

	body := strings.NewReader(`{"text":"Ѕtеvе drowned"}`)
	req := httptest.NewRequest("POST", "/sentence/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var env struct {
		Status string          `json:"status"`
		Data   domain.Analysis `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Normalized != "steve drowned" {
		t.Fatalf("normalized = %q", env.Data.Normalized)
	}
	if env.Data.Length != 13 || len(env.Data.Boundaries) != 13 {
		t.Fatalf("length = %d boundaries = %d", env.Data.Length, len(env.Data.Boundaries))
	}
	if len(env.Data.WordStarts) != 2 || env.Data.WordStarts[0] != 0 || env.Data.WordStarts[1] != 6 {
		t.Fatalf("word starts = %v", env.Data.WordStarts)
	}
}

func TestModule_AnalyzeEmptyText(t *testing.T) {
	m := mountedMux(t)

	req := httptest.NewRequest("POST", "/sentence/analyze", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestModule_AnalyzeRejectsUnknownFields(t *testing.T) {
	m := mountedMux(t)

	req := httptest.NewRequest("POST", "/sentence/analyze", strings.NewReader(`{"nope":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestModule_PrefixNormalized(t *testing.T) {
	// a slash-less prefix still mounts at its rooted form
	m := mountedMux(t, modkit.WithPrefix("sentence"))

	req := httptest.NewRequest("POST", "/sentence/analyze", strings.NewReader(`{"text":"ok"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestModule_PrefixOverride(t *testing.T) {
	m := mountedMux(t, modkit.WithPrefix("/v1/sentence"))

	req := httptest.NewRequest("POST", "/v1/sentence/analyze", strings.NewReader(`{"text":"ok"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}
