package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "mouthsoap/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChi_RoutesAndSubrouters(t *testing.T) {
	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Get("/top", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("top"))
	})
	r.Route("/nested", func(sub Router) {
		sub.Post("/leaf", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(201)
		})
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/top", nil))
	if rec.Code != 200 || rec.Body.String() != "top" {
		t.Fatalf("GET /top = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("POST", "/nested/leaf", nil))
	if rec.Code != 201 {
		t.Fatalf("POST /nested/leaf = %d", rec.Code)
	}
}

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func TestJSONHandlers(t *testing.T) {
	m := chi.NewRouter()
	r := AdaptChi(m)

	PostJSON(r, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) {
		return in.Text, nil
	})
	GetJSON(r, "/fail", func(*stdhttp.Request) (any, error) {
		return nil, perr.NotFoundf("gone")
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("POST", "/echo", strings.NewReader(`{"text":"hi"}`)))
	if rec.Code != 200 {
		t.Fatalf("POST /echo = %d %s", rec.Code, rec.Body.String())
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if env.Data != "hi" {
		t.Fatalf("data = %v", env.Data)
	}

	// validation failure surfaces as a 400 envelope
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("POST", "/echo", strings.NewReader(`{"text":""}`)))
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("invalid echo = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("GET /fail = %d", rec.Code)
	}
}
