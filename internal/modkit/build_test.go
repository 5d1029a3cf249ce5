package modkit

import (
	"net/http"
	"testing"

	phttp "mouthsoap/internal/platform/net/http"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || len(b.Mw) != 0 {
		t.Fatalf("zero build = %+v", b)
	}
	if b.Register == nil {
		t.Fatalf("Register hook should default to a no-op, not nil")
	}
	b.Register(nil) // must not panic
}

func TestBuild_Options(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	called := false

	b := Build(
		WithName("analyze"),
		WithPrefix("/sentence"),
		WithMiddlewares(mw),
		WithRegister(func(phttp.Router) { called = true }),
	)

	if b.Name != "analyze" || b.Prefix != "/sentence" || len(b.Mw) != 1 {
		t.Fatalf("built = %+v", b)
	}
	b.Register(nil)
	if !called {
		t.Fatalf("register hook not wired")
	}
}
