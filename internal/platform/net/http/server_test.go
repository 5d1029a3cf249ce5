package http

import (
	"testing"

	"mouthsoap/internal/platform/config"
)

func TestNewServer_AddrFromEnv(t *testing.T) {
	c := config.New().Prefix("SRVTEST_")

	if got := NewServer(c).Addr(); got != ":4000" {
		t.Fatalf("default addr = %q, want %q", got, ":4000")
	}

	// a bare port still yields a dialable addr
	t.Setenv("SRVTEST_PORT", "8080")
	if got := NewServer(c).Addr(); got != ":8080" {
		t.Fatalf("addr = %q, want %q", got, ":8080")
	}
}
