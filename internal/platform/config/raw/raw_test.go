package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("RAWTEST_NAME", "  soap  ")
	c := New().Prefix("RAWTEST_")

	if got := c.Get("NAME", "fallback"); got != "soap" {
		t.Fatalf("Get trimmed = %q, want %q", got, "soap")
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q, want %q", got, "fallback")
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"nope", true, false},
		{"", true, true},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Setenv("RAWTEST_FLAG", tc.val)
		c := New().Prefix("RAWTEST_")
		if got := c.GetBool("FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("RAWTEST_N", "42")
	c := New().Prefix("RAWTEST_")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}

	t.Setenv("RAWTEST_N", "x42")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt invalid = %d, want default 7", got)
	}

	t.Setenv("RAWTEST_N", "")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt empty = %d, want default 7", got)
	}
}
