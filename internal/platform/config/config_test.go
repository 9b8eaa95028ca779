package config

import "testing"

func TestMayPort(t *testing.T) {
	cfg := New().Prefix("TEST_CFG_")

	if got := cfg.MayPort("PORT", 4100); got != ":4100" {
		t.Errorf("default = %q, want :4100", got)
	}

	t.Setenv("TEST_CFG_PORT", "8080")
	if got := cfg.MayPort("PORT", 4100); got != ":8080" {
		t.Errorf("got %q, want :8080", got)
	}

	for _, bad := range []string{"bogus", ":4100", "0", "70000"} {
		t.Setenv("TEST_CFG_PORT", bad)
		if got := cfg.MayPort("PORT", 4100); got != ":4100" {
			t.Errorf("MayPort with %q = %q, want default :4100", bad, got)
		}
	}
}

func TestMayString(t *testing.T) {
	cfg := New().Prefix("TEST_CFG_")
	if got := cfg.MayString("NAME", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
	t.Setenv("TEST_CFG_NAME", " value ")
	if got := cfg.MayString("NAME", "fallback"); got != "value" {
		t.Errorf("got %q", got)
	}
}
