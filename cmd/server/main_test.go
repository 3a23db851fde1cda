package main

import (
	"testing"
)

func TestSeedFromEnv_UsesEnv(t *testing.T) {
	t.Setenv("CRUSADE_RANDOM_SEED", "42")
	if got := seedFromEnv(); got != 42 {
		t.Fatalf("seedFromEnv()=%d want 42", got)
	}
}

func TestSeedFromEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv("CRUSADE_RANDOM_SEED", "not-a-number")
	if got := seedFromEnv(); got == 0 {
		t.Fatalf("expected a non-zero fallback seed")
	}
}
