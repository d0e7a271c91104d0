package services

import (
	"testing"

	"dashboard/internal/repositories"
)

func seedRegistry(t *testing.T) Registry {
	t.Helper()
	seed, err := repositories.LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed error: %v", err)
	}
	return Registry{Sources: repositories.SeedSources(seed)}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func equalIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func staticOf[T any](records []T) repositories.StaticSource[T] {
	return repositories.NewStaticSource(records)
}
