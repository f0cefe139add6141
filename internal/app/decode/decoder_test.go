package decode

import (
	"errors"
	"testing"

	"github.com/FumiHubCNS/hvscope/internal/domain"
)

func TestForModule(t *testing.T) {
	obs := &stubObs{}

	caen, err := ForModule(domain.ModuleCAEN, obs)
	if err != nil {
		t.Fatalf("caen decoder: %v", err)
	}
	if caen.Module() != domain.ModuleCAEN {
		t.Fatalf("expected caen decoder, got %s", caen.Module())
	}

	iseg, err := ForModule(domain.ModuleISEG, obs)
	if err != nil {
		t.Fatalf("iseg decoder: %v", err)
	}
	if iseg.Module() != domain.ModuleISEG {
		t.Fatalf("expected iseg decoder, got %s", iseg.Module())
	}

	if _, err := ForModule(domain.ModuleUnknown, obs); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
}

func TestToFloats(t *testing.T) {
	got, err := toFloats([]any{float64(1), "2.5", "-3"})
	if err != nil {
		t.Fatalf("toFloats: %v", err)
	}
	want := []float64{1, 2.5, -3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d: expected %f, got %f", i, want[i], got[i])
		}
	}

	if _, err := toFloats([]any{true}); err == nil {
		t.Fatalf("expected error for non-numeric element")
	}
}
