package systems

import (
	"testing"

	"github.com/pthm-cable/ratato/telemetry"
)

func TestRegistryCoversEveryPhase(t *testing.T) {
	r := NewSystemRegistry()
	phases := telemetry.Phases()
	if len(r.Stages()) != len(phases) {
		t.Fatalf("stages = %d, phases = %d", len(r.Stages()), len(phases))
	}
	for i, ph := range phases {
		if got := r.Stages()[i].Phase; got != ph {
			t.Errorf("stage %d is %s, want %s in tick order", i, got, ph)
		}
		if name := r.GetName(ph.String()); name == ph.String() {
			t.Errorf("%s has no display name", ph)
		}
	}
	if r.GetName("missing") != "missing" {
		t.Error("unknown keys should fall back to the key")
	}
}
