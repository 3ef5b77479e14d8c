package catalog

import "testing"

func TestBaseWeaponsHaveFullTables(t *testing.T) {
	for _, w := range BaseWeapons() {
		t.Run(w.Key, func(t *testing.T) {
			if len(w.Levels) != MaxLevel {
				t.Errorf("levels = %d, want %d", len(w.Levels), MaxLevel)
			}
			if w.EvolvesTo == "" {
				t.Fatal("missing evolution")
			}
			evo, ok := LookupWeapon(w.EvolvesTo)
			if !ok {
				t.Fatalf("evolution %q not found", w.EvolvesTo)
			}
			if !IsEvolved(evo.Key) {
				t.Errorf("%q should be an evolved weapon", evo.Key)
			}
			if _, ok := LookupPassive(w.RequiredPassive); !ok {
				t.Errorf("required passive %q not found", w.RequiredPassive)
			}
		})
	}
}

func TestWeaponStatsClampsLevel(t *testing.T) {
	w, ok := LookupWeapon("dagger")
	if !ok {
		t.Fatal("dagger missing")
	}

	tests := []struct {
		name       string
		level      int
		wantDamage float64
	}{
		{"below range", 0, 6},
		{"level 1", 1, 6},
		{"level 4", 4, 9},
		{"level 8", 8, 12},
		{"above range", 12, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Stats(tc.level).Damage; got != tc.wantDamage {
				t.Errorf("Stats(%d).Damage = %v, want %v", tc.level, got, tc.wantDamage)
			}
		})
	}
}

func TestCharactersStartWithKnownWeapons(t *testing.T) {
	if len(Characters()) != 9 {
		t.Fatalf("characters = %d, want 9", len(Characters()))
	}
	for _, c := range Characters() {
		if _, ok := LookupWeapon(c.StarterWeapon); !ok {
			t.Errorf("%s: unknown starter weapon %q", c.Key, c.StarterWeapon)
		}
		if c.Stats.MaxHP <= 0 {
			t.Errorf("%s: max hp must be positive", c.Key)
		}
	}
}

func TestUnknownKeys(t *testing.T) {
	if _, ok := LookupWeapon("nope"); ok {
		t.Error("unknown weapon should not resolve")
	}
	if _, ok := LookupPassive("nope"); ok {
		t.Error("unknown passive should not resolve")
	}
	if _, ok := LookupCharacter("nope"); ok {
		t.Error("unknown character should not resolve")
	}
}
