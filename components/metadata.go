package components

// String returns the config name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// KindNames returns the config names for all enemy kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"default", "fast", "tank", "detonator", "ranged", "boss"}
}

// ParseKind resolves a config name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range KindNames() {
		if n == name {
			return Kind(i), true
		}
	}
	return KindDefault, false
}

// KindCount returns the number of enemy kinds.
func KindCount() int {
	return len(KindNames())
}

// String returns the display name for a PickupKind.
func (k PickupKind) String() string {
	names := PickupKindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// PickupKindNames returns the names for all pickup kinds.
func PickupKindNames() []string {
	return []string{"gem", "health", "explosive", "ice", "speed", "bomb", "chest"}
}
