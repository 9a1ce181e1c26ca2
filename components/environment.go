package components

// Environment holds the externally observed signals.
// Sensor sources write it between ticks; the latest write wins.
type Environment struct {
	Dark  bool `json:"dark"`
	Sound bool `json:"sound"`
}

// Light reports whether it is not dark.
func (e Environment) Light() bool {
	return !e.Dark
}
