package components

// Sleep holds the sleep state driven by the fatigue rule.
type Sleep struct {
	Asleep    bool `inspect:"bool"`
	DarkTicks int  `inspect:"label"` // consecutive dark decay events seen while awake
}
