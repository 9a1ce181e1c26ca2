package components

// Identity names a creature entity.
type Identity struct {
	ID        uint32 `inspect:"label"`
	Name      string `inspect:"label"`
	BirthTick int32  `inspect:"label"`
}

// Care tracks the scripted caretaker's attention to one creature.
type Care struct {
	CooldownUntil int32 `inspect:"label"` // tick before which the caretaker waits
	Feeds         int   `inspect:"label"`
	Plays         int   `inspect:"label"`
}
