package creature

import (
	"fmt"
	"sort"
)

// Attribute identifies one of the creature's bounded attributes.
type Attribute uint8

// Attributes in update order.
const (
	Age Attribute = iota
	Energy
	Happiness
	Arousal
	Attention
	Fatigue

	NumAttributes = 6
)

var attributeNames = [NumAttributes]string{
	Age:       "age",
	Energy:    "energy",
	Happiness: "happiness",
	Arousal:   "arousal",
	Attention: "attention",
	Fatigue:   "fatigue",
}

// String returns the attribute's display name.
func (a Attribute) String() string {
	if int(a) < NumAttributes {
		return attributeNames[a]
	}
	return fmt.Sprintf("attribute(%d)", uint8(a))
}

// ParseAttribute looks an attribute up by name.
func ParseAttribute(name string) (Attribute, error) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", name)
}

// DisplayOrder returns the attributes sorted by name, the order the
// selection cycles through.
func DisplayOrder() [NumAttributes]Attribute {
	var order [NumAttributes]Attribute
	for i := range order {
		order[i] = Attribute(i)
	}
	sort.Slice(order[:], func(i, j int) bool {
		return order[i].String() < order[j].String()
	})
	return order
}
