package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/face"
)

func TestParseTag(t *testing.T) {
	w, opts := ParseTag("bar,max:200,fmt:%d")
	assert.Equal(t, WidgetBar, w)
	assert.Equal(t, "200", opts["max"])
	assert.Equal(t, "%d", opts["fmt"])

	w, opts = ParseTag("")
	assert.Equal(t, WidgetAuto, w)
	assert.Empty(t, opts)

	w, _ = ParseTag("skip")
	assert.Equal(t, WidgetSkip, w)
}

func TestExtractFields_Counter(t *testing.T) {
	c := components.Counter{Value: 30, Max: 120, Wrap: true, Timebase: 600, ManualInput: true}
	fields := ExtractFields(&c)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Value", "Max", "Timebase", "ManualInput"}, names, "Wrap is skipped")

	require.Equal(t, WidgetBar, fields[0].Widget)
	assert.Equal(t, float32(120), GetMax(fields[0].Options), "bar max comes from the Max field")
	assert.Equal(t, WidgetBool, fields[3].Widget)
}

func TestExtractFields_EyesAngle(t *testing.T) {
	fields := ExtractFields(face.Eyes{State: face.EyesBlink, Gaze: 2})
	require.Len(t, fields, 2)
	assert.Equal(t, WidgetLabel, fields[0].Widget)
	assert.Equal(t, "blink", FormatValue(fields[0].Value, ""))
	assert.Equal(t, WidgetAngle, fields[1].Widget)
}

func TestExtractFields_NonStruct(t *testing.T) {
	assert.Nil(t, ExtractFields(42))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.50", FormatValue(float32(0.5), ""))
	assert.Equal(t, "7 ticks", FormatValue(7, "%d ticks"))
	assert.Equal(t, "true", FormatValue(true, ""))
}

func TestGetMaxDefault(t *testing.T) {
	assert.Equal(t, float32(1), GetMax(nil))
	assert.Equal(t, float32(1), GetMax(map[string]string{"max": "0"}))
}

func TestCounterField(t *testing.T) {
	f := CounterField("energy", components.Counter{Value: 40, Max: 80, Timebase: 1})
	assert.Equal(t, WidgetBar, f.Widget)
	assert.Equal(t, float32(80), GetMax(f.Options))
	assert.Equal(t, 40, f.Value)
}

func TestSectionHeights(t *testing.T) {
	ins := NewInspector(512, 256)
	sec := Section{Title: "t", Fields: []Field{
		CounterField("a", components.Counter{Value: 1, Max: 2, Timebase: 1}),
		{Name: "b", Value: true, Widget: WidgetBool},
		{Name: "c", Value: float64(1), Widget: WidgetAngle},
		{Name: "d", Value: "x", Widget: WidgetLabel},
	}}
	assert.Equal(t, int32(HeaderHeight+2*PanelPadding+18+18+44+20), ins.calculatePanelHeight(sec))
}
