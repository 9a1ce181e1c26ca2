package caretaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
	"github.com/pthm-cable/gotchi/creature"
)

func setup(t *testing.T, mutate func(c *config.Config)) (*Caretaker, *creature.Creature) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Finalize())
	c, err := creature.New(cfg)
	require.NoError(t, err)
	return New(cfg), c
}

func TestTend_IdleWhenContent(t *testing.T) {
	ct, c := setup(t, nil)
	var care components.Care

	res := ct.Tend(c, &care, 0)
	assert.Equal(t, ActionIdle, res.Action)
	assert.Equal(t, components.Care{}, care)
}

func TestTend_FeedsHungryCreature(t *testing.T) {
	ct, c := setup(t, func(cfg *config.Config) { cfg.Attributes.Energy.Default = 35 })
	var care components.Care

	res := ct.Tend(c, &care, 100)
	require.Equal(t, ActionFeed, res.Action)
	assert.True(t, res.Accepted)
	// age -> arousal -> attention -> energy
	assert.Equal(t, 3, res.Presses)

	assert.Equal(t, 40, c.Attribute(creature.Energy).Value)
	assert.Equal(t, 75, c.Attribute(creature.Happiness).Value)
	assert.Equal(t, 1, care.Feeds)
	assert.Equal(t, int32(100+300), care.CooldownUntil)

	cur, _ := c.Current()
	assert.Equal(t, creature.Energy, cur)
}

func TestTend_PlaysWithBoredCreature(t *testing.T) {
	ct, c := setup(t, func(cfg *config.Config) { cfg.Attributes.Attention.Default = 20 })
	var care components.Care

	res := ct.Tend(c, &care, 0)
	require.Equal(t, ActionPlay, res.Action)
	assert.True(t, res.Accepted)
	assert.Equal(t, 25, c.Attribute(creature.Attention).Value)
	assert.Equal(t, 55, c.Attribute(creature.Arousal).Value)
	assert.Equal(t, 1, care.Plays)
}

func TestTend_HungerBeforeBoredom(t *testing.T) {
	ct, c := setup(t, func(cfg *config.Config) {
		cfg.Attributes.Energy.Default = 10
		cfg.Attributes.Attention.Default = 10
	})
	var care components.Care
	assert.Equal(t, ActionFeed, ct.Tend(c, &care, 0).Action)
}

func TestTend_RespectsCooldown(t *testing.T) {
	ct, c := setup(t, func(cfg *config.Config) { cfg.Attributes.Energy.Default = 10 })
	var care components.Care

	require.True(t, ct.Tend(c, &care, 0).Accepted)
	assert.Equal(t, ActionIdle, ct.Tend(c, &care, 299).Action)
	assert.Equal(t, ActionFeed, ct.Tend(c, &care, 300).Action)
	assert.Equal(t, 2, care.Feeds)
}

func TestTend_LockedInputKeepsTrying(t *testing.T) {
	ct, c := setup(t, func(cfg *config.Config) {
		cfg.Attributes.Energy.Default = 10
		cfg.Attributes.Energy.ManualInput = false
	})
	var care components.Care

	res := ct.Tend(c, &care, 0)
	assert.Equal(t, ActionFeed, res.Action)
	assert.False(t, res.Accepted)
	assert.Equal(t, 10, c.Attribute(creature.Energy).Value)
	assert.Zero(t, care.CooldownUntil)
	assert.Zero(t, care.Feeds)
}

func TestTend_DisabledOrDead(t *testing.T) {
	ct, c := setup(t, func(cfg *config.Config) {
		cfg.Caretaker.Enabled = false
		cfg.Attributes.Energy.Default = 10
	})
	var care components.Care
	assert.Equal(t, ActionIdle, ct.Tend(c, &care, 0).Action)

	ct, c = setup(t, func(cfg *config.Config) {
		cfg.Attributes.Age.Max = 1
		cfg.Attributes.Energy.Default = 10
	})
	c.Tick()
	require.False(t, c.Alive())
	assert.Equal(t, ActionIdle, ct.Tend(c, &care, 1).Action)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "feed", ActionFeed.String())
	assert.Equal(t, "play", ActionPlay.String())
	assert.Equal(t, "idle", ActionIdle.String())
}
