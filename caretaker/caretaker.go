// Package caretaker is a scripted input source that keeps a creature fed and
// entertained in headless runs. It presses the same buttons a player would.
package caretaker

import (
	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
	"github.com/pthm-cable/gotchi/creature"
)

// Action is what the caretaker did on a tick.
type Action uint8

const (
	ActionIdle Action = iota
	ActionFeed
	ActionPlay
)

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	default:
		return "idle"
	}
}

// Target is the attribute the action adjusts.
func (a Action) Target() (creature.Attribute, bool) {
	switch a {
	case ActionFeed:
		return creature.Energy, true
	case ActionPlay:
		return creature.Attention, true
	default:
		return 0, false
	}
}

// Result reports a caretaker decision and whether the creature took the input.
type Result struct {
	Action   Action
	Accepted bool
	Presses  int // selection button presses needed to reach the target
}

// Caretaker decides when to feed and play.
type Caretaker struct {
	enabled   bool
	feedBelow int
	playBelow int
	increment int
	cooldown  int32
}

// New builds a caretaker from config.
func New(cfg *config.Config) *Caretaker {
	return &Caretaker{
		enabled:   cfg.Caretaker.Enabled,
		feedBelow: cfg.Caretaker.FeedBelow,
		playBelow: cfg.Caretaker.PlayBelow,
		increment: cfg.Input.Increment,
		cooldown:  int32(cfg.Derived.CaretakerCooldownTicks),
	}
}

// Decide picks an action without touching the creature.
// Hunger is handled before boredom.
func (ct *Caretaker) Decide(c *creature.Creature, care *components.Care, tick int32) Action {
	if !ct.enabled || !c.Alive() || tick < care.CooldownUntil {
		return ActionIdle
	}
	if c.Attribute(creature.Energy).Value <= ct.feedBelow {
		return ActionFeed
	}
	if c.Attribute(creature.Attention).Value <= ct.playBelow {
		return ActionPlay
	}
	return ActionIdle
}

// Tend decides and acts: it cycles the selection to the target attribute and
// presses increment once. The cooldown starts only if the input was accepted.
func (ct *Caretaker) Tend(c *creature.Creature, care *components.Care, tick int32) Result {
	action := ct.Decide(c, care, tick)
	target, ok := action.Target()
	if !ok {
		return Result{Action: ActionIdle}
	}

	res := Result{Action: action}
	for cur, _ := c.Current(); cur != target && res.Presses < creature.NumAttributes; cur, _ = c.Current() {
		c.SelectNext()
		res.Presses++
	}

	res.Accepted = c.ApplyCurrentInput(ct.increment)
	if !res.Accepted {
		return res
	}

	care.CooldownUntil = tick + ct.cooldown
	switch action {
	case ActionFeed:
		care.Feeds++
	case ActionPlay:
		care.Plays++
	}
	return res
}
