package entitysdk

import (
	"log"
	"time"
)

// ──────────────────────────────────────────────
// Agitation Engine — trigger scoring, decay, tier classification
// ──────────────────────────────────────────────

// Tier is the derived agitation severity band. Never stored; always
// recomputed from the current agitation value.
type Tier string

const (
	TierContained  Tier = "contained"  // < 15
	TierRestless   Tier = "restless"   // < 35
	TierStraining  Tier = "straining"  // < 55
	TierStruggling Tier = "struggling" // < 75
	TierBreaking   Tier = "breaking"   // < 90
	TierUnbound    Tier = "unbound"
)

// TierFor classifies an agitation value.
func TierFor(agitation int) Tier {
	switch {
	case agitation < 15:
		return TierContained
	case agitation < 35:
		return TierRestless
	case agitation < 55:
		return TierStraining
	case agitation < 75:
		return TierStruggling
	case agitation < 90:
		return TierBreaking
	default:
		return TierUnbound
	}
}

// DecayCondition selects which decay amount applies in a no-trigger cycle.
type DecayCondition int

const (
	// DecayNone applies the plain per-message decay.
	DecayNone DecayCondition = iota
	// DecayDirect applies when the host is in direct 1-on-1 conversation.
	DecayDirect
	// DecaySatisfied applies when the entity's stated want was satisfied.
	DecaySatisfied
	// DecayForced is the manual force-override path. Its decay constant is
	// negative, so forcing the entity down raises agitation.
	DecayForced
)

func (c DecayCondition) amount() int {
	switch c {
	case DecayDirect:
		return DecayDirectConvo
	case DecaySatisfied:
		return DecayEntitySatisfied
	case DecayForced:
		return DecayForceOverride
	default:
		return DecayPerMessage
	}
}

func (c DecayCondition) reason() string {
	switch c {
	case DecayDirect:
		return "decay:direct"
	case DecaySatisfied:
		return "decay:satisfied"
	case DecayForced:
		return "decay:forced"
	default:
		return "decay:idle"
	}
}

// ThresholdCrossing reports an upward crossing of a hijack threshold during
// one adjustment. Consumed by a hijack collaborator; this module only
// detects the crossing.
type ThresholdCrossing struct {
	Threshold string // intrusion | struggle | possession
	Value     int    // threshold value crossed
	Agitation int    // agitation after the adjustment
}

// AgitationEngine converts trigger activity into agitation deltas against a
// StateStore-owned conversation state.
type AgitationEngine struct {
	store *StateStore
}

// NewAgitationEngine creates an engine over the given store.
func NewAgitationEngine(store *StateStore) *AgitationEngine {
	return &AgitationEngine{store: store}
}

// ScoreTriggers applies the matched trigger set to the conversation's
// agitation. Each matched trigger that is enabled in the registry
// contributes points per its sensitivity; simultaneous matches sum before
// the final clamp. With no entity bound the engine is inert.
//
// Returns the new agitation value and any upward threshold crossings.
func (e *AgitationEngine) ScoreTriggers(conversationID string, matched []string) (int, []ThresholdCrossing) {
	cfg := e.store.GlobalConfig()
	st := e.store.Conversation(conversationID)
	if !st.HasEntity() {
		return st.Agitation, nil
	}

	delta := 0
	var hits []string
	for _, id := range matched {
		setting, ok := cfg.Triggers[id]
		if !ok || !setting.Enabled {
			continue
		}
		points, ok := SensitivityPoints[setting.Sensitivity]
		if !ok {
			continue // sensitivity 0 (manual-only) scores nothing
		}
		delta += points
		hits = append(hits, id)
	}
	if delta == 0 {
		return st.Agitation, nil
	}

	newValue, crossings := e.adjust(st, delta, "triggers", hits)
	e.store.SaveConversation(conversationID)
	return newValue, crossings
}

// Decay applies the decay amount for the given condition. Used when a
// message cycle matched no triggers, or on the manual paths. Inert without
// an entity.
func (e *AgitationEngine) Decay(conversationID string, cond DecayCondition) int {
	st := e.store.Conversation(conversationID)
	if !st.HasEntity() {
		return st.Agitation
	}
	newValue, _ := e.adjust(st, -cond.amount(), cond.reason(), nil)
	e.store.SaveConversation(conversationID)
	return newValue
}

// adjust applies a delta, clamps, logs the event, and detects upward
// threshold crossings.
func (e *AgitationEngine) adjust(st *ConversationState, delta int, reason string, triggers []string) (int, []ThresholdCrossing) {
	before := st.Agitation
	st.SetAgitation(before + delta)
	after := st.Agitation

	st.AgitationLog = append(st.AgitationLog, AgitationEvent{
		Delta:    delta,
		Reason:   reason,
		Triggers: triggers,
		Result:   after,
		At:       time.Now(),
	})

	var crossings []ThresholdCrossing
	for _, th := range []struct {
		name  string
		value int
	}{
		{"intrusion", ThresholdIntrusion},
		{"struggle", ThresholdStruggle},
		{"possession", ThresholdPossession},
	} {
		if before < th.value && after >= th.value {
			crossings = append(crossings, ThresholdCrossing{Threshold: th.name, Value: th.value, Agitation: after})
		}
	}

	if after != before {
		log.Printf("[Agitation] %s: %d -> %d (%s)", reason, before, after, TierFor(after))
	}
	return after, crossings
}
