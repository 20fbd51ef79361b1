package entitysdk

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Speak roll — should the entity talk this message?
// ──────────────────────────────────────────────

// Moods that push the entity toward speaking / toward silence.
var (
	talkativeMoods = []string{"agitated", "angry", "excited", "restless", "hungry"}
	withdrawnMoods = []string{"indifferent", "dormant", "withdrawn"}
)

var (
	speakRngOnce sync.Once
	speakRng     *rand.Rand
	speakRngMu   sync.Mutex
)

func defaultSpeakRand() float64 {
	speakRngOnce.Do(func() {
		speakRng = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	speakRngMu.Lock()
	defer speakRngMu.Unlock()
	return speakRng.Float64()
}

// SpeakDecider decides whether the entity produces commentary this message.
// The random source is injectable so tests can pin the draw.
type SpeakDecider struct {
	// Rand returns a uniform draw in [0,1). Nil uses a time-seeded source.
	Rand func() float64
}

// SpeakChance computes the final probability of speaking for the given
// state, before the random draw. Returns 0 when speaking is impossible and
// 1 when it is guaranteed.
func (d *SpeakDecider) SpeakChance(st *ConversationState) float64 {
	if !st.HasEntity() {
		return 0
	}

	level := ChattinessFor(st.Entity.Chattiness)
	silent := st.SilentStreak

	// Guaranteed speak if silent too long; hard floor below the minimum gap.
	if silent >= level.MaxGap {
		return 1
	}
	if silent < level.MinGap {
		return 0
	}

	// Probability ramps from 30% at minGap to 90% at maxGap.
	span := level.MaxGap - level.MinGap
	if span < 1 {
		span = 1
	}
	progress := float64(silent-level.MinGap) / float64(span)
	chance := 0.3 + progress*0.6

	mood := strings.ToLower(st.Mood)
	if containsString(talkativeMoods, mood) {
		chance += 0.15
	} else if containsString(withdrawnMoods, mood) {
		chance -= 0.2
	}

	// More agitated = more talkative (caps at +0.2).
	chance += float64(st.Agitation) / 500

	if chance < 0.05 {
		chance = 0.05
	}
	if chance > 0.95 {
		chance = 0.95
	}
	return chance
}

// ShouldSpeak rolls the dice. Deterministic at the gap boundaries, a
// clamped weighted draw in between.
func (d *SpeakDecider) ShouldSpeak(st *ConversationState) bool {
	chance := d.SpeakChance(st)
	switch chance {
	case 0:
		return false
	case 1:
		return true
	}
	draw := defaultSpeakRand
	if d.Rand != nil {
		draw = d.Rand
	}
	return draw() < chance
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
