package entitysdk

import (
	"context"
	"log"
	"time"

	"go.uber.org/atomic"

	"github.com/reliquary/entity-sdk-go/llm"
)

// ──────────────────────────────────────────────
// Runtime — host notification handling and the message pipeline
// ──────────────────────────────────────────────

// TriggerDetector turns an incoming message into a set of matched trigger
// ids. Real classification is a future collaborator; the default detector
// matches nothing, leaving only decay in play.
type TriggerDetector interface {
	Detect(conversationID string, msg ChatMessage) []string
}

// TriggerDetectorFunc adapts a function to TriggerDetector.
type TriggerDetectorFunc func(conversationID string, msg ChatMessage) []string

// Detect calls f.
func (f TriggerDetectorFunc) Detect(conversationID string, msg ChatMessage) []string {
	return f(conversationID, msg)
}

// Runtime wires the store and engines to the host platform's notification
// stream. All state transitions run synchronously in the caller's
// goroutine; only the generation backend call can block, and it is
// deadline-guarded by the commentary engine.
type Runtime struct {
	store      *StateStore
	agitation  *AgitationEngine
	decider    *SpeakDecider
	commentary *CommentaryEngine
	detector   TriggerDetector

	// The conversation currently on screen. Captured per generation request
	// so responses arriving after a conversation switch are discarded
	// instead of landing in the wrong state.
	active atomic.String

	onUpdate    func(conversationID string)
	onThreshold func(conversationID string, crossing ThresholdCrossing)
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithTriggerDetector installs a trigger detector.
func WithTriggerDetector(d TriggerDetector) RuntimeOption {
	return func(r *Runtime) { r.detector = d }
}

// WithSpeakRand pins the speak-roll random source (tests).
func WithSpeakRand(rand func() float64) RuntimeOption {
	return func(r *Runtime) { r.decider.Rand = rand }
}

// WithUpdateHook registers the render-now signal fired after each state
// mutation the pipeline makes.
func WithUpdateHook(fn func(conversationID string)) RuntimeOption {
	return func(r *Runtime) { r.onUpdate = fn }
}

// WithThresholdHook registers the hijack collaborator's threshold-crossing
// callback.
func WithThresholdHook(fn func(conversationID string, crossing ThresholdCrossing)) RuntimeOption {
	return func(r *Runtime) { r.onThreshold = fn }
}

// NewRuntime assembles the full pipeline. preferred may be nil; fallback is
// the main generation channel. A timeout <= 0 uses the default.
func NewRuntime(store *StateStore, host ChatHost, preferred, fallback llm.Generator, timeout time.Duration, opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		store:      store,
		agitation:  NewAgitationEngine(store),
		decider:    &SpeakDecider{},
		commentary: NewCommentaryEngine(store, host, preferred, fallback, timeout),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store exposes the underlying state store for UI and settings surfaces.
func (r *Runtime) Store() *StateStore { return r.store }

// Agitation exposes the agitation engine for manual adjustment paths.
func (r *Runtime) Agitation() *AgitationEngine { return r.agitation }

// ─── Event handlers ───

// OnConversationChanged loads (and sanitizes) the newly active
// conversation's state and marks it active for stale-result discarding.
func (r *Runtime) OnConversationChanged(conversationID string) {
	r.active.Store(conversationID)
	r.store.Conversation(conversationID)
	r.signal(conversationID)
	log.Printf("[Runtime] conversation changed: %s", conversationID)
}

// OnMessageReceived runs the full per-message pipeline: counters, trigger
// scoring or decay, the speak roll, and commentary generation.
func (r *Runtime) OnMessageReceived(ctx context.Context, conversationID string, msg ChatMessage) {
	cfg := r.store.GlobalConfig()
	if !cfg.Enabled {
		return
	}
	st := r.store.Conversation(conversationID)
	if !st.HasEntity() {
		return
	}

	st.TotalMessages++
	st.MessagesSinceLastObservation++
	st.MessagesSinceLastHijack++

	var matched []string
	if r.detector != nil {
		matched = r.detector.Detect(conversationID, msg)
	}
	if len(matched) > 0 {
		_, crossings := r.agitation.ScoreTriggers(conversationID, matched)
		if r.onThreshold != nil {
			for _, c := range crossings {
				r.onThreshold(conversationID, c)
			}
		}
	} else {
		r.agitation.Decay(conversationID, DecayNone)
	}

	if r.decider.ShouldSpeak(st) {
		// The streak resets on the decision to speak, not on nonempty
		// output. A declined or silent generation still counts as a turn.
		st.SilentStreak = 0
		if text, ok := r.generateFor(ctx, conversationID); ok {
			st.LastCommentary = text
		}
	} else {
		st.SilentStreak++
	}

	r.store.SaveConversation(conversationID)
	r.signal(conversationID)
}

// OnMessageSent persists the conversation state.
func (r *Runtime) OnMessageSent(conversationID string) {
	if !r.store.GlobalConfig().Enabled {
		return
	}
	r.store.SaveConversation(conversationID)
	r.signal(conversationID)
}

// generateFor runs commentary generation for a conversation and discards
// the result if the active conversation changed while it was in flight.
func (r *Runtime) generateFor(ctx context.Context, conversationID string) (string, bool) {
	target := conversationID
	text, ok := r.commentary.Generate(ctx, target)
	if !ok {
		return "", false
	}
	if active := r.active.Load(); active != "" && active != target {
		log.Printf("[Runtime] discarding stale commentary for %s (active: %s)", target, active)
		return "", false
	}
	return text, true
}

func (r *Runtime) signal(conversationID string) {
	if r.onUpdate != nil {
		r.onUpdate(conversationID)
	}
}
