package entitysdk

import (
	"context"
	"log"
	"time"

	"github.com/reliquary/entity-sdk-go/llm"
)

// ──────────────────────────────────────────────
// Commentary engine — prompt assembly, generation, cleanup
// ──────────────────────────────────────────────

const (
	// CommentaryTokenBudget keeps responses short.
	CommentaryTokenBudget = 300

	// DefaultGenerationTimeout bounds a backend call.
	DefaultGenerationTimeout = 45 * time.Second
)

// CommentaryEngine turns conversation state into generated entity
// commentary. The preferred generator is an out-of-band channel that does
// not disturb the main chat connection; any failure there falls back,
// silently, to the main channel with both prompts merged.
type CommentaryEngine struct {
	store     *StateStore
	host      ChatHost
	preferred llm.Generator // optional, best-effort
	fallback  llm.Generator
	timeout   time.Duration
}

// NewCommentaryEngine creates an engine. preferred may be nil; fallback is
// required. A timeout <= 0 uses DefaultGenerationTimeout.
func NewCommentaryEngine(store *StateStore, host ChatHost, preferred, fallback llm.Generator, timeout time.Duration) *CommentaryEngine {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &CommentaryEngine{
		store:     store,
		host:      host,
		preferred: preferred,
		fallback:  fallback,
		timeout:   timeout,
	}
}

// Generate produces cleaned commentary for the conversation, or ("", false)
// when the entity stays silent — whether by choice (silence marker, short
// output) or because generation failed. Backend errors are logged and never
// propagate.
func (e *CommentaryEngine) Generate(ctx context.Context, conversationID string) (string, bool) {
	st := e.store.Conversation(conversationID)
	if !st.HasEntity() {
		return "", false
	}

	systemPrompt := BuildSystemPrompt(st.Entity, st)

	var history []ChatMessage
	if e.host != nil {
		history = e.host.History(conversationID)
	}
	userPrompt := BuildUserPrompt(st.Entity.Name, history)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.callBackend(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[Commentary] generation failed: %v", err)
		return "", false
	}
	return CleanResponse(raw)
}

// callBackend tries the preferred channel first, then the fallback with the
// prompts merged into one.
func (e *CommentaryEngine) callBackend(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if e.preferred != nil {
		raw, err := e.preferred.Generate(ctx, systemPrompt, userPrompt, CommentaryTokenBudget)
		if err == nil {
			return raw, nil
		}
		log.Printf("[Commentary] preferred channel failed, trying fallback: %v", err)
	}

	combined := systemPrompt + "\n\n---\n\n" + userPrompt
	return e.fallback.Generate(ctx, "", combined, CommentaryTokenBudget)
}
