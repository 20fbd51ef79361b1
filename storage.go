package entitysdk

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// StateStore — owns global config and per-conversation state
// ──────────────────────────────────────────────

// StateStore loads, caches, sanitizes, and persists all extension state.
// Persistence goes through a pluggable KVStore with debounced writes; the
// store never blocks callers on a write.
type StateStore struct {
	mu sync.Mutex

	kv     KVStore
	global *GlobalConfig
	convs  map[string]*ConversationState

	dirtyGlobal bool
	dirtyConvs  map[string]bool
	saver       *Saver
}

// StateStoreOption configures a StateStore.
type StateStoreOption func(*stateStoreOptions)

type stateStoreOptions struct {
	debounce time.Duration
}

// WithSaveDebounce overrides the persistence debounce window.
func WithSaveDebounce(d time.Duration) StateStoreOption {
	return func(o *stateStoreOptions) { o.debounce = d }
}

// NewStateStore creates a StateStore over the given backend.
func NewStateStore(kv KVStore, opts ...StateStoreOption) *StateStore {
	var o stateStoreOptions
	for _, opt := range opts {
		opt(&o)
	}
	s := &StateStore{
		kv:         kv,
		convs:      make(map[string]*ConversationState),
		dirtyConvs: make(map[string]bool),
	}
	s.saver = NewSaver(o.debounce, s.flush)
	return s
}

// Close flushes pending writes and releases the saver.
func (s *StateStore) Close() {
	s.saver.Close()
}

// ─── Global config ───

// GlobalConfig returns the process-wide configuration, creating it from
// defaults on first load. Persisted data goes through a sanitize pass that
// backfills missing or mistyped fields without discarding valid ones.
// Idempotent.
func (s *StateStore) GlobalConfig() *GlobalConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.globalLocked()
}

func (s *StateStore) globalLocked() *GlobalConfig {
	if s.global != nil {
		return s.global
	}

	cfg := DefaultGlobalConfig()
	raw, err := s.kv.Get(NamespaceGlobal, globalConfigKey)
	if err != nil {
		log.Printf("[StateStore] global config read failed, using defaults: %v", err)
	} else if raw != "" {
		// Decode onto the defaults: valid fields overwrite, mistyped fields
		// are skipped and keep their default values.
		if err := json.Unmarshal([]byte(raw), cfg); err != nil && !isTypeError(err) {
			log.Printf("[StateStore] global config corrupt, using defaults: %v", err)
			cfg = DefaultGlobalConfig()
		}
	} else {
		log.Printf("[StateStore] created default global config")
	}

	sanitizeGlobalConfig(cfg)
	s.global = cfg
	return cfg
}

// SaveGlobal marks the global config for a debounced persistence write.
// Call it after mutating the handle returned by GlobalConfig.
func (s *StateStore) SaveGlobal() {
	s.mu.Lock()
	s.dirtyGlobal = true
	s.mu.Unlock()
	s.saver.Mark()
}

// ─── Per-conversation state ───

// Conversation returns the state for a conversation id, creating it lazily
// with defaults and sanitizing persisted data on first access.
func (s *StateStore) Conversation(conversationID string) *ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationLocked(conversationID)
}

func (s *StateStore) conversationLocked(conversationID string) *ConversationState {
	if st, ok := s.convs[conversationID]; ok {
		return st
	}

	st := DefaultConversationState()
	raw, err := s.kv.Get(NamespaceConversation, conversationID)
	if err != nil {
		log.Printf("[StateStore] conversation %s read failed, using defaults: %v", conversationID, err)
	} else if raw != "" {
		if err := json.Unmarshal([]byte(raw), st); err != nil && !isTypeError(err) {
			log.Printf("[StateStore] conversation %s state corrupt, using defaults: %v", conversationID, err)
			st = DefaultConversationState()
		}
	} else {
		log.Printf("[StateStore] created default state for conversation %s", conversationID)
	}

	sanitizeConversationState(st)
	s.convs[conversationID] = st
	return st
}

// ResetConversation replaces a conversation's state with fresh defaults.
// Used on explicit user reset or when binding a brand-new entity.
func (s *StateStore) ResetConversation(conversationID string) *ConversationState {
	s.mu.Lock()
	st := DefaultConversationState()
	s.convs[conversationID] = st
	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()
	log.Printf("[StateStore] conversation %s reset to defaults", conversationID)
	return st
}

// SaveConversation marks a conversation's state for a debounced write.
func (s *StateStore) SaveConversation(conversationID string) {
	s.mu.Lock()
	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()
}

// ─── Persistence ───

func (s *StateStore) flush() {
	s.mu.Lock()
	var global *GlobalConfig
	if s.dirtyGlobal {
		global = s.global
		s.dirtyGlobal = false
	}
	convs := make(map[string]*ConversationState, len(s.dirtyConvs))
	for id := range s.dirtyConvs {
		convs[id] = s.convs[id]
	}
	s.dirtyConvs = make(map[string]bool)
	s.mu.Unlock()

	if global != nil {
		if err := s.writeJSON(NamespaceGlobal, globalConfigKey, global); err != nil {
			log.Printf("[StateStore] global config write failed: %v", err)
		}
	}
	for id, st := range convs {
		if st == nil {
			continue
		}
		if err := s.writeJSON(NamespaceConversation, id, st); err != nil {
			log.Printf("[StateStore] conversation %s write failed: %v", id, err)
		}
	}
}

func (s *StateStore) writeJSON(namespace, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(namespace, key, string(data))
}

// isTypeError reports whether err is only a field type mismatch, which the
// json package reports after decoding every other field it could.
func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

// ─── Sanitize passes ───

// sanitizeGlobalConfig backfills missing or invalid fields in place. It must
// tolerate partially-upgraded persisted data: valid fields are never touched.
func sanitizeGlobalConfig(cfg *GlobalConfig) {
	def := DefaultGlobalConfig()

	if cfg.SettingsVersion <= 0 {
		cfg.SettingsVersion = def.SettingsVersion
	}
	if _, ok := ControlModes[cfg.ControlMode]; !ok {
		cfg.ControlMode = def.ControlMode
	}
	if cfg.CustomToggles.PossessionCap <= 0 {
		cfg.CustomToggles.PossessionCap = def.CustomToggles.PossessionCap
	}
	if _, ok := Themes[cfg.Theme]; !ok {
		cfg.Theme = def.Theme
	}
	if cfg.ObservationFrequency <= 0 {
		cfg.ObservationFrequency = def.ObservationFrequency
	}
	if cfg.MaxObservations <= 0 {
		cfg.MaxObservations = def.MaxObservations
	}
	if cfg.VoiceLibrary == nil {
		cfg.VoiceLibrary = []VoiceTemplate{}
	}
	if cfg.ActiveTab == "" {
		cfg.ActiveTab = def.ActiveTab
	}

	cfg.Triggers = sanitizeTriggers(cfg.Triggers)
}

// sanitizeTriggers backfills missing trigger ids from the catalog, clamps
// sensitivities, and drops ids the catalog does not know.
func sanitizeTriggers(triggers map[string]TriggerSetting) map[string]TriggerSetting {
	if triggers == nil {
		return DefaultTriggers()
	}
	clean := make(map[string]TriggerSetting, len(TriggerDefs))
	for _, def := range TriggerDefs {
		setting, ok := triggers[def.ID]
		if !ok {
			setting = def.Default
		}
		if setting.Sensitivity < 0 {
			setting.Sensitivity = 0
		}
		if setting.Sensitivity > 5 {
			setting.Sensitivity = 5
		}
		clean[def.ID] = setting
	}
	return clean
}

// sanitizeConversationState establishes the structural invariants on a
// loaded conversation state.
func sanitizeConversationState(st *ConversationState) {
	if st.Relationship == "" {
		st.Relationship = "curious"
	}
	if st.Mood == "" {
		st.Mood = "watching"
	}
	if st.MoodIntensity < 0 {
		st.MoodIntensity = 0
	}
	if st.MoodIntensity > 100 {
		st.MoodIntensity = 100
	}
	st.SetAgitation(st.Agitation)

	if st.RelationshipHistory == nil {
		st.RelationshipHistory = []string{}
	}
	if st.CharacterOpinions == nil {
		st.CharacterOpinions = map[string]*CharacterOpinion{}
	}
	if st.Observations == nil {
		st.Observations = []Observation{}
	}
	if st.AgitationLog == nil {
		st.AgitationLog = []AgitationEvent{}
	}
	if st.DevelopedTastes == nil {
		st.DevelopedTastes = []string{}
	}
	if st.TotalMessages < 0 {
		st.TotalMessages = 0
	}

	if st.Entity != nil {
		if st.Entity.Chattiness < 1 || st.Entity.Chattiness > 5 {
			st.Entity.Chattiness = 3
		}
	}
}
