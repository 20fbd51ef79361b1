package entitysdk

import "time"

// ──────────────────────────────────────────────
// State types — process-wide config + per-conversation state
// ──────────────────────────────────────────────

// GlobalConfig is the process-wide configuration. One instance, created on
// first load, never destroyed. Mutated by settings surfaces and by
// entity-binding operations (which may copy a preset's trigger preferences
// into it).
type GlobalConfig struct {
	SettingsVersion int    `json:"settings_version"`
	Enabled         bool   `json:"enabled"`
	ControlMode     string `json:"control_mode"` // manual | auto | custom

	CustomToggles CustomToggles             `json:"custom_toggles"`
	Triggers      map[string]TriggerSetting `json:"triggers"`

	Theme string `json:"theme"`

	ObservationFrequency int `json:"observation_frequency"`
	MaxObservations      int `json:"max_observations"`

	VoiceLibrary []VoiceTemplate `json:"voice_library"`

	// UI preferences. Stored for the rendering layer, uninterpreted here.
	PanelOpen   bool        `json:"panel_open"`
	ActiveTab   string      `json:"active_tab"`
	FabPosition FabPosition `json:"fab_position"`
}

// CustomToggles are the per-feature switches used when ControlMode is "custom".
type CustomToggles struct {
	Sidebar       bool `json:"sidebar"`
	Directory     bool `json:"directory"`
	Intrusion     bool `json:"intrusion"`
	Struggle      bool `json:"struggle"`
	Possession    bool `json:"possession"`
	PossessionCap int  `json:"possession_cap"`
}

// FabPosition is the saved panel-button position (rendering-layer data).
type FabPosition struct {
	Top   string `json:"top,omitempty"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// DefaultGlobalConfig returns the factory configuration.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		SettingsVersion: 1,
		Enabled:         true,
		ControlMode:     "custom",
		CustomToggles: CustomToggles{
			Sidebar:       true,
			Directory:     true,
			Intrusion:     true,
			Struggle:      true,
			Possession:    false,
			PossessionCap: 3,
		},
		Triggers:             DefaultTriggers(),
		Theme:                "veridian",
		ObservationFrequency: DefaultObservationFrequency,
		MaxObservations:      DefaultMaxObservations,
		VoiceLibrary:         []VoiceTemplate{},
		ActiveTab:            "entity",
		FabPosition:          FabPosition{Top: "80px", Right: "12px"},
	}
}

// ─── Per-conversation state ───

// ConversationState is the per-conversation entity state, keyed by
// conversation id. Created lazily on first access; reset wholesale when a
// new entity is bound or the user explicitly resets.
type ConversationState struct {
	Entity *Entity `json:"entity"`

	Relationship        string                       `json:"relationship"`
	RelationshipHistory []string                     `json:"relationship_history"`
	CharacterOpinions   map[string]*CharacterOpinion `json:"character_opinions"`

	Observations []Observation `json:"observations"`

	Agitation    int              `json:"agitation"` // always clamped to [0,100]
	AgitationLog []AgitationEvent `json:"agitation_log"`

	Mood          string `json:"mood"`
	MoodIntensity int    `json:"mood_intensity"` // 0-100

	LastCommentary  string   `json:"last_commentary"`
	SilentStreak    int      `json:"silent_streak"`
	DevelopedTastes []string `json:"developed_tastes"`

	TotalMessages                int `json:"total_messages"`
	MessagesSinceLastObservation int `json:"messages_since_last_observation"`
	MessagesSinceLastHijack      int `json:"messages_since_last_hijack"`
}

// CharacterOpinion is the entity's view of one non-host character.
type CharacterOpinion struct {
	State string   `json:"state"` // from CharacterRelationships
	Notes []string `json:"notes"`
}

// Observation is one entity observation about the host.
type Observation struct {
	Type      string `json:"type"` // behavioral | emotional | relational | physical
	Text      string `json:"text"`
	Permanent bool   `json:"permanent"`
}

// AgitationEvent records one agitation adjustment for audit and debugging.
type AgitationEvent struct {
	Delta    int       `json:"delta"`
	Reason   string    `json:"reason"`
	Triggers []string  `json:"triggers,omitempty"`
	Result   int       `json:"result"`
	At       time.Time `json:"at"`
}

// DefaultConversationState returns a fresh per-conversation state.
func DefaultConversationState() *ConversationState {
	return &ConversationState{
		Relationship:        "curious",
		RelationshipHistory: []string{},
		CharacterOpinions:   map[string]*CharacterOpinion{},
		Observations:        []Observation{},
		AgitationLog:        []AgitationEvent{},
		Mood:                "watching",
		MoodIntensity:       50,
		DevelopedTastes:     []string{},
	}
}

// SetAgitation writes a clamped agitation value. All agitation writes go
// through here so the [0,100] invariant holds on every path.
func (s *ConversationState) SetAgitation(value int) {
	s.Agitation = clampAgitation(value)
}

func clampAgitation(v int) int {
	if v < 0 {
		return 0
	}
	if v > AgitationMax {
		return AgitationMax
	}
	return v
}

// HasEntity reports whether an entity is bound to this conversation.
func (s *ConversationState) HasEntity() bool {
	return s != nil && s.Entity != nil
}

// ─── Entity ───

// Entity is the persona bound to a conversation. Immutable once bound except
// for fields a user explicitly edits; owned exclusively by its
// ConversationState.
type Entity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Nature string `json:"nature"` // from EntityNatures, or "custom"

	Personality   string `json:"personality,omitempty"`
	SpeakingStyle string `json:"speaking_style,omitempty"`
	Obsession     string `json:"obsession,omitempty"`
	BlindSpot     string `json:"blind_spot,omitempty"`
	OpinionOfYou  string `json:"opinion_of_you,omitempty"`
	Wants         string `json:"wants,omitempty"`

	Chattiness   int    `json:"chattiness"` // 1-5
	VoiceExample string `json:"voice_example,omitempty"`

	ManifestationType string        `json:"manifestation_type"`
	Manifestation     Manifestation `json:"manifestation"`

	TriggerPreferences map[string]TriggerSetting `json:"trigger_preferences,omitempty"`

	PresetID string    `json:"preset_id,omitempty"`
	Created  time.Time `json:"created"`
}

// Manifestation describes how the entity presents itself.
type Manifestation struct {
	HostPerception   string `json:"host_perception,omitempty"`
	PossessionDesc   string `json:"possession_desc,omitempty"`
	ExternalTells    string `json:"external_tells,omitempty"`
	SensorySignature string `json:"sensory_signature,omitempty"`
}

// ─── Voice templates & presets ───

// VoiceTemplate is a reusable, memory-free snapshot of an entity's character
// fields. Lives in the GlobalConfig voice library, independent of any
// conversation.
type VoiceTemplate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Nature        string `json:"nature"`
	Personality   string `json:"personality,omitempty"`
	SpeakingStyle string `json:"speaking_style,omitempty"`
	Obsession     string `json:"obsession,omitempty"`
	BlindSpot     string `json:"blind_spot,omitempty"`
	OpinionOfYou  string `json:"opinion_of_you,omitempty"`
	Wants         string `json:"wants,omitempty"`
	Chattiness    int    `json:"chattiness"`
	VoiceExample  string `json:"voice_example,omitempty"`

	ManifestationType string        `json:"manifestation_type,omitempty"`
	Manifestation     Manifestation `json:"manifestation,omitempty"`

	TriggerPreferences map[string]TriggerSetting `json:"trigger_preferences,omitempty"`

	Created time.Time `json:"created"`
}

// PresetEntity is a built-in, read-only voice bundled with default
// relationship, mood, and trigger preference deltas.
type PresetEntity struct {
	ID     string
	Name   string
	Source string
	Hook   string
	Nature string

	Personality   string
	SpeakingStyle string
	Obsession     string
	BlindSpot     string
	OpinionOfYou  string
	Wants         string

	Chattiness   int
	VoiceExample string

	ManifestationType string
	Manifestation     Manifestation

	DefaultRelationship string
	DefaultMood         string

	TriggerPreferences map[string]TriggerSetting
}

// ─── Chat history (host platform port) ───

// ChatMessage is one message from the host platform's conversation history.
type ChatMessage struct {
	IsHost  bool   `json:"is_host"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// ChatHost is the read side of the host conversation platform. The prompt
// builder reads recent history through it.
type ChatHost interface {
	// History returns the conversation's messages, oldest first.
	History(conversationID string) []ChatMessage
	// HostName returns the host/user display name for the conversation.
	HostName(conversationID string) string
}
