package entitysdk

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// ──────────────────────────────────────────────
// Entity lifecycle — binding presets and custom entities
// ──────────────────────────────────────────────

// ErrNameRequired is returned when a custom entity has no name.
var ErrNameRequired = errors.New("entity needs a name")

// EntitySpec is the input for creating a custom entity. Invalid fields are
// defaulted rather than rejected; only the name is mandatory.
type EntitySpec struct {
	Name          string
	Nature        string
	Personality   string
	SpeakingStyle string
	Obsession     string
	BlindSpot     string
	OpinionOfYou  string
	Wants         string
	Chattiness    int
	VoiceExample  string

	ManifestationType string
	Manifestation     Manifestation
}

// BindPreset binds a built-in preset to a conversation: creates the entity,
// applies the preset's default relationship and mood, copies its trigger
// preferences into the registry (only for trigger ids the registry already
// knows), and resets all dynamic state. Returns false if the preset id is
// unknown; on false nothing is modified.
func (s *StateStore) BindPreset(conversationID, presetID string) bool {
	preset := PresetByID(presetID)
	if preset == nil {
		return false
	}

	s.mu.Lock()
	cfg := s.globalLocked()
	st := s.conversationLocked(conversationID)

	st.Entity = &Entity{
		ID:            "entity_" + uuid.NewString(),
		Name:          preset.Name,
		Nature:        preset.Nature,
		Personality:   preset.Personality,
		SpeakingStyle: preset.SpeakingStyle,
		Obsession:     preset.Obsession,
		BlindSpot:     preset.BlindSpot,
		OpinionOfYou:  preset.OpinionOfYou,
		Wants:         preset.Wants,
		Chattiness:    preset.Chattiness,
		VoiceExample:  preset.VoiceExample,

		ManifestationType:  preset.ManifestationType,
		Manifestation:      preset.Manifestation,
		TriggerPreferences: cloneTriggerSettings(preset.TriggerPreferences),
		PresetID:           preset.ID,
		Created:            time.Now(),
	}

	resetDynamicState(st)
	if preset.DefaultRelationship != "" {
		st.Relationship = preset.DefaultRelationship
	}
	if preset.DefaultMood != "" {
		st.Mood = preset.DefaultMood
	}

	// Copy preference deltas for known triggers only. Extra preset keys are
	// ignored, never added to the registry.
	for id, setting := range preset.TriggerPreferences {
		if _, ok := cfg.Triggers[id]; ok {
			cfg.Triggers[id] = setting
		}
	}

	s.dirtyGlobal = true
	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()

	log.Printf("[Lifecycle] preset bound: %s", preset.Name)
	return true
}

// BindCustom binds a user-authored entity. Validation happens first and
// binding is all-or-nothing: on error the conversation is untouched.
func (s *StateStore) BindCustom(conversationID string, spec EntitySpec) error {
	if spec.Name == "" {
		return ErrNameRequired
	}

	entity := &Entity{
		ID:            "entity_" + uuid.NewString(),
		Name:          spec.Name,
		Nature:        spec.Nature,
		Personality:   spec.Personality,
		SpeakingStyle: spec.SpeakingStyle,
		Obsession:     spec.Obsession,
		BlindSpot:     spec.BlindSpot,
		OpinionOfYou:  spec.OpinionOfYou,
		Wants:         spec.Wants,
		Chattiness:    spec.Chattiness,
		VoiceExample:  spec.VoiceExample,

		ManifestationType: spec.ManifestationType,
		Manifestation:     spec.Manifestation,
		Created:           time.Now(),
	}
	if entity.Nature == "" {
		entity.Nature = "custom"
	}
	if entity.Chattiness < 1 || entity.Chattiness > 5 {
		entity.Chattiness = 3
	}
	if entity.ManifestationType == "" {
		entity.ManifestationType = "apparition"
	}

	s.mu.Lock()
	st := s.conversationLocked(conversationID)
	st.Entity = entity
	resetDynamicState(st)
	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()

	log.Printf("[Lifecycle] custom entity bound: %s", entity.Name)
	return nil
}
