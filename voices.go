package entitysdk

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// ──────────────────────────────────────────────
// Voice library — reusable, memory-free entity templates
// ──────────────────────────────────────────────

// SaveVoiceTemplate snapshots an entity's character fields into the voice
// library and persists. Relationship and observation history never travel
// with a template. Returns nil if no entity is given.
func (s *StateStore) SaveVoiceTemplate(entity *Entity) *VoiceTemplate {
	if entity == nil {
		return nil
	}

	s.mu.Lock()
	cfg := s.globalLocked()
	voice := VoiceTemplate{
		ID:                 "voice_" + uuid.NewString(),
		Name:               entity.Name,
		Nature:             entity.Nature,
		Personality:        entity.Personality,
		SpeakingStyle:      entity.SpeakingStyle,
		Obsession:          entity.Obsession,
		BlindSpot:          entity.BlindSpot,
		OpinionOfYou:       entity.OpinionOfYou,
		Wants:              entity.Wants,
		Chattiness:         entity.Chattiness,
		VoiceExample:       entity.VoiceExample,
		ManifestationType:  entity.ManifestationType,
		Manifestation:      entity.Manifestation,
		TriggerPreferences: cloneTriggerSettings(entity.TriggerPreferences),
		Created:            time.Now(),
	}
	if voice.Chattiness == 0 {
		voice.Chattiness = 3
	}
	cfg.VoiceLibrary = append(cfg.VoiceLibrary, voice)
	s.dirtyGlobal = true
	s.mu.Unlock()
	s.saver.Mark()

	log.Printf("[Voices] saved: %s", voice.Name)
	return &voice
}

// LoadVoiceTemplate creates a fresh entity from a library template and binds
// it to the conversation, resetting every dynamic field. Returns false if
// the template id is unknown; callers surface that however they like.
func (s *StateStore) LoadVoiceTemplate(conversationID, templateID string) bool {
	s.mu.Lock()
	cfg := s.globalLocked()

	var voice *VoiceTemplate
	for i := range cfg.VoiceLibrary {
		if cfg.VoiceLibrary[i].ID == templateID {
			voice = &cfg.VoiceLibrary[i]
			break
		}
	}
	if voice == nil {
		s.mu.Unlock()
		return false
	}

	st := s.conversationLocked(conversationID)
	st.Entity = &Entity{
		ID:            "entity_" + uuid.NewString(),
		Name:          voice.Name,
		Nature:        voice.Nature,
		Personality:   voice.Personality,
		SpeakingStyle: voice.SpeakingStyle,
		Obsession:     voice.Obsession,
		BlindSpot:     voice.BlindSpot,
		OpinionOfYou:  voice.OpinionOfYou,
		Wants:         voice.Wants,
		Chattiness:    voice.Chattiness,
		VoiceExample:  voice.VoiceExample,

		ManifestationType:  voice.ManifestationType,
		Manifestation:      voice.Manifestation,
		TriggerPreferences: cloneTriggerSettings(voice.TriggerPreferences),
		Created:            time.Now(),
	}
	if st.Entity.Chattiness < 1 || st.Entity.Chattiness > 5 {
		st.Entity.Chattiness = 3
	}

	resetDynamicState(st)

	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()

	log.Printf("[Voices] loaded %s into conversation %s", voice.Name, conversationID)
	return true
}

// DeleteVoiceTemplate removes a template from the library. Returns false
// (silently) if the id is not found.
func (s *StateStore) DeleteVoiceTemplate(templateID string) bool {
	s.mu.Lock()
	cfg := s.globalLocked()

	idx := -1
	for i := range cfg.VoiceLibrary {
		if cfg.VoiceLibrary[i].ID == templateID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return false
	}
	cfg.VoiceLibrary = append(cfg.VoiceLibrary[:idx], cfg.VoiceLibrary[idx+1:]...)
	s.dirtyGlobal = true
	s.mu.Unlock()
	s.saver.Mark()
	return true
}

// resetDynamicState clears everything that belongs to the previous entity's
// tenure: relationship, opinions, observations, agitation, mood, tastes,
// commentary history, and the message counters.
func resetDynamicState(st *ConversationState) {
	st.Relationship = "curious"
	st.RelationshipHistory = []string{}
	st.CharacterOpinions = map[string]*CharacterOpinion{}
	st.Observations = []Observation{}
	st.SetAgitation(0)
	st.AgitationLog = []AgitationEvent{}
	st.Mood = "watching"
	st.MoodIntensity = 50
	st.LastCommentary = ""
	st.SilentStreak = 0
	st.DevelopedTastes = []string{}
	st.TotalMessages = 0
	st.MessagesSinceLastObservation = 0
	st.MessagesSinceLastHijack = 0
}

func cloneTriggerSettings(m map[string]TriggerSetting) map[string]TriggerSetting {
	if m == nil {
		return nil
	}
	cp := make(map[string]TriggerSetting, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// ─── Import / export ───

// ExportVoices serializes the voice library as a JSON array.
func (s *StateStore) ExportVoices() ([]byte, error) {
	s.mu.Lock()
	cfg := s.globalLocked()
	library := make([]VoiceTemplate, len(cfg.VoiceLibrary))
	copy(library, cfg.VoiceLibrary)
	s.mu.Unlock()
	return json.MarshalIndent(library, "", "  ")
}

// ImportVoices appends templates from a JSON array. Each entry needs at
// minimum a name and a nature; entries missing either are skipped. Every
// accepted entry gets a fresh unique id. Non-array input is rejected
// wholesale. Returns the number of imported entries.
func (s *StateStore) ImportVoices(data []byte) (int, error) {
	var voices []VoiceTemplate
	if err := json.Unmarshal(data, &voices); err != nil {
		return 0, fmt.Errorf("invalid voice file: %w", err)
	}

	s.mu.Lock()
	cfg := s.globalLocked()
	count := 0
	for _, v := range voices {
		if v.Name == "" || v.Nature == "" {
			continue
		}
		v.ID = "voice_" + uuid.NewString()
		if v.Chattiness < 1 || v.Chattiness > 5 {
			v.Chattiness = 3
		}
		if v.Created.IsZero() {
			v.Created = time.Now()
		}
		cfg.VoiceLibrary = append(cfg.VoiceLibrary, v)
		count++
	}
	if count > 0 {
		s.dirtyGlobal = true
	}
	s.mu.Unlock()
	if count > 0 {
		s.saver.Mark()
	}

	log.Printf("[Voices] imported %d voice(s)", count)
	return count, nil
}
