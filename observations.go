package entitysdk

// ──────────────────────────────────────────────
// Observations, tastes, character opinions
// ──────────────────────────────────────────────

// AddObservation records an observation about the host, evicting the oldest
// non-permanent entry once the configured cap is exceeded. When every entry
// is permanent the oldest one goes regardless, so the list stays bounded.
func (s *StateStore) AddObservation(conversationID string, obs Observation) {
	if obs.Type == "" {
		obs.Type = "behavioral"
	}

	s.mu.Lock()
	cfg := s.globalLocked()
	st := s.conversationLocked(conversationID)

	st.Observations = append(st.Observations, obs)
	max := cfg.MaxObservations
	if max > 0 {
		for len(st.Observations) > max {
			st.Observations = evictObservation(st.Observations)
		}
	}
	st.MessagesSinceLastObservation = 0

	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()
}

func evictObservation(obs []Observation) []Observation {
	for i := range obs {
		if !obs[i].Permanent {
			return append(obs[:i], obs[i+1:]...)
		}
	}
	return obs[1:]
}

// AddTaste appends a developed taste.
func (s *StateStore) AddTaste(conversationID, taste string) {
	if taste == "" {
		return
	}
	s.mu.Lock()
	st := s.conversationLocked(conversationID)
	st.DevelopedTastes = append(st.DevelopedTastes, taste)
	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()
}

// SetCharacterOpinion records or updates the entity's opinion of a
// character. An optional note is appended to the opinion's note list.
func (s *StateStore) SetCharacterOpinion(conversationID, character, state, note string) {
	if character == "" {
		return
	}
	s.mu.Lock()
	st := s.conversationLocked(conversationID)
	op, ok := st.CharacterOpinions[character]
	if !ok {
		op = &CharacterOpinion{Notes: []string{}}
		st.CharacterOpinions[character] = op
	}
	if state != "" {
		op.State = state
	}
	if note != "" {
		op.Notes = append(op.Notes, note)
	}
	s.dirtyConvs[conversationID] = true
	s.mu.Unlock()
	s.saver.Mark()
}
