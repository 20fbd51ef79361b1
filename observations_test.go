package entitysdk

import "testing"

// ══════════════════════════════════════════════
// Observations, tastes, opinions
// ══════════════════════════════════════════════

func TestObservations_EvictOldestNonPermanentFirst(t *testing.T) {
	s := NewStateStore(NewInMemoryKVStore())
	defer s.Close()
	s.GlobalConfig().MaxObservations = 3
	s.BindCustom("c1", EntitySpec{Name: "Echo"})

	s.AddObservation("c1", Observation{Text: "first", Permanent: true})
	s.AddObservation("c1", Observation{Text: "second"})
	s.AddObservation("c1", Observation{Text: "third"})
	s.AddObservation("c1", Observation{Text: "fourth"})

	obs := s.Conversation("c1").Observations
	if len(obs) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(obs))
	}
	// "second" is the oldest non-permanent entry, so it goes first.
	if obs[0].Text != "first" || obs[1].Text != "third" || obs[2].Text != "fourth" {
		t.Fatalf("unexpected survivors: %s / %s / %s", obs[0].Text, obs[1].Text, obs[2].Text)
	}
}

func TestObservations_AllPermanentEvictsOldest(t *testing.T) {
	s := NewStateStore(NewInMemoryKVStore())
	defer s.Close()
	s.GlobalConfig().MaxObservations = 2
	s.BindCustom("c1", EntitySpec{Name: "Echo"})

	s.AddObservation("c1", Observation{Text: "a", Permanent: true})
	s.AddObservation("c1", Observation{Text: "b", Permanent: true})
	s.AddObservation("c1", Observation{Text: "c", Permanent: true})

	obs := s.Conversation("c1").Observations
	if len(obs) != 2 || obs[0].Text != "b" || obs[1].Text != "c" {
		t.Fatalf("expected b/c to survive, got %+v", obs)
	}
}

func TestObservations_DefaultTypeAndCounterReset(t *testing.T) {
	s := NewStateStore(NewInMemoryKVStore())
	defer s.Close()
	s.BindCustom("c1", EntitySpec{Name: "Echo"})
	s.Conversation("c1").MessagesSinceLastObservation = 7

	s.AddObservation("c1", Observation{Text: "hums when nervous"})

	st := s.Conversation("c1")
	if st.Observations[0].Type != "behavioral" {
		t.Fatalf("type = %s, want behavioral", st.Observations[0].Type)
	}
	if st.MessagesSinceLastObservation != 0 {
		t.Fatal("recording an observation must reset the counter")
	}
}

func TestObservations_OpinionAccumulatesNotes(t *testing.T) {
	s := NewStateStore(NewInMemoryKVStore())
	defer s.Close()
	s.BindCustom("c1", EntitySpec{Name: "Echo"})

	s.SetCharacterOpinion("c1", "Mira", "intrigued", "asks good questions")
	s.SetCharacterOpinion("c1", "Mira", "", "flinched at the door")
	s.SetCharacterOpinion("c1", "", "ignored", "")

	ops := s.Conversation("c1").CharacterOpinions
	if len(ops) != 1 {
		t.Fatalf("expected one opinion, got %d", len(ops))
	}
	op := ops["Mira"]
	if op.State != "intrigued" {
		t.Fatalf("empty state update must not clear, got %s", op.State)
	}
	if len(op.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(op.Notes))
	}
}

func TestObservations_EmptyTasteIgnored(t *testing.T) {
	s := NewStateStore(NewInMemoryKVStore())
	defer s.Close()
	s.BindCustom("c1", EntitySpec{Name: "Echo"})

	s.AddTaste("c1", "")
	s.AddTaste("c1", "collects apologies")
	if got := s.Conversation("c1").DevelopedTastes; len(got) != 1 || got[0] != "collects apologies" {
		t.Fatalf("unexpected tastes: %v", got)
	}
}
