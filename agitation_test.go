package entitysdk

import "testing"

// ══════════════════════════════════════════════
// Agitation Engine
// ══════════════════════════════════════════════

func newBoundStore(t *testing.T) *StateStore {
	t.Helper()
	s := NewStateStore(NewInMemoryKVStore())
	t.Cleanup(s.Close)
	if err := s.BindCustom("conv1", EntitySpec{Name: "Echo"}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	return s
}

func TestAgitation_TriggerScoring(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	cfg := s.GlobalConfig()
	cfg.Triggers["rage"] = TriggerSetting{Enabled: true, Sensitivity: 3}
	cfg.Triggers["betrayal"] = TriggerSetting{Enabled: true, Sensitivity: 4}

	got, _ := e.ScoreTriggers("conv1", []string{"rage", "betrayal"})
	if got != 55 {
		t.Fatalf("expected 55 (20+35), got %d", got)
	}
}

func TestAgitation_DisabledTriggerScoresNothing(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	cfg := s.GlobalConfig()
	cfg.Triggers["grief"] = TriggerSetting{Enabled: false, Sensitivity: 5}

	got, _ := e.ScoreTriggers("conv1", []string{"grief"})
	if got != 0 {
		t.Fatalf("disabled trigger should not score, got %d", got)
	}
}

func TestAgitation_UnknownTriggerIgnored(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	got, _ := e.ScoreTriggers("conv1", []string{"no-such-trigger"})
	if got != 0 {
		t.Fatalf("unknown trigger should not score, got %d", got)
	}
}

func TestAgitation_ClampAtMax(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	cfg := s.GlobalConfig()
	cfg.Triggers["rage"] = TriggerSetting{Enabled: true, Sensitivity: 5}
	cfg.Triggers["fear"] = TriggerSetting{Enabled: true, Sensitivity: 5}
	cfg.Triggers["betrayal"] = TriggerSetting{Enabled: true, Sensitivity: 5}

	got, _ := e.ScoreTriggers("conv1", []string{"rage", "fear", "betrayal"})
	if got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestAgitation_DecayFloorsAtZero(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	st := s.Conversation("conv1")
	st.SetAgitation(3)

	got := e.Decay("conv1", DecayNone)
	if got != 0 {
		t.Fatalf("agitation 3 with decay 5 should floor at 0, got %d", got)
	}
}

func TestAgitation_DecayAmounts(t *testing.T) {
	cases := []struct {
		cond DecayCondition
		want int // from 50
	}{
		{DecayNone, 45},
		{DecayDirect, 35},
		{DecaySatisfied, 40},
		{DecayForced, 60}, // negative constant: forcing raises agitation
	}
	for _, tc := range cases {
		s := newBoundStore(t)
		e := NewAgitationEngine(s)
		s.Conversation("conv1").SetAgitation(50)
		if got := e.Decay("conv1", tc.cond); got != tc.want {
			t.Fatalf("cond %d: expected %d, got %d", tc.cond, tc.want, got)
		}
	}
}

func TestAgitation_NoEntityIsInert(t *testing.T) {
	s := NewStateStore(NewInMemoryKVStore())
	defer s.Close()
	e := NewAgitationEngine(s)

	if got, _ := e.ScoreTriggers("empty", []string{"rage"}); got != 0 {
		t.Fatalf("no entity: expected 0, got %d", got)
	}
	if got := e.Decay("empty", DecayForced); got != 0 {
		t.Fatalf("no entity: decay should be a no-op, got %d", got)
	}
	if n := len(s.Conversation("empty").AgitationLog); n != 0 {
		t.Fatalf("no entity: log should stay empty, got %d entries", n)
	}
}

func TestAgitation_LogRecordsAdjustments(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	e.ScoreTriggers("conv1", []string{"rage"})
	e.Decay("conv1", DecayNone)

	logEntries := s.Conversation("conv1").AgitationLog
	if len(logEntries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(logEntries))
	}
	if logEntries[0].Delta != 20 || logEntries[0].Result != 20 {
		t.Fatalf("unexpected first entry: %+v", logEntries[0])
	}
	if logEntries[1].Delta != -5 || logEntries[1].Result != 15 {
		t.Fatalf("unexpected second entry: %+v", logEntries[1])
	}
}

func TestAgitation_ThresholdCrossings(t *testing.T) {
	s := newBoundStore(t)
	e := NewAgitationEngine(s)

	cfg := s.GlobalConfig()
	cfg.Triggers["rage"] = TriggerSetting{Enabled: true, Sensitivity: 5}
	cfg.Triggers["betrayal"] = TriggerSetting{Enabled: true, Sensitivity: 5}

	// 0 -> 100 crosses all three thresholds at once.
	_, crossings := e.ScoreTriggers("conv1", []string{"rage", "betrayal"})
	if len(crossings) != 3 {
		t.Fatalf("expected 3 crossings, got %d", len(crossings))
	}
	names := map[string]bool{}
	for _, c := range crossings {
		names[c.Threshold] = true
	}
	if !names["intrusion"] || !names["struggle"] || !names["possession"] {
		t.Fatalf("missing crossing names: %v", names)
	}

	// Already above: no re-crossing.
	cfg.Triggers["fear"] = TriggerSetting{Enabled: true, Sensitivity: 1}
	s.Conversation("conv1").SetAgitation(80)
	_, crossings = e.ScoreTriggers("conv1", []string{"fear"})
	if len(crossings) != 0 {
		t.Fatalf("expected no crossings from 80->85, got %d", len(crossings))
	}
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		agitation int
		want      Tier
	}{
		{0, TierContained},
		{14, TierContained},
		{15, TierRestless},
		{34, TierRestless},
		{35, TierStraining},
		{54, TierStraining},
		{55, TierStruggling},
		{74, TierStruggling},
		{75, TierBreaking},
		{89, TierBreaking},
		{90, TierUnbound},
		{100, TierUnbound},
	}
	for _, tc := range cases {
		if got := TierFor(tc.agitation); got != tc.want {
			t.Fatalf("TierFor(%d) = %s, want %s", tc.agitation, got, tc.want)
		}
	}
}
