package entitysdk

import (
	"strings"
	"testing"
)

// ══════════════════════════════════════════════
// Prompt builder
// ══════════════════════════════════════════════

func minimalEntity() *Entity {
	return &Entity{Name: "Echo", Nature: "shadow", Chattiness: 3}
}

func TestPrompt_IdentitySectionsOnlyWhenSet(t *testing.T) {
	st := DefaultConversationState()
	prompt := BuildSystemPrompt(minimalEntity(), st)

	if !strings.Contains(prompt, "Name: Echo\n") || !strings.Contains(prompt, "Nature: shadow\n") {
		t.Fatal("name and nature always appear")
	}
	for _, label := range []string{"Personality:", "Speaking Style:", "Obsession:", "Blind Spot:", "Wants:"} {
		if strings.Contains(prompt, label) {
			t.Fatalf("empty identity field %q must be omitted", label)
		}
	}

	e := minimalEntity()
	e.Obsession = "roads not taken"
	if !strings.Contains(BuildSystemPrompt(e, st), "Obsession: roads not taken\n") {
		t.Fatal("set identity field must appear")
	}
}

func TestPrompt_UnknownNatureDefaults(t *testing.T) {
	e := minimalEntity()
	e.Nature = ""
	if !strings.Contains(BuildSystemPrompt(e, DefaultConversationState()), "Nature: Unknown\n") {
		t.Fatal("blank nature renders as Unknown")
	}
}

func TestPrompt_AgitationHints(t *testing.T) {
	st := DefaultConversationState()
	cases := []struct {
		agitation int
		want      string
	}{
		{0, "(contained)"},
		{30, "(contained)"},
		{31, "(rising"},
		{60, "(rising"},
		{61, "(HIGH"},
		{100, "(HIGH"},
	}
	for _, tc := range cases {
		st.SetAgitation(tc.agitation)
		prompt := BuildSystemPrompt(minimalEntity(), st)
		if !strings.Contains(prompt, tc.want) {
			t.Fatalf("agitation %d: expected hint %q", tc.agitation, tc.want)
		}
	}
}

func TestPrompt_ChattinessHints(t *testing.T) {
	st := DefaultConversationState()

	e := minimalEntity()
	e.Chattiness = 2
	if !strings.Contains(BuildSystemPrompt(e, st), "you speak RARELY") {
		t.Fatal("low chattiness must get the rare-speech hint")
	}
	e.Chattiness = 4
	if !strings.Contains(BuildSystemPrompt(e, st), "opinions about EVERYTHING") {
		t.Fatal("high chattiness must get the opinionated hint")
	}
	e.Chattiness = 3
	prompt := BuildSystemPrompt(e, st)
	if strings.Contains(prompt, "you speak RARELY") || strings.Contains(prompt, "EVERYTHING") {
		t.Fatal("mid chattiness gets no hint")
	}
}

func TestPrompt_ObservationWindow(t *testing.T) {
	st := DefaultConversationState()
	for _, text := range []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"} {
		st.Observations = append(st.Observations, Observation{Text: text})
	}
	prompt := BuildSystemPrompt(minimalEntity(), st)

	if strings.Contains(prompt, "- one\n") || strings.Contains(prompt, "- two\n") {
		t.Fatal("only the most recent observations appear")
	}
	if !strings.Contains(prompt, "- three\n") || !strings.Contains(prompt, "- ten") {
		t.Fatal("the last eight observations must appear")
	}
}

func TestPrompt_TasteWindowAndOpinionOrder(t *testing.T) {
	st := DefaultConversationState()
	st.DevelopedTastes = []string{"a", "b", "c", "d", "e", "f", "g"}
	st.CharacterOpinions = map[string]*CharacterOpinion{
		"Zed":  {State: "wary"},
		"Anna": {State: "fond", Notes: []string{"keeps her word"}},
	}
	prompt := BuildSystemPrompt(minimalEntity(), st)

	if strings.Contains(prompt, "OPINIONS ABOUT: a,") {
		t.Fatal("only the last five tastes appear")
	}
	if !strings.Contains(prompt, "c, d, e, f, g") {
		t.Fatal("recent tastes must appear in order")
	}
	anna := strings.Index(prompt, "- Anna: fond (keeps her word)")
	zed := strings.Index(prompt, "- Zed: wary")
	if anna == -1 || zed == -1 || anna > zed {
		t.Fatal("opinions must list alphabetically with notes inline")
	}
}

func TestPrompt_VoiceExampleAppended(t *testing.T) {
	e := minimalEntity()
	e.VoiceExample = "You almost said it."
	prompt := BuildSystemPrompt(e, DefaultConversationState())
	if !strings.HasSuffix(prompt, "You almost said it.") {
		t.Fatal("voice example must close the prompt")
	}
}

// ─── User prompt ───

func TestPrompt_EmptyHistoryIsQuietScene(t *testing.T) {
	if got := BuildUserPrompt("Echo", nil); got != "The scene is quiet. Nothing has happened yet." {
		t.Fatalf("unexpected quiet-scene prompt: %q", got)
	}
}

func TestPrompt_UserPromptWindowAndSpeakers(t *testing.T) {
	var history []ChatMessage
	for i := 0; i < 8; i++ {
		history = append(history, ChatMessage{Speaker: "Mira", Text: "line"})
	}
	history = append(history,
		ChatMessage{IsHost: true, Text: "me, unnamed"},
		ChatMessage{Text: "them, unnamed"},
	)

	prompt := BuildUserPrompt("Echo", history)
	if got := strings.Count(prompt, "Mira: line"); got != 4 {
		t.Fatalf("expected 4 surviving Mira lines, got %d", got)
	}
	if !strings.Contains(prompt, "User: me, unnamed") {
		t.Fatal("unnamed host messages are attributed to User")
	}
	if !strings.Contains(prompt, "Character: them, unnamed") {
		t.Fatal("unnamed non-host messages are attributed to Character")
	}
	if !strings.Contains(prompt, "React to this as Echo.") {
		t.Fatal("footer must name the entity")
	}
}

func TestPrompt_LongMessagesTruncated(t *testing.T) {
	long := strings.Repeat("ä", 700)
	prompt := BuildUserPrompt("Echo", []ChatMessage{{Speaker: "Mira", Text: long}})
	if strings.Contains(prompt, long) {
		t.Fatal("messages past the limit must be truncated")
	}
	if !strings.Contains(prompt, strings.Repeat("ä", 600)) {
		t.Fatal("truncation keeps the first 600 characters")
	}
}

func TestPrompt_UnnamedEntityFooter(t *testing.T) {
	prompt := BuildUserPrompt("", []ChatMessage{{Speaker: "Mira", Text: "hi"}})
	if !strings.Contains(prompt, "React to this as the entity.") {
		t.Fatal("blank entity name falls back to a generic footer")
	}
}
