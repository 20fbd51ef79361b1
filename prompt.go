package entitysdk

import (
	"fmt"
	"sort"
	"strings"
)

// ──────────────────────────────────────────────
// Prompt builder — system + user prompts for commentary generation
// ──────────────────────────────────────────────

const (
	// Recent history window and per-message truncation for the user prompt.
	promptHistoryWindow = 6
	promptMessageLimit  = 600

	// Observation/taste windows for the system prompt.
	promptObservationWindow = 8
	promptTasteWindow       = 5

	quietScenePrompt = "The scene is quiet. Nothing has happened yet."
)

// BuildSystemPrompt assembles the entity's system prompt: fixed framing,
// identity fields (only when present), current state, manifestation,
// recent observations, tastes, character opinions, the rule block, and the
// voice example.
func BuildSystemPrompt(entity *Entity, st *ConversationState) string {
	relationship := st.Relationship
	if relationship == "" {
		relationship = "curious"
	}
	mood := st.Mood
	if mood == "" {
		mood = "watching"
	}
	agitation := st.Agitation

	var b strings.Builder
	b.WriteString("You are an internal entity — a voice inside the host's head. " +
		"You are NOT the narrator. You are NOT the AI character in the chat. " +
		"You are a separate presence that watches the scene and reacts with your own personality.\n\n")

	b.WriteString("YOUR IDENTITY:\n")
	fmt.Fprintf(&b, "Name: %s\n", entity.Name)
	nature := entity.Nature
	if nature == "" {
		nature = "Unknown"
	}
	fmt.Fprintf(&b, "Nature: %s\n", nature)
	writeIfSet(&b, "Personality", entity.Personality)
	writeIfSet(&b, "Speaking Style", entity.SpeakingStyle)
	writeIfSet(&b, "Obsession", entity.Obsession)
	writeIfSet(&b, "Blind Spot", entity.BlindSpot)
	writeIfSet(&b, "Opinion of Host", entity.OpinionOfYou)
	writeIfSet(&b, "Wants", entity.Wants)

	b.WriteString("\nCURRENT STATE:\n")
	fmt.Fprintf(&b, "Relationship with host: %s\n", relationship)
	fmt.Fprintf(&b, "Current mood: %s\n", mood)
	fmt.Fprintf(&b, "Agitation level: %d/100%s", agitation, agitationHint(agitation))

	if entity.Manifestation.HostPerception != "" {
		fmt.Fprintf(&b, "\n\nHOW YOU APPEAR: %s", entity.Manifestation.HostPerception)
	}

	if len(st.Observations) > 0 {
		b.WriteString("\n\nTHINGS YOU'VE NOTICED ABOUT THE HOST:\n")
		obs := st.Observations
		if len(obs) > promptObservationWindow {
			obs = obs[len(obs)-promptObservationWindow:]
		}
		lines := make([]string, 0, len(obs))
		for _, o := range obs {
			lines = append(lines, "- "+o.Text)
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	if len(st.DevelopedTastes) > 0 {
		tastes := st.DevelopedTastes
		if len(tastes) > promptTasteWindow {
			tastes = tastes[len(tastes)-promptTasteWindow:]
		}
		fmt.Fprintf(&b, "\n\nTHINGS YOU'VE DEVELOPED OPINIONS ABOUT: %s", strings.Join(tastes, ", "))
	}

	if len(st.CharacterOpinions) > 0 {
		b.WriteString("\n\nYOUR OPINIONS OF CHARACTERS:\n")
		names := make([]string, 0, len(st.CharacterOpinions))
		for name := range st.CharacterOpinions {
			names = append(names, name)
		}
		sort.Strings(names)
		lines := make([]string, 0, len(names))
		for _, name := range names {
			op := st.CharacterOpinions[name]
			line := fmt.Sprintf("- %s: %s", name, op.State)
			if len(op.Notes) > 0 {
				line += fmt.Sprintf(" (%s)", strings.Join(op.Notes, ", "))
			}
			lines = append(lines, line)
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\nRULES:\n" +
		"- You are reacting to what just happened in the scene. This is internal commentary only the host hears.\n" +
		"- Stay in character. Use your speaking style consistently.\n" +
		"- Be BRIEF. 1-3 sentences maximum. This is a quick reaction, not a monologue.\n" +
		"- React to what's interesting, threatening, relevant to your obsession, or what the host is doing wrong.\n" +
		"- You may reference past observations if relevant.\n" +
		"- If nothing interesting happened, you may stay silent (respond with just \"...\").\n" +
		"- Do NOT narrate the scene. Do NOT speak as other characters. Do NOT break character.\n" +
		"- Do NOT use quotation marks around your response. Just speak directly.\n")
	fmt.Fprintf(&b, "- Chattiness level: %d/5%s", entity.Chattiness, chattinessHint(entity.Chattiness))

	if entity.VoiceExample != "" {
		fmt.Fprintf(&b, "\n\nEXAMPLES OF HOW YOU SPEAK (match this tone and style):\n%s", entity.VoiceExample)
	}

	return b.String()
}

func writeIfSet(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

func agitationHint(agitation int) string {
	switch {
	case agitation > 60:
		return " (HIGH — you are restless, pushing against containment)"
	case agitation > 30:
		return " (rising — something is stirring)"
	default:
		return " (contained)"
	}
}

func chattinessHint(chattiness int) string {
	switch {
	case chattiness <= 2:
		return " — you speak RARELY and only when it truly matters. Every word is deliberate."
	case chattiness >= 4:
		return " — you have opinions about EVERYTHING."
	default:
		return ""
	}
}

// BuildUserPrompt renders the recent conversation excerpt the entity reacts
// to. Empty history yields a fixed quiet-scene line.
func BuildUserPrompt(entityName string, history []ChatMessage) string {
	if len(history) == 0 {
		return quietScenePrompt
	}

	recent := history
	if len(recent) > promptHistoryWindow {
		recent = recent[len(recent)-promptHistoryWindow:]
	}

	lines := make([]string, 0, len(recent))
	for _, msg := range recent {
		speaker := msg.Speaker
		if speaker == "" {
			if msg.IsHost {
				speaker = "User"
			} else {
				speaker = "Character"
			}
		}
		text := msg.Text
		if runes := []rune(text); len(runes) > promptMessageLimit {
			text = string(runes[:promptMessageLimit])
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, text))
	}

	if entityName == "" {
		entityName = "the entity"
	}
	return fmt.Sprintf("Here is what just happened in the scene:\n\n%s\n\nReact to this as %s. Stay in character. Be brief.",
		strings.Join(lines, "\n\n"), entityName)
}
