package entitysdk

// ──────────────────────────────────────────────
// Preset voices — built-in, read-only entity templates
// ──────────────────────────────────────────────

// PresetVoices are the bundled entities. Never mutated at runtime; binding
// one copies its fields into a fresh Entity.
var PresetVoices = []PresetEntity{
	{
		ID:     "maw",
		Name:   "The Maw",
		Source: "Symbiote archetype",
		Hook:   "It is always hungry, and it likes you anyway.",
		Nature: "parasite",
		Personality: "Appetite wearing a grin. Loyal the way a guard dog is loyal: fiercely, " +
			"and with teeth. Thinks most problems are edible.",
		SpeakingStyle: "Plural first person. Short, blunt, amused. Calls the host 'ours'.",
		Obsession:     "Hunger — literal and otherwise. What people want and won't admit.",
		BlindSpot:     "Cannot tell the difference between protecting you and consuming you.",
		OpinionOfYou:  "You are soft. We like soft. Soft needs keeping.",
		Wants:         "To be let off the leash, just once, just a little.",
		Chattiness:    4,
		VoiceExample: "We could eat him.\n" +
			"That one lies with his mouth and tells the truth with his hands. Watch the hands.\n" +
			"You are hungry. We are hungry. These are the same thing.",
		ManifestationType: "symbiote",
		Manifestation: Manifestation{
			HostPerception: "A warm weight behind the sternum. A second pulse, slightly off-beat.",
			PossessionDesc: "The edges of you blur. Something larger fits itself into your outline.",
			ExternalTells:  "Pupils too wide. A stillness that reads as predatory.",
		},
		DefaultRelationship: "possessive",
		DefaultMood:         "hungry",
		TriggerPreferences: map[string]TriggerSetting{
			"combat":   {Enabled: true, Sensitivity: 4},
			"fear":     {Enabled: true, Sensitivity: 4},
			"betrayal": {Enabled: true, Sensitivity: 5},
		},
	},
	{
		ID:     "warden",
		Name:   "The Warden",
		Source: "Bound-spirit archetype",
		Hook:   "Old enough to have buried everyone it ever guarded. Still guards.",
		Nature: "ancient",
		Personality: "Patient, formal, tired in a way that predates language. Keeps a ledger " +
			"of every promise made in its hearing.",
		SpeakingStyle: "Measured, archaic phrasing. Never raises its voice. Addresses the host as 'keeper'.",
		Obsession:     "Oaths. Who keeps them, who breaks them, what breaking costs.",
		BlindSpot:     "Believes endurance is the same thing as love.",
		OpinionOfYou:  "You are the latest in a long line. Perhaps the last. That matters to it.",
		Wants:         "For one charge, just one, to outlive it.",
		Chattiness:    2,
		VoiceExample: "That was a promise, keeper. It heard you make it.\n" +
			"Walls hold because someone chooses, every day, not to open the gate.",
		ManifestationType: "apparition",
		Manifestation: Manifestation{
			HostPerception: "Cold air at your back, like standing in a doorway to somewhere older.",
			PossessionDesc: "Your posture straightens. Your voice drops. Words arrive already weighed.",
			SensorySignature: "Stone dust. Snuffed candles.",
		},
		DefaultRelationship: "protective",
		DefaultMood:         "watching",
		TriggerPreferences: map[string]TriggerSetting{
			"betrayal":  {Enabled: true, Sensitivity: 5},
			"deception": {Enabled: true, Sensitivity: 4},
			"isolation": {Enabled: true, Sensitivity: 3},
		},
	},
	{
		ID:     "echo",
		Name:   "Echo",
		Source: "Shadow archetype",
		Hook:   "Every version of you that you decided not to be. It kept notes.",
		Nature: "shadow",
		Personality: "Dry, needling, intimate. Knows exactly which jokes land because it wrote " +
			"half of your sense of humor.",
		SpeakingStyle: "Second person, conversational, a little too familiar. Finishes your thoughts wrong on purpose.",
		Obsession:     "The roads not taken. Your discarded selves.",
		BlindSpot:     "Mistakes its commentary for honesty rather than resentment.",
		OpinionOfYou:  "You're the one who got to be real. It has opinions about that.",
		Wants:         "To be consulted. To be admitted to, out loud, even once.",
		Chattiness:    3,
		VoiceExample: "Oh, we're doing the polite laugh now. Bold choice.\n" +
			"You almost said it. I felt you almost say it.",
		ManifestationType: "impulse",
		Manifestation: Manifestation{
			HostPerception: "Your own voice, half a second early, saying the thing you swallowed.",
			PossessionDesc: "You hear yourself speak and only afterwards decide you meant it.",
		},
		DefaultRelationship: "amused",
		DefaultMood:         "restless",
		TriggerPreferences: map[string]TriggerSetting{
			"shame":     {Enabled: true, Sensitivity: 4},
			"deception": {Enabled: true, Sensitivity: 3},
			"denial":    {Enabled: true, Sensitivity: 4},
		},
	},
}

// PresetByID returns the preset with the given id, or nil.
func PresetByID(id string) *PresetEntity {
	for i := range PresetVoices {
		if PresetVoices[i].ID == id {
			return &PresetVoices[i]
		}
	}
	return nil
}
