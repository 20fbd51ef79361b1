package entitysdk

// ──────────────────────────────────────────────
// Catalog — static trigger, agitation, chattiness definitions
// ──────────────────────────────────────────────

// TriggerDef describes one trigger category entry and its default setting.
type TriggerDef struct {
	ID       string
	Category string // emotional | situational | pattern | special
	Label    string
	Default  TriggerSetting
}

// TriggerSetting is the user-configurable part of a trigger.
type TriggerSetting struct {
	Enabled     bool   `json:"enabled"`
	Sensitivity int    `json:"sensitivity"` // 1-5 (0 = manual-only, contributes nothing)
	Target      string `json:"target,omitempty"`
}

// TriggerDefs is the full trigger registry definition.
// Order matters only for UI listings; scoring treats it as a set.
var TriggerDefs = []TriggerDef{
	// Emotional
	{ID: "rage", Category: "emotional", Label: "Rage / Anger", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	{ID: "fear", Category: "emotional", Label: "Fear / Threat", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	{ID: "grief", Category: "emotional", Label: "Grief / Loss", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	{ID: "desire", Category: "emotional", Label: "Desire / Lust", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	{ID: "jealousy", Category: "emotional", Label: "Jealousy", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	{ID: "shame", Category: "emotional", Label: "Shame / Humiliation", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	{ID: "euphoria", Category: "emotional", Label: "Euphoria / Joy", Default: TriggerSetting{Enabled: false, Sensitivity: 1}},
	// Situational
	{ID: "combat", Category: "situational", Label: "Combat / Violence", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	{ID: "intimacy", Category: "situational", Label: "Intimacy / Vulnerability", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	{ID: "deception", Category: "situational", Label: "Deception / Lying", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	{ID: "betrayal", Category: "situational", Label: "Betrayal", Default: TriggerSetting{Enabled: true, Sensitivity: 4}},
	{ID: "isolation", Category: "situational", Label: "Isolation / Solitude", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	{ID: "temptation", Category: "situational", Label: "Temptation", Default: TriggerSetting{Enabled: false, Sensitivity: 2}},
	// Pattern
	{ID: "accumulated", Category: "pattern", Label: "Accumulated Irritation", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	{ID: "denial", Category: "pattern", Label: "Repeated Denial", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	{ID: "stacking", Category: "pattern", Label: "Trigger Stacking", Default: TriggerSetting{Enabled: true, Sensitivity: 3}},
	// Special
	{ID: "lunar", Category: "special", Label: "Lunar Cycle", Default: TriggerSetting{Enabled: false, Sensitivity: 3}},
	{ID: "characterPresent", Category: "special", Label: "Character Present", Default: TriggerSetting{Enabled: false, Sensitivity: 3, Target: ""}},
	{ID: "random", Category: "special", Label: "Random Chance", Default: TriggerSetting{Enabled: false, Sensitivity: 1}},
	{ID: "manual", Category: "special", Label: "Manual Invocation", Default: TriggerSetting{Enabled: true, Sensitivity: 0}},
}

// DefaultTriggers builds the default trigger registry from TriggerDefs.
func DefaultTriggers() map[string]TriggerSetting {
	triggers := make(map[string]TriggerSetting, len(TriggerDefs))
	for _, def := range TriggerDefs {
		triggers[def.ID] = def.Default
	}
	return triggers
}

// KnownTrigger reports whether id exists in the catalog.
func KnownTrigger(id string) bool {
	for _, def := range TriggerDefs {
		if def.ID == id {
			return true
		}
	}
	return false
}

// ─── Agitation constants ───

const (
	AgitationMax = 100

	// Hijack tier thresholds. Crossing events are exposed for a hijack
	// subsystem; no hijack behavior lives in this module.
	ThresholdIntrusion  = 30
	ThresholdStruggle   = 50
	ThresholdPossession = 75
)

// SensitivityPoints maps trigger sensitivity (1-5) to agitation points.
var SensitivityPoints = map[int]int{
	1: 5,
	2: 10,
	3: 20,
	4: 35,
	5: 50,
}

// Decay amounts per condition. ForceOverride is negative: forcing the
// entity down costs agitation upward. Intentional; changing the sign is a
// product decision.
const (
	DecayPerMessage      = 5
	DecayDirectConvo     = 15
	DecayEntitySatisfied = 10
	DecayForceOverride   = -10
)

// ─── Chattiness ───

// ChattinessLevel pairs a label with the (minGap, maxGap) message range
// between commentaries.
type ChattinessLevel struct {
	Label  string
	MinGap int
	MaxGap int
}

// ChattinessLevels maps chattiness 1-5 to speaking frequency.
var ChattinessLevels = map[int]ChattinessLevel{
	1: {Label: "Near-silent", MinGap: 10, MaxGap: 15},
	2: {Label: "Quiet", MinGap: 5, MaxGap: 8},
	3: {Label: "Moderate", MinGap: 2, MaxGap: 4},
	4: {Label: "Chatty", MinGap: 1, MaxGap: 2},
	5: {Label: "Never shuts up", MinGap: 1, MaxGap: 1},
}

// ChattinessFor returns the level definition, defaulting to moderate for
// out-of-range values.
func ChattinessFor(level int) ChattinessLevel {
	if def, ok := ChattinessLevels[level]; ok {
		return def
	}
	return ChattinessLevels[3]
}

// ─── Relationship vocabularies ───

// HostRelationships is the entity→host relationship vocabulary.
var HostRelationships = []string{
	"bonded", "protective", "curious", "resentful", "hostile",
	"possessive", "devoted", "indifferent", "amused", "grieving",
}

// CharacterRelationships is the entity→character relationship vocabulary.
var CharacterRelationships = []string{
	"intrigued", "fond", "threatened", "jealous",
	"contemptuous", "fascinated", "wary",
}

// ─── Entity natures & manifestation ───

// NatureDef describes an entity nature tag.
type NatureDef struct {
	ID    string
	Label string
	Desc  string
}

// EntityNatures is the fixed nature catalog.
var EntityNatures = []NatureDef{
	{ID: "predator", Label: "Predator", Desc: "Beast, hunger, instinct"},
	{ID: "protector", Label: "Protector", Desc: "Guardian, shield, warden"},
	{ID: "shadow", Label: "Shadow", Desc: "Mirror, double, the parts you hide"},
	{ID: "parasite", Label: "Parasite", Desc: "Symbiote, bonded, consuming"},
	{ID: "trickster", Label: "Trickster", Desc: "Deceiver, shapeshifter, chaos"},
	{ID: "ancient", Label: "Ancient", Desc: "Spirit, bound, old power"},
	{ID: "custom", Label: "Custom", Desc: "Something else entirely"},
}

// ManifestationTypes are the valid Entity.ManifestationType values.
var ManifestationTypes = []string{"apparition", "symbiote", "vessel", "impulse"}

// ─── Control modes ───

// ControlModeDef describes a control mode choice.
type ControlModeDef struct {
	ID    string
	Label string
	Desc  string
}

// ControlModes are the valid GlobalConfig.ControlMode values.
var ControlModes = map[string]ControlModeDef{
	"manual": {ID: "manual", Label: "Full Manual", Desc: "Entity speaks in sidebar and 1-on-1 only. Cannot touch the main chat."},
	"auto":   {ID: "auto", Label: "Full Auto", Desc: "Entity can fully take over based on triggers, mood, and relationship."},
	"custom": {ID: "custom", Label: "Custom", Desc: "Granular control over each hijack tier and feature."},
}

// ─── Observation system ───

const (
	DefaultObservationFrequency = 10
	DefaultMaxObservations      = 20
)

// ObservationTypes are the valid Observation.Type values.
var ObservationTypes = []string{"behavioral", "emotional", "relational", "physical"}

// ─── Themes ───

// ThemeDef carries the theme identity and creed line. Palette/animation
// data belongs to the rendering layer and is not modeled here.
type ThemeDef struct {
	ID    string
	Creed string
}

// Themes are the selectable theme ids.
var Themes = map[string]ThemeDef{
	"veridian": {ID: "veridian", Creed: "The house must endure"},
	"feathered": {ID: "feathered", Creed: "The cycle must end"},
}
