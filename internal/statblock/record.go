package statblock

// Field keys emitted by the recognizer table. Keys double as the JSON names
// used by the HTTP API and CLI output.
const (
	FieldName      = "name"
	FieldSize      = "size"
	FieldType      = "type"
	FieldAlignment = "alignment"

	FieldArmorClass = "armor_class"
	FieldArmorType  = "armor_type"
	FieldHitPoints  = "hit_points"
	FieldHitDice    = "hit_dice"
	FieldSpeed      = "speed"

	FieldStrength     = "strength"
	FieldDexterity    = "dexterity"
	FieldConstitution = "constitution"
	FieldIntelligence = "intelligence"
	FieldWisdom       = "wisdom"
	FieldCharisma     = "charisma"

	FieldStrengthSave     = "strength_save"
	FieldDexteritySave    = "dexterity_save"
	FieldConstitutionSave = "constitution_save"
	FieldIntelligenceSave = "intelligence_save"
	FieldWisdomSave       = "wisdom_save"
	FieldCharismaSave     = "charisma_save"

	FieldSkills    = "skills"
	FieldSenses    = "senses"
	FieldLanguages = "languages"

	FieldDamageVulnerabilities = "damage_vulnerabilities"
	FieldDamageResistances     = "damage_resistances"
	FieldDamageImmunities      = "damage_immunities"
	FieldConditionImmunities   = "condition_immunities"

	FieldChallengeRating = "challenge_rating"
	FieldXP              = "xp"
)

// DefaultAbilityScore is applied at record assembly when a score was not
// recognized in the text. Recognizers themselves never emit defaults.
const DefaultAbilityScore = 10

// Record is the structured result of one statblock extraction. String fields
// are empty and integer fields zero when the corresponding label was not
// recognized; saving throws are nil when absent. Ability scores default to 10.
type Record struct {
	Name      string `json:"name" yaml:"name"`
	Size      string `json:"size" yaml:"size"`
	Type      string `json:"type" yaml:"type"`
	Alignment string `json:"alignment" yaml:"alignment"`

	ArmorClass int    `json:"armor_class" yaml:"armor_class"`
	ArmorType  string `json:"armor_type,omitempty" yaml:"armor_type,omitempty"`
	HitPoints  int    `json:"hit_points" yaml:"hit_points"`
	HitDice    string `json:"hit_dice,omitempty" yaml:"hit_dice,omitempty"`
	Speed      string `json:"speed" yaml:"speed"`

	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`

	StrengthSave     *int `json:"strength_save,omitempty" yaml:"strength_save,omitempty"`
	DexteritySave    *int `json:"dexterity_save,omitempty" yaml:"dexterity_save,omitempty"`
	ConstitutionSave *int `json:"constitution_save,omitempty" yaml:"constitution_save,omitempty"`
	IntelligenceSave *int `json:"intelligence_save,omitempty" yaml:"intelligence_save,omitempty"`
	WisdomSave       *int `json:"wisdom_save,omitempty" yaml:"wisdom_save,omitempty"`
	CharismaSave     *int `json:"charisma_save,omitempty" yaml:"charisma_save,omitempty"`

	Skills    string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Senses    string `json:"senses,omitempty" yaml:"senses,omitempty"`
	Languages string `json:"languages,omitempty" yaml:"languages,omitempty"`

	DamageVulnerabilities string `json:"damage_vulnerabilities,omitempty" yaml:"damage_vulnerabilities,omitempty"`
	DamageResistances     string `json:"damage_resistances,omitempty" yaml:"damage_resistances,omitempty"`
	DamageImmunities      string `json:"damage_immunities,omitempty" yaml:"damage_immunities,omitempty"`
	ConditionImmunities   string `json:"condition_immunities,omitempty" yaml:"condition_immunities,omitempty"`

	ChallengeRating string `json:"challenge_rating,omitempty" yaml:"challenge_rating,omitempty"`
	XP              int    `json:"xp,omitempty" yaml:"xp,omitempty"`

	SpecialAbilities string `json:"special_abilities" yaml:"special_abilities"`
	Actions          string `json:"actions" yaml:"actions"`
	BonusActions     string `json:"bonus_actions" yaml:"bonus_actions"`
	Reactions        string `json:"reactions" yaml:"reactions"`
	LegendaryActions string `json:"legendary_actions" yaml:"legendary_actions"`
	LairActions      string `json:"lair_actions" yaml:"lair_actions"`
	MythicActions    string `json:"mythic_actions" yaml:"mythic_actions"`
}

// AssembleRecord merges recognizer output and segmented sections into a
// Record, applying the ability score default. Unknown keys are ignored.
func AssembleRecord(fields map[string]any, sections map[SectionName]string) Record {
	rec := Record{
		Name:      fieldString(fields, FieldName),
		Size:      fieldString(fields, FieldSize),
		Type:      fieldString(fields, FieldType),
		Alignment: fieldString(fields, FieldAlignment),

		ArmorClass: fieldInt(fields, FieldArmorClass),
		ArmorType:  fieldString(fields, FieldArmorType),
		HitPoints:  fieldInt(fields, FieldHitPoints),
		HitDice:    fieldString(fields, FieldHitDice),
		Speed:      fieldString(fields, FieldSpeed),

		Strength:     fieldAbility(fields, FieldStrength),
		Dexterity:    fieldAbility(fields, FieldDexterity),
		Constitution: fieldAbility(fields, FieldConstitution),
		Intelligence: fieldAbility(fields, FieldIntelligence),
		Wisdom:       fieldAbility(fields, FieldWisdom),
		Charisma:     fieldAbility(fields, FieldCharisma),

		StrengthSave:     fieldIntPtr(fields, FieldStrengthSave),
		DexteritySave:    fieldIntPtr(fields, FieldDexteritySave),
		ConstitutionSave: fieldIntPtr(fields, FieldConstitutionSave),
		IntelligenceSave: fieldIntPtr(fields, FieldIntelligenceSave),
		WisdomSave:       fieldIntPtr(fields, FieldWisdomSave),
		CharismaSave:     fieldIntPtr(fields, FieldCharismaSave),

		Skills:    fieldString(fields, FieldSkills),
		Senses:    fieldString(fields, FieldSenses),
		Languages: fieldString(fields, FieldLanguages),

		DamageVulnerabilities: fieldString(fields, FieldDamageVulnerabilities),
		DamageResistances:     fieldString(fields, FieldDamageResistances),
		DamageImmunities:      fieldString(fields, FieldDamageImmunities),
		ConditionImmunities:   fieldString(fields, FieldConditionImmunities),

		ChallengeRating: fieldString(fields, FieldChallengeRating),
		XP:              fieldInt(fields, FieldXP),

		SpecialAbilities: sections[SectionTraits],
		Actions:          sections[SectionActions],
		BonusActions:     sections[SectionBonusActions],
		Reactions:        sections[SectionReactions],
		LegendaryActions: sections[SectionLegendary],
		LairActions:      sections[SectionLair],
		MythicActions:    sections[SectionMythic],
	}
	return rec
}

func fieldString(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func fieldInt(fields map[string]any, key string) int {
	if v, ok := fields[key].(int); ok {
		return v
	}
	return 0
}

func fieldAbility(fields map[string]any, key string) int {
	if v, ok := fields[key].(int); ok {
		return v
	}
	return DefaultAbilityScore
}

func fieldIntPtr(fields map[string]any, key string) *int {
	if v, ok := fields[key].(int); ok {
		n := v
		return &n
	}
	return nil
}
