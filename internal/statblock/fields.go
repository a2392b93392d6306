package statblock

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RecognizerFunc pattern-matches one label (or label family) in the raw OCR
// text and returns the fields it recognized, keyed by field name. Recognizers
// are pure functions of the text and share no state, so they may run in any
// order; the table order only breaks ties when two recognizers emit the same
// key (first one wins).
type RecognizerFunc func(text string) map[string]any

type recognizer struct {
	name string
	fn   RecognizerFunc
}

var lower = cases.Lower(language.Und)

// labelValuePattern builds a case-insensitive pattern matching any of the
// given label aliases, an optional colon, and the remainder of the line.
func labelValuePattern(aliases ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(aliases, "|") + `):?[ \t]+([^\n]+)`)
}

var (
	sizeTypeAlignRe = regexp.MustCompile(
		`(?m)^[ \t]*(?:Size:?[ \t]+)?([A-Za-z]+)[ \t]+([A-Za-z]+),[ \t]*([A-Za-z]+(?:[ \t]+[A-Za-z]+)?)[ \t]*\.?[ \t]*$`)
	armorClassRe = regexp.MustCompile(`(?i)\b(?:AC|Armor[ \t]+Class):?[ \t]*(\d+)(?:[ \t]*\(([^)]+)\))?`)
	hitPointsRe  = regexp.MustCompile(`(?i)\b(?:HP|Hit[ \t]+Points):?[ \t]*(\d+)(?:[ \t]*\(([^)]+)\))?`)
	challengeRe  = regexp.MustCompile(`(?i)\b(?:CR|Challenge):?[ \t]*(\d+(?:/\d+)?)(?:[ \t]*\(([\d,]+)[ \t]*XP\))?`)
	xpLabelRe    = regexp.MustCompile(`(?i)\bXP:?[ \t]*(\d[\d,]*)`)

	speedRe     = labelValuePattern("Speed")
	skillsRe    = labelValuePattern("Skills")
	sensesRe    = labelValuePattern("Senses")
	languagesRe = labelValuePattern("Languages")

	damageVulnerabilitiesRe = labelValuePattern(`Damage[ \t]+Vulnerabilities`)
	damageResistancesRe     = labelValuePattern(`Damage[ \t]+Resistances`)
	damageImmunitiesRe      = labelValuePattern(`Damage[ \t]+Immunities`)
	conditionImmunitiesRe   = labelValuePattern(`Condition[ \t]+Immunities`)
)

// abilityAliases pairs each ability's field keys with its accepted labels.
// The score pattern captures the integer adjacent to the label; the save
// pattern captures a signed modifier following the raw score on the same line
// (skipping a parenthesized derived modifier), or directly following the
// label on a "Saving Throws"-style line where no raw score is present.
var abilityAliases = []struct {
	scoreField string
	saveField  string
	labels     string
}{
	{FieldStrength, FieldStrengthSave, `STR|Strength`},
	{FieldDexterity, FieldDexteritySave, `DEX|Dexterity`},
	{FieldConstitution, FieldConstitutionSave, `CON|Constitution`},
	{FieldIntelligence, FieldIntelligenceSave, `INT|Intelligence`},
	{FieldWisdom, FieldWisdomSave, `WIS|Wisdom`},
	{FieldCharisma, FieldCharismaSave, `CHA|Charisma`},
}

// recognizers is the single recognizer table. The simple and tolerant legacy
// parsers are unified here: tolerance lives in the alias alternations, not in
// a forked implementation.
var recognizers = buildRecognizers()

func buildRecognizers() []recognizer {
	table := []recognizer{
		{"name", recognizeName},
		{"size-type-alignment", recognizeSizeTypeAlignment},
		{"armor-class", recognizeArmorClass},
		{"hit-points", recognizeHitPoints},
		{"challenge-rating", recognizeChallenge},
		{"xp", singleString(xpLabelRe, FieldXP, true)},
		{"speed", singleString(speedRe, FieldSpeed, false)},
		{"skills", singleString(skillsRe, FieldSkills, false)},
		{"senses", singleString(sensesRe, FieldSenses, false)},
		{"languages", singleString(languagesRe, FieldLanguages, false)},
		{"damage-vulnerabilities", singleString(damageVulnerabilitiesRe, FieldDamageVulnerabilities, false)},
		{"damage-resistances", singleString(damageResistancesRe, FieldDamageResistances, false)},
		{"damage-immunities", singleString(damageImmunitiesRe, FieldDamageImmunities, false)},
		{"condition-immunities", singleString(conditionImmunitiesRe, FieldConditionImmunities, false)},
	}
	for _, a := range abilityAliases {
		scoreRe := regexp.MustCompile(`(?i)\b(?:` + a.labels + `):?[ \t]+(\d+)\b`)
		saveRe := regexp.MustCompile(
			`(?i)\b(?:` + a.labels + `):?[ \t]*(?:\d+[ \t]*(?:\([+-]?\d+\)[ \t]*)?)?([+-]\d+)`)
		scoreField, saveField := a.scoreField, a.saveField
		table = append(table,
			recognizer{"score-" + scoreField, singleInt(scoreRe, scoreField)},
			recognizer{"save-" + saveField, singleInt(saveRe, saveField)},
		)
	}
	return table
}

// ExtractFields runs every recognizer over the text and merges the results.
// When two recognizers emit the same key, the earlier table entry wins.
// Empty input yields an empty map.
func ExtractFields(text string) map[string]any {
	fields := make(map[string]any)
	if strings.TrimSpace(text) == "" {
		return fields
	}
	for _, r := range recognizers {
		for k, v := range r.fn(text) {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}
	return fields
}

// recognizeName takes the first non-empty line as the monster name.
func recognizeName(text string) map[string]any {
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return map[string]any{FieldName: s}
		}
	}
	return nil
}

// recognizeSizeTypeAlignment matches a "<Size> <Type>, <Alignment>" line.
// All three values are lowercased; the alignment may be one or two words.
func recognizeSizeTypeAlignment(text string) map[string]any {
	m := sizeTypeAlignRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return map[string]any{
		FieldSize:      lower.String(m[1]),
		FieldType:      lower.String(m[2]),
		FieldAlignment: lower.String(normalizeSpaces(m[3])),
	}
}

func recognizeArmorClass(text string) map[string]any {
	m := armorClassRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	ac, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	fields := map[string]any{FieldArmorClass: ac}
	if m[2] != "" {
		fields[FieldArmorType] = strings.TrimSpace(m[2])
	}
	return fields
}

func recognizeHitPoints(text string) map[string]any {
	m := hitPointsRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	hp, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	fields := map[string]any{FieldHitPoints: hp}
	if m[2] != "" {
		fields[FieldHitDice] = strings.TrimSpace(m[2])
	}
	return fields
}

// recognizeChallenge captures the rating (integer or simple fraction) and,
// when a parenthetical XP figure follows, the XP with thousands separators
// stripped.
func recognizeChallenge(text string) map[string]any {
	m := challengeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	fields := map[string]any{FieldChallengeRating: m[1]}
	if m[2] != "" {
		if xp, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", "")); err == nil {
			fields[FieldXP] = xp
		}
	}
	return fields
}

// singleString builds a recognizer capturing one trimmed string value.
// With numeric set, the capture is comma-stripped and parsed as an int;
// a label that matches but fails to parse contributes nothing.
func singleString(re *regexp.Regexp, field string, numeric bool) RecognizerFunc {
	return func(text string) map[string]any {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return nil
		}
		value := strings.TrimSpace(m[1])
		if value == "" {
			return nil
		}
		if numeric {
			n, err := strconv.Atoi(strings.ReplaceAll(value, ",", ""))
			if err != nil {
				return nil
			}
			return map[string]any{field: n}
		}
		return map[string]any{field: value}
	}
}

// singleInt builds a recognizer capturing one base-10 integer (optionally
// signed, per the pattern).
func singleInt(re *regexp.Regexp, field string) RecognizerFunc {
	return func(text string) map[string]any {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return nil
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return map[string]any{field: n}
	}
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
