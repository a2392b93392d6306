package statblock

import "strings"

// SectionName identifies one of the named multi-line statblock subdivisions.
type SectionName string

const (
	SectionTraits       SectionName = "traits"
	SectionActions      SectionName = "actions"
	SectionBonusActions SectionName = "bonus_actions"
	SectionReactions    SectionName = "reactions"
	SectionLegendary    SectionName = "legendary_actions"
	SectionLair         SectionName = "lair_actions"
	SectionMythic       SectionName = "mythic_actions"
)

// sectionAliases lists the accepted header tokens per section, in priority
// order: the first alias found in the text wins, regardless of position
// relative to later aliases.
var sectionAliases = map[SectionName][]string{
	SectionTraits:       {"TRAITS", "TRAIT", "Special Abilities", "Special"},
	SectionActions:      {"ACTIONS", "ACTION"},
	SectionBonusActions: {"BONUS ACTIONS", "BONUS ACTION"},
	SectionReactions:    {"REACTIONS", "REACTION"},
	SectionLegendary:    {"LEGENDARY ACTIONS", "LEGENDARY"},
	SectionLair:         {"LAIR ACTIONS", "LAIR"},
	SectionMythic:       {"MYTHIC ACTIONS", "MYTHIC"},
}

// sectionMarkers are the canonical boundary tokens scanned for when closing a
// section. A section ends at the nearest following occurrence of any marker
// that does not belong to the section itself.
var sectionMarkers = map[SectionName]string{
	SectionTraits:       "TRAITS",
	SectionActions:      "ACTIONS",
	SectionBonusActions: "BONUS ACTIONS",
	SectionReactions:    "REACTIONS",
	SectionLegendary:    "LEGENDARY",
	SectionLair:         "LAIR",
	SectionMythic:       "MYTHIC",
}

// sectionOrder fixes iteration order so extraction output is deterministic.
var sectionOrder = []SectionName{
	SectionTraits,
	SectionActions,
	SectionBonusActions,
	SectionReactions,
	SectionLegendary,
	SectionLair,
	SectionMythic,
}

// ExtractSections scans the raw OCR text for every known section and returns
// the cleaned bodies of the ones present. Detection is purely positional:
// markers appearing out of canonical order still bound sections by byte
// position. Duplicated markers resolve to the first occurrence.
func ExtractSections(text string) map[SectionName]string {
	sections := make(map[SectionName]string)
	if text == "" {
		return sections
	}
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, name := range sectionOrder {
		if body, ok := extractSection(text, name); ok {
			sections[name] = body
		}
	}
	return sections
}

// extractSection locates one section's body in text. The body starts
// immediately after the first alias occurrence and runs to the nearest
// subsequent occurrence of any other section's marker, or end of text.
func extractSection(text string, name SectionName) (string, bool) {
	start := -1
	for _, alias := range sectionAliases[name] {
		if idx := strings.Index(text, alias); idx != -1 {
			start = idx + len(alias)
			break
		}
	}
	if start == -1 {
		return "", false
	}

	end := len(text)
	for section, marker := range sectionMarkers {
		if section == name {
			continue
		}
		if idx := strings.Index(text[start:], marker); idx != -1 && start+idx < end {
			end = start + idx
		}
	}

	return cleanSectionBody(text[start:end]), true
}

// cleanSectionBody trims each line and drops empty ones.
func cleanSectionBody(body string) string {
	lines := strings.Split(body, "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, "\n")
}
