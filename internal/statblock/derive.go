package statblock

import "fmt"

// AbilityModifier derives the modifier for an ability score using true
// mathematical floor, so 6 maps to -2 and 17 to +3.
func AbilityModifier(score int) int {
	d := score - DefaultAbilityScore
	if d < 0 && d%2 != 0 {
		return d/2 - 1
	}
	return d / 2
}

// FormatSavingThrow renders a saving throw modifier with an explicit sign:
// "+3", "+0", "-2".
func FormatSavingThrow(v int) string {
	return fmt.Sprintf("%+d", v)
}
