package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomecraft/statscribe/internal/testutil"
)

func TestAssembleRecordDefaults(t *testing.T) {
	rec := AssembleRecord(nil, nil)

	// Ability scores default to 10, everything else stays zero-valued.
	assert.Equal(t, DefaultAbilityScore, rec.Strength)
	assert.Equal(t, DefaultAbilityScore, rec.Dexterity)
	assert.Equal(t, DefaultAbilityScore, rec.Constitution)
	assert.Equal(t, DefaultAbilityScore, rec.Intelligence)
	assert.Equal(t, DefaultAbilityScore, rec.Wisdom)
	assert.Equal(t, DefaultAbilityScore, rec.Charisma)

	assert.Empty(t, rec.Name)
	assert.Zero(t, rec.ArmorClass)
	assert.Nil(t, rec.StrengthSave)
	assert.False(t, rec.Complete())
}

func TestAssembleRecordIgnoresUnknownKeys(t *testing.T) {
	rec := AssembleRecord(map[string]any{
		"name":        "Goblin",
		"mystery_key": "ignored",
		"armor_class": "not-an-int",
	}, nil)

	assert.Equal(t, "Goblin", rec.Name)
	assert.Zero(t, rec.ArmorClass)
}

func TestParseGoblinStatblock(t *testing.T) {
	fields := ExtractFields(testutil.GoblinText)
	sections := ExtractSections(testutil.GoblinText)
	rec := AssembleRecord(fields, sections)

	assert.Equal(t, "Goblin", rec.Name)
	assert.Equal(t, "small", rec.Size)
	assert.Equal(t, "humanoid", rec.Type)
	assert.Equal(t, "neutral evil", rec.Alignment)
	assert.Equal(t, 15, rec.ArmorClass)
	assert.Equal(t, "leather armor, shield", rec.ArmorType)
	assert.Equal(t, 7, rec.HitPoints)
	assert.Equal(t, "2d6", rec.HitDice)
	assert.Equal(t, "30 ft.", rec.Speed)

	assert.Equal(t, 8, rec.Strength)
	assert.Equal(t, 14, rec.Dexterity)
	assert.Equal(t, 10, rec.Constitution)
	assert.Nil(t, rec.StrengthSave)

	assert.Equal(t, "Stealth +6", rec.Skills)
	assert.Equal(t, "darkvision 60 ft., passive Perception 9", rec.Senses)
	assert.Equal(t, "Common, Goblin", rec.Languages)
	assert.Equal(t, "1/4", rec.ChallengeRating)
	assert.Equal(t, 50, rec.XP)

	assert.Contains(t, rec.SpecialAbilities, "Nimble Escape.")
	assert.Contains(t, rec.Actions, "Scimitar.")
	assert.Contains(t, rec.Actions, "Shortbow.")
	assert.Empty(t, rec.LegendaryActions)

	assert.True(t, rec.Complete())
}

func TestParseDragonStatblock(t *testing.T) {
	fields := ExtractFields(testutil.DragonText)
	sections := ExtractSections(testutil.DragonText)
	rec := AssembleRecord(fields, sections)

	assert.Equal(t, "Adult Red Dragon", rec.Name)
	assert.Equal(t, "huge", rec.Size)
	assert.Equal(t, "dragon", rec.Type)
	assert.Equal(t, "chaotic evil", rec.Alignment)
	assert.Equal(t, 19, rec.ArmorClass)
	assert.Equal(t, 256, rec.HitPoints)
	assert.Equal(t, "19d12+133", rec.HitDice)

	assert.Equal(t, 27, rec.Strength)
	assert.Equal(t, 25, rec.Constitution)

	require.NotNil(t, rec.DexteritySave)
	assert.Equal(t, 6, *rec.DexteritySave)
	require.NotNil(t, rec.ConstitutionSave)
	assert.Equal(t, 13, *rec.ConstitutionSave)
	require.NotNil(t, rec.WisdomSave)
	assert.Equal(t, 7, *rec.WisdomSave)
	require.NotNil(t, rec.CharismaSave)
	assert.Equal(t, 11, *rec.CharismaSave)
	assert.Nil(t, rec.StrengthSave)
	assert.Nil(t, rec.IntelligenceSave)

	assert.Equal(t, "fire", rec.DamageImmunities)
	assert.Equal(t, "17", rec.ChallengeRating)
	assert.Equal(t, 18000, rec.XP)

	assert.Contains(t, rec.SpecialAbilities, "Legendary Resistance")
	assert.Contains(t, rec.Actions, "Multiattack.")
	assert.Contains(t, rec.LegendaryActions, "Tail Attack.")

	assert.True(t, rec.Complete())
}

func TestParsePartialStatblock(t *testing.T) {
	fields := ExtractFields(testutil.PartialText)
	sections := ExtractSections(testutil.PartialText)
	rec := AssembleRecord(fields, sections)

	assert.Equal(t, "Mystery Beast", rec.Name)
	assert.Equal(t, 13, rec.ArmorClass)
	assert.Contains(t, rec.Actions, "Slam.")

	// Missing size, alignment, hit points, and speed.
	assert.False(t, rec.Complete())

	// Abilities still carry their defaults.
	assert.Equal(t, DefaultAbilityScore, rec.Wisdom)
}
