package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeRecord() Record {
	return Record{
		Name:       "Goblin",
		Size:       "small",
		Type:       "humanoid",
		Alignment:  "neutral evil",
		ArmorClass: 15,
		HitPoints:  7,
		Speed:      "30 ft.",
	}
}

func TestRecordComplete(t *testing.T) {
	assert.True(t, completeRecord().Complete())
}

func TestRecordCompleteMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing name", func(r *Record) { r.Name = "" }},
		{"missing size", func(r *Record) { r.Size = "" }},
		{"missing type", func(r *Record) { r.Type = "" }},
		{"missing alignment", func(r *Record) { r.Alignment = "" }},
		{"zero armor class", func(r *Record) { r.ArmorClass = 0 }},
		{"zero hit points", func(r *Record) { r.HitPoints = 0 }},
		{"missing speed", func(r *Record) { r.Speed = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := completeRecord()
			tt.mutate(&r)
			assert.False(t, r.Complete())
		})
	}
}

func TestRecordCompleteIgnoresOptionalFields(t *testing.T) {
	// Saves, skills, and sections are optional.
	r := completeRecord()
	assert.True(t, r.Complete())

	r.Skills = ""
	r.Actions = ""
	r.StrengthSave = nil
	assert.True(t, r.Complete())
}
