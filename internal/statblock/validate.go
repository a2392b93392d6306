package statblock

// RequiredFields is the minimal field subset a record must carry to count as
// a complete statblock.
var RequiredFields = []string{
	FieldName,
	FieldSize,
	FieldType,
	FieldAlignment,
	FieldArmorClass,
	FieldHitPoints,
	FieldSpeed,
}

// Complete reports whether every required field is populated. A zero integer
// counts as missing: no monster legitimately has AC 0 or 0 hit points. The
// record itself is never mutated; callers decide whether to keep a partial
// result.
func (r Record) Complete() bool {
	return r.Name != "" &&
		r.Size != "" &&
		r.Type != "" &&
		r.Alignment != "" &&
		r.ArmorClass != 0 &&
		r.HitPoints != 0 &&
		r.Speed != ""
}
