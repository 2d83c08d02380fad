package income

// Merge folds a second submission for the same date into an existing record.
//
// DoorDash and tips accumulate because drivers log several runs a day. Uber
// Eats, DiDi and Coles are reported as daily totals, so a nonzero incoming
// value replaces the stored one and a zero leaves it alone. Coles hours follow
// Coles.
func Merge(existing, incoming Record) Record {
	merged := existing

	merged.DoorDash = existing.DoorDash.Add(incoming.DoorDash)
	merged.Tips = existing.Tips.Add(incoming.Tips)

	if !incoming.UberEats.IsZero() {
		merged.UberEats = incoming.UberEats
	}

	if !incoming.DiDi.IsZero() {
		merged.DiDi = incoming.DiDi
	}

	if !incoming.Coles.IsZero() {
		merged.Coles = incoming.Coles
	}

	if incoming.ColesHours != nil && !incoming.ColesHours.IsZero() {
		h := *incoming.ColesHours
		merged.ColesHours = &h
	}

	if incoming.SourceName != "" {
		merged.SourceName = incoming.SourceName
	}

	if incoming.IncomeType != "" {
		merged.IncomeType = incoming.IncomeType
	}

	return merged
}
