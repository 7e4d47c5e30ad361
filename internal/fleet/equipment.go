package fleet

// Equipment is one item mounted on a ship. Payloads from the front end often
// omit the name, category ids and the whole status block, so every accessor
// tolerates missing data and falls back to zero values.
type Equipment struct {
	ID          int              `json:"id"`
	Name        *string          `json:"name"`
	EquipTypeID []int            `json:"equipTypeId"`
	Status      *EquipmentStatus `json:"status"`
}

// EquipmentStatus carries the stat contributions of a single equipment item.
type EquipmentStatus struct {
	Firepower            int   `json:"firepower"`
	Armor                int   `json:"armor"`
	Torpedo              int   `json:"torpedo"`
	AntiAircraft         *int  `json:"antiAircraft"`
	AntiSubmarineWarfare *int  `json:"antiSubmarineWarfare"`
	Evasion              int   `json:"evasion"`
	Aiming               int   `json:"aiming"`
	Range                Range `json:"range"`
	Scouting             int   `json:"scouting"`
	Speed                int   `json:"speed"`
	Bombing              int   `json:"bombing"`
	AircraftRange        int   `json:"aircraftRange"`
	AircraftCost         int   `json:"aircraftCost"`
}

// Bombing returns the dive-bombing stat, 0 when the status block is absent.
func (e *Equipment) Bombing() int {
	if e.Status == nil {
		return 0
	}
	return e.Status.Bombing
}

// Range returns the range class contributed by this item.
func (e *Equipment) Range() Range {
	if e.Status == nil {
		return RangeNone
	}
	return e.Status.Range
}

// IsAttackAircraft reports whether this item is an aircraft capable of
// offensive strikes (torpedo bomber or dive bomber categories). Carrier-type
// hulls without such planes do not fire as carriers, and non-carrier hulls
// carrying them do.
func (e *Equipment) IsAttackAircraft() bool {
	if len(e.EquipTypeID) < 3 {
		return false
	}
	category := e.EquipTypeID[2]
	return category == 7 || category == 8
}
