package fleet

// Ship is the immutable record of one combatant: identity, hull stats and the
// mounted equipment. Everything that changes during a battle lives in the
// battle package's snapshots; a Ship is never mutated after deserialization.
//
// Stat accessors return equipment-aggregated values where the game derives
// them that way (bombing, range). Firepower, armor and torpedo arrive from
// the front end already summed with equipment contributions.
type Ship struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	ShipTypeID   *int        `json:"shipTypeId"`
	ShipTypeName *string     `json:"shipTypeName"`
	Status       ShipStatus  `json:"status"`
	Equips       []Equipment `json:"equips"`
}

// ShipStatus is the stat container received from the front end. Optional
// fields stay as pointers so a missing value is distinguishable from zero.
type ShipStatus struct {
	MaxHP        int `json:"maxHp"`
	NowHP        int `json:"nowHp"`
	Firepower    int `json:"firepower"`
	Armor        int `json:"armor"`
	Torpedo      int `json:"torpedo"`
	AntiAircraft int `json:"antiAircraft"`
	Condition    int `json:"condition"`

	Evasion              *int   `json:"evasion"`
	AirplaneSlots        []int  `json:"airplaneSlots"`
	AntiSubmarineWarfare *int   `json:"antiSubmarineWarfare"`
	Speed                *int   `json:"speed"`
	Scouting             *int   `json:"scouting"`
	Range                *Range `json:"range"`
	Luck                 *int   `json:"luck"`
}

// MaxHP returns the fully repaired hit points.
func (s *Ship) MaxHP() int { return s.Status.MaxHP }

// HP returns the hit points at battle entry.
func (s *Ship) HP() int { return s.Status.NowHP }

// Firepower returns the gunnery stat including equipment contributions.
func (s *Ship) Firepower() int { return s.Status.Firepower }

// Armor returns the armor stat.
func (s *Ship) Armor() int { return s.Status.Armor }

// Torpedo returns the torpedo stat.
func (s *Ship) Torpedo() int { return s.Status.Torpedo }

// Bombing returns the summed bombing stat of all mounted equipment.
func (s *Ship) Bombing() int {
	total := 0
	for i := range s.Equips {
		total += s.Equips[i].Bombing()
	}
	return total
}

// Range returns the effective range class: the maximum of the hull range and
// any range-extending equipment.
func (s *Ship) Range() Range {
	r := RangeNone
	if s.Status.Range != nil {
		r = *s.Status.Range
	}
	for i := range s.Equips {
		if er := s.Equips[i].Range(); er > r {
			r = er
		}
	}
	return r
}

// TypeID returns the ship class id, 0 when unset.
func (s *Ship) TypeID() int {
	if s.ShipTypeID == nil {
		return 0
	}
	return *s.ShipTypeID
}

// IsBattleshipClass reports whether the ship belongs to a battleship class
// (slow battleship, fast battleship, aviation battleship, super dreadnought).
func (s *Ship) IsBattleshipClass() bool {
	switch s.TypeID() {
	case 8, 9, 10, 12:
		return true
	}
	return false
}

// HasAttackAircraft reports whether any mounted equipment is an aircraft
// capable of offensive strikes.
func (s *Ship) HasAttackAircraft() bool {
	for i := range s.Equips {
		if s.Equips[i].IsAttackAircraft() {
			return true
		}
	}
	return false
}

// clone returns a deep copy so a battle's frozen fleets cannot be affected by
// later mutation of the caller's data.
func (s *Ship) clone() Ship {
	out := *s
	if s.ShipTypeID != nil {
		v := *s.ShipTypeID
		out.ShipTypeID = &v
	}
	if s.ShipTypeName != nil {
		v := *s.ShipTypeName
		out.ShipTypeName = &v
	}
	out.Status = s.Status.clone()
	if s.Equips != nil {
		out.Equips = make([]Equipment, len(s.Equips))
		for i := range s.Equips {
			out.Equips[i] = s.Equips[i].clone()
		}
	}
	return out
}

func (st ShipStatus) clone() ShipStatus {
	out := st
	out.Evasion = cloneIntPtr(st.Evasion)
	out.AntiSubmarineWarfare = cloneIntPtr(st.AntiSubmarineWarfare)
	out.Speed = cloneIntPtr(st.Speed)
	out.Scouting = cloneIntPtr(st.Scouting)
	out.Luck = cloneIntPtr(st.Luck)
	if st.Range != nil {
		v := *st.Range
		out.Range = &v
	}
	if st.AirplaneSlots != nil {
		out.AirplaneSlots = append([]int(nil), st.AirplaneSlots...)
	}
	return out
}

func (e Equipment) clone() Equipment {
	out := e
	if e.Name != nil {
		v := *e.Name
		out.Name = &v
	}
	if e.EquipTypeID != nil {
		out.EquipTypeID = append([]int(nil), e.EquipTypeID...)
	}
	if e.Status != nil {
		v := *e.Status
		v.AntiAircraft = cloneIntPtr(e.Status.AntiAircraft)
		v.AntiSubmarineWarfare = cloneIntPtr(e.Status.AntiSubmarineWarfare)
		out.Status = &v
	}
	return out
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
