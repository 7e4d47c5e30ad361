package fleet

import (
	"encoding/json"
	"fmt"
)

// Range is the gunnery range class of a ship or equipment item. Values are
// ordered so range classes compare directly (None < Short < ... < VeryVeryLong).
type Range int

const (
	RangeNone Range = iota
	RangeShort
	RangeMedium
	RangeLong
	RangeVeryLong
	RangeVeryVeryLong
)

var rangeNames = map[Range]string{
	RangeNone:         "none",
	RangeShort:        "short",
	RangeMedium:       "medium",
	RangeLong:         "long",
	RangeVeryLong:     "very_long",
	RangeVeryVeryLong: "very_very_long",
}

var rangeValues = map[string]Range{
	"none":           RangeNone,
	"short":          RangeShort,
	"medium":         RangeMedium,
	"long":           RangeLong,
	"very_long":      RangeVeryLong,
	"very_very_long": RangeVeryVeryLong,
}

func (r Range) String() string {
	if s, ok := rangeNames[r]; ok {
		return s
	}
	return "none"
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Range) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := rangeValues[s]
	if !ok {
		return fmt.Errorf("unknown range class %q", s)
	}
	*r = v
	return nil
}

// Formation is the tactical formation of a fleet. The combat engine does not
// consume it yet; it is validated and defaulted at the host boundary so the
// payload round-trips intact.
type Formation string

const (
	FormationLineAhead   Formation = "line_ahead"
	FormationDoubleLine  Formation = "double_line"
	FormationDiamond     Formation = "diamond"
	FormationEchelon     Formation = "echelon"
	FormationLineAbreast Formation = "line_abreast"
	FormationVanguard    Formation = "vanguard"
)
