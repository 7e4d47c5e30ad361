package fleet

import (
	"encoding/json"
	"testing"
)

func testShip(hp int) Ship {
	return Ship{ID: 1, Name: "test", Status: ShipStatus{MaxHP: hp, NowHP: hp, Firepower: 10, Armor: 10}}
}

func TestValidateRejectsEmptyFleet(t *testing.T) {
	f := NewFleet(nil, FormationLineAhead)
	if f.Validate() {
		t.Fatalf("expected empty fleet to fail validation")
	}
}

func TestValidateDefaultsFormation(t *testing.T) {
	f := NewFleet([]Ship{testShip(30)}, "")
	if !f.Validate() {
		t.Fatalf("expected fleet with ships to validate")
	}
	if f.Formation() != FormationLineAhead {
		t.Fatalf("expected defaulted formation line_ahead, got %q", f.Formation())
	}
}

func TestCloneIsolatesShips(t *testing.T) {
	typeID := 8
	orig := NewFleet([]Ship{{
		ID:         1,
		ShipTypeID: &typeID,
		Status:     ShipStatus{MaxHP: 30, NowHP: 30, AirplaneSlots: []int{9, 9}},
	}}, FormationLineAhead)

	cp := orig.Clone()
	cp.Ships()[0].Status.NowHP = 1
	*cp.Ships()[0].ShipTypeID = 2
	cp.Ships()[0].Status.AirplaneSlots[0] = 0

	if orig.Ships()[0].Status.NowHP != 30 {
		t.Fatalf("clone mutation leaked into original HP")
	}
	if *orig.Ships()[0].ShipTypeID != 8 {
		t.Fatalf("clone mutation leaked into original type id")
	}
	if orig.Ships()[0].Status.AirplaneSlots[0] != 9 {
		t.Fatalf("clone mutation leaked into original airplane slots")
	}
}

func TestEnemyFleetDecode(t *testing.T) {
	payload := `{
		"area": 2,
		"map": 3,
		"node": "E",
		"probability": 0.4,
		"ships": [{"id": 501, "name": "I-class", "status": {"maxHp": 20, "nowHp": 20, "firepower": 7, "armor": 5, "torpedo": 15, "antiAircraft": 6, "condition": 49}}],
		"formation": "line_abreast"
	}`
	var f EnemyFleet
	if err := json.Unmarshal([]byte(payload), &f); err != nil {
		t.Fatalf("failed to decode enemy fleet: %v", err)
	}
	if f.Probability() != 0.4 {
		t.Fatalf("expected probability 0.4, got %v", f.Probability())
	}
	if f.Node() != "E" {
		t.Fatalf("expected node E, got %q", f.Node())
	}
	if len(f.Ships()) != 1 || f.Ships()[0].Name != "I-class" {
		t.Fatalf("unexpected ships: %+v", f.Ships())
	}
	if f.Formation() != FormationLineAbreast {
		t.Fatalf("expected line_abreast, got %q", f.Formation())
	}
}
