package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseConstructors(t *testing.T) {
	t.Parallel()

	payload := `[
	  {"id": 1, "name": "Foo", "cost": 5000000, "num_riders": 2,
	   "stats": {"prices": {"1": 100, "2": 150}, "events": {}}}
	]`
	constructors, err := ParseConstructors(json.RawMessage(payload))
	if err != nil {
		t.Fatalf("ParseConstructors: %v", err)
	}
	if len(constructors) != 1 {
		t.Fatalf("got %d constructors, want 1", len(constructors))
	}

	c := constructors[0]
	if c.Name != "Foo" || c.NumRiders != 2 {
		t.Errorf("unexpected record: %+v", c)
	}
	if c.Cost != 5.0 {
		t.Errorf("Cost = %v, want 5.0", c.Cost)
	}
	if c.CostMicros != 5000000 {
		t.Errorf("CostMicros = %d, want 5000000", c.CostMicros)
	}
	if len(c.Stats.Prices) != 2 || c.Stats.Prices[0] != 100 || c.Stats.Prices[1] != 150 {
		t.Errorf("Prices = %v, want [100 150]", c.Stats.Prices)
	}
	if len(c.Stats.Events) != 0 {
		t.Errorf("Events = %v, want empty", c.Stats.Events)
	}
}

func TestParseConstructorsEventDerivations(t *testing.T) {
	t.Parallel()

	payload := `[
	  {"id": 3, "name": "Bar", "cost": 1000000,
	   "stats": {"events": {
	     "1": {"points": 12, "highest_position": 4, "fastest_lap": 1},
	     "2": {"points": 0, "highest_position": 0, "fastest_lap": 0}
	   }}}
	]`
	constructors, err := ParseConstructors(json.RawMessage(payload))
	if err != nil {
		t.Fatalf("ParseConstructors: %v", err)
	}
	events := constructors[0].Stats.Events
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].Finished || !events[0].HadFastestLap {
		t.Errorf("event 1 derivations wrong: %+v", events[0])
	}
	if events[1].Finished || events[1].HadFastestLap {
		t.Errorf("event 2 derivations wrong: %+v", events[1])
	}
	if events[0].EventNum != 1 || events[1].EventNum != 2 {
		t.Errorf("event numbering wrong: %d, %d", events[0].EventNum, events[1].EventNum)
	}
}

func TestParseConstructorsMalformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseConstructors(json.RawMessage(`{"id": 1}`)); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("error = %v, want ErrMalformedPayload", err)
	}
}

func TestParseTeams(t *testing.T) {
	t.Parallel()

	payload := `[
	  {"id": 1, "name": "Alpha", "num_riders": 2, "is_wildcard": 1, "cost": 3000000, "stats": {}},
	  {"id": 2, "name": "Beta", "num_riders": 2, "is_wildcard": 0, "cost": 4500000, "stats": {}}
	]`
	teams, err := ParseTeams(json.RawMessage(payload))
	if err != nil {
		t.Fatalf("ParseTeams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	if !teams[0].IsWildcard {
		t.Error("Alpha should be a wildcard team")
	}
	if teams[1].IsWildcard {
		t.Error("Beta should not be a wildcard team")
	}
	if teams[1].Cost != 4.5 {
		t.Errorf("Cost = %v, want 4.5", teams[1].Cost)
	}
}
