// Package catalog holds the three reference price tables the quotation
// engine matches against: control systems, traction machines and
// miscellaneous parts. The tables are loaded once and never mutated;
// lookups hand out copies so callers cannot corrupt catalog state.
package catalog

import "strings"

// Control cabinet families. FamilyA is the default for retained-machine
// schemes; FamilyB is only selected explicitly.
const (
	FamilyA = "K-MC1000"
	FamilyB = "K-MC5000"
)

// ControlRecord describes one control cabinet variant. Prices are
// all-inclusive; the deltas adjust the base price for floor count,
// missing machine room and through-door configurations.
type ControlRecord struct {
	Model              string  `json:"model"`
	PowerKW            float64 `json:"powerKw"`
	AdaptedCurrentA    float64 `json:"adaptedCurrentA"`
	Price              float64 `json:"price"`
	PerFloorDelta      float64 `json:"perFloorDelta"`
	NoMachineRoomDelta float64 `json:"noMachineRoomDelta"`
	ThroughDoorDelta   float64 `json:"throughDoorDelta"`
}

// TractionRecord describes one replacement traction machine together
// with its mounting frame and the control-system power it is adapted to
// drive. ControlPowerKW may be zero, in which case RatedPowerKW applies.
type TractionRecord struct {
	Model          string  `json:"model"`
	LoadKg         float64 `json:"loadKg"`
	SpeedMS        float64 `json:"speedMs"`
	Ratio          string  `json:"ratio"`
	MachinePrice   float64 `json:"machinePrice"`
	FramePrice     float64 `json:"framePrice"`
	ControlPowerKW float64 `json:"controlPowerKw"`
	RatedPowerKW   float64 `json:"ratedPowerKw"`
}

// MiscRecord is one entry of the flat (name, spec) -> price table.
// An empty Spec acts as a wildcard for lookups without a qualifier.
type MiscRecord struct {
	Name  string  `json:"name"`
	Spec  string  `json:"spec"`
	Price float64 `json:"price"`
}

// Store is the immutable in-memory view of the three catalogs.
type Store struct {
	control  []ControlRecord
	traction []TractionRecord
	misc     []MiscRecord
}

// NewStore builds a Store from record slices. The slices are copied so
// the Store stays valid even if the caller keeps mutating its inputs.
func NewStore(control []ControlRecord, traction []TractionRecord, misc []MiscRecord) *Store {
	s := &Store{
		control:  make([]ControlRecord, len(control)),
		traction: make([]TractionRecord, len(traction)),
		misc:     make([]MiscRecord, len(misc)),
	}
	copy(s.control, control)
	copy(s.traction, traction)
	copy(s.misc, misc)
	return s
}

// Control returns a copy of the control catalog, optionally filtered to
// one cabinet family. An empty model returns every record.
func (s *Store) Control(model string) []ControlRecord {
	out := make([]ControlRecord, 0, len(s.control))
	for _, c := range s.control {
		if model == "" || c.Model == model {
			out = append(out, c)
		}
	}
	return out
}

// Traction returns a copy of the traction catalog, optionally filtered
// to one traction ratio.
func (s *Store) Traction(ratio string) []TractionRecord {
	out := make([]TractionRecord, 0, len(s.traction))
	for _, t := range s.traction {
		if ratio == "" || t.Ratio == ratio {
			out = append(out, t)
		}
	}
	return out
}

// Misc returns a copy of the misc catalog.
func (s *Store) Misc() []MiscRecord {
	out := make([]MiscRecord, len(s.misc))
	copy(out, s.misc)
	return out
}

// MiscPrice looks up the price for (name, spec). With an empty spec the
// first record matching the name wins, regardless of its qualifier;
// with a spec both fields must match. A miss returns 0 and false.
func (s *Store) MiscPrice(name, spec string) (float64, bool) {
	for _, m := range s.misc {
		if m.Name != name {
			continue
		}
		if spec == "" || strings.EqualFold(m.Spec, spec) {
			return m.Price, true
		}
	}
	return 0, false
}
