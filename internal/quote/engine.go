package quote

import (
	"fmt"
	"math"
	"sort"

	"liftquote/internal/catalog"
)

// Misc catalog keys the engine prices common components from.
const (
	miscDoorMotor  = "Door motor and controller"
	miscEncoder    = "EN1387 encoder (incl. mounting bracket)"
	miscSurvey     = "On-site survey fee"
	miscCrate      = "Packaging (wooden crate)"
	crateSpecCtrl  = "Control cabinet"
	crateSpecFrame = "Machine frame"
)

// Fallback prices used when a misc catalog entry is absent, and the
// fixed two-tier pricing of the scheme-5 door operator assembly.
const (
	fallbackDoorMotorPrice = 2000
	fallbackEncoderPrice   = 1000
	fallbackSurveyPrice    = 500
	fallbackCratePrice     = 500

	doorOperatorStandard = 5000
	doorOperatorReduced  = 3000
	doorReducedMaxWidth  = 1200
)

// Traction matching: load excess dominates speed excess 10:1, and the
// exact-match fallback tolerates this much speed drift.
const (
	loadExcessWeight  = 1000
	speedExcessWeight = 100
	speedTolerance    = 0.01
)

// Engine computes quotations against an immutable catalog store. It is
// stateless between calls and safe for concurrent use.
type Engine struct {
	cat *catalog.Store
}

// NewEngine returns an Engine backed by the given catalog store.
func NewEngine(cat *catalog.Store) *Engine {
	return &Engine{cat: cat}
}

// Calculate produces the itemized quotation for the given input. It
// never fails: unmatched catalog lookups degrade to warnings or
// zero-priced placeholder items, and out-of-domain numeric inputs
// simply fail to match.
func (e *Engine) Calculate(in QuotationInput) QuotationResult {
	items := make([]QuotationItem, 0, 8)
	warnings := make([]string, 0)

	family := catalog.FamilyA
	requiredPower := 0.0
	wantControl := true
	schemeKnown := in.Scheme.Valid()

	switch in.Scheme {
	case Scheme1, Scheme21, Scheme23, Scheme3:
		if in.OldMachineCurrentA > 0 {
			power, ok := e.powerFromCurrent(in.OldMachineCurrentA, "")
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"no control system rated for an adapted traction current of %gA", in.OldMachineCurrentA))
				wantControl = false
			}
			requiredPower = power
		}

	case Scheme22:
		family = catalog.FamilyB
		if in.OldMachineCurrentA > 0 {
			power, ok := e.powerFromCurrent(in.OldMachineCurrentA, catalog.FamilyB)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"no %s control system rated for an adapted traction current of %gA",
					catalog.FamilyB, in.OldMachineCurrentA))
				wantControl = false
			}
			requiredPower = power
		}

	case Scheme4, Scheme5:
		ratio := in.TractionRatio
		if ratio == "" {
			ratio = "1:1"
		}
		machine, ok := e.matchTraction(in.LoadKg, in.SpeedMS, ratio)
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"no matching traction machine (load %gkg, speed %gm/s, ratio %s)",
				in.LoadKg, in.SpeedMS, ratio))
			wantControl = false
			break
		}

		machineRemark := fmt.Sprintf("traction ratio %s", ratio)
		if machine.MachinePrice == 0 {
			machineRemark = "price missing from catalog; " + machineRemark
		}
		items = append(items, newItem(ItemTractionMachine, machine.Model, 1, machine.MachinePrice, machineRemark))

		frameRemark := "existing load-bearing beam retained"
		if machine.FramePrice == 0 {
			frameRemark += " (price missing from catalog)"
		}
		items = append(items, newItem(ItemMachineFrame, "matched set", 1, machine.FramePrice, frameRemark))

		requiredPower = machine.ControlPowerKW
		if requiredPower == 0 {
			requiredPower = machine.RatedPowerKW
		}

	default:
		warnings = append(warnings, fmt.Sprintf(
			"unrecognized scheme code %q; only scheme-independent items were priced", in.Scheme))
		wantControl = false
	}

	if wantControl {
		items, warnings = e.appendControlItem(items, warnings, family, requiredPower, in)
	}

	// Door component.
	switch {
	case in.Scheme == Scheme5:
		price := float64(doorOperatorStandard)
		spec := "other"
		if in.DoorType == DoorCentreTwoPanel && in.DoorWidthMM <= doorReducedMaxWidth {
			price = doorOperatorReduced
			spec = fmt.Sprintf("%s, opening width <= %dmm", DoorCentreTwoPanel, doorReducedMaxWidth)
		}
		items = append(items, newItem(ItemDoorOperator, spec, 1, price, ""))
	case schemeKnown:
		price, ok := e.cat.MiscPrice(miscDoorMotor, "")
		if !ok {
			price = fallbackDoorMotorPrice
		}
		items = append(items, newItem(ItemDoorMotor, "includes inverter", 1, price, ""))
	}

	// Encoder.
	switch in.Scheme {
	case Scheme23:
		price, ok := e.cat.MiscPrice(miscEncoder, "")
		if !ok {
			price = fallbackEncoderPrice
		}
		items = append(items, newItem(ItemEncoder, "EN1387", 1, price, ""))
	case Scheme3:
		price, ok := e.cat.MiscPrice(miscEncoder, "")
		if !ok {
			price = fallbackEncoderPrice
		}
		spec := ""
		if in.OldShaftDiameter != "" {
			spec = fmt.Sprintf("shaft diameter: %s", in.OldShaftDiameter)
		}
		items = append(items, newItem(ItemEncoder, spec, 1, price, "custom-fit to shaft diameter"))
	}

	// Field measurement.
	if in.EngineerMeasure {
		price, ok := e.cat.MiscPrice(miscSurvey, "")
		if !ok {
			price = fallbackSurveyPrice
		}
		items = append(items, newItem(ItemSiteSurvey, "", 1, price, ""))
	}

	// Packaging: one merged crate line. Schemes replacing the machine
	// ship a second crate for the frame.
	crate, ok := e.cat.MiscPrice(miscCrate, crateSpecCtrl)
	if !ok {
		crate = fallbackCratePrice
	}
	if in.Scheme == Scheme4 || in.Scheme == Scheme5 {
		frameCrate, ok := e.cat.MiscPrice(miscCrate, crateSpecFrame)
		if !ok {
			frameCrate = fallbackCratePrice
		}
		crate += frameCrate
	}
	items = append(items, newItem(ItemPackaging, "wooden crate", 1, crate, ""))

	// Freight is a manual price, no catalog behind it.
	items = append(items, newItem(ItemFreight, "", 1, in.FreightPrice, ""))

	// Overrides apply to the system-generated items only; custom items
	// come after and are never touched.
	for i := range items {
		mod, ok := in.Modifications[items[i].Name]
		if !ok {
			continue
		}
		if mod.UnitPrice != nil {
			items[i].UnitPrice = *mod.UnitPrice
		}
		if mod.Quantity != nil {
			items[i].Quantity = *mod.Quantity
		}
		items[i].TotalPrice = round(items[i].UnitPrice * items[i].Quantity)
	}

	for _, custom := range in.CustomItems {
		custom.TotalPrice = round(custom.UnitPrice * custom.Quantity)
		items = append(items, custom)
	}

	total := 0.0
	for _, item := range items {
		total += item.TotalPrice
	}

	return QuotationResult{
		Items:      items,
		TotalPrice: round(total),
		Warnings:   warnings,
	}
}

// powerFromCurrent finds the control record with the smallest adapted
// current still >= the supplied current and returns its rated power.
// With an empty family the search spans both cabinet families and exact
// ties prefer family A.
func (e *Engine) powerFromCurrent(current float64, family string) (float64, bool) {
	var best catalog.ControlRecord
	bestDiff := math.Inf(1)
	found := false

	for _, c := range e.cat.Control(family) {
		if c.AdaptedCurrentA < current {
			continue
		}
		diff := c.AdaptedCurrentA - current
		switch {
		case diff < bestDiff:
			best = c
			bestDiff = diff
			found = true
		case diff == bestDiff && best.Model != catalog.FamilyA && c.Model == catalog.FamilyA:
			best = c
		}
	}

	if !found {
		return 0, false
	}
	return best.PowerKW, true
}

// appendControlItem emits the control system line item, the zero-priced
// placeholder when no power requirement could be derived, or a warning
// when the family has no record with sufficient rated power.
func (e *Engine) appendControlItem(items []QuotationItem, warnings []string, family string, requiredPower float64, in QuotationInput) ([]QuotationItem, []string) {
	if requiredPower == 0 && isRetainedScheme(in.Scheme) {
		item := newItem(ItemControlSystem, family, 1, 0,
			"old machine current not provided; power and price cannot be determined")
		return append(items, item), warnings
	}

	candidates := e.cat.Control(family)
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].PowerKW < candidates[j].PowerKW })

	for _, c := range candidates {
		if c.PowerKW < requiredPower {
			continue
		}
		price := c.Price
		if in.Floors != 10 {
			price += float64(in.Floors-10) * c.PerFloorDelta
		}
		if !in.HasMachineRoom {
			price += c.NoMachineRoomDelta
		}
		if in.ThroughDoor {
			price += c.ThroughDoorDelta
		}
		spec := fmt.Sprintf("%s/%gkW", family, c.PowerKW)
		return append(items, newItem(ItemControlSystem, spec, 1, price, "")), warnings
	}

	warnings = append(warnings, fmt.Sprintf("no matching control system (%s, power >= %gkW)", family, requiredPower))
	return items, warnings
}

// matchTraction picks the traction record with the given ratio whose
// rated load and speed both cover the request, minimizing weighted
// excess with load dominating. If nothing covers the request it falls
// back to an exact-load match within the speed tolerance.
func (e *Engine) matchTraction(loadKg, speedMS float64, ratio string) (catalog.TractionRecord, bool) {
	var best catalog.TractionRecord
	bestScore := math.Inf(1)
	found := false

	for _, t := range e.cat.Traction(ratio) {
		if t.LoadKg < loadKg || t.SpeedMS < speedMS {
			continue
		}
		score := (t.LoadKg-loadKg)*loadExcessWeight + (t.SpeedMS-speedMS)*speedExcessWeight
		if score < bestScore {
			bestScore = score
			best = t
			found = true
		}
	}
	if found {
		return best, true
	}

	for _, t := range e.cat.Traction(ratio) {
		if t.LoadKg == loadKg && math.Abs(t.SpeedMS-speedMS) < speedTolerance {
			return t, true
		}
	}
	return catalog.TractionRecord{}, false
}

func isRetainedScheme(s Scheme) bool {
	switch s {
	case Scheme1, Scheme21, Scheme22, Scheme23, Scheme3:
		return true
	}
	return false
}

func newItem(name, spec string, quantity, unitPrice float64, remark string) QuotationItem {
	unitPrice = round(unitPrice)
	return QuotationItem{
		Name:       name,
		Spec:       spec,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: round(unitPrice * quantity),
		Remark:     remark,
	}
}

// round is nearest-integer, half away from zero. All prices are fixed
// into line items through this.
func round(v float64) float64 {
	return math.Round(v)
}
