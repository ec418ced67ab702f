// Package scheme maps the renovation-choice decision tree onto the
// seven canonical scheme codes and keeps the chosen code consistent
// with the machine-room constraint.
package scheme

import "liftquote/internal/quote"

// Machine types for the retained-machine branch.
const (
	MachineSync  = "sync"
	MachineAsync = "async"
)

// Encoder makes for the retained synchronous branch.
const (
	EncoderStandard = "standard" // Heidenhain EN1387
	EncoderOther    = "other"
)

// Remediation strategies when the existing encoder is non-standard.
const (
	RemedyKeepFamilyA    = "keep-family-a"
	RemedySwitchFamilyB  = "switch-family-b"
	RemedyReplaceEncoder = "replace-encoder"
)

// Choices is the set of mutually exclusive renovation selections the
// form surface collects. Secondary fields only matter on the branch
// that reaches them.
type Choices struct {
	ReplaceTraction bool   `json:"replaceTraction"`
	ReplaceDoorSet  bool   `json:"replaceDoorSet,omitempty"`
	MachineType     string `json:"machineType,omitempty"`
	EncoderMake     string `json:"encoderMake,omitempty"`
	EncoderRemedy   string `json:"encoderRemedy,omitempty"`
}

// FromChoices walks the decision tree and returns the canonical scheme
// code. The mapping is total: the "other encoder" branch without a
// remediation sub-choice falls back to scheme 2-1.
func FromChoices(c Choices) quote.Scheme {
	if c.ReplaceTraction {
		if c.ReplaceDoorSet {
			return quote.Scheme5
		}
		return quote.Scheme4
	}

	if c.MachineType == MachineAsync {
		return quote.Scheme3
	}

	if c.EncoderMake != EncoderOther {
		return quote.Scheme1
	}

	switch c.EncoderRemedy {
	case RemedySwitchFamilyB:
		return quote.Scheme22
	case RemedyReplaceEncoder:
		return quote.Scheme23
	default:
		return quote.Scheme21
	}
}

// Resolve computes the scheme code for the given choices and restores
// consistency with the current input: replace schemes (4/5) and an
// absent machine room are mutually exclusive, so that combination is
// forced back to scheme 1 with the machine-room flag set. Entering
// scheme 5 populates the door-type default when absent.
//
// The updated input is returned together with a changed flag; callers
// re-render only when something actually moved, so an unchanged
// evaluation must not be reported as an update.
func Resolve(c Choices, in quote.QuotationInput) (quote.QuotationInput, bool) {
	next := FromChoices(c)

	out := in
	if !out.HasMachineRoom && (next == quote.Scheme4 || next == quote.Scheme5) {
		next = quote.Scheme1
		out.HasMachineRoom = true
	}

	out.Scheme = next
	if next == quote.Scheme5 && out.DoorType == "" {
		out.DoorType = quote.DoorCentreTwoPanel
	}

	changed := out.Scheme != in.Scheme ||
		out.HasMachineRoom != in.HasMachineRoom ||
		out.DoorType != in.DoorType
	return out, changed
}
