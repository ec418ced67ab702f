package scheme

import (
	"testing"

	"liftquote/internal/quote"
)

func TestFromChoices(t *testing.T) {
	tests := []struct {
		name    string
		choices Choices
		want    quote.Scheme
	}{
		{
			"sync machine with standard encoder",
			Choices{MachineType: MachineSync, EncoderMake: EncoderStandard},
			quote.Scheme1,
		},
		{
			"other encoder kept on family A",
			Choices{MachineType: MachineSync, EncoderMake: EncoderOther, EncoderRemedy: RemedyKeepFamilyA},
			quote.Scheme21,
		},
		{
			"other encoder switched to family B",
			Choices{MachineType: MachineSync, EncoderMake: EncoderOther, EncoderRemedy: RemedySwitchFamilyB},
			quote.Scheme22,
		},
		{
			"other encoder replaced",
			Choices{MachineType: MachineSync, EncoderMake: EncoderOther, EncoderRemedy: RemedyReplaceEncoder},
			quote.Scheme23,
		},
		{
			"other encoder without remediation falls back",
			Choices{MachineType: MachineSync, EncoderMake: EncoderOther},
			quote.Scheme21,
		},
		{
			"async machine",
			Choices{MachineType: MachineAsync},
			quote.Scheme3,
		},
		{
			"async machine ignores encoder fields",
			Choices{MachineType: MachineAsync, EncoderMake: EncoderOther, EncoderRemedy: RemedySwitchFamilyB},
			quote.Scheme3,
		},
		{
			"replace traction keeping doors",
			Choices{ReplaceTraction: true},
			quote.Scheme4,
		},
		{
			"replace traction and doors",
			Choices{ReplaceTraction: true, ReplaceDoorSet: true},
			quote.Scheme5,
		},
		{
			"replace traction ignores machine type",
			Choices{ReplaceTraction: true, MachineType: MachineAsync},
			quote.Scheme4,
		},
		{
			"empty choices default to scheme 1",
			Choices{},
			quote.Scheme1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromChoices(tt.choices); got != tt.want {
				t.Fatalf("FromChoices(%+v) = %s, want %s", tt.choices, got, tt.want)
			}
		})
	}
}

func TestResolve_MachineRoomConstraint(t *testing.T) {
	// Without a machine room the replace schemes are off the table; both
	// the scheme and the room flag are corrected in the same step.
	in := quote.QuotationInput{Scheme: quote.Scheme1, HasMachineRoom: false}

	out, changed := Resolve(Choices{ReplaceTraction: true}, in)

	if out.Scheme != quote.Scheme1 {
		t.Fatalf("scheme = %s, want %s", out.Scheme, quote.Scheme1)
	}
	if !out.HasMachineRoom {
		t.Fatalf("machine-room flag not forced on")
	}
	if !changed {
		t.Fatalf("forcing the room flag must report a change")
	}
}

func TestResolve_Scheme5DoorDefault(t *testing.T) {
	in := quote.QuotationInput{Scheme: quote.Scheme1, HasMachineRoom: true}

	out, changed := Resolve(Choices{ReplaceTraction: true, ReplaceDoorSet: true}, in)

	if out.Scheme != quote.Scheme5 {
		t.Fatalf("scheme = %s, want %s", out.Scheme, quote.Scheme5)
	}
	if out.DoorType != quote.DoorCentreTwoPanel {
		t.Fatalf("door type = %q, want default %q", out.DoorType, quote.DoorCentreTwoPanel)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}

	// An explicit door type survives re-resolution.
	in.Scheme = quote.Scheme5
	in.DoorType = quote.DoorSideTwoPanel
	out, changed = Resolve(Choices{ReplaceTraction: true, ReplaceDoorSet: true}, in)
	if out.DoorType != quote.DoorSideTwoPanel {
		t.Fatalf("door type overwritten to %q", out.DoorType)
	}
	if changed {
		t.Fatalf("nothing moved, changed must be false")
	}
}

func TestResolve_UnchangedInputReportsNoChange(t *testing.T) {
	in := quote.QuotationInput{Scheme: quote.Scheme22, HasMachineRoom: true}
	choices := Choices{MachineType: MachineSync, EncoderMake: EncoderOther, EncoderRemedy: RemedySwitchFamilyB}

	out, changed := Resolve(choices, in)

	if out.Scheme != quote.Scheme22 {
		t.Fatalf("scheme = %s, want %s", out.Scheme, quote.Scheme22)
	}
	if changed {
		t.Fatalf("re-resolving the same choices must not report a change")
	}
}

func TestResolve_RetainedSchemesAllowNoMachineRoom(t *testing.T) {
	in := quote.QuotationInput{Scheme: quote.Scheme1, HasMachineRoom: false}

	out, changed := Resolve(Choices{MachineType: MachineAsync}, in)

	if out.Scheme != quote.Scheme3 {
		t.Fatalf("scheme = %s, want %s", out.Scheme, quote.Scheme3)
	}
	if out.HasMachineRoom {
		t.Fatalf("room flag must stay off for retained-machine schemes")
	}
	if !changed {
		t.Fatalf("scheme moved from 1 to 3, changed must be true")
	}
}
