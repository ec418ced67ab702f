// Package quote implements the quotation engine: it turns a resolved
// scheme code plus the full request into an itemized, priced bill with
// any unresolved catalog matches reported as warnings.
package quote

// Scheme identifies one of the seven canonical modernization scopes.
type Scheme string

const (
	Scheme1  Scheme = "scheme-1"   // retain sync machine, standard encoder
	Scheme21 Scheme = "scheme-2-1" // retain sync machine, other encoder, keep family A
	Scheme22 Scheme = "scheme-2-2" // retain sync machine, other encoder, switch to family B
	Scheme23 Scheme = "scheme-2-3" // retain sync machine, other encoder, replace encoder
	Scheme3  Scheme = "scheme-3"   // retain async machine
	Scheme4  Scheme = "scheme-4"   // replace traction machine only
	Scheme5  Scheme = "scheme-5"   // replace traction machine and door operator
)

// Schemes lists every canonical scheme code.
var Schemes = []Scheme{Scheme1, Scheme21, Scheme22, Scheme23, Scheme3, Scheme4, Scheme5}

// Valid reports whether s is one of the canonical codes.
func (s Scheme) Valid() bool {
	for _, known := range Schemes {
		if s == known {
			return true
		}
	}
	return false
}

// Door opening configurations (scheme 5).
const (
	DoorCentreTwoPanel  = "centre-two-panel"
	DoorSideTwoPanel    = "side-two-panel"
	DoorCentreFourPanel = "centre-four-panel"
)

// Names of the system-generated line items. Overrides are keyed by
// these exact strings.
const (
	ItemControlSystem   = "Control system (complete set)"
	ItemTractionMachine = "Traction machine"
	ItemMachineFrame    = "Machine frame (incl. guide pulley)"
	ItemDoorOperator    = "Car door operator (excl. panels and sill)"
	ItemDoorMotor       = "Door motor and controller"
	ItemEncoder         = "Encoder (incl. mounting bracket)"
	ItemSiteSurvey      = "On-site survey"
	ItemPackaging       = "Packaging"
	ItemFreight         = "Freight"
)

// Override replaces the computed unit price and/or quantity of one
// system-generated item. Nil fields keep the computed value.
type Override struct {
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
}

// QuotationInput is the complete, immutable-per-call request.
type QuotationInput struct {
	ProjectName  string `json:"projectName"`
	CustomerName string `json:"customerName"`
	Scheme       Scheme `json:"scheme"`

	LoadKg         float64 `json:"loadKg"`
	SpeedMS        float64 `json:"speedMs"`
	Floors         int     `json:"floors"`
	ThroughDoor    bool    `json:"throughDoor"`
	HasMachineRoom bool    `json:"hasMachineRoom"`

	// Old machine electrical data (retained-machine schemes). Power is
	// the legacy rating kept for display only; matching goes by current.
	OldMachinePowerKW  float64 `json:"oldMachinePowerKw,omitempty"`
	OldMachineCurrentA float64 `json:"oldMachineCurrentA,omitempty"`
	// Free-text shaft diameter, scheme 3 only.
	OldShaftDiameter string `json:"oldShaftDiameter,omitempty"`

	// Replacement machine data (schemes 4 and 5).
	TractionRatio string `json:"tractionRatio,omitempty"`

	// Door data (scheme 5).
	DoorType    string  `json:"doorType,omitempty"`
	DoorWidthMM float64 `json:"doorWidthMm,omitempty"`

	EngineerMeasure bool    `json:"engineerMeasure"`
	FreightPrice    float64 `json:"freightPrice,omitempty"`

	Modifications map[string]Override `json:"modifications,omitempty"`
	CustomItems   []QuotationItem     `json:"customItems,omitempty"`
}

// QuotationItem is one priced line of the bill. TotalPrice is always
// round(Quantity * UnitPrice) at the moment the item is finalized.
type QuotationItem struct {
	Name       string  `json:"name"`
	Spec       string  `json:"spec"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Remark     string  `json:"remark,omitempty"`
}

// QuotationResult is the itemized outcome of one engine invocation.
// Item order is display order; custom items always come last, so the
// boundary between system and custom items is
// len(Items) - len(input.CustomItems).
type QuotationResult struct {
	Items      []QuotationItem `json:"items"`
	TotalPrice float64         `json:"totalPrice"`
	Warnings   []string        `json:"warnings"`
}

// DefaultInput returns the request the form surface starts from: a
// ten-floor 1000kg machine-room installation on scheme 1.
func DefaultInput() QuotationInput {
	return QuotationInput{
		Scheme:             Scheme1,
		LoadKg:             1000,
		SpeedMS:            1.0,
		Floors:             10,
		HasMachineRoom:     true,
		EngineerMeasure:    true,
		OldMachineCurrentA: 13,
		TractionRatio:      "2:1",
	}
}
