// Package export renders a quotation result into downloadable
// documents. It performs no pricing logic: the itemized result is
// rendered verbatim, with header fields taken from the raw input.
package export

import (
	"fmt"
	"strings"

	"liftquote/internal/quote"
)

// Row is one rendered line of the bill.
type Row struct {
	Index      int
	Name       string
	Spec       string
	Quantity   float64
	UnitPrice  float64
	TotalPrice float64
	Remark     string
}

// Data holds everything a document renderer needs.
type Data struct {
	ProjectName  string
	CustomerName string
	Scheme       string
	Summary      string
	Rows         []Row
	TotalPrice   float64
	Warnings     []string
}

// Build assembles export data from a quotation input and its result.
func Build(in quote.QuotationInput, res quote.QuotationResult) Data {
	rows := make([]Row, 0, len(res.Items))
	for i, item := range res.Items {
		rows = append(rows, Row{
			Index:      i + 1,
			Name:       item.Name,
			Spec:       item.Spec,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Remark:     item.Remark,
		})
	}

	return Data{
		ProjectName:  in.ProjectName,
		CustomerName: in.CustomerName,
		Scheme:       string(in.Scheme),
		Summary:      summarize(in),
		Rows:         rows,
		TotalPrice:   res.TotalPrice,
		Warnings:     append([]string(nil), res.Warnings...),
	}
}

// summarize renders the elevator header line: load, speed, floors,
// machine room, door configuration.
func summarize(in quote.QuotationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %gkg, speed %gm/s, %d floors", in.LoadKg, in.SpeedMS, in.Floors)
	if in.HasMachineRoom {
		b.WriteString(", with machine room")
	} else {
		b.WriteString(", no machine room")
	}
	if in.ThroughDoor {
		b.WriteString(", through door")
	}
	if in.DoorType != "" {
		fmt.Fprintf(&b, ", door %s", in.DoorType)
		if in.DoorWidthMM > 0 {
			fmt.Fprintf(&b, " %gmm", in.DoorWidthMM)
		}
	}
	return b.String()
}
