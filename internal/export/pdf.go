package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the quotation into a paginated PDF document and
// returns the raw bytes.
func GeneratePDF(data Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addTotal(m, data)
	addWarnings(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, data Data) {
	title := data.ProjectName
	if title == "" {
		title = "Elevator Modernization Quotation"
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtle := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("Customer: "+data.CustomerName, subtle)),
		),
		row.New(6).Add(
			col.New(12).Add(text.New("Elevator: "+data.Summary, subtle)),
		),
		row.New(4),
	)
}

func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Specification", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addTableRow(m core.Maroto, r Row) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
			col.New(3).Add(text.New(r.Name, leftText)),
			col.New(3).Add(text.New(r.Spec, leftText)),
			col.New(1).Add(text.New(formatQty(r.Quantity), rightText)),
			col.New(2).Add(text.New(FormatCNY(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatCNY(r.TotalPrice), rightText)),
		),
	)

	if r.Remark != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(1),
				col.New(11).Add(text.New("Note: "+r.Remark, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 110, Green: 110, Blue: 110},
				})),
			),
		)
	}
}

func addTotal(m core.Maroto, data Data) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	bold := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Grand Total", bold)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatCNY(data.TotalPrice), bold)).WithStyle(summaryCell),
		),
	)
}

func addWarnings(m core.Maroto, data Data) {
	if len(data.Warnings) == 0 {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New("Warnings", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)
	for _, w := range data.Warnings {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New("- "+w, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 150, Green: 60, Blue: 0},
				})),
			),
		)
	}
}
