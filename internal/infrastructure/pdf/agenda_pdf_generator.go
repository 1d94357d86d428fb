// Package pdf genera la agenda de citas en PDF para impresión en recepción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la clínica  │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Hora | Título                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de citas listadas                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// AgendaPDFGenerator genera la agenda de citas usando Maroto v2.
type AgendaPDFGenerator struct{}

// NewAgendaPDFGenerator construye el generador.
func NewAgendaPDFGenerator() *AgendaPDFGenerator {
	return &AgendaPDFGenerator{}
}

// GenerateAgendaPDF genera el PDF de la agenda y devuelve sus bytes.
// Las citas vienen ya ordenadas por fecha ascendente.
func (g *AgendaPDFGenerator) GenerateAgendaPDF(
	_ context.Context,
	clinicName string,
	appointments []*entity.Appointment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda de citas", true).
		WithAuthor(clinicName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(clinicName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, appt := range appointments {
		m.AddRows(appointmentRow(appt))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(appointments)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar agenda: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la clínica (izq) y fecha de generación (der).
func headerRow(clinicName string) core.Row {
	generado := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(clinicName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Agenda de citas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generado, props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(8).Add(
		text.NewCol(3, "Fecha", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		text.NewCol(2, "Hora", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		text.NewCol(7, "Título", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
	)
}

func appointmentRow(appt *entity.Appointment) core.Row {
	return row.New(6).Add(
		text.NewCol(3, appt.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1}),
		text.NewCol(2, appt.Date.Format("15:04"), props.Text{Size: 8, Top: 1}),
		text.NewCol(7, appt.Title, props.Text{Size: 8, Top: 1}),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		text.NewCol(12, fmt.Sprintf("Total: %d citas", total), props.Text{
			Size: 8, Top: 2, Align: align.Right, Color: colorGray,
		}),
	)
}
