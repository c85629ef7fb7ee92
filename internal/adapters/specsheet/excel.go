// Package specsheet renders product specifications as XLSX workbooks.
package specsheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/richtext"
	"github.com/plazasales/storefront/internal/ports"
)

// Sheet names.
const (
	SheetSpecification = "Specification"
	SheetPricing       = "Pricing"
	SheetDownloads     = "Downloads"
)

const dateLayout = "2006-01-02"

var _ ports.SpecSheetRenderer = (*Renderer)(nil)

// Renderer implements ports.SpecSheetRenderer with excelize.
type Renderer struct{}

// New creates a renderer.
func New() *Renderer { return &Renderer{} }

// Filename returns the attachment name for a product's workbook.
func Filename(slug string) string {
	return slug + "-specification.xlsx"
}

// Render writes the workbook for in to w.
func (r *Renderer) Render(ctx context.Context, in *ports.SpecSheetInput, w io.Writer) error {
	if in == nil || in.Product == nil {
		return errors.New("specsheet: product is required")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("specsheet: style: %w", err)
	}

	b := &book{f: f, bold: bold}

	if err := f.SetSheetName("Sheet1", SheetSpecification); err != nil {
		return fmt.Errorf("specsheet: %w", err)
	}

	b.specification(in.Product)

	if in.Pricing != nil && len(in.Pricing.Packages) > 0 {
		b.pricing(in.Pricing)
	}

	if rows := downloadRows(in.Downloads); len(rows) > 0 {
		b.downloads(rows)
	}

	if b.err != nil {
		return fmt.Errorf("specsheet: %w", b.err)
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("specsheet: write: %w", err)
	}

	return nil
}

// book accumulates the first error so sheet builders stay linear.
type book struct {
	f    *excelize.File
	bold int
	err  error
}

func (b *book) row(sheet string, n int, values ...any) {
	if b.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		b.err = err
		return
	}

	b.err = b.f.SetSheetRow(sheet, cell, &values)
}

func (b *book) header(sheet string, n int, values ...any) {
	b.row(sheet, n, values...)

	if b.err != nil || len(values) == 0 {
		return
	}

	first, _ := excelize.CoordinatesToCellName(1, n)
	last, _ := excelize.CoordinatesToCellName(len(values), n)
	b.err = b.f.SetCellStyle(sheet, first, last, b.bold)
}

func (b *book) newSheet(name string, widths ...float64) {
	if b.err != nil {
		return
	}

	if _, err := b.f.NewSheet(name); err != nil {
		b.err = err
		return
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := b.f.SetColWidth(name, col, col, w); err != nil {
			b.err = err
			return
		}
	}
}

func (b *book) specification(p *domain.Product) {
	const sheet = SheetSpecification

	for i, w := range []float64{28, 60} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := b.f.SetColWidth(sheet, col, col, w); err != nil {
			b.err = err
			return
		}
	}

	n := 1
	b.header(sheet, n, "Product", p.Title)
	n++

	facts := [][2]string{
		{"Model", p.Slug},
		{"Type", string(p.ProductType)},
	}
	if p.Brand != nil {
		facts = append(facts, [2]string{"Brand", p.Brand.Name})
	}
	if p.Category != nil {
		facts = append(facts, [2]string{"Category", p.Category.Title})
	}
	if p.Subcategory != nil {
		facts = append(facts, [2]string{"Subcategory", p.Subcategory.Title})
	}
	if len(p.Technologies) > 0 {
		facts = append(facts, [2]string{"Technologies", strings.Join(p.Technologies, ", ")})
	}
	if p.Summary != "" {
		facts = append(facts, [2]string{"Summary", p.Summary})
	}

	for _, kv := range facts {
		b.row(sheet, n, kv[0], kv[1])
		n++
	}

	rows := SpecificationRows(specificationHTML(p))
	if len(rows) == 0 {
		return
	}

	n++
	b.header(sheet, n, "Specification")
	n++

	for _, r := range rows {
		values := make([]any, len(r))
		for i, v := range r {
			values[i] = v
		}
		b.row(sheet, n, values...)
		n++
	}
}

// specificationHTML is the HTML body to flatten; pricing documents are JSON
// and go to the Pricing sheet instead.
func specificationHTML(p *domain.Product) string {
	if _, ok := domain.ParsePricing(p.ProductType, p.Specification); ok {
		return p.Description
	}

	return p.Specification
}

func (b *book) pricing(plan *domain.PricingPlan) {
	const sheet = SheetPricing

	b.newSheet(sheet, 24, 14, 16, 14, 60)
	b.header(sheet, 1, "Package", "Monthly", "Yearly", "Yearly discount %", "Features")

	for i, p := range plan.Packages {
		b.row(sheet, i+2,
			p.Title,
			p.Price,
			round2(p.YearlyTotal()),
			p.YearlyDiscount,
			strings.Join(p.Features, "\n"),
		)
	}
}

type downloadRow struct {
	group string
	d     domain.Download
}

func downloadRows(g domain.DownloadGroups) []downloadRow {
	var rows []downloadRow

	add := func(group string, list []domain.Download) {
		for _, d := range list {
			rows = append(rows, downloadRow{group: group, d: d})
		}
	}

	add(domain.DownloadGroupSoftware, g.Software)
	add(domain.DownloadGroupManual, g.Manuals)
	add(domain.DownloadGroupCAD, g.CAD)
	add(domain.DownloadGroupOther, g.Other)

	return rows
}

func (b *book) downloads(rows []downloadRow) {
	const sheet = SheetDownloads

	b.newSheet(sheet, 14, 36, 12, 12, 12, 60)
	b.header(sheet, 1, "Group", "Title", "Version", "Size", "Released", "URL")

	for i, r := range rows {
		released := ""
		if !r.d.ReleasedOn.IsZero() {
			released = r.d.ReleasedOn.Format(dateLayout)
		}

		b.row(sheet, i+2,
			r.group,
			r.d.Title,
			r.d.Version,
			domain.FormatFileSize(r.d.SizeBytes),
			released,
			r.d.DownloadURL,
		)
	}
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// SpecificationRows flattens specification HTML into rows: each table row
// becomes one row of cell texts, other blocks become single-cell rows.
func SpecificationRows(fragment string) [][]string {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		if t := richtext.Text(fragment); t != "" {
			return [][]string{{t}}
		}
		return nil
	}

	var rows [][]string
	walk(doc, &rows)

	return rows
}

var paragraphs = map[string]bool{
	"p": true, "li": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
}

func walk(n *html.Node, rows *[][]string) {
	if n.Type == html.ElementNode {
		switch {
		case n.Data == "tr":
			if cells := rowCells(n); len(cells) > 0 {
				*rows = append(*rows, cells)
			}
			return

		case paragraphs[n.Data]:
			if t := richtext.NodeText(n); t != "" {
				*rows = append(*rows, []string{t})
			}
			return

		case n.Data == "script" || n.Data == "style":
			return
		}
	}

	if n.Type == html.TextNode && n.Parent != nil && n.Parent.Data == "body" {
		if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
			*rows = append(*rows, []string{t})
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, rows)
	}
}

func rowCells(tr *html.Node) []string {
	var cells []string
	empty := true

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}

		t := richtext.NodeText(c)
		if t != "" {
			empty = false
		}
		cells = append(cells, t)
	}

	if empty {
		return nil
	}

	return cells
}
