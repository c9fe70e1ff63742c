// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out a types.Report onto PDF pages.
//
// Every page carries a centered bold title and italic subtitle in the header
// and a centered "Page N" footer. Sections are drawn in order with a shaded
// numbered title band followed by their blocks: wrapped paragraphs, indented
// bullets, shaded monospaced formulas, and bold step headings with a body.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/wifi-report/pkg/types"
)

// Layout constants in millimetres and points.
const (
	bodyFont     = "Helvetica"
	monoFont     = "Courier"
	bodySize     = 11
	lineHeight   = 6
	bulletIndent = 10

	headerTitleSize    = 15
	headerSubtitleSize = 10
	headerLineHeight   = 10
	headerGap          = 10

	footerOffset     = -15
	footerSize       = 8
	footerLineHeight = 10

	titleSize       = 12
	titleGap        = 4
	formulaHeight   = 8
	formulaGap      = 2
	stepLabelHeight = 8
	stepGap         = 2
	finalGap        = 4
)

var (
	titleFill   = [3]int{200, 220, 255}
	formulaFill = [3]int{240, 240, 240}
)

// Builder draws a report onto an fpdf document. A Builder renders one
// report; create a new one for each build.
type Builder struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	report *types.Report
}

// New creates a Builder with page geometry, compression and metadata taken
// from cfg.
func New(cfg types.ReportConfig) *Builder {
	pdf := fpdf.New(cfg.Page.Orientation, "mm", cfg.Page.Size, "")
	pdf.SetCompression(cfg.Compress)
	pdf.SetCatalogSort(true)
	if !cfg.Info.Date.IsZero() {
		pdf.SetCreationDate(cfg.Info.Date)
		pdf.SetModificationDate(cfg.Info.Date)
	}

	// Core fonts are cp1252 encoded; every string handed to fpdf goes through tr.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAuthor(tr(cfg.Info.Author), false)
	pdf.SetCreator(tr(cfg.Info.Creator), false)
	pdf.SetSubject(tr(cfg.Info.Subject), false)
	pdf.SetKeywords(tr(strings.Join(cfg.Info.Keywords, ", ")), false)

	b := &Builder{pdf: pdf, tr: tr}
	pdf.SetHeaderFunc(b.header)
	pdf.SetFooterFunc(b.footer)
	return b
}

// Render draws every section of report. It returns the first error the PDF
// engine recorded, such as an unknown page size.
func (b *Builder) Render(report *types.Report) error {
	if err := b.pdf.Error(); err != nil {
		return fmt.Errorf("initializing document: %w", err)
	}
	b.report = report
	b.pdf.SetTitle(b.tr(report.Title), false)
	b.pdf.AddPage()

	for i, sec := range report.Sections {
		b.chapterTitle(i+1, sec.Title)
		for j, blk := range sec.Blocks {
			final := i == len(report.Sections)-1 && j == len(sec.Blocks)-1
			b.block(blk, final)
		}
	}

	if err := b.pdf.Error(); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// PageCount returns the number of pages drawn so far.
func (b *Builder) PageCount() int {
	return b.pdf.PageCount()
}

// WriteTo serializes the document to w. The document is closed afterwards;
// no further drawing is possible.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return 0, fmt.Errorf("serializing report: %w", err)
	}
	return buf.WriteTo(w)
}

func (b *Builder) header() {
	if b.report == nil {
		return
	}
	b.pdf.SetFont(bodyFont, "B", headerTitleSize)
	b.pdf.CellFormat(0, headerLineHeight, b.tr(b.report.Title), "", 1, "C", false, 0, "")
	b.pdf.SetFont(bodyFont, "I", headerSubtitleSize)
	b.pdf.CellFormat(0, headerLineHeight, b.tr(b.report.Subtitle), "", 1, "C", false, 0, "")
	b.pdf.Ln(headerGap)
}

func (b *Builder) footer() {
	b.pdf.SetY(footerOffset)
	b.pdf.SetFont(bodyFont, "I", footerSize)
	b.pdf.CellFormat(0, footerLineHeight, fmt.Sprintf("Page %d", b.pdf.PageNo()), "", 0, "C", false, 0, "")
}

func (b *Builder) chapterTitle(num int, label string) {
	b.pdf.SetFont(bodyFont, "B", titleSize)
	b.pdf.SetFillColor(titleFill[0], titleFill[1], titleFill[2])
	b.pdf.CellFormat(0, lineHeight, b.tr(fmt.Sprintf("%d. %s", num, label)), "", 1, "L", true, 0, "")
	b.pdf.Ln(titleGap)
}

func (b *Builder) chapterBody(text string) {
	b.pdf.SetFont(bodyFont, "", bodySize)
	b.pdf.MultiCell(0, lineHeight, b.tr(text), "", "J", false)
	b.pdf.Ln(-1)
}

func (b *Builder) bulletPoint(text string) {
	b.pdf.SetFont(bodyFont, "", bodySize)
	b.pdf.Cell(bulletIndent, 0, "")
	b.pdf.CellFormat(0, lineHeight, b.tr("- "+text), "", 1, "", false, 0, "")
}

func (b *Builder) formula(text string) {
	b.pdf.SetFont(monoFont, "", bodySize)
	b.pdf.SetFillColor(formulaFill[0], formulaFill[1], formulaFill[2])
	b.pdf.MultiCell(0, formulaHeight, b.tr(text), "", "L", true)
	b.pdf.Ln(formulaGap)
	b.pdf.SetFont(bodyFont, "", bodySize)
}

func (b *Builder) step(label, text string, final bool) {
	b.pdf.SetFont(bodyFont, "B", bodySize)
	b.pdf.CellFormat(0, stepLabelHeight, b.tr(label), "", 1, "", false, 0, "")
	b.pdf.SetFont(bodyFont, "", bodySize)
	if text != "" {
		b.pdf.MultiCell(0, lineHeight, b.tr(text), "", "J", false)
	}
	if final {
		b.pdf.Ln(finalGap)
		return
	}
	b.pdf.Ln(stepGap)
}

func (b *Builder) block(blk types.Block, final bool) {
	switch blk.Kind {
	case types.BlockParagraph:
		b.chapterBody(blk.Text)
	case types.BlockBullet:
		b.bulletPoint(blk.Text)
	case types.BlockFormula:
		b.formula(blk.Text)
	case types.BlockStep:
		b.step(blk.Label, blk.Text, final)
	case types.BlockSpacer:
		b.pdf.Ln(-1)
	}
}

// Generate renders report with cfg and writes the PDF to w. It returns the
// page count.
func Generate(report *types.Report, cfg types.ReportConfig, w io.Writer) (int, error) {
	b := New(cfg)
	if err := b.Render(report); err != nil {
		return 0, err
	}
	pages := b.PageCount()
	if _, err := b.WriteTo(w); err != nil {
		return 0, err
	}
	return pages, nil
}

// WriteFile renders report in memory and writes it to cfg.OutputPath. Write
// failures are returned wrapped with the destination path.
func WriteFile(report *types.Report, cfg types.ReportConfig) (int, error) {
	var buf bytes.Buffer
	pages, err := Generate(report, cfg, &buf)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("writing report %s: %w", cfg.OutputPath, err)
	}
	return pages, nil
}
