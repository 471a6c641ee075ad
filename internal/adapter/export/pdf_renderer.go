package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase/interfaces"
	"bakusoq/pkg/format"
)

var ErrPDFFontUnavailable = fmt.Errorf("%w: no UTF-8 font with Japanese glyphs (set PDF_FONT_PATH)", interfaces.ErrRendererUnavailable)

const pdfFontName = "JP"

var pdfColWidths = []float64{70, 20, 25, 30, 35}

// LoadFont reads a TrueType font for PDF export.
func LoadFont(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrPDFFontUnavailable
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFFontUnavailable, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrPDFFontUnavailable, path)
	}
	return b, nil
}

type PDFRenderer struct {
	font []byte
}

var _ interfaces.IEstimateRenderer = (*PDFRenderer)(nil)

// NewPDFRenderer takes the font bytes from LoadFont. Without a font every
// Render fails with ErrPDFFontUnavailable.
func NewPDFRenderer(font []byte) *PDFRenderer {
	return &PDFRenderer{font: font}
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) Extension() string {
	return "pdf"
}

func (r *PDFRenderer) Render(e entities.Estimate) ([]byte, error) {
	if len(r.font) == 0 {
		return nil, ErrPDFFontUnavailable
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddUTF8FontFromBytes(pdfFontName, "", r.font)
	pdf.AddUTF8FontFromBytes(pdfFontName, "B", r.font)
	pdf.AddPage()

	pdf.SetFont(pdfFontName, "B", 16)
	pdf.CellFormat(0, 10, documentTitle, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(pdfFontName, "", 10)
	for _, kv := range headerRows(e) {
		pdf.CellFormat(30, 6, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont(pdfFontName, "B", 12)
	pdf.CellFormat(0, 8, "御見積金額  "+format.Yen(e.Result.Total)+"（税込）", "B", 1, "L", false, 0, "")
	pdf.Ln(4)

	drawRow(pdf, tableHeaders, true)
	for _, g := range e.Result.Groups() {
		pdf.SetFont(pdfFontName, "B", 10)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(sum(pdfColWidths[:4]), 7, g.Category, "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfColWidths[4], 7, format.Amount(g.SubTotal), "1", 1, "R", true, 0, "")
		for _, it := range g.Items {
			drawRow(pdf, []string{
				it.Name,
				it.Unit,
				format.Quantity(it.Quantity),
				format.Amount(it.UnitPrice),
				format.Amount(it.Total),
			}, false)
		}
	}

	pdf.Ln(3)
	pdf.SetFont(pdfFontName, "", 10)
	totalRow(pdf, "小計", e.Result.SubTotal)
	totalRow(pdf, "消費税(10%)", e.Result.Tax)
	pdf.SetFont(pdfFontName, "B", 11)
	totalRow(pdf, "合計", e.Result.Total)

	if e.Result.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont(pdfFontName, "", 9)
		pdf.MultiCell(0, 5, "備考: "+e.Result.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawRow(pdf *gofpdf.Fpdf, cols []string, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(pdfFontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		if header {
			align = "C"
		}
		pdf.CellFormat(pdfColWidths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func totalRow(pdf *gofpdf.Fpdf, label string, amount int64) {
	pdf.CellFormat(sum(pdfColWidths[:3]), 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColWidths[3], 7, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColWidths[4], 7, format.Yen(amount), "1", 1, "R", false, 0, "")
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
