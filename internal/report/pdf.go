package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// Page geometry in millimeters (A4 portrait).
const (
	pdfMargin       = 15
	pdfBottomMargin = 18

	// Line heights per text kind.
	bodyLineH = 5
	codeLineH = 4
)

// rgb is a plain color triple for fpdf's Set*Color calls.
type rgb struct{ r, g, b int }

// Report palette, matching the severity colors SonarQube itself uses.
var (
	headingBlue = rgb{26, 75, 124}
	tableBlue   = rgb{43, 84, 126}
	bodyGray    = rgb{51, 51, 51}
	mutedGray   = rgb{120, 120, 120}
	codeFill    = rgb{245, 245, 245}

	badGreen = rgb{40, 167, 69}
	badRed   = rgb{220, 53, 69}
)

// severityBadge maps each severity to its badge fill color and whether the
// badge text is white (dark fills) or black (light fills).
var severityBadge = map[model.Severity]struct {
	fill      rgb
	whiteText bool
}{
	model.SeverityBlocker:  {rgb{220, 53, 69}, true},
	model.SeverityCritical: {rgb{233, 79, 55}, true},
	model.SeverityMajor:    {rgb{255, 165, 0}, false},
	model.SeverityMinor:    {rgb{255, 193, 7}, false},
	model.SeverityInfo:     {rgb{40, 167, 69}, true},
}

// PDFWriter renders the report as a paginated PDF document.
//
// Layout contract: the overview renders as a table; each issue renders as
// one block (badge, location, message, rule explanation, code examples,
// source excerpt). A page break is emitted whenever the next block does not
// fit in the remaining vertical space, so blocks never straddle a page
// boundary; a block taller than a whole page starts on its own page and
// flows. Output is deterministic for a given report: the document's
// creation date is pinned to the report's generation timestamp.
type PDFWriter struct {
	baseWriter
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer) *PDFWriter {
	return &PDFWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the report and writes the PDF bytes to the destination.
func (w *PDFWriter) Write(report *model.Report) (int, error) {
	doc := renderPDF(report)
	if err := doc.Error(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

// WritePDFFile renders the report and writes it to path, creating parent
// directories as needed. The file is created with 0600: reports list code
// weaknesses and are not for every local user to read. Filesystem failures
// surface as PDFWriteError.
func WritePDFFile(report *model.Report, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &PDFWriteError{Path: path, Err: err}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return &PDFWriteError{Path: path, Err: err}
	}

	if _, err := NewPDFWriter(f).Write(report); err != nil {
		f.Close() //nolint:errcheck,gosec // Write already failed
		return &PDFWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &PDFWriteError{Path: path, Err: err}
	}
	return nil
}

// pdfRenderer carries the document and its derived geometry through the
// rendering pass.
type pdfRenderer struct {
	doc *fpdf.Fpdf

	// contentW is the usable width between the margins.
	contentW float64

	// breakAt is the Y coordinate past which content needs a new page.
	breakAt float64
}

// renderPDF builds the complete document for the report. Exposed to the
// package tests so they can inspect the page count without parsing PDF.
func renderPDF(report *model.Report) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("SonarQube Analysis Report", true)
	doc.SetSubject("Code quality report for "+report.ProjectKey, true)
	doc.SetCreator("sonarpdf", true)

	// Pin the embedded dates so identical reports produce identical bytes.
	doc.SetCreationDate(report.GeneratedAt.UTC())
	doc.SetModificationDate(report.GeneratedAt.UTC())

	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfBottomMargin)

	doc.SetFooterFunc(func() {
		doc.SetY(-pdfBottomMargin + 4)
		doc.SetFont("Helvetica", "I", 8)
		setText(doc, mutedGray)
		doc.CellFormat(0, 8, fmt.Sprintf("Page %d  |  %s", doc.PageNo(), report.ProjectKey),
			"", 0, "C", false, 0, "")
	})

	pageW, pageH := doc.GetPageSize()
	r := &pdfRenderer{
		doc:      doc,
		contentW: pageW - 2*pdfMargin,
		breakAt:  pageH - pdfBottomMargin,
	}

	doc.AddPage()
	r.title(report)
	r.overview(report)
	r.issues(report)
	return doc
}

func setText(doc *fpdf.Fpdf, c rgb) { doc.SetTextColor(c.r, c.g, c.b) }
func setFill(doc *fpdf.Fpdf, c rgb) { doc.SetFillColor(c.r, c.g, c.b) }

// ensureRoom starts a new page when fewer than h millimeters remain.
func (r *pdfRenderer) ensureRoom(h float64) {
	if r.doc.GetY()+h > r.breakAt {
		r.doc.AddPage()
	}
}

// textLines counts the wrapped lines txt occupies at the given font and
// width. The font must be set the same way rendering will set it, because
// wrapping depends on glyph metrics.
func (r *pdfRenderer) textLines(txt, family, style string, size, width float64) int {
	r.doc.SetFont(family, style, size)
	var n int
	for _, line := range strings.Split(txt, "\n") {
		if line == "" {
			n++
			continue
		}
		n += len(r.doc.SplitText(line, width))
	}
	return n
}

// title renders the report heading and run information.
func (r *pdfRenderer) title(report *model.Report) {
	doc := r.doc

	doc.SetFont("Helvetica", "B", 22)
	setText(doc, headingBlue)
	doc.CellFormat(0, 12, "SonarQube Analysis Report", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	setText(doc, bodyGray)
	doc.CellFormat(0, 8, report.ProjectKey, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	setText(doc, mutedGray)
	doc.CellFormat(0, 6, "Generated on "+report.GeneratedAt.Format("January 2, 2006 at 15:04"),
		"", 1, "C", false, 0, "")
	doc.Ln(6)
}

// overview renders the summary table: quality gate, severity counts, type
// counts, and the requested metrics.
func (r *pdfRenderer) overview(report *model.Report) {
	doc := r.doc
	labelW := r.contentW * 0.7
	valueW := r.contentW - labelW

	header := func(label, value string) {
		doc.SetFont("Helvetica", "B", 11)
		setFill(doc, tableBlue)
		doc.SetTextColor(255, 255, 255)
		doc.CellFormat(labelW, 9, "  "+label, "1", 0, "L", true, 0, "")
		doc.CellFormat(valueW, 9, value, "1", 1, "C", true, 0, "")
	}
	row := func(label, value string) {
		doc.SetFont("Helvetica", "", 10)
		setText(doc, bodyGray)
		doc.SetFillColor(255, 255, 255)
		doc.CellFormat(labelW, 7, "  "+label, "1", 0, "L", false, 0, "")
		doc.CellFormat(valueW, 7, value, "1", 1, "C", false, 0, "")
	}

	header("Overview", "")

	gate := report.Overview.QualityGate
	doc.SetFont("Helvetica", "B", 10)
	if gate.Passed() {
		setText(doc, badGreen)
	} else {
		setText(doc, badRed)
	}
	doc.CellFormat(labelW, 7, "  Quality Gate", "1", 0, "L", false, 0, "")
	doc.CellFormat(valueW, 7, gate.String(), "1", 1, "C", false, 0, "")

	for i := len(model.Severities) - 1; i >= 0; i-- {
		s := model.Severities[i]
		row(s.String()+" Issues", strconv.Itoa(report.Overview.SeverityCounts[s]))
	}
	for _, typ := range model.IssueTypes {
		row(metricLabel(strings.ToLower(typ.String()))+"s", strconv.Itoa(report.Overview.TypeCounts[typ]))
	}
	for _, key := range report.Overview.Metrics.Keys() {
		row(metricLabel(key)+" (metric)", report.Overview.Metrics.Value(key))
	}
	doc.Ln(8)
}

// issues renders the detail blocks, one keep-together block per issue.
func (r *pdfRenderer) issues(report *model.Report) {
	if report.TotalIssues() == 0 {
		return
	}

	doc := r.doc
	r.ensureRoom(20)
	doc.SetFont("Helvetica", "B", 16)
	setText(doc, headingBlue)
	doc.CellFormat(0, 10, "Detailed Issue Analysis", "", 1, "L", false, 0, "")
	doc.Ln(2)

	for i, detail := range report.Issues {
		r.ensureRoom(r.issueHeight(detail))
		r.issueBlock(i+1, detail)
	}
}

// issueHeight estimates the rendered height of an issue block so the block
// can be kept on one page when it fits. The estimate mirrors issueBlock's
// fonts and spacing; it does not need to be exact, only not short.
func (r *pdfRenderer) issueHeight(detail model.IssueDetail) float64 {
	h := 6.0 // issue number line
	h += 9   // badge row
	h += float64(r.textLines(detail.Issue.Message, "Helvetica", "B", 11, r.contentW)) * 6
	h += 11 // location + rule lines
	if detail.WhyText != "" {
		h += 8 + float64(r.textLines(detail.WhyText, "Helvetica", "", 10, r.contentW))*bodyLineH
	}
	if detail.FixText != "" {
		h += 8 + float64(r.textLines(detail.FixText, "Helvetica", "", 10, r.contentW))*bodyLineH
	}
	for _, example := range detail.Examples {
		h += 7 + float64(r.textLines(example.Code, "Courier", "", 8, r.contentW-4))*codeLineH
	}
	if detail.Excerpt != nil {
		h += 8 + float64(r.textLines(formatExcerpt(detail.Excerpt), "Courier", "", 8, r.contentW-4))*codeLineH
	}
	return h + 8 // trailing rule + spacing
}

// issueBlock renders one issue's detail block.
func (r *pdfRenderer) issueBlock(number int, detail model.IssueDetail) {
	doc := r.doc
	issue := detail.Issue

	doc.SetFont("Helvetica", "", 8)
	setText(doc, mutedGray)
	doc.CellFormat(0, 5, fmt.Sprintf("ISSUE #%d", number), "", 1, "L", false, 0, "")

	// Severity badge and type tag.
	badge, ok := severityBadge[issue.Severity]
	if !ok {
		badge.fill = rgb{102, 102, 102}
		badge.whiteText = true
	}
	doc.SetFont("Helvetica", "B", 10)
	setFill(doc, badge.fill)
	if badge.whiteText {
		doc.SetTextColor(255, 255, 255)
	} else {
		doc.SetTextColor(0, 0, 0)
	}
	doc.CellFormat(28, 7, issue.Severity.String(), "", 0, "C", true, 0, "")
	doc.SetFont("Helvetica", "", 10)
	setText(doc, mutedGray)
	doc.CellFormat(0, 7, "  "+issue.Type.String(), "", 1, "L", false, 0, "")
	doc.Ln(1)

	doc.SetFont("Helvetica", "B", 11)
	setText(doc, bodyGray)
	doc.MultiCell(r.contentW, 6, issue.Message, "", "L", false)

	doc.SetFont("Helvetica", "", 9)
	setText(doc, mutedGray)
	location := issue.FilePath()
	if issue.HasLine() {
		location = fmt.Sprintf("%s:%d", location, issue.Line)
	}
	doc.CellFormat(0, 5, location, "", 1, "L", false, 0, "")
	rule := issue.Rule
	if detail.RuleName != "" {
		rule += "  -  " + detail.RuleName
	}
	doc.CellFormat(0, 5, "Rule: "+rule, "", 1, "L", false, 0, "")
	doc.Ln(1)

	if detail.WhyText != "" {
		r.sectionHeading("Why is this an issue?")
		r.bodyText(detail.WhyText)
	}
	if detail.FixText != "" {
		r.sectionHeading("How can I fix it?")
		r.bodyText(detail.FixText)
	}

	for _, example := range detail.Examples {
		doc.SetFont("Helvetica", "B", 10)
		if example.Compliant {
			setText(doc, badGreen)
		} else {
			setText(doc, badRed)
		}
		doc.CellFormat(0, 6, example.Label()+" code example:", "", 1, "L", false, 0, "")
		r.codeBlock(example.Code)
	}

	if detail.Excerpt != nil {
		r.sectionHeading("Source")
		r.codeBlock(formatExcerpt(detail.Excerpt))
	}

	doc.Ln(2)
	doc.SetDrawColor(220, 220, 220)
	doc.Line(pdfMargin, doc.GetY(), pdfMargin+r.contentW, doc.GetY())
	doc.Ln(4)
}

// sectionHeading renders a sub-heading within an issue block.
func (r *pdfRenderer) sectionHeading(text string) {
	r.doc.SetFont("Helvetica", "B", 11)
	setText(r.doc, headingBlue)
	r.doc.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

// bodyText renders a plain-text paragraph block.
func (r *pdfRenderer) bodyText(text string) {
	r.doc.SetFont("Helvetica", "", 10)
	setText(r.doc, bodyGray)
	r.doc.MultiCell(r.contentW, bodyLineH, text, "", "L", false)
	r.doc.Ln(1)
}

// codeBlock renders monospace text on a shaded background.
func (r *pdfRenderer) codeBlock(code string) {
	r.doc.SetFont("Courier", "", 8)
	setText(r.doc, bodyGray)
	setFill(r.doc, codeFill)
	r.doc.MultiCell(r.contentW, codeLineH, code, "", "L", true)
	r.doc.Ln(2)
}
