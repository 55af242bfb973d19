// Package docbuilder renders page-oriented documents from a small set of
// layout primitives. Renderers describe paragraphs and tables; a concrete
// builder turns them into an output file. Keeping the description separate
// from the file format lets renderer tests inspect layout without parsing
// the produced archive.
package docbuilder

// Align positions a paragraph or cell content horizontally.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
	AlignBoth   Align = "both"
)

// VAlign positions cell content vertically.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

// Run is a contiguous piece of text sharing one formatting.
type Run struct {
	Text      string
	Bold      bool
	Underline bool
	Italic    bool
	// SizePt is the font size in points; zero means the document default.
	SizePt float64
	// Font overrides the document default font family.
	Font string
}

// Paragraph is a block of runs with spacing and alignment.
type Paragraph struct {
	Align Align
	// SpaceBeforePt and SpaceAfterPt are vertical spacing in points.
	SpaceBeforePt float64
	SpaceAfterPt  float64
	// LineSpacing is a multiple of single spacing; zero means single.
	LineSpacing float64
	// IndentMM indents the first line, in millimetres.
	IndentMM float64
	Runs     []Run
}

// Text builds a single-run paragraph.
func Text(s string, align Align) Paragraph {
	return Paragraph{Align: align, Runs: []Run{{Text: s}}}
}

// BoldText builds a single bold run paragraph.
func BoldText(s string, align Align) Paragraph {
	return Paragraph{Align: align, Runs: []Run{{Text: s, Bold: true}}}
}

// TableCell is one cell of a table row.
type TableCell struct {
	// Span merges this cell with the following Span-1 cells of the row.
	// Zero and one both mean a plain cell.
	Span int
	// MergeDown starts a vertical merge; MergeWith continues one opened
	// by a cell above.
	MergeDown bool
	MergeWith bool
	VAlign    VAlign
	// Vertical rotates the cell text to run bottom-to-top.
	Vertical   bool
	Paragraphs []Paragraph
}

// Cell builds a single-paragraph cell.
func Cell(s string, align Align) TableCell {
	return TableCell{Paragraphs: []Paragraph{Text(s, align)}, VAlign: VAlignCenter}
}

// BoldCell builds a single bold paragraph cell.
func BoldCell(s string, align Align) TableCell {
	return TableCell{Paragraphs: []Paragraph{BoldText(s, align)}, VAlign: VAlignCenter}
}

// TableRow is one row of cells.
type TableRow struct {
	// HeightMM fixes the row height; zero lets it grow with content.
	HeightMM float64
	// Exact forces the height even when content would overflow.
	Exact bool
	Cells []TableCell
}

// TableSpec describes a whole table.
type TableSpec struct {
	// ColWidthsMM gives one width per column, in millimetres.
	ColWidthsMM []float64
	Borders     bool
	// CellMarginMM pads every cell on all four sides.
	CellMarginMM float64
	Rows         []TableRow
}

// PageSetup holds page dimensions and margins in millimetres. The zero
// value means A4 portrait with 20mm margins.
type PageSetup struct {
	WidthMM        float64
	HeightMM       float64
	Landscape      bool
	MarginMM       float64
	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64
}

// Builder receives document content in order. Implementations must
// tolerate any interleaving of calls; SetPage applies to the section
// being written and may be called once before any content.
type Builder interface {
	SetPage(setup PageSetup)
	Paragraph(p Paragraph)
	Table(t TableSpec)
	PageBreak()
}
