package docbuilder

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// twipsPerMM converts millimetres to twentieths of a point.
const twipsPerMM = 1440.0 / 25.4

const defaultFont = "Times New Roman"
const defaultSizePt = 12.0

// DOCX writes WordprocessingML. All content is buffered; Save emits the
// archive in a fixed member order with zeroed timestamps so the same
// content always produces the same bytes.
type DOCX struct {
	body bytes.Buffer
	page PageSetup
}

var _ Builder = (*DOCX)(nil)

// NewDOCX returns an empty document on an A4 portrait page.
func NewDOCX() *DOCX {
	return &DOCX{}
}

func (d *DOCX) SetPage(setup PageSetup) {
	d.page = setup
}

func twips(mm float64) int {
	return int(mm*twipsPerMM + 0.5)
}

// halfPoints converts a point size to the half-point unit w:sz uses.
func halfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}

func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (d *DOCX) writeRun(r Run) {
	d.body.WriteString("<w:r><w:rPr>")
	font := r.Font
	if font == "" {
		font = defaultFont
	}
	fmt.Fprintf(&d.body, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, escape(font), escape(font), escape(font))
	if r.Bold {
		d.body.WriteString("<w:b/><w:bCs/>")
	}
	if r.Italic {
		d.body.WriteString("<w:i/><w:iCs/>")
	}
	if r.Underline {
		d.body.WriteString(`<w:u w:val="single"/>`)
	}
	size := r.SizePt
	if size == 0 {
		size = defaultSizePt
	}
	fmt.Fprintf(&d.body, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, halfPoints(size), halfPoints(size))
	d.body.WriteString("</w:rPr>")
	// newlines become explicit line breaks
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			d.body.WriteString("<w:br/>")
		}
		fmt.Fprintf(&d.body, `<w:t xml:space="preserve">%s</w:t>`, escape(line))
	}
	d.body.WriteString("</w:r>")
}

func (d *DOCX) writeParagraph(p Paragraph) {
	d.body.WriteString("<w:p><w:pPr>")
	if before, after := p.SpaceBeforePt, p.SpaceAfterPt; before != 0 || after != 0 || p.LineSpacing != 0 {
		fmt.Fprintf(&d.body, `<w:spacing w:before="%d" w:after="%d"`, int(before*20+0.5), int(after*20+0.5))
		if p.LineSpacing != 0 {
			fmt.Fprintf(&d.body, ` w:line="%d" w:lineRule="auto"`, int(p.LineSpacing*240+0.5))
		}
		d.body.WriteString("/>")
	} else {
		d.body.WriteString(`<w:spacing w:before="0" w:after="0"/>`)
	}
	if p.IndentMM != 0 {
		fmt.Fprintf(&d.body, `<w:ind w:firstLine="%d"/>`, twips(p.IndentMM))
	}
	if p.Align != "" && p.Align != AlignLeft {
		fmt.Fprintf(&d.body, `<w:jc w:val="%s"/>`, p.Align)
	}
	d.body.WriteString("</w:pPr>")
	for _, r := range p.Runs {
		d.writeRun(r)
	}
	d.body.WriteString("</w:p>")
}

func (d *DOCX) Paragraph(p Paragraph) {
	d.writeParagraph(p)
}

func (d *DOCX) PageBreak() {
	d.body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

func (d *DOCX) writeCell(c TableCell, widthTwips int) {
	d.body.WriteString("<w:tc><w:tcPr>")
	fmt.Fprintf(&d.body, `<w:tcW w:w="%d" w:type="dxa"/>`, widthTwips)
	if c.Span > 1 {
		fmt.Fprintf(&d.body, `<w:gridSpan w:val="%d"/>`, c.Span)
	}
	if c.MergeDown {
		d.body.WriteString(`<w:vMerge w:val="restart"/>`)
	} else if c.MergeWith {
		d.body.WriteString(`<w:vMerge/>`)
	}
	if c.Vertical {
		d.body.WriteString(`<w:textDirection w:val="btLr"/>`)
	}
	if c.VAlign != "" {
		fmt.Fprintf(&d.body, `<w:vAlign w:val="%s"/>`, c.VAlign)
	}
	d.body.WriteString("</w:tcPr>")
	if len(c.Paragraphs) == 0 {
		// a cell must contain at least one paragraph
		d.writeParagraph(Paragraph{})
	}
	for _, p := range c.Paragraphs {
		d.writeParagraph(p)
	}
	d.body.WriteString("</w:tc>")
}

func (d *DOCX) Table(t TableSpec) {
	d.body.WriteString("<w:tbl><w:tblPr>")
	d.body.WriteString(`<w:tblLayout w:type="fixed"/>`)
	if t.Borders {
		d.body.WriteString("<w:tblBorders>")
		for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
			fmt.Fprintf(&d.body, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="000000"/>`, side)
		}
		d.body.WriteString("</w:tblBorders>")
	}
	if t.CellMarginMM != 0 {
		m := twips(t.CellMarginMM)
		d.body.WriteString("<w:tblCellMar>")
		for _, side := range []string{"top", "left", "bottom", "right"} {
			fmt.Fprintf(&d.body, `<w:%s w:w="%d" w:type="dxa"/>`, side, m)
		}
		d.body.WriteString("</w:tblCellMar>")
	}
	d.body.WriteString("</w:tblPr><w:tblGrid>")
	widths := make([]int, len(t.ColWidthsMM))
	for i, w := range t.ColWidthsMM {
		widths[i] = twips(w)
		fmt.Fprintf(&d.body, `<w:gridCol w:w="%d"/>`, widths[i])
	}
	d.body.WriteString("</w:tblGrid>")
	for _, row := range t.Rows {
		d.body.WriteString("<w:tr>")
		if row.HeightMM != 0 {
			rule := "atLeast"
			if row.Exact {
				rule = "exact"
			}
			fmt.Fprintf(&d.body, `<w:trPr><w:trHeight w:val="%d" w:hRule="%s"/></w:trPr>`, twips(row.HeightMM), rule)
		}
		col := 0
		for _, c := range row.Cells {
			span := c.Span
			if span < 1 {
				span = 1
			}
			w := 0
			for i := col; i < col+span && i < len(widths); i++ {
				w += widths[i]
			}
			d.writeCell(c, w)
			col += span
		}
		d.body.WriteString("</w:tr>")
	}
	d.body.WriteString("</w:tbl>")
}

func (d *DOCX) sectPr() string {
	p := d.page
	if p.WidthMM == 0 {
		p.WidthMM, p.HeightMM = 210, 297
	}
	w, h := twips(p.WidthMM), twips(p.HeightMM)
	orient := "portrait"
	if p.Landscape {
		w, h = h, w
		orient = "landscape"
	}
	margin := p.MarginMM
	if margin == 0 {
		margin = 20
	}
	top, bottom, left, right := margin, margin, margin, margin
	if p.MarginTopMM != 0 {
		top = p.MarginTopMM
	}
	if p.MarginBottomMM != 0 {
		bottom = p.MarginBottomMM
	}
	if p.MarginLeftMM != 0 {
		left = p.MarginLeftMM
	}
	if p.MarginRightMM != 0 {
		right = p.MarginRightMM
	}
	return fmt.Sprintf(`<w:sectPr><w:pgSz w:w="%d" w:h="%d" w:orient="%s"/>`+
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>`,
		w, h, orient, twips(top), twips(right), twips(bottom), twips(left))
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:before="0" w:after="0"/></w:pPr></w:pPrDefault></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style></w:styles>`

// Save writes the finished archive. The document can no longer be
// appended to after saving.
func (d *DOCX) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		d.body.String() + d.sectPr() + "</w:body></w:document>"
	members := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", doc},
	}
	for _, m := range members {
		// fixed header keeps the archive byte-stable across runs
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: m.name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("create %s: %w", m.name, err)
		}
		if _, err := fw.Write([]byte(m.data)); err != nil {
			return fmt.Errorf("write %s: %w", m.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
