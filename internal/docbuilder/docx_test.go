package docbuilder

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveDoc(t *testing.T, build func(d *DOCX)) []byte {
	t.Helper()
	d := NewDOCX()
	build(d)
	var buf bytes.Buffer
	require.NoError(t, d.Save(&buf))
	return buf.Bytes()
}

func readMember(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("member %s not found", name)
	return ""
}

func TestSaveProducesWellFormedArchive(t *testing.T) {
	data := saveDoc(t, func(d *DOCX) {
		d.Paragraph(Text("hello", AlignCenter))
	})
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	}, names)
}

func TestSaveIsDeterministic(t *testing.T) {
	build := func(d *DOCX) {
		d.Paragraph(BoldText("PROVINCE", AlignCenter))
		d.Table(TableSpec{
			ColWidthsMM: []float64{50, 50},
			Borders:     true,
			Rows:        []TableRow{{Cells: []TableCell{Cell("a", AlignLeft), Cell("b", AlignRight)}}},
		})
	}
	first := saveDoc(t, build)
	second := saveDoc(t, build)
	assert.Equal(t, first, second)
}

func TestDocumentContent(t *testing.T) {
	data := saveDoc(t, func(d *DOCX) {
		d.Paragraph(Paragraph{
			Align: AlignCenter,
			Runs:  []Run{{Text: "Tom & Jerry <1>", Bold: true, SizePt: 14}},
		})
		d.PageBreak()
	})
	doc := readMember(t, data, "word/document.xml")
	assert.Contains(t, doc, "Tom &amp; Jerry &lt;1&gt;")
	assert.Contains(t, doc, `<w:jc w:val="center"/>`)
	assert.Contains(t, doc, `<w:sz w:val="28"/>`, "14pt is 28 half points")
	assert.Contains(t, doc, "<w:b/>")
	assert.Contains(t, doc, `<w:br w:type="page"/>`)
	assert.Contains(t, doc, "<w:sectPr>")
}

func TestTableMergesAndWidths(t *testing.T) {
	data := saveDoc(t, func(d *DOCX) {
		d.Table(TableSpec{
			ColWidthsMM: []float64{25.4, 25.4, 25.4},
			Borders:     true,
			Rows: []TableRow{
				{Cells: []TableCell{
					{Span: 2, Paragraphs: []Paragraph{Text("wide", AlignCenter)}},
					{MergeDown: true, Vertical: true, Paragraphs: []Paragraph{Text("tall", AlignCenter)}},
				}},
				{Cells: []TableCell{
					Cell("a", AlignLeft),
					Cell("b", AlignLeft),
					{MergeWith: true},
				}},
			},
		})
	})
	doc := readMember(t, data, "word/document.xml")
	// one inch per column
	assert.Contains(t, doc, `<w:gridCol w:w="1440"/>`)
	assert.Contains(t, doc, `<w:gridSpan w:val="2"/>`)
	assert.Contains(t, doc, `<w:tcW w:w="2880" w:type="dxa"/>`, "spanned cell covers two columns")
	assert.Contains(t, doc, `<w:vMerge w:val="restart"/>`)
	assert.Contains(t, doc, "<w:vMerge/>")
	assert.Contains(t, doc, `<w:textDirection w:val="btLr"/>`)
	// merge continuation cell still carries a paragraph
	assert.Equal(t, 1, strings.Count(doc, "<w:vMerge/>"))
}

func TestPageSetupLandscape(t *testing.T) {
	data := saveDoc(t, func(d *DOCX) {
		d.SetPage(PageSetup{Landscape: true, MarginMM: 10})
		d.Paragraph(Text("x", AlignLeft))
	})
	doc := readMember(t, data, "word/document.xml")
	assert.Contains(t, doc, `w:orient="landscape"`)
	// A4 swapped: 297mm wide
	assert.Contains(t, doc, `<w:pgSz w:w="16838" w:h="11906"`)
}

func TestRecorderCapturesOrderAndText(t *testing.T) {
	var r Recorder
	r.Paragraph(Text("head", AlignCenter))
	r.Table(TableSpec{Rows: []TableRow{{Cells: []TableCell{Cell("inside", AlignLeft)}}}})
	r.PageBreak()
	assert.Equal(t, []string{"p", "t", "br"}, r.Order)
	assert.True(t, r.Contains("head"))
	assert.True(t, r.Contains("inside"))
	assert.Equal(t, 1, r.Breaks)
}
