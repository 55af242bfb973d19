package docbuilder

import "strings"

// Recorder is a Builder that keeps everything it receives, in order.
// Renderer tests use it to assert on layout without opening an archive.
type Recorder struct {
	Page       PageSetup
	PageSet    bool
	Paragraphs []Paragraph
	Tables     []TableSpec
	Breaks     int
	// Order lists the kind of each call: "p", "t" or "br".
	Order []string
}

var _ Builder = (*Recorder)(nil)

func (r *Recorder) SetPage(setup PageSetup) {
	r.Page = setup
	r.PageSet = true
}

func (r *Recorder) Paragraph(p Paragraph) {
	r.Paragraphs = append(r.Paragraphs, p)
	r.Order = append(r.Order, "p")
}

func (r *Recorder) Table(t TableSpec) {
	r.Tables = append(r.Tables, t)
	r.Order = append(r.Order, "t")
}

func (r *Recorder) PageBreak() {
	r.Breaks++
	r.Order = append(r.Order, "br")
}

// Text flattens all recorded paragraph runs, including those inside
// table cells, into one newline separated string.
func (r *Recorder) Text() string {
	var b strings.Builder
	writePara := func(p Paragraph) {
		for _, run := range p.Runs {
			b.WriteString(run.Text)
		}
		b.WriteByte('\n')
	}
	for _, p := range r.Paragraphs {
		writePara(p)
	}
	for _, t := range r.Tables {
		for _, row := range t.Rows {
			for _, c := range row.Cells {
				for _, p := range c.Paragraphs {
					writePara(p)
				}
			}
		}
	}
	return b.String()
}

// Contains reports whether any recorded run contains s.
func (r *Recorder) Contains(s string) bool {
	return strings.Contains(r.Text(), s)
}
