package export

// Font is the typeface family of composed text.
type Font string

const (
	FontSerif     Font = "serif"
	FontSansSerif Font = "sans-serif"
	FontMonospace Font = "monospace"
)

// Alignment is the horizontal alignment of composed text.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

var (
	fonts      = []Font{FontSerif, FontSansSerif, FontMonospace}
	alignments = []Alignment{AlignLeft, AlignCenter, AlignRight}
)

var fontLabels = map[Font]string{
	FontSerif:     "Serif",
	FontSansSerif: "Sans-Serif",
	FontMonospace: "Monospace",
}

var alignLabels = map[Alignment]string{
	AlignLeft:   "Left",
	AlignCenter: "Center",
	AlignRight:  "Right",
}

// Formatting controls how composed text is laid out on screen and in the
// exported PDF. The zero value is serif, left aligned.
type Formatting struct {
	Font      Font
	Alignment Alignment
}

func (f Font) normalize() Font {
	if _, ok := fontLabels[f]; ok {
		return f
	}
	return FontSerif
}

func (a Alignment) normalize() Alignment {
	if _, ok := alignLabels[a]; ok {
		return a
	}
	return AlignLeft
}

func (f Font) Label() string      { return fontLabels[f.normalize()] }
func (a Alignment) Label() string { return alignLabels[a.normalize()] }

func (f Font) Next() Font           { return cycle(fonts, f.normalize()) }
func (a Alignment) Next() Alignment { return cycle(alignments, a.normalize()) }

func cycle[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// pdfFamily maps the font to a core PDF font.
func (f Font) pdfFamily() string {
	switch f.normalize() {
	case FontSansSerif:
		return "Helvetica"
	case FontMonospace:
		return "Courier"
	}
	return "Times"
}

// pdfAlign maps the alignment to an fpdf alignment string.
func (a Alignment) pdfAlign() string {
	switch a.normalize() {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	}
	return "L"
}
