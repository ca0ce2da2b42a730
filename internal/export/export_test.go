package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sant0-9/lexis/internal/generation"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

func sampleExpressions() *generation.CategorizedExpressionResult {
	return &generation.CategorizedExpressionResult{
		Query: "a busy city",
		Metaphors: []generation.Suggestion{
			{Text: "The city is a living circuit board.", Score: 0.8},
			{Text: "The city is a beehive.", Score: 0.5},
		},
		Similes: []generation.Suggestion{
			{Text: "Streets hum like a wire.", Score: 0.725},
		},
	}
}

func TestFormatPlainText(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "expansion",
			doc: FromRanked("Expand", "sadness", &generation.ExpansionResult{
				Query: "sadness",
				Suggestions: []generation.Suggestion{
					{Text: "melancholy", Score: 0.9},
					{Text: "grief", Score: 0.6},
				},
			}),
			want: "Expansions\n- \"melancholy\" (Score: 90.0%)\n- \"grief\" (Score: 60.0%)\n",
		},
		{
			name: "categories skip empty",
			doc:  FromRanked("Expressions", "a busy city", sampleExpressions()),
			want: "Metaphors (은유법)\n" +
				"- \"The city is a living circuit board.\" (Score: 80.0%)\n" +
				"- \"The city is a beehive.\" (Score: 50.0%)\n" +
				"\n" +
				"Similes (직유법)\n" +
				"- \"Streets hum like a wire.\" (Score: 72.5%)\n",
		},
		{
			name: "composition",
			doc: FromComposition(&generation.Composition{
				Prompt: "an old fisherman",
				Form:   "poem",
				Style:  generation.DefaultStyle(),
				Text:   "  The sea was calm.\n",
			}, Formatting{}),
			want: "Poem\n\nThe sea was calm.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPlainText(tt.doc); got != tt.want {
				t.Errorf("FormatPlainText() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{0: "0.0%", 1: "100.0%", 0.9: "90.0%", 0.1234: "12.3%"}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Errorf("FormatScore(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCopy(t *testing.T) {
	cb := &fakeClipboard{}
	doc := FromRanked("Expressions", "a busy city", sampleExpressions())
	if err := Copy(cb, doc); err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	if cb.text != FormatPlainText(doc) {
		t.Errorf("clipboard = %q", cb.text)
	}

	empty := FromRanked("Expressions", "x", &generation.CategorizedExpressionResult{})
	if err := Copy(cb, empty); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("Copy(empty) = %v", err)
	}

	cb.err = errors.New("no display")
	if err := Copy(cb, doc); err == nil {
		t.Error("clipboard error swallowed")
	}
}

func TestWritePDF(t *testing.T) {
	var items []generation.Suggestion
	for i := 0; i < 120; i++ {
		items = append(items, generation.Suggestion{Text: strings.Repeat("a long line of text ", 5), Score: 0.5})
	}
	doc := FromRanked("Expand", "sadness", &generation.ExpansionResult{Suggestions: items})

	var buf bytes.Buffer
	if err := WritePDF(&buf, doc); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
	if bytes.Count(out, []byte("/Type /Page\n")) < 2 {
		t.Error("expected content to span multiple pages")
	}
}

func TestSavePDF(t *testing.T) {
	dir := t.TempDir()
	doc := FromRanked("Expressions", "a busy city", sampleExpressions())

	path, err := SavePDF(dir, doc)
	if err != nil {
		t.Fatalf("SavePDF() error: %v", err)
	}
	if filepath.Base(path) != "literary-expressions.pdf" {
		t.Errorf("path = %s", path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("stat %s: %v", path, err)
	}

	if _, err := SavePDF(dir, Document{}); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("SavePDF(empty) = %v", err)
	}
}

func TestWritePDFUsesFormatting(t *testing.T) {
	comp := &generation.Composition{
		Prompt: "an old fisherman",
		Form:   "short story",
		Style:  generation.DefaultStyle(),
		Text:   "The sea was calm and the old man rowed out past the reef.",
	}

	tests := []struct {
		name     string
		format   Formatting
		wantFont string
	}{
		{name: "default", format: Formatting{}, wantFont: "/BaseFont /Times-Roman"},
		{name: "serif", format: Formatting{Font: FontSerif, Alignment: AlignRight}, wantFont: "/BaseFont /Times-Roman"},
		{name: "monospace", format: Formatting{Font: FontMonospace, Alignment: AlignCenter}, wantFont: "/BaseFont /Courier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePDF(&buf, FromComposition(comp, tt.format)); err != nil {
				t.Fatalf("WritePDF() error: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.wantFont)) {
				t.Errorf("PDF does not use %s", tt.wantFont)
			}
		})
	}
}

func TestFormattingMapping(t *testing.T) {
	tests := []struct {
		format     Formatting
		wantFamily string
		wantAlign  string
		wantNext   Formatting
	}{
		{Formatting{}, "Times", "L", Formatting{FontSansSerif, AlignCenter}},
		{Formatting{FontSerif, AlignLeft}, "Times", "L", Formatting{FontSansSerif, AlignCenter}},
		{Formatting{FontSansSerif, AlignCenter}, "Helvetica", "C", Formatting{FontMonospace, AlignRight}},
		{Formatting{FontMonospace, AlignRight}, "Courier", "R", Formatting{FontSerif, AlignLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.format.Font.Label()+"/"+tt.format.Alignment.Label(), func(t *testing.T) {
			if got := tt.format.Font.pdfFamily(); got != tt.wantFamily {
				t.Errorf("pdfFamily() = %q, want %q", got, tt.wantFamily)
			}
			if got := tt.format.Alignment.pdfAlign(); got != tt.wantAlign {
				t.Errorf("pdfAlign() = %q, want %q", got, tt.wantAlign)
			}
			next := Formatting{tt.format.Font.Next(), tt.format.Alignment.Next()}
			if next != tt.wantNext {
				t.Errorf("Next() = %+v, want %+v", next, tt.wantNext)
			}
		})
	}
}
