package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const FileName = "literary-expressions.pdf"

const (
	margin     = 20.0
	lineHeight = 6.0
)

// WritePDF renders doc as an A4 portrait document. Content flows onto new
// pages as needed.
func WritePDF(w io.Writer, doc Document) error {
	if doc.Text == "" && len(doc.Categories) == 0 {
		return ErrNothingToExport
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("lexis", true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 41, 59)
	pdf.MultiCell(0, 9, tr(doc.Title), "", "L", false)

	if doc.Query != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(100, 116, 139)
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%q", doc.Query)), "", "L", false)
	}
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(doc.Subtitle), "", "L", false)
	}
	pdf.Ln(4)

	if doc.Text != "" {
		pdf.SetFont(doc.Format.Font.pdfFamily(), "", 12)
		pdf.SetTextColor(15, 23, 42)
		pdf.MultiCell(0, lineHeight+1, tr(doc.Text), "", doc.Format.Alignment.pdfAlign(), false)
	}

	for _, c := range doc.Categories {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(79, 70, 229)
		// Core fonts have no Hangul glyphs.
		pdf.MultiCell(0, 8, tr(c.Title), "", "L", false)
		pdf.Ln(1)

		for _, s := range c.Items {
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(15, 23, 42)
			pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("“%s”", s.Text)), "", "L", false)
			pdf.SetFont("Courier", "", 9)
			pdf.SetTextColor(100, 116, 139)
			pdf.MultiCell(0, 5, "Score: "+FormatScore(s.Score), "", "R", false)
			pdf.Ln(1)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

// SavePDF writes doc to dir/FileName, replacing any existing file, and
// returns the path.
func SavePDF(dir string, doc Document) (string, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := WritePDF(f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// DownloadDir returns ~/Downloads when it exists, otherwise the working
// directory.
func DownloadDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, "Downloads")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
