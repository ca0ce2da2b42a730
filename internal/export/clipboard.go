package export

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrNothingToExport = errors.New("nothing to export")

// Clipboard receives plain text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unavailable on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy writes doc as plain text to cb.
func Copy(cb Clipboard, doc Document) error {
	if doc.Text == "" && len(doc.Categories) == 0 {
		return ErrNothingToExport
	}
	return cb.WriteAll(FormatPlainText(doc))
}
