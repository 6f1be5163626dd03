package browser

import (
	"github.com/atotto/clipboard"

	"linkdir/internal/ports"
)

// SystemClipboard implements ports.Clipboard with the desktop clipboard
type SystemClipboard struct{}

var _ ports.Clipboard = SystemClipboard{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
