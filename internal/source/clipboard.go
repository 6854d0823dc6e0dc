package source

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

type clipboardReader interface {
	ReadImage() ([]byte, error)
}

type systemClipboard struct{}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func (systemClipboard) ReadImage() ([]byte, error) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return nil, fmt.Errorf("failed to access clipboard: %w", clipboardErr)
	}
	return clipboard.Read(clipboard.FmtImage), nil
}
