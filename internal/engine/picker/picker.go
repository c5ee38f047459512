// Package picker shows native dialogs for choosing texture packs.
//
// The functions block until the dialog closes, so callers run them off the
// render thread through texture.PackRequest.
package picker

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// PackArchive asks for a zipped texture pack, starting in dir if set.
// Returns "" when the user cancels.
func PackArchive(dir string) (string, error) {
	b := dialog.File().
		Filter("Texture packs", "zip").
		Filter("All Files", "*").
		Title("Open Texture Pack")
	if dir != "" {
		b = b.SetStartDir(dir)
	}
	return cancelled(b.Load())
}

// PackFolder asks for an unpacked texture pack directory.
// Returns "" when the user cancels.
func PackFolder(dir string) (string, error) {
	b := dialog.Directory().Title("Open Texture Pack Folder")
	if dir != "" {
		b = b.SetStartDir(dir)
	}
	return cancelled(b.Browse())
}

// ForPack returns a dialog for replacing the texture pack at current, opened
// in current's directory. folder selects PackFolder over PackArchive.
func ForPack(current string, folder bool) func() (string, error) {
	var dir string
	if current != "" {
		dir = filepath.Dir(current)
	}
	if folder {
		return func() (string, error) { return PackFolder(dir) }
	}
	return func() (string, error) { return PackArchive(dir) }
}

func cancelled(path string, err error) (string, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	return path, err
}
