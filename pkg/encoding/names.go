// Package encoding decodes legacy text encodings found in texture pack archives.
package encoding

import (
	"archive/zip"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CP437ToUTF8 converts an IBM code page 437 string, the legacy zip name
// encoding, to UTF-8. Returns the input if conversion fails.
func CP437ToUTF8(s string) string {
	out, _, err := transform.String(charmap.CodePage437.NewDecoder(), s)
	if err != nil {
		return s
	}
	return out
}

// ZipName returns the UTF-8 name of a zip entry.
func ZipName(h *zip.FileHeader) string {
	if !h.NonUTF8 && utf8.ValidString(h.Name) {
		return h.Name
	}
	return CP437ToUTF8(h.Name)
}
