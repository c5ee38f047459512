package texture

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/engine/event"
	"github.com/Faultbox/midgard-sky/pkg/encoding"
)

// FileChanged is raised for every file of a texture pack that was (re)loaded.
// Name is the lower-cased base name, e.g. "skybox.png".
type FileChanged struct {
	Name string
	Data io.Reader
}

// Kind implements event.Event.
func (FileChanged) Kind() event.Kind { return event.TextureFileChanged }

// PackChanged is raised before the files of a newly selected pack.
type PackChanged struct {
	Path string
}

// Kind implements event.Event.
func (PackChanged) Kind() event.Kind { return event.TexturePackChanged }

// Extractor loads texture packs and announces their files on the bus.
type Extractor struct {
	bus *event.Bus
	log *zap.Logger
}

// NewExtractor creates an extractor raising events on bus.
func NewExtractor(bus *event.Bus, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{bus: bus, log: log}
}

// Extract loads a pack from a directory or a .zip archive. PackChanged is
// raised first, then FileChanged for each file.
func (x *Extractor) Extract(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("opening texture pack: %w", err)
	}

	x.log.Info("loading texture pack", zap.String("path", path))
	if info.IsDir() {
		return x.extractDir(path)
	}
	return x.extractZip(path)
}

// Announce raises FileChanged for a single file.
func (x *Extractor) Announce(name string, data []byte) {
	x.bus.Raise(FileChanged{
		Name: strings.ToLower(filepath.Base(name)),
		Data: bytes.NewReader(data),
	})
}

func (x *Extractor) extractDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading texture pack %s: %w", dir, err)
	}

	x.bus.Raise(PackChanged{Path: dir})
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			x.log.Warn("skipping texture pack file", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		x.Announce(e.Name(), data)
	}
	return nil
}

func (x *Extractor) extractZip(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("opening texture pack %s: %w", path, err)
	}
	defer r.Close()

	x.bus.Raise(PackChanged{Path: path})
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			x.log.Warn("skipping texture pack entry", zap.String("entry", f.Name), zap.Error(err))
			continue
		}
		x.Announce(encoding.ZipName(&f.FileHeader), data)
	}
	return nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
