package texture

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/midgard-sky/internal/engine/event"
)

type packRecorder struct {
	packs []string
	files map[string]string
	order []event.Kind
}

func (r *packRecorder) HandleEvent(e event.Event) {
	r.order = append(r.order, e.Kind())
	switch ev := e.(type) {
	case PackChanged:
		r.packs = append(r.packs, ev.Path)
	case FileChanged:
		data, _ := io.ReadAll(ev.Data)
		r.files[ev.Name] = string(data)
	}
}

func newPackRecorder(bus *event.Bus) *packRecorder {
	r := &packRecorder{files: make(map[string]string)}
	bus.Subscribe(r, event.TexturePackChanged, event.TextureFileChanged)
	return r
}

func TestExtractDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Skybox.PNG"), []byte("sky"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "terrain.png"), []byte("terrain"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	bus := event.NewBus()
	r := newPackRecorder(bus)
	if err := NewExtractor(bus, nil).Extract(dir); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(r.packs) != 1 || r.packs[0] != dir {
		t.Errorf("expected one PackChanged for %s, got %v", dir, r.packs)
	}
	if r.order[0] != event.TexturePackChanged {
		t.Error("PackChanged must precede file events")
	}
	if r.files["skybox.png"] != "sky" {
		t.Errorf("skybox.png not announced with lower-cased name: %v", r.files)
	}
	if len(r.files) != 2 {
		t.Errorf("expected 2 files, got %d", len(r.files))
	}
}

func TestExtractZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range map[string]string{
		"textures/skybox.png": "zipsky",
		"clouds.png":          "clouds",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bus := event.NewBus()
	r := newPackRecorder(bus)
	if err := NewExtractor(bus, nil).Extract(path); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if r.files["skybox.png"] != "zipsky" {
		t.Errorf("nested entry should be announced by base name: %v", r.files)
	}
	if r.files["clouds.png"] != "clouds" {
		t.Errorf("clouds.png missing: %v", r.files)
	}
}

func TestExtractZipLegacyNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "\x81ber.png", NonUTF8: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("legacy")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bus := event.NewBus()
	r := newPackRecorder(bus)
	if err := NewExtractor(bus, nil).Extract(path); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if r.files["über.png"] != "legacy" {
		t.Errorf("code page 437 name not decoded: %v", r.files)
	}
}

func TestExtractMissing(t *testing.T) {
	bus := event.NewBus()
	r := newPackRecorder(bus)
	if err := NewExtractor(bus, nil).Extract(filepath.Join(t.TempDir(), "nope.zip")); err == nil {
		t.Error("expected error for missing pack")
	}
	if len(r.order) != 0 {
		t.Errorf("no events expected for a missing pack, got %v", r.order)
	}
}

func TestExtractInvalidZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	bus := event.NewBus()
	r := newPackRecorder(bus)
	if err := NewExtractor(bus, nil).Extract(path); err == nil {
		t.Error("expected error for invalid zip")
	}
	if len(r.packs) != 0 {
		t.Error("PackChanged must not be raised for an unreadable pack")
	}
}
