package text

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if got := source.UnitsPerEm(); got <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", got)
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	if _, err := NewFontSource([]byte("not a font at all")); err == nil {
		t.Error("NewFontSource(garbage) succeeded, want error")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	if !bytes.Equal(source.data, goregular.TTF) {
		t.Error("source shares caller's byte slice")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	if source.Name() == "" {
		t.Error("expected non-empty name")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFontSourceFace(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := source.Face(32)
	if err != nil {
		t.Fatalf("Face(32) failed: %v", err)
	}
	defer func() { _ = face.Close() }()

	adv, ok := face.GlyphAdvance('M')
	if !ok || adv <= 0 {
		t.Errorf("GlyphAdvance('M') = %v, %v; want positive advance", adv, ok)
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	copied := *source //nolint:govet // intentional copy

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	_ = copied.Name()
}
