package fsassets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSaveProfile_ReencodesAsJPEG(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir, filepath.Join(dir, "default.jpeg"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.SaveProfile(context.Background(), 7, pngBytes(t)); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "7.jpeg"))
	if err != nil {
		t.Fatalf("expected 7.jpeg on disk: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("stored file is not a jpeg: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestSaveProfile_RejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir, filepath.Join(dir, "default.jpeg"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.SaveProfile(context.Background(), 7, []byte("not an image")); err == nil {
		t.Fatal("expected decode error for garbage input")
	}
	if _, err := os.Stat(filepath.Join(dir, "7.jpeg")); err == nil {
		t.Fatal("no file should be written on decode failure")
	}
}

func TestProfilePath_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.jpeg")
	store, err := NewImageStore(dir, defaultPath)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if got := store.ProfilePath(99); got != defaultPath {
		t.Fatalf("expected default path, got %q", got)
	}

	if err := store.SaveProfile(context.Background(), 99, pngBytes(t)); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if got := store.ProfilePath(99); got != filepath.Join(dir, "99.jpeg") {
		t.Fatalf("expected pet photo path, got %q", got)
	}
}

func TestAudioStore_SaveWav(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAudioStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.SaveWav(context.Background(), "1_20260820-143005", []byte("RIFFdata")); err != nil {
		t.Fatalf("save wav: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "1_20260820-143005.wav"))
	if err != nil {
		t.Fatalf("expected wav on disk: %v", err)
	}
	if string(raw) != "RIFFdata" {
		t.Fatalf("wav bytes mangled: %q", raw)
	}

	if err := store.SaveWav(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatal("expected error for blank audio id")
	}
}
