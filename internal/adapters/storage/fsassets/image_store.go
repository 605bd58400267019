package fsassets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	// Se registran los decoders que el servicio acepta por extensión.
	// heif/heic pasan el filtro de extensión pero no tienen decoder puro
	// en Go: caen acá con un error genérico, igual que en el resto de
	// formatos corruptos.
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 90

type ImageStore struct {
	dir         string
	defaultPath string
}

// NewImageStore crea el store de fotos de perfil. defaultPath es el asset
// que se sirve cuando la mascota no tiene foto.
func NewImageStore(dir, defaultPath string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fsassets: create image dir: %w", err)
	}
	return &ImageStore{dir: dir, defaultPath: defaultPath}, nil
}

// SaveProfile decodifica, redibuja a RGB y reencodea como JPEG en la ruta
// determinística "{petID}.jpeg" (temp + rename; la foto anterior se pisa).
func (s *ImageStore) SaveProfile(ctx context.Context, petID int64, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("fsassets: decode image: %w", err)
	}

	// Redibujo a RGBA: aplana paletas/escala de grises a tres canales
	// antes del encode JPEG.
	b := img.Bounds()
	rgb := image.NewRGBA(b)
	draw.Draw(rgb, b, img, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("fsassets: encode jpeg: %w", err)
	}

	tmp := filepath.Join(s.dir, fmt.Sprintf(".%d.%s.tmp", petID, uuid.NewString()))
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("fsassets: write image: %w", err)
	}
	if err := os.Rename(tmp, s.profilePath(petID)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("fsassets: replace image: %w", err)
	}
	return nil
}

// ProfilePath devuelve la foto de la mascota si existe, o el default.
func (s *ImageStore) ProfilePath(petID int64) string {
	p := s.profilePath(petID)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return s.defaultPath
}

func (s *ImageStore) profilePath(petID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.jpeg", petID))
}
