// Package fsassets guarda en disco los assets binarios del dominio:
// los wav de llantos y las fotos de perfil normalizadas.
package fsassets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type AudioStore struct {
	dir string
}

func NewAudioStore(dir string) (*AudioStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fsassets: create audio dir: %w", err)
	}
	return &AudioStore{dir: dir}, nil
}

func (s *AudioStore) SaveWav(ctx context.Context, audioID string, data []byte) error {
	if strings.TrimSpace(audioID) == "" {
		return fmt.Errorf("fsassets: audio id required")
	}

	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", audioID, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("fsassets: write wav: %w", err)
	}
	final := filepath.Join(s.dir, audioID+".wav")
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("fsassets: replace wav: %w", err)
	}
	return nil
}

// WavPath devuelve la ruta del asset (exista o no).
func (s *AudioStore) WavPath(audioID string) string {
	return filepath.Join(s.dir, audioID+".wav")
}
