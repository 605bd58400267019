// Package fscache persiste los reportes de inspección como documentos
// JSON en disco, uno por key. No hay invalidación: el artefacto vive
// hasta que la ventana (que es parte de la key) queda atrás.
package fscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pet-cry-monitor/internal/domain/cries"

	"github.com/google/uuid"
)

type ReportStore struct {
	dir string
}

func NewReportStore(dir string) (*ReportStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fscache: create dir: %w", err)
	}
	return &ReportStore{dir: dir}, nil
}

func (s *ReportStore) Get(ctx context.Context, key string) (*cries.Report, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("fscache: read %s: %w", key, err)
	}

	var r cries.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("fscache: decode %s: %w", key, err)
	}
	return &r, nil
}

func (s *ReportStore) Put(ctx context.Context, key string, r *cries.Report) error {
	raw, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("fscache: encode %s: %w", key, err)
	}

	// Escritura temp + rename: dos inspecciones concurrentes del mismo
	// window pueden escribir ambas; gana la última y el resultado es el
	// mismo documento.
	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", key, uuid.NewString()))
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("fscache: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("fscache: replace %s: %w", key, err)
	}
	return nil
}

func (s *ReportStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
