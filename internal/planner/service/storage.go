package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage раскладывает сгенерированные модели и планы на диске.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) ModelPath(filename string) string {
	return filepath.Join(s.root, filename)
}

func (s *FileStorage) PlanPath(filename string) string {
	return filepath.Join(s.root, filename)
}

func (s *FileStorage) ensureRoot() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("mkdir storage root: %w", err)
	}
	return nil
}

// SaveModel сохраняет GLB под именем house_<timestamp>.glb.
func (s *FileStorage) SaveModel(data []byte) (string, error) {
	if err := s.ensureRoot(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("house_%s.glb", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(s.ModelPath(filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write model: %w", err)
	}
	return filename, nil
}

// SavePlan сохраняет SVG под именем plan_<timestamp>.svg.
func (s *FileStorage) SavePlan(svg string) (string, error) {
	if err := s.ensureRoot(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("plan_%s.svg", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(s.PlanPath(filename), []byte(svg), 0o644); err != nil {
		return "", fmt.Errorf("write plan: %w", err)
	}
	return filename, nil
}
