package plan

import (
	"fmt"
	"os"
	"strings"

	"fitbot/internal/models"

	"gopkg.in/yaml.v3"
)

// ReadFile reads a plan definition from a YAML file.
func ReadFile(path string) (models.PlanDefinition, error) {
	var def models.PlanDefinition
	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("не удалось прочитать план: %w", err)
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("не удалось разобрать план: %w", err)
	}
	return def, nil
}

// WriteFile writes a plan definition as YAML.
func WriteFile(def models.PlanDefinition, path string) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать план: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("не удалось записать план: %w", err)
	}
	return nil
}

// PendingPath returns the path of the not-yet-applied plan next to path.
func PendingPath(path string) string {
	return strings.TrimSuffix(path, ".yaml") + ".pending.yaml"
}

// ApplyPending promotes the pending plan file over the active one and loads
// it into the store. A missing pending file or an invalid definition leaves
// the active plan intact.
func (s *Store) ApplyPending(path string) (*Snapshot, error) {
	pending := PendingPath(path)
	def, err := ReadFile(pending)
	if err != nil {
		return nil, err
	}
	if err := Validate(def); err != nil {
		return nil, err
	}
	if err := os.Rename(pending, path); err != nil {
		return nil, fmt.Errorf("не удалось применить план: %w", err)
	}
	return s.Load(def)
}

// LoadFile reads a plan file straight into the store.
func (s *Store) LoadFile(path string) (*Snapshot, error) {
	def, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Load(def)
}
