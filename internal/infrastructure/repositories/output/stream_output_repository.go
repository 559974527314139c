package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

// document is the structured shape of a result for JSON and YAML consumers.
type document struct {
	HasChanges   bool     `json:"has_changes"  yaml:"has_changes"`
	Ecosystem    string   `json:"ecosystem"    yaml:"ecosystem"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

func newDocument(result entities.DetectionResult) document {
	dependencies := result.Dependencies
	if dependencies == nil {
		dependencies = []string{}
	}
	return document{
		HasChanges:   result.HasChanges,
		Ecosystem:    result.Ecosystem.String(),
		Dependencies: dependencies,
	}
}

// TextOutputRepository prints the same key=value entries the GitHub output
// file receives.
type TextOutputRepository struct {
	writer io.Writer
}

// NewTextOutputRepository creates a key=value emitter.
func NewTextOutputRepository(writer io.Writer) repositories.OutputRepository {
	return &TextOutputRepository{writer: writer}
}

func (o *TextOutputRepository) Format() string { return entities.OutputText }

func (o *TextOutputRepository) Emit(result entities.DetectionResult) error {
	var sb strings.Builder
	for _, entry := range outputEntries(result) {
		writeEntry(&sb, entry.key, entry.value)
	}
	if _, err := io.WriteString(o.writer, sb.String()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// JSONOutputRepository prints the result as an indented JSON object.
type JSONOutputRepository struct {
	writer io.Writer
}

// NewJSONOutputRepository creates a JSON emitter.
func NewJSONOutputRepository(writer io.Writer) repositories.OutputRepository {
	return &JSONOutputRepository{writer: writer}
}

func (o *JSONOutputRepository) Format() string { return entities.OutputJSON }

func (o *JSONOutputRepository) Emit(result entities.DetectionResult) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}
	return nil
}

// YAMLOutputRepository prints the result as a YAML document.
type YAMLOutputRepository struct {
	writer io.Writer
}

// NewYAMLOutputRepository creates a YAML emitter.
func NewYAMLOutputRepository(writer io.Writer) repositories.OutputRepository {
	return &YAMLOutputRepository{writer: writer}
}

func (o *YAMLOutputRepository) Format() string { return entities.OutputYAML }

func (o *YAMLOutputRepository) Emit(result entities.DetectionResult) error {
	encoder := yaml.NewEncoder(o.writer)
	encoder.SetIndent(2) //nolint:mnd // two-space YAML
	if err := encoder.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("failed to encode result as YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML result: %w", err)
	}
	return nil
}
