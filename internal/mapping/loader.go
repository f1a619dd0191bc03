package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML rule override file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}
}

// ExportTable describes t as a MappingFile. Every rule refers to its
// transform by name, so a table built only from registered transforms
// loads back unchanged.
func ExportTable(t *Table) *MappingFile {
	mf := &MappingFile{Version: "1"}

	for _, r := range t.Rules() {
		def := RuleDef{Category: r.Category, Field: r.Field.String()}
		if r.Transform != nil {
			def.Transform = r.Transform.Name
			def.Description = r.Transform.Description
		}

		mf.Rules = append(mf.Rules, def)
	}

	return mf
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}
