package manifest

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse decodes manifest YAML without schema validation.
func Parse(data []byte) (*TemplateSet, error) {
	var set TemplateSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &set, nil
}

// Load validates manifest YAML against the schema, decodes it, and checks
// that roles and filename patterns are unique within the set.
func Load(data []byte) (*TemplateSet, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid template set manifest: %s", result.Summary())
	}

	set, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := checkUnique(set); err != nil {
		return nil, err
	}
	return set, nil
}

// checkUnique rejects sets where two entries share a role or a filename pattern.
func checkUnique(set *TemplateSet) error {
	roles := make(map[string]bool, len(set.Files))
	paths := make(map[string]bool, len(set.Files))
	for _, f := range set.Files {
		if roles[f.Role] {
			return fmt.Errorf("template set %q: duplicate role %q", set.Name, f.Role)
		}
		roles[f.Role] = true

		key := strings.ReplaceAll(f.Path, " ", "")
		if paths[key] {
			return fmt.Errorf("template set %q: duplicate path %q", set.Name, f.Path)
		}
		paths[key] = true
	}
	return nil
}
