package manifest

// TemplateSet is an ordered list of files produced from one set of templates.
type TemplateSet struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Files       []FileEntry `yaml:"files" json:"files"`
}

// FileEntry maps one generated file to its template.
type FileEntry struct {
	Role     string `yaml:"role" json:"role"`         // e.g., "header", "probe", "loader"
	Path     string `yaml:"path" json:"path"`         // text/template filename pattern, e.g., "{{.Name}}.h"
	Template string `yaml:"template" json:"template"` // template body file within the set
}

// Roles returns the file roles in output order. Unknown selectors passed
// to "templates show" are answered with this list.
func (s *TemplateSet) Roles() []string {
	roles := make([]string, len(s.Files))
	for i, f := range s.Files {
		roles[i] = f.Role
	}
	return roles
}
