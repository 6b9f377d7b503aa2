package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/scope-labs/mkbpf/internal/manifest"
)

//go:embed templates
var scaffoldFS embed.FS

const (
	templatesDir    = "templates/bpf"
	manifestFile    = "templateset.yaml"
	templateOptions = "missingkey=error"
)

// compiledSet is the embedded template set with every template parsed.
type compiledSet struct {
	set    *manifest.TemplateSet
	paths  []*template.Template
	bodies []*template.Template
}

var (
	compiled     *compiledSet
	compiledOnce sync.Once
	compiledErr  error
)

// RenderedFile is one generated file held in memory.
type RenderedFile struct {
	Role    string
	Name    string // relative to the application directory, e.g., "hello.bpf.c"
	Content []byte
}

// loadTemplateSet validates the embedded manifest and parses its templates once.
func loadTemplateSet() (*compiledSet, error) {
	compiledOnce.Do(func() {
		compiled, compiledErr = compileTemplateSet(scaffoldFS, templatesDir)
	})
	return compiled, compiledErr
}

func compileTemplateSet(fsys fs.FS, dir string) (*compiledSet, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading template set manifest: %w", err)
	}

	set, err := manifest.Load(data)
	if err != nil {
		return nil, err
	}

	cs := &compiledSet{set: set}
	for _, f := range set.Files {
		pathTmpl, err := template.New(f.Role + "-path").Option(templateOptions).Parse(f.Path)
		if err != nil {
			return nil, fmt.Errorf("parsing path pattern %q: %w", f.Path, err)
		}

		body, err := fs.ReadFile(fsys, path.Join(dir, f.Template))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", f.Template, err)
		}
		bodyTmpl, err := template.New(f.Template).Option(templateOptions).Parse(string(body))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", f.Template, err)
		}

		cs.paths = append(cs.paths, pathTmpl)
		cs.bodies = append(cs.bodies, bodyTmpl)
	}
	return cs, nil
}

// TemplateSet returns a copy of the embedded template set definition.
func TemplateSet() (*manifest.TemplateSet, error) {
	cs, err := loadTemplateSet()
	if err != nil {
		return nil, err
	}
	cp := *cs.set
	cp.Files = append([]manifest.FileEntry(nil), cs.set.Files...)
	return &cp, nil
}

// Render produces every file of the template set for req, in set order,
// without touching disk. The request is not validated.
func Render(req *Request) ([]RenderedFile, error) {
	cs, err := loadTemplateSet()
	if err != nil {
		return nil, err
	}
	return cs.render(req)
}

func (cs *compiledSet) render(req *Request) ([]RenderedFile, error) {
	files := make([]RenderedFile, 0, len(cs.set.Files))
	for i, f := range cs.set.Files {
		var name bytes.Buffer
		if err := cs.paths[i].Execute(&name, req); err != nil {
			return nil, fmt.Errorf("rendering path pattern %q: %w", f.Path, err)
		}

		var body bytes.Buffer
		if err := cs.bodies[i].Execute(&body, req); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", f.Template, err)
		}

		files = append(files, RenderedFile{
			Role:    f.Role,
			Name:    name.String(),
			Content: body.Bytes(),
		})
	}
	return files, nil
}

// RenderFile renders a single file selected by role ("probe") or by its
// rendered filename ("hello.bpf.c").
func RenderFile(req *Request, selector string) (*RenderedFile, error) {
	cs, err := loadTemplateSet()
	if err != nil {
		return nil, err
	}
	files, err := cs.render(req)
	if err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].Role == selector || files[i].Name == selector {
			return &files[i], nil
		}
	}
	return nil, fmt.Errorf("no template file matches %q (roles: %s)", selector, strings.Join(cs.set.Roles(), ", "))
}
