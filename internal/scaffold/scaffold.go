package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Options control where and how an application is generated.
type Options struct {
	ParentDir string             // directory the application directory is created in; "." if empty
	Unchecked bool               // skip identifier validation of the name
	Log       logrus.FieldLogger // debug progress; discarded if nil
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	AppName   string
	OutputDir string
	Files     []string // in template-set order: header, probe, loader
}

// Generate creates <ParentDir>/<req.Name> and writes every file of the
// template set into it. The directory must not exist beforehand. Rendering
// happens before the directory is created, so request and template errors
// leave nothing on disk. A write failure part way leaves earlier files in
// place.
func Generate(req *Request, opts Options) (*Result, error) {
	if err := req.Validate(opts.Unchecked); err != nil {
		return nil, err
	}

	files, err := Render(req)
	if err != nil {
		return nil, err
	}

	log := opts.Log
	if log == nil {
		log = discardLogger()
	}

	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	outputDir := filepath.Join(parent, req.Name)

	// Mkdir is create-if-absent; a concurrent run for the same name loses here.
	if err := os.Mkdir(outputDir, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, outputDir)
		}
		return nil, &WriteError{Op: "create directory", Path: outputDir, Err: err}
	}
	log.WithFields(logrus.Fields{"app": req.Name, "path": outputDir}).Debug("created application directory")

	result := &Result{
		AppName:   req.Name,
		OutputDir: outputDir,
	}

	for _, f := range files {
		outPath := filepath.Join(outputDir, f.Name)
		if err := writeNewFile(outPath, f.Content); err != nil {
			return nil, &WriteError{Op: "write", Path: outPath, Err: err}
		}
		log.WithFields(logrus.Fields{
			"app":   req.Name,
			"role":  f.Role,
			"path":  outPath,
			"bytes": len(f.Content),
		}).Debug("wrote file")

		result.Files = append(result.Files, f.Name)
	}

	return result, nil
}

// writeNewFile writes data to a file that must not already exist.
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatResult writes the confirmation listing for a successful generation.
func FormatResult(w io.Writer, result *Result) {
	fmt.Fprintf(w, "Created application '%s' with the following files:\n", result.AppName)
	for _, f := range result.Files {
		fmt.Fprintf(w, " - %s\n", f)
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
