// Package emit defines the contract every backend generator implements and
// the helpers shared between them. An emitter consumes the validated model
// read-only and produces deterministic artifacts: identical models yield
// byte-identical files.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goa.design/facet/diag"
	"goa.design/facet/model"
)

type (
	// File is one generated artifact. Path is relative to the output
	// directory.
	File struct {
		Path    string
		Content []byte
	}

	// Emitter projects the service model into one backend's artifacts.
	Emitter interface {
		// Name identifies the backend on the command line and in
		// diagnostics.
		Name() string
		// SupportsStreaming reports whether the backend can represent lazy
		// sequence returns.
		SupportsStreaming() bool
		// Emit generates the backend's artifacts.
		Emit(svc *model.Service) ([]File, error)
	}
)

// CheckStreaming rejects the model when it contains streaming methods the
// backend cannot represent, naming each offending method.
func CheckStreaming(e Emitter, svc *model.Service) error {
	if e.SupportsStreaming() {
		return nil
	}
	var errs diag.List
	for _, m := range Exposed(svc) {
		if m.Streaming() {
			errs.Add(diag.Errorf(diag.StreamingUnsupportedByBackend,
				diag.Location{Service: svc.Name, Method: m.Name},
				"method %q returns a lazy sequence, which the %s backend cannot represent", m.Name, e.Name()))
		}
	}
	return errs.Err()
}

// Exposed returns the methods a wire backend generates for: everything not
// suppressed, in declaration order.
func Exposed(svc *model.Service) []*model.Method {
	return filter(svc, func(m *model.Method) bool {
		return m.Visibility != model.VisibilitySuppressed
	})
}

// Documented returns the methods documentation backends describe: exposed
// methods that are not hidden, in declaration order.
func Documented(svc *model.Service) []*model.Method {
	return filter(svc, func(m *model.Method) bool {
		return m.Visibility == model.VisibilityNormal
	})
}

// WriteFiles materializes generated artifacts under dir, creating parent
// directories as needed. Paths that escape dir are rejected.
func WriteFiles(dir string, files []File) error {
	for _, f := range files {
		rel := filepath.Clean(f.Path)
		if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
			return fmt.Errorf("generated path %q escapes output directory", f.Path)
		}
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", full, err)
		}
	}
	return nil
}

func filter(svc *model.Service, keep func(*model.Method) bool) []*model.Method {
	out := make([]*model.Method, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
