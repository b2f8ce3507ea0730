// Package gate decides whether a path is a recognized preprocessor source
// file. The check runs before any scanning; rejected files never reach the
// tokenizer.
package gate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the recognized PL/I source file extensions.
var DefaultExtensions = []string{".pli", ".pp"}

// RejectedError reports a path whose extension is not recognized.
type RejectedError struct {
	Path     string
	Accepted []string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("unsupported input file %q: only %s files are accepted",
		e.Path, strings.Join(e.Accepted, ", "))
}

// Gate accepts source files by extension.
type Gate struct {
	exts     map[string]bool
	accepted []string
}

// New creates a Gate recognizing the given extensions (leading dot,
// case-insensitive). With no arguments it recognizes DefaultExtensions.
func New(extensions ...string) *Gate {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	g := &Gate{exts: make(map[string]bool, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !g.exts[ext] {
			g.exts[ext] = true
			g.accepted = append(g.accepted, ext)
		}
	}
	return g
}

// Check returns a *RejectedError if path does not carry a recognized source
// extension, nil otherwise.
func (g *Gate) Check(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !g.exts[ext] {
		return &RejectedError{Path: path, Accepted: g.accepted}
	}
	return nil
}
