package analyzer

import (
	"path"
	"strings"

	"github.com/panbanda/xref/pkg/models"
)

// DefaultExtensions is the ordered extension list tried when a specifier
// does not match a repo map key exactly.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}

// Resolver maps relative import specifiers to concrete repo map keys.
// Bare specifiers (external packages) never resolve. The resolver is a pure
// function of its inputs and performs no I/O.
type Resolver struct {
	extensions []string
}

// ResolverOption is a functional option for configuring Resolver.
type ResolverOption func(*Resolver)

// WithExtensions overrides the extension list tried during resolution.
func WithExtensions(exts []string) ResolverOption {
	return func(r *Resolver) {
		if len(exts) > 0 {
			r.extensions = exts
		}
	}
}

// NewResolver creates a resolver with the default extension list.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps specifier, imported from importer, to a repo map key.
// It returns ("", false) for bare specifiers and for relative specifiers
// whose target is not present in the map (excluded, generated, or ignored).
//
// Candidates are tried in order: the normalized path itself, the path with
// each configured extension appended, then the path treated as a directory
// with index files per extension. The first match wins.
func (r *Resolver) Resolve(repo *models.RepoMap, importer, specifier string) (string, bool) {
	if repo == nil || specifier == "" {
		return "", false
	}
	if !strings.HasPrefix(specifier, ".") && !strings.HasPrefix(specifier, "/") {
		return "", false
	}

	base := path.Dir(normalizePath(importer))
	candidate := path.Join(base, normalizePath(specifier))

	if repo.Has(candidate) {
		return candidate, true
	}
	for _, ext := range r.extensions {
		if withExt := candidate + ext; repo.Has(withExt) {
			return withExt, true
		}
	}
	for _, ext := range r.extensions {
		if index := candidate + "/index" + ext; repo.Has(index) {
			return index, true
		}
	}
	return "", false
}

// normalizePath forces forward slashes so resolution behaves identically on
// every host OS.
func normalizePath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
