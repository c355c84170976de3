// Package pack provides read access to an on-disk resource pack: namespace
// and resource discovery driven by the resource kind registry, document
// loading, and structural linting. It is the file-system collaborator around
// the pure resource and worldgen packages.
package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"craftpack/resource"
	"craftpack/schemas/worldgen"
)

// Pack reads one resource pack laid out as
// `<root>/<assets|data>/<namespace>/<directory>/<name>.<extension>`.
type Pack struct {
	fsys fs.FS
}

// New wraps an fs.FS rooted at the pack directory. Tests supply fstest.MapFS.
func New(fsys fs.FS) *Pack {
	return &Pack{fsys: fsys}
}

// Open returns a Pack reading from the directory at root.
func Open(root string) *Pack {
	return New(os.DirFS(root))
}

// ResourcePath joins the path conventions of kind with a namespace and
// resource name, relative to the pack root.
func ResourcePath(kind resource.Kind, namespace, name string) string {
	return path.Join(string(kind.Category()), namespace, kind.Directory(), name+"."+kind.Extension())
}

// Namespaces lists the namespace directories under the given category root.
// A pack without that root has no namespaces, which is not an error.
func (p *Pack) Namespaces(category resource.Category) ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, string(category))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("pack: list namespaces under %s: %w", category, err)
	}
	namespaces := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		namespaces = append(namespaces, entry.Name())
	}
	return namespaces, nil
}

// Resources lists the names of all resources of the given kind inside a
// namespace, extension-stripped and sorted. Names keep any sub-directory
// prefix (e.g. `cave/lush`). Files whose extension does not match the kind
// are skipped; a missing directory yields an empty list.
func (p *Pack) Resources(kind resource.Kind, namespace string) ([]string, error) {
	dir := path.Join(string(kind.Category()), namespace, kind.Directory())
	suffix := "." + kind.Extension()

	var names []string
	err := fs.WalkDir(p.fsys, dir, func(pth string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(pth, suffix) {
			return nil
		}
		rel := strings.TrimPrefix(pth, dir+"/")
		names = append(names, strings.TrimSuffix(rel, suffix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pack: walk %s: %w", dir, err)
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the raw bytes of one resource file.
func (p *Pack) Load(kind resource.Kind, namespace, name string) ([]byte, error) {
	pth := ResourcePath(kind, namespace, name)
	data, err := fs.ReadFile(p.fsys, pth)
	if err != nil {
		return nil, fmt.Errorf("pack: load %s: %w", pth, err)
	}
	return data, nil
}

// Biome loads and parses one worldgen biome document. Parse failures keep
// their typed detail; match with errors.As against *worldgen.ParseError.
func (p *Pack) Biome(namespace, name string) (*worldgen.CustomBiome, error) {
	data, err := p.Load(resource.KindWorldGenBiome, namespace, name)
	if err != nil {
		return nil, err
	}
	biome, err := worldgen.ParseCustomBiome(data)
	if err != nil {
		return nil, fmt.Errorf("pack: parse %s: %w", ResourcePath(resource.KindWorldGenBiome, namespace, name), err)
	}
	return biome, nil
}
