package dataset

import (
	"io/fs"
	"log/slog"
	"os"
	gopath "path"
	"path/filepath"
	"sort"
)

// Dataset maps category names to their decoded reference documents.
// Categories that failed to load are simply absent; lookups against them
// degrade to "unavailable" at the resolver layer instead of failing.
// A Dataset is built once at startup and read-only afterwards.
type Dataset struct {
	categories map[string]*Value
}

// New returns an empty Dataset.
func New() *Dataset {
	return &Dataset{categories: map[string]*Value{}}
}

// Put registers a category document. Intended for loaders and tests;
// callers must not mutate a Dataset once it is in use.
func (d *Dataset) Put(category string, v *Value) {
	d.categories[category] = v
}

// Category returns the document for a category, if it loaded.
func (d *Dataset) Category(name string) (*Value, bool) {
	v, ok := d.categories[name]
	return v, ok
}

// Available reports whether a category loaded successfully.
func (d *Dataset) Available(name string) bool {
	_, ok := d.categories[name]
	return ok
}

// Categories returns the loaded category names, sorted.
func (d *Dataset) Categories() []string {
	names := make([]string, 0, len(d.categories))
	for name := range d.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir reads one <category>.json per requested category from dir.
// A missing or unparseable document logs a warning and leaves the category
// unavailable; loading never fails as a whole.
func LoadDir(dir string, categories []string, logger *slog.Logger) *Dataset {
	d := New()
	for _, cat := range categories {
		path := filepath.Join(dir, cat+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("reference category unavailable", "category", cat, "path", path, "error", err)
			continue
		}
		addDocument(d, cat, data, logger)
	}
	return d
}

// LoadFS is LoadDir over an fs.FS, used for the embedded built-in datasets.
func LoadFS(fsys fs.FS, root string, categories []string, logger *slog.Logger) *Dataset {
	d := New()
	for _, cat := range categories {
		path := gopath.Join(root, cat+".json")
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			logger.Warn("reference category unavailable", "category", cat, "path", path, "error", err)
			continue
		}
		addDocument(d, cat, data, logger)
	}
	return d
}

func addDocument(d *Dataset, cat string, data []byte, logger *slog.Logger) {
	v, err := Decode(data)
	if err != nil {
		logger.Warn("reference category unparseable", "category", cat, "error", err)
		return
	}
	d.Put(cat, v)
	logger.Debug("reference category loaded", "category", cat)
}
