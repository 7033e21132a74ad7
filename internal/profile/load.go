package profile

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Built-in profiles and their reference datasets ship inside the binary so
// a deployment works out of the box; external profile/data directories
// override them.
//
//go:embed builtin
var builtinFS embed.FS

// Parse decodes and validates a profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a profile from an external YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data)
}

// Builtin returns an embedded profile by name.
func Builtin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in profile %q", name)
	}
	return Parse(data)
}

// BuiltinNames lists the embedded profile names, sorted.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// BuiltinDataFS exposes the embedded reference data for a built-in profile
// as a filesystem rooted at the per-profile data directory.
func BuiltinDataFS(name string) (fs.FS, error) {
	sub, err := fs.Sub(builtinFS, "builtin/data/"+name)
	if err != nil {
		return nil, fmt.Errorf("no embedded data for profile %q", name)
	}
	return sub, nil
}
