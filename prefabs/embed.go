package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var specsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load returns a spec file by prefabs-relative name. A file on disk under
// prefabs/ wins over the embedded copy so specs can be edited live.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

// LoadScript returns a boot/timeline script, disk copy winning over the
// embedded one.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

// Names returns the embedded spec file names.
func Names() ([]string, error) {
	entries, err := specsFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("prefabs: read embedded specs: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func cleanSpecPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
