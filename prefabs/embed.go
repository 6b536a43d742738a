package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a playthrough script. A file path on disk wins over the
// embedded scripts so ad-hoc scripts can be run without rebuilding.
func LoadScript(name string) ([]byte, error) {
	if strings.HasSuffix(name, ".tengo") {
		if data, err := os.ReadFile(name); err == nil {
			return data, nil
		}
	}
	return ScriptsFS.ReadFile(cleanScriptPath(name))
}

// ScriptNames lists the embedded scripts without extension.
func ScriptNames() []string {
	entries, err := ScriptsFS.ReadDir("scripts")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	return out
}

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a config file, preferring the copy under ./prefabs on disk.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// DiskDir is where on-disk overrides of the embedded files live.
const DiskDir = "prefabs"

// DiskPath is where the on-disk override of a config file lives.
func DiskPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
		}
	}
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "scripts/" + s
}
