package tuning

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed player.yaml
var defaultsFS embed.FS

// read prefers a file on disk so edits take effect without rebuilding, and
// falls back to the embedded default of the same base name.
func read(filename string) ([]byte, error) {
	if data, err := os.ReadFile(filename); err == nil {
		return data, nil
	}
	return defaultsFS.ReadFile(filepath.Base(filename))
}
