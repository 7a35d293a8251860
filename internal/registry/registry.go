// Package registry manages song exporters by format name.
package registry

import (
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/simonhull/ultrastar/internal/types"
)

// Exporter is the interface all export formats implement.
type Exporter interface {
	// Export writes song to w in the exporter's format.
	Export(w io.Writer, song *types.Song) error

	// Extension is the conventional file extension, including the dot.
	Extension() string
}

var (
	mu        sync.RWMutex
	exporters = make(map[string]Exporter)
)

// Register registers an exporter under a case-insensitive name.
// This is called by format packages during initialization (init functions).
func Register(name string, exporter Exporter) {
	mu.Lock()
	defer mu.Unlock()
	exporters[strings.ToLower(name)] = exporter
}

// Get returns the exporter registered under name.
// Returns nil if no exporter is registered for the name.
func Get(name string) Exporter {
	mu.RLock()
	defer mu.RUnlock()
	return exporters[strings.ToLower(name)]
}

// Names returns the registered format names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(exporters))
}
