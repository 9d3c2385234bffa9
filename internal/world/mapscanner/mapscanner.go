// Package mapscanner discovers map files in a data directory.
package mapscanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Names of the maps compiled into the binary
const (
	BuiltinMaze    = "maze"
	BuiltinOctagon = "octagon"
)

// MapEntry represents a discoverable map file
type MapEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the JSON file
}

// ScanMapDirectory scans dataPath for map files. Entries are sorted by name.
func ScanMapDirectory(dataPath string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read map directory")
	}

	var maps []MapEntry
	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dataPath, name),
		})
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].Name < maps[j].Name
	})

	return maps, nil
}

// Find returns the entry called name
func Find(maps []MapEntry, name string) (MapEntry, bool) {
	for _, m := range maps {
		if m.Name == name {
			return m, true
		}
	}
	return MapEntry{}, false
}

// Resolve loads the map called name. name may be a path to a JSON file, a
// map in dataPath, or one of the built-in maps "maze" and "octagon". An
// empty name picks the built-in map matching the render mode.
func Resolve(dataPath, name string, wantLoop bool) (*maploader.Map, error) {
	switch name {
	case "":
		if wantLoop {
			return maploader.DefaultLoop(), nil
		}
		return maploader.Default(), nil
	case BuiltinMaze:
		return maploader.Default(), nil
	case BuiltinOctagon:
		return maploader.DefaultLoop(), nil
	}

	if strings.EqualFold(filepath.Ext(name), ".json") {
		return maploader.LoadMap(name)
	}

	maps, err := ScanMapDirectory(dataPath)
	if err != nil {
		return nil, err
	}
	entry, ok := Find(maps, name)
	if !ok {
		return nil, errors.Errorf("map %q not found in %s", name, dataPath)
	}
	return maploader.LoadMap(entry.Path)
}
