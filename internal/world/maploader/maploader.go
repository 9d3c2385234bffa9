package maploader

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// SpawnPoint defines where the camera starts and which way it faces
type SpawnPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// MapData represents a map file on disk. Exactly one of Walls or Loop is set.
type MapData struct {
	Name  string       `json:"name"`
	Walls [][4]float64 `json:"walls"` // [x1, y1, x2, y2] per wall
	Loop  [][2]float64 `json:"loop"`  // closed polygon, last vertex joins the first
	Spawn SpawnPoint   `json:"spawn"`
}

// LoadMap loads a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read map file %s", mapPath)
	}

	m, err := ParseMap(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid map file %s", mapPath)
	}
	return m, nil
}

// ParseMap builds a Map from the JSON encoding of MapData
func ParseMap(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, errors.Wrap(err, "failed to parse map")
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, err
	}

	spawn := spawnPose(mapData.Spawn)
	if len(mapData.Loop) > 0 {
		points := make([]geometry.Point, len(mapData.Loop))
		for i, p := range mapData.Loop {
			points[i] = geometry.Point{X: p[0], Y: p[1]}
		}
		return NewLoopMap(mapData.Name, points, spawn), nil
	}

	walls := make([]geometry.Segment, len(mapData.Walls))
	for i, w := range mapData.Walls {
		walls[i] = geometry.Segment{
			From: geometry.Point{X: w[0], Y: w[1]},
			To:   geometry.Point{X: w[2], Y: w[3]},
		}
	}
	return NewWallMap(mapData.Name, walls, spawn), nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if len(data.Walls) == 0 && len(data.Loop) == 0 {
		return errors.New("map has neither walls nor a loop")
	}

	if len(data.Walls) > 0 && len(data.Loop) > 0 {
		return errors.New("map must define walls or a loop, not both")
	}

	if len(data.Loop) > 0 && len(data.Loop) < 3 {
		return errors.Errorf("loop needs at least 3 points, got %d", len(data.Loop))
	}

	for i, w := range data.Walls {
		if !finite(w[:]...) {
			return errors.Errorf("wall %d has a non-finite coordinate", i)
		}
	}

	for i, p := range data.Loop {
		if !finite(p[:]...) {
			return errors.Errorf("loop point %d has a non-finite coordinate", i)
		}
	}

	if !finite(data.Spawn.X, data.Spawn.Y, data.Spawn.Heading) {
		return errors.New("spawn has a non-finite coordinate")
	}

	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
