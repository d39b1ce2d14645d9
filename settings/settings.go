// Package settings holds the user-adjustable editor preferences, loaded
// from a TOML file. The curve engine reads the default interpolation count
// and the control-point move scaler from here; the drag transform reads the
// grid configuration.
package settings

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings are the editor preferences. Zero values are replaced by
// defaults on load.
type Settings struct {
	InterpolationPoints int     `toml:"interpolation_points"`
	MoveScaler          float64 `toml:"control_point_move_scaler"`
	GridSnap            bool    `toml:"grid_snap"`
	GridSnapSubs        bool    `toml:"grid_snap_subdivisions"`
	GridSpacingX        float64 `toml:"grid_spacing_x"`
	GridSpacingZ        float64 `toml:"grid_spacing_z"`
	GridSubDivisions    int     `toml:"grid_subdivisions"`
	AutosaveInterval    int     `toml:"autosave_interval_seconds"`
}

// Default returns the editor defaults used when no preferences file exists.
func Default() Settings {
	return Settings{
		InterpolationPoints: 10,
		MoveScaler:          0.5,
		GridSpacingX:        2,
		GridSpacingZ:        2,
		GridSubDivisions:    1,
		AutosaveInterval:    600,
	}
}

// Load reads preferences from a TOML file. Keys absent from the file keep
// their default value.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Default(), fmt.Errorf("loading editor settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Validate rejects preference values the editor cannot work with.
func (s Settings) Validate() error {
	if s.InterpolationPoints < 1 {
		return fmt.Errorf("interpolation_points must be at least 1, got %d", s.InterpolationPoints)
	}
	if s.MoveScaler <= 0 {
		return fmt.Errorf("control_point_move_scaler must be positive, got %g", s.MoveScaler)
	}
	if s.GridSpacingX <= 0 || s.GridSpacingZ <= 0 {
		return fmt.Errorf("grid spacing must be positive, got (%g,%g)", s.GridSpacingX, s.GridSpacingZ)
	}
	if s.GridSubDivisions < 0 {
		return fmt.Errorf("grid_subdivisions must not be negative, got %d", s.GridSubDivisions)
	}
	return nil
}
