package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathedit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeTemp(t, `
interpolation_points = 4
control_point_move_scaler = 0.25
grid_snap = true
`)
	s, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 4, s.InterpolationPoints)
	assert.InDelta(t, 0.25, s.MoveScaler, 1e-9)
	assert.True(t, s.GridSnap)
	// untouched keys keep defaults
	assert.InDelta(t, Default().GridSpacingX, s.GridSpacingX, 1e-9)
	assert.Equal(t, Default().AutosaveInterval, s.AutosaveInterval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeTemp(t, `interpolation_points = 0`)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeTemp(t, `control_point_move_scaler = -1.0`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
