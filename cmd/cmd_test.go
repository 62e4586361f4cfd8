package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of c and its children so commands can be
// executed repeatedly within one test binary
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogListsEveryType(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	for _, ft := range catalog.DefaultTypes {
		assert.Contains(t, out, ft.ID)
		assert.Contains(t, out, ft.Name)
	}
	assert.Contains(t, out, "Mount: wall at 0.35 m")
}

func TestSurfacesUsesFlags(t *testing.T) {
	out, err := run(t, "surfaces", "--width", "4", "--depth", "6", "--height", "2.5")
	require.NoError(t, err)

	assert.Contains(t, out, "Room: 4x6x2.5")
	assert.Contains(t, out, "center (0.000, 1.250, -3.000) normal (0.000, 0.000, 1.000) size 4.00 x 2.50")
	assert.Contains(t, out, "floor")
	assert.Contains(t, out, "right")
}

func TestSurfacesReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomplan.toml")
	require.NoError(t, os.WriteFile(path, []byte("[room]\nwidth = 6.0\n"), 0o644))

	out, err := run(t, "surfaces", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Room: 6x8x3")

	// Flags override the file
	out, err = run(t, "surfaces", "--config", path, "--width", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Room: 7x8x3")
}

func TestSurfacesRejectsInvalidRoom(t *testing.T) {
	_, err := run(t, "surfaces", "--width", "-1")
	assert.ErrorIs(t, err, room.ErrInvalidDimension)
}

func TestPlaceCeilingLightInCorner(t *testing.T) {
	out, err := run(t, "place", "--type", "ceilingLight", "--point", "4.99,0,3.99")
	require.NoError(t, err)

	assert.Contains(t, out, "Placed Ceiling Light on floor")
	assert.Contains(t, out, "Position: (4.900, 2.800, 3.900)")
}

func TestPlaceReceptacleOnBackWall(t *testing.T) {
	out, err := run(t, "place", "--type", "receptacle120", "--surface", "back", "--point", "1,0.5,-4", "--json")
	require.NoError(t, err)

	var got placement
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "receptacle120", got.Type)
	assert.Equal(t, "back", got.Surface)
	assert.InDelta(t, 1.0, got.Position[0], 1e-9)
	assert.InDelta(t, 0.35, got.Position[1], 1e-9)
	assert.InDelta(t, -3.94, got.Position[2], 1e-9)
	assert.Equal(t, [3]float64{0, 0, 1}, got.Orientation)
	assert.NotEmpty(t, got.ID)
}

func TestPlaceWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.png")
	_, err := run(t, "place", "--type", "usbOutlet", "--surface", "left", "--point", "-5,1,0",
		"--png", path, "--png-width", "200", "--png-height", "100")
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown type", []string{"place", "--type", "toaster", "--point", "0,0,0"}, catalog.ErrUnknownTypeID},
		{"unknown surface", []string{"place", "--type", "usbOutlet", "--surface", "ceiling", "--point", "0,0,0"}, nil},
		{"bad point", []string{"place", "--type", "usbOutlet", "--point", "1,2"}, nil},
		{"missing point", []string{"place", "--type", "usbOutlet"}, nil},
		{"point off the wall", []string{"place", "--type", "usbOutlet", "--surface", "back", "--point", "20,1,-4"}, nil},
		{"point above the floor", []string{"place", "--type", "usbOutlet", "--point", "0,1,0"}, nil},
		{"invalid room", []string{"place", "--type", "usbOutlet", "--point", "0,0,0", "--depth", "0"}, room.ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
