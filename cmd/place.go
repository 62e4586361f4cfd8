package cmd

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"

	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/picking"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/philipparndt/roomplan/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	placeType    string
	placeSurface string
	placePoint   string
	placePNG     string
	placeWidth   int
	placeHeight  int
	placeJSON    bool
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Place one fixture at a point of a surface and print where it lands",
	Long: `Place aims a picking ray at the given point of a surface, places a fixture
of the given type where the ray hits, and prints the constrained position.
With --png the resulting room is rendered to an image.`,
	Example: `  roomplan place --type ceilingLight --point 4.99,0,3.99
  roomplan place --type receptacle120 --surface back --point 1,0.5,-4 --png plan.png`,
	Args: cobra.NoArgs,
	RunE: runPlace,
}

func init() {
	placeCmd.Flags().StringVarP(&placeType, "type", "t", "", "fixture type id (see 'roomplan catalog')")
	placeCmd.Flags().StringVarP(&placeSurface, "surface", "s", "floor", "floor, back, front, left or right")
	placeCmd.Flags().StringVarP(&placePoint, "point", "p", "", "point on the surface as x,y,z")
	placeCmd.Flags().StringVar(&placePNG, "png", "", "write a rendering of the room to this file")
	placeCmd.Flags().IntVar(&placeWidth, "png-width", 800, "rendering width in pixels")
	placeCmd.Flags().IntVar(&placeHeight, "png-height", 600, "rendering height in pixels")
	placeCmd.Flags().BoolVar(&placeJSON, "json", false, "print the placed fixture as JSON")
	_ = placeCmd.MarkFlagRequired("type")
	_ = placeCmd.MarkFlagRequired("point")
	rootCmd.AddCommand(placeCmd)
}

// surfaceTolerance is how far --point may sit off the surface plane
const surfaceTolerance = 1e-6

// placement is the JSON form of a placed fixture
type placement struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Surface     string     `json:"surface"`
	Position    [3]float64 `json:"position"`
	Orientation [3]float64 `json:"orientation"`
}

func runPlace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := roomFromFlags(cmd)
	if err != nil {
		return err
	}
	point, err := geometry.ParseVector3(placePoint)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	t, err := cat.Get(placeType)
	if err != nil {
		return err
	}

	target, ok := room.NewRegistry(r).ByName(placeSurface)
	if !ok {
		return fmt.Errorf("unknown surface %q", placeSurface)
	}
	if !target.Contains(point, surfaceTolerance) {
		return fmt.Errorf("point %s is not on the %s", point, placeSurface)
	}

	// Aim at the point from one meter inside the room
	inward := target.InwardNormal()
	ray := geometry.NewRay(point.AddScaled(inward, 1), inward.Negate())
	caster := picking.RayFunc(func(x, y float64) geometry.Ray { return ray })

	session, err := planner.New(cat, r, planner.WithTool(t.ID), planner.WithLogger(newLogger(cmd, cfg)))
	if err != nil {
		return err
	}

	hit, ok := picking.Resolve(0, 0, caster, room.NewRegistry(r).Pickable())
	if !ok || session.PointerDown(0, 0, caster) != planner.ActionPlaced {
		return fmt.Errorf("point %s is not on the %s", point, placeSurface)
	}
	surface := hit.Target.(room.Surface)
	f, _ := session.Selected()

	out := cmd.OutOrStdout()
	if placeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(placement{
			ID:          f.ID.String(),
			Type:        f.TypeID,
			Surface:     surface.Name,
			Position:    [3]float64{f.Position.X, f.Position.Y, f.Position.Z},
			Orientation: [3]float64{f.Orientation.X, f.Orientation.Y, f.Orientation.Z},
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Placed %s on %s\n", t.Name, surface.Name)
		fmt.Fprintf(out, "  Room: %s\n", r)
		fmt.Fprintf(out, "  Hit: %s\n", hit.Point)
		fmt.Fprintf(out, "  Position: %s\n", f.Position)
		fmt.Fprintf(out, "  Orientation: %s\n", f.Orientation)
	}

	if placePNG == "" {
		return nil
	}
	return writePNG(placePNG, session, placeWidth, placeHeight)
}

func writePNG(path string, session *planner.Session, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	cam := viewer.NewCamera(session.Room())
	cam.SetViewport(float64(width), float64(height))
	img := viewer.Paint(cam, viewer.SceneOf(session), width, height)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
