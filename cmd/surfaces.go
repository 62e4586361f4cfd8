package cmd

import (
	"fmt"

	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/spf13/cobra"
)

var surfacesCmd = &cobra.Command{
	Use:   "surfaces",
	Short: "Print the floor and walls derived from the room dimensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := roomFromFlags(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Room: %s\n\n", r)
		for _, s := range room.DeriveSurfaces(r) {
			fmt.Fprintf(out, "%-6s %-5s center %s normal %s size %.2f x %.2f\n",
				s.Name, s.Kind, s.Center, s.InwardNormal(), s.Width, s.Height)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(surfacesCmd)
}

// roomFromFlags builds the room from config and flags. Unlike the window,
// which keeps previous values, the CLI rejects invalid dimensions.
func roomFromFlags(cmd *cobra.Command) (room.Room, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return room.Room{}, err
	}
	r, err := room.New(cfg.Room.Width, cfg.Room.Depth, cfg.Room.WallHeight)
	if err != nil {
		return room.Room{}, fmt.Errorf("invalid room: %w", err)
	}
	return r, nil
}
