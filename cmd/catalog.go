package cmd

import (
	"fmt"

	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the fixture types that can be placed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Fixture Catalog")
		fmt.Fprintln(out, "===============")
		for i, t := range catalog.Default().All() {
			mount := "floor"
			if t.WallMounted {
				mount = "wall"
			}
			fmt.Fprintf(out, "%d. %s (%s)\n", i+1, t.Name, t.ID)
			fmt.Fprintf(out, "   %s\n", t.Detail)
			fmt.Fprintf(out, "   Mount: %s at %.2f m, Shape: %s, Color: #%02x%02x%02x\n",
				mount, t.DefaultHeight, t.Silhouette.Shape, t.Color.R, t.Color.G, t.Color.B)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
