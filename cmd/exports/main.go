package exports

import (
	"fmt"
	"path/filepath"

	exp "github.com/packplan/packplan/exports"
	"github.com/packplan/packplan/manifest"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "exports [dir]",
	Short: "Print the resolved export map of a package",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		dir, _ = filepath.Abs(dir)

		m, err := manifest.Load(dir)
		if err != nil {
			return err
		}

		paths := exp.BuildExportPaths(m)
		for _, subpath := range paths.Subpaths() {
			fmt.Printf("%s\n", subpath)
			cond, _ := paths.Get(subpath)
			for _, key := range cond.Keys() {
				file, _ := cond.Get(key)
				fmt.Printf("\t%s (%s): %s\n", key, exp.ClassifyFormat(key, file), file)
			}
		}
		return nil
	},
}
