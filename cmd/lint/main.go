package lint

import (
	"fmt"
	"path/filepath"

	mlint "github.com/packplan/packplan/lint"
	"github.com/packplan/packplan/manifest"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Check a package manifest for structural problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		dir, _ = filepath.Abs(dir)

		path := filepath.Join(dir, manifest.FileName)
		if err := mlint.CheckFile(path); err != nil {
			return err
		}
		fmt.Printf("OK: %s\n", path)
		return nil
	},
}
