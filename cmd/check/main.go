package check

import (
	"path/filepath"

	"github.com/packplan/packplan/builder"
	"github.com/packplan/packplan/exports"
	"github.com/packplan/packplan/logger"
	"github.com/packplan/packplan/manifest"
	buildplan "github.com/packplan/packplan/plan"
	"github.com/packplan/packplan/util"
	"github.com/spf13/cobra"
)

var update = false

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Compare planned outputs against the staleness ledger",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Close()

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		dir, _ = filepath.Abs(dir)

		m, err := manifest.Load(dir)
		if err != nil {
			return err
		}

		paths := exports.BuildExportPaths(m)
		entries := buildplan.Expand(paths, buildplan.Options{
			Locator: buildplan.DirLocator{Dir: dir},
		})
		jobs := builder.Assemble(m, entries, dir, "", "")

		ledger, err := builder.OpenLedger(dir)
		if err != nil {
			return err
		}
		defer ledger.Close()

		missing, stale, fresh := 0, 0, 0
		for _, job := range jobs {
			for _, target := range job.Targets {
				if !util.Exists(target.File) {
					logger.Warn("output missing", "job", job.Name, "file", target.File)
					missing++
					continue
				}
				fp, err := builder.FileFingerprint(target.File)
				if err != nil {
					return err
				}
				if update {
					if err := ledger.Record(target.File, fp); err != nil {
						return err
					}
					fresh++
					continue
				}
				prev, tracked := ledger.Fingerprint(target.File)
				switch {
				case !tracked:
					logger.Warn("output untracked", "job", job.Name, "file", target.File)
					stale++
				case prev != fp:
					logger.Warn("output stale", "job", job.Name, "file", target.File)
					stale++
				default:
					fresh++
				}
			}
		}

		logger.Info("check done", "fresh", fresh, "stale", stale, "missing", missing)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.BoolVarP(&update, "update", "u", update, "Record current fingerprints instead of checking")
}
