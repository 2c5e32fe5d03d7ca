package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/packplan/packplan/builder"
	"github.com/packplan/packplan/config"
	"github.com/packplan/packplan/exports"
	"github.com/packplan/packplan/logger"
	"github.com/packplan/packplan/manifest"
	buildplan "github.com/packplan/packplan/plan"
	"github.com/spf13/cobra"
)

var (
	entry       = ""
	typesOnly   = false
	exclude     = []string{}
	bundlerArgs = ""
	output      = ""
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "plan [dir]",
	Short: "Compile a package manifest into a build plan file",
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

		conf, err := config.LoadDir(dir)
		if err != nil {
			return err
		}
		// command line flags win over both config files
		if entry != "" {
			conf.Entry = entry
		}
		if typesOnly {
			conf.TypesOnly = true
		}
		if bundlerArgs != "" {
			conf.BundlerArgs = bundlerArgs
		}
		conf.Exclude = append(conf.Exclude, exclude...)

		if _, err := builder.SplitArgs(conf.BundlerArgs); err != nil {
			return fmt.Errorf("bad bundler args %q: %v", conf.BundlerArgs, err)
		}

		paths := exports.BuildExportPaths(m)
		kept := exports.NewPaths()
		for _, subpath := range paths.Subpaths() {
			if conf.Excluded(subpath) {
				logger.Debug("excluding subpath", "subpath", subpath)
				continue
			}
			cond, _ := paths.Get(subpath)
			kept.Set(subpath, cond)
		}

		entryOverride := ""
		if conf.Entry != "" {
			entryOverride = conf.Entry
			if !filepath.IsAbs(entryOverride) {
				entryOverride = filepath.Join(dir, entryOverride)
			}
		}

		var locator buildplan.SourceLocator = buildplan.DirLocator{Dir: dir}
		if len(conf.Overrides) > 0 {
			locator = config.OverrideLocator{Dir: dir, Overrides: conf.Overrides, Next: locator}
		}

		entries := buildplan.Expand(kept, buildplan.Options{
			Entry:     entryOverride,
			TypesOnly: conf.TypesOnly,
			Locator:   locator,
		})
		jobs := builder.Assemble(m, entries, dir, entryOverride, conf.BundlerArgs)

		logger.Info("compiled plan", "package", m.Name,
			"subpaths", kept.Len(), "jobs", len(jobs))

		if output == "-" {
			return builder.RenderPlanfile(os.Stdout, m.Name, jobs, dir)
		}
		name := output
		if name == "" {
			name = conf.Planfile
		}
		if name == "" {
			name = "Planfile"
		}
		return builder.WritePlanfile(m.Name, jobs, dir, name)
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVar(&entry, "entry", entry, "Build a single explicit entry file")
	flags.BoolVar(&typesOnly, "types-only", typesOnly, "Plan declaration jobs only")
	flags.StringArrayVarP(&exclude, "exclude", "e", exclude, "Subpaths to exclude")
	flags.StringVar(&bundlerArgs, "bundler-args", bundlerArgs, "Extra bundler flags embedded per job")
	flags.StringVarP(&output, "output", "o", output, "Plan file name, '-' for stdout")
}
