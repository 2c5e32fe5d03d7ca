package upload

import (
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/packplan/packplan/builder"
	"github.com/packplan/packplan/exports"
	"github.com/packplan/packplan/logger"
	"github.com/packplan/packplan/manifest"
	buildplan "github.com/packplan/packplan/plan"
	"github.com/packplan/packplan/util"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "upload <dir> <s3-url>",
	Short: "Upload planned build artifacts to object storage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Close()

		dir, _ := filepath.Abs(args[0])
		dstBase := args[1]

		m, err := manifest.Load(dir)
		if err != nil {
			return err
		}

		dstURL := util.GetS3URL(dstBase)
		if dstURL == nil {
			return fmt.Errorf("destination must be an s3+http(s) URL: %s", dstBase)
		}
		mc, err := util.GetS3Client(dstURL)
		if err != nil {
			return err
		}
		bucket, prefix := util.SplitS3Path(dstURL)

		paths := exports.BuildExportPaths(m)
		entries := buildplan.Expand(paths, buildplan.Options{
			Locator: buildplan.DirLocator{Dir: dir},
		})
		jobs := builder.Assemble(m, entries, dir, "", "")

		uploaded, skipped := 0, 0
		for _, job := range jobs {
			files := []string{}
			for _, target := range job.Targets {
				files = append(files, target.File)
			}
			if job.Declaration != "" {
				files = append(files, job.Declaration)
			}
			for _, file := range files {
				if !util.Exists(file) {
					logger.AddSummaryWarning("artifact missing, not uploaded",
						"job", job.Name, "file", file)
					continue
				}
				rel, err := filepath.Rel(dir, file)
				if err != nil {
					rel = filepath.Base(file)
				}
				key := filepath.Join(prefix, m.Name, rel)

				stats, err := mc.StatObject(cmd.Context(), bucket, key, minio.GetObjectOptions{})
				if err == nil && uint64(stats.Size) == util.FileSize(file) {
					logger.Debug("unchanged", "key", key)
					skipped++
					continue
				}

				if err := util.UploadFile(cmd.Context(), mc, bucket, key, file); err != nil {
					return fmt.Errorf("upload %s: %v", key, err)
				}
				logger.Info("uploaded", "key", key, "size", util.FileSize(file))
				uploaded++
			}
		}

		logger.Info("upload done", "uploaded", uploaded, "skipped", skipped)
		return nil
	},
}
