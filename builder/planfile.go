// Package builder assembles expanded build jobs into a rendered plan file
// and tracks output staleness between runs.
package builder

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/packplan/packplan/logger"
	"github.com/packplan/packplan/manifest"
	"github.com/packplan/packplan/plan"
)

// Job is one renderable unit of the plan file: a source input, its output
// artifacts, and the optional declaration output.
type Job struct {
	Name        string
	Subpath     string
	Variant     string
	Source      string
	Targets     []plan.Target
	Declaration string
	Externals   []string
	ArgLine     string
}

var planFile string = `
# build plan: {{.Package}}

{{range .Jobs}}
job {{.Name}}:
{{- if .Source }}
	source:
		"{{ .Source }}"
{{- end}}
	outputs:
		{{range $index, $t := .Targets -}}
		{{- if $index }},
		{{ end -}}
		{{ $t.Format }} "{{- $t.File -}}"
		{{- end}}
{{- if .Declaration }}
	types:
		"{{ .Declaration }}"
{{- end}}
{{- if .Externals }}
	external:
		{{range $index, $e := .Externals -}}
		{{- if $index }},
		{{ end -}}
		"{{- $e -}}"
		{{- end}}
{{- end}}
{{- if .ArgLine }}
	args:
		"{{ .ArgLine }}"
{{- end}}
{{end}}
`

func contains(n string, c []string) bool {
	for _, c := range c {
		if n == c {
			return true
		}
	}
	return false
}

func uniqueName(name string, used []string) string {
	name = strings.Replace(name, "-", "_", -1)
	name = strings.Replace(name, "/", "_", -1)
	if !contains(name, used) {
		return name
	}
	for i := 1; ; i++ {
		f := fmt.Sprintf("%s_%d", name, i)
		if !contains(f, used) {
			return f
		}
	}
}

// Assemble resolves output targets and declaration paths for every expanded
// entry, producing uniquely named jobs in entry order. A job whose
// condition declared no output gets the guaranteed fallback target; that is
// surfaced once through the run summary, not treated as an error.
func Assemble(m *manifest.Manifest, entries []plan.Entry, dir, entryOverride, argLine string) []Job {
	jobs := []Job{}
	names := []string{}
	externals := m.ExternalIDs()

	for _, entry := range entries {
		name := plan.SubpathName(entry.Name)
		if entry.Variant != "" {
			name = name + "_" + entry.Variant
		}
		name = uniqueName(name, names)
		names = append(names, name)

		if !plan.HasOutputKeys(entry.Export) {
			logger.AddSummaryWarning("no output conditions declared, using default target",
				"subpath", entry.Name)
		}

		job := Job{
			Name:      name,
			Subpath:   entry.Name,
			Variant:   entry.Variant,
			Source:    entry.Source,
			Targets:   plan.ResolveTargets(entry.Export, dir),
			Externals: externals,
			ArgLine:   argLine,
		}
		if entry.Export.Has("types") || entryOverride != "" {
			job.Declaration = plan.ResolveDeclarationPath(m, entry.Export, entry.Name, entryOverride, dir)
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// RenderPlanfile writes the plan for one package, paths relativized against
// baseDir so the file is stable across checkouts.
func RenderPlanfile(out io.Writer, pkg string, jobs []Job, baseDir string) error {
	for i := range jobs {
		if k, err := filepath.Rel(baseDir, jobs[i].Source); err == nil {
			jobs[i].Source = k
		} else {
			log.Printf("rel error for source %s: %s", jobs[i].Name, err)
		}
		for j := range jobs[i].Targets {
			if k, err := filepath.Rel(baseDir, jobs[i].Targets[j].File); err == nil {
				jobs[i].Targets[j].File = k
			}
		}
		if jobs[i].Declaration != "" {
			if k, err := filepath.Rel(baseDir, jobs[i].Declaration); err == nil {
				jobs[i].Declaration = k
			}
		}
	}

	tmpl, err := template.New("planfile").Parse(planFile)
	if err != nil {
		panic(err)
	}
	return tmpl.Execute(out, map[string]any{
		"Package": pkg,
		"Jobs":    jobs,
	})
}

// WritePlanfile renders to <baseDir>/<name>.
func WritePlanfile(pkg string, jobs []Job, baseDir string, name string) error {
	outfile, err := os.Create(filepath.Join(baseDir, name))
	if err != nil {
		return err
	}
	defer outfile.Close()
	return RenderPlanfile(outfile, pkg, jobs, baseDir)
}
