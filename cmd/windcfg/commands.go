package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/windcfg/internal/log"
	"github.com/dkoosis/windcfg/internal/version"
	"github.com/dkoosis/windcfg/pkg/config"
	"github.com/dkoosis/windcfg/pkg/content"
	"github.com/dkoosis/windcfg/pkg/engine"
	"github.com/dkoosis/windcfg/pkg/plugin"
	"github.com/dkoosis/windcfg/pkg/render"
	"github.com/dkoosis/windcfg/pkg/source"
	"github.com/dkoosis/windcfg/pkg/tokens"
)

const stdinName = "<stdin>"

// input is a decoded configuration and where it came from.
type input struct {
	raw  map[string]any
	name string
	dir  string // content globs are relative to this directory
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// readInput decodes the configuration named by path: a file, a directory to
// search upwards from, or "-" for stdin.
func (a *app) readInput(path string) (*input, error) {
	if path == "-" {
		raw, err := source.Read(a.stdin, a.settings.InputFormat, stdinName)
		if err != nil {
			return nil, err
		}
		return &input{raw: raw, name: stdinName, dir: "."}, nil
	}

	file, err := source.Locate(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("path", file).Msg("configuration located")

	var raw map[string]any
	if a.settings.InputFormat != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		raw, err = source.Read(f, a.settings.InputFormat, file)
		if err != nil {
			return nil, err
		}
	} else {
		raw, err = source.ReadFile(file)
		if err != nil {
			return nil, err
		}
	}
	return &input{raw: raw, name: file, dir: filepath.Dir(file)}, nil
}

// load decodes and loads the configuration at path. Invalid configurations
// are reported to w and returned as an exit status 1.
func (a *app) load(path string, w io.Writer) (*input, *config.BuildConfig, error) {
	in, err := a.readInput(path)
	if err != nil {
		return nil, nil, usageError(err)
	}
	cfg, err := a.loader.Load(in.raw)
	if err != nil {
		return in, nil, a.reportInvalid(w, in.name, err)
	}
	return in, cfg, nil
}

func (a *app) reportInvalid(w io.Writer, name string, err error) error {
	problems := config.Problems(err)
	if len(problems) == 0 {
		return usageError(err)
	}
	a.log.Info().Str("path", name).Int("problems", len(problems)).Msg("configuration invalid")
	a.render(w, checkReport(name, nil, problems))
	return &exitError{code: exitInvalid}
}

func checkReport(name string, cfg *config.BuildConfig, problems []*config.FieldError) render.CheckReport {
	r := render.CheckReport{Source: name, Valid: cfg != nil}
	if cfg == nil {
		r.Problems = make([]render.Problem, len(problems))
		for i, p := range problems {
			r.Problems[i] = render.Problem{Path: p.Path, Code: p.Code(), Message: p.Message}
		}
		return r
	}
	r.Mode = string(cfg.Mode())
	r.DarkMode = string(cfg.DarkMode())
	r.ContentGlobs = cfg.ContentGlobs()
	r.ThemeKeys = cfg.Theme().Len()
	r.Plugins = cfg.PluginNames()
	return r
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a configuration and summarize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, cfg, err := a.load(pathArg(args), a.stdout)
			if err != nil {
				return err
			}
			a.render(a.stdout, checkReport(in.name, cfg, nil))
			return nil
		},
	}
}

func (a *app) resolveCommand() *cobra.Command {
	var as, output string
	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Print the fully resolved configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if as != "yaml" && as != "json" {
				return usageError(fmt.Errorf("invalid --as %q: must be yaml or json", as))
			}
			_, cfg, err := a.load(pathArg(args), a.stderr)
			if err != nil {
				return err
			}
			data, err := marshalSnapshot(cfg.Snapshot(), as)
			if err != nil {
				return usageError(err)
			}
			return a.writeOutput(output, data)
		},
	}
	cmd.Flags().StringVar(&as, "as", "yaml", "snapshot encoding: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func marshalSnapshot(s config.Snapshot, as string) ([]byte, error) {
	if as == "json" {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// writeOutput writes data to stdout, or atomically replaces path.
func (a *app) writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return usageError(err)
		}
		return nil
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return usageError(fmt.Errorf("write %s: %w", path, err))
	}
	a.log.Info().Str("path", path).Int("bytes", len(data)).Msg("output written")
	return nil
}

func (a *app) scanCommand() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "List the content files matched by the configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, cfg, err := a.load(pathArg(args), a.stdout)
			if err != nil {
				return err
			}
			globs := cfg.ContentGlobs()
			sources, err := content.Scan(cmd.Context(), os.DirFS(in.dir), globs, content.WithWorkers(workers))
			if err != nil {
				return usageError(fmt.Errorf("scan content: %w", err))
			}

			report := render.ScanReport{
				Source:     in.name,
				Globs:      globs,
				Files:      make([]render.ScanFile, len(sources)),
				Candidates: len(content.CandidateSet(sources)),
			}
			for i, src := range sources {
				report.Files[i] = render.ScanFile{
					Path:       src.Path,
					Bytes:      len(src.Content),
					Candidates: len(content.Candidates(src.Content)),
				}
			}
			clog := log.WithComponent(a.log, "scan")
			clog.Debug().Int("files", len(sources)).Int("candidates", report.Candidates).Msg("content scanned")
			a.render(a.stdout, report)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", content.DefaultWorkers, "concurrent file readers")
	return cmd
}

func (a *app) tokensCommand() *cobra.Command {
	var (
		output   string
		sections []string
	)
	cmd := &cobra.Command{
		Use:   "tokens [path]",
		Short: "Export the resolved theme as CSS custom properties",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readInput(pathArg(args))
			if err != nil {
				return usageError(err)
			}
			p := engine.Pipeline{
				Loader:    a.loader,
				FS:        os.DirFS(in.dir),
				Generator: tokens.Generator{Sections: sections},
			}
			res, err := p.Run(cmd.Context(), in.raw)
			if err != nil {
				var verr *config.ValidationError
				if errors.As(err, &verr) {
					return a.reportInvalid(a.stderr, in.name, err)
				}
				return usageError(err)
			}
			clog := log.WithComponent(a.log, "tokens")
			clog.Debug().Int("sources", len(res.Sources)).Int("bytes", len(res.Output)).Msg("tokens generated")
			return a.writeOutput(output, []byte(res.Output))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringSliceVar(&sections, "section", nil, "theme keys to export (default: all)")
	return cmd
}

func (a *app) pluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins and what they contribute",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			report, err := pluginsReport(a.loader.Registry())
			if err != nil {
				return usageError(err)
			}
			a.render(a.stdout, report)
			return nil
		},
	}
}

func pluginsReport(reg *plugin.Registry) (render.PluginsReport, error) {
	var report render.PluginsReport
	for _, name := range reg.Names() {
		p, err := reg.Resolve(name)
		if err != nil {
			return report, err
		}
		info := render.PluginInfo{
			Name:      name,
			Aliases:   reg.Aliases(name),
			Utilities: len(p.ContributeUtilities()),
		}
		for key := range p.ContributeTheme() {
			info.ThemeKeys = append(info.ThemeKeys, key)
		}
		sort.Strings(info.ThemeKeys)
		for category := range p.ContributeVariants() {
			info.VariantCategories = append(info.VariantCategories, category)
		}
		sort.Strings(info.VariantCategories)
		_, info.Options = p.(plugin.OptionsValidator)
		report.Plugins = append(report.Plugins, info)
	}
	return report, nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
