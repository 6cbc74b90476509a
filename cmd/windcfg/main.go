// windcfg loads, validates and resolves theme.config build configurations.
//
// Usage:
//
//	windcfg check               # validate ./theme.config.* (or a parent's)
//	windcfg resolve --as json   # print the fully merged configuration
//	windcfg scan site/          # list content files a JIT build would read
//	windcfg tokens -o vars.css  # export the theme as CSS custom properties
//	cat theme.config.yaml | windcfg check -
//
// Output modes (auto-detected):
//
//	terminal  styled output (default when stdout is a TTY)
//	llm       terse plain text (default when piped)
//	json      structured JSON for automation
//
// Exit codes: 0 success, 1 invalid configuration, 2 usage or I/O error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/windcfg/internal/log"
	"github.com/dkoosis/windcfg/internal/settings"
	"github.com/dkoosis/windcfg/pkg/config"
	"github.com/dkoosis/windcfg/pkg/render"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		env:    os.LookupEnv,
		loader: config.NewDefaultLoader(),
	}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "windcfg: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "windcfg: %v\n", err)
	return exitUsage
}

// exitError carries a process exit code. A nil err means the failure has
// already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error { return &exitError{code: exitUsage, err: err} }

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    settings.LookupFunc
	loader *config.Loader

	flags    settings.Flags
	settings *settings.Settings
	log      zerolog.Logger
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "windcfg",
		Short:         "Validate and resolve theme.config build configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.Format, "format", settings.FormatAuto, "output format: auto, terminal, llm, json")
	pf.StringVar(&a.flags.Theme, "theme", "default", "terminal theme: default, orca, mono")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colour output")
	pf.StringVar(&a.flags.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.InputFormat, "input-format", "", "configuration format: yaml, json, toml, hcl (default: from extension or content)")

	root.AddCommand(
		a.checkCommand(),
		a.resolveCommand(),
		a.scanCommand(),
		a.tokensCommand(),
		a.pluginsCommand(),
		a.versionCommand(),
	)
	return root
}

// setup resolves presentation settings and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	a.flags.FormatSet = flags.Changed("format")
	a.flags.ThemeSet = flags.Changed("theme")
	a.flags.NoColorSet = flags.Changed("no-color")
	a.flags.LogLevelSet = flags.Changed("log-level")

	s, err := settings.Resolve(a.flags, a.env)
	if err != nil {
		return usageError(err)
	}
	a.settings = s
	a.log = log.New(log.Config{
		Level:   s.LogLevel,
		Output:  a.stderr,
		Console: isTTYWriter(a.stderr),
		NoColor: s.NoColor,
	})
	a.log.Debug().
		Str("format", s.Format).Str("format_source", s.FormatSource).
		Str("theme", s.Theme).Str("theme_source", s.ThemeSource).
		Msg("settings resolved")
	return nil
}

// renderer returns the renderer for the resolved format, writing to w.
func (a *app) renderer(w io.Writer) render.Renderer {
	format := render.Format(resolveFormat(a.settings.Format, w))
	width, _ := termSize(w)
	return render.New(format, render.ThemeByName(a.settings.Theme), width)
}

func (a *app) render(w io.Writer, reports ...render.Report) {
	fmt.Fprint(w, a.renderer(w).Render(reports))
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

func resolveFormat(format string, w io.Writer) string {
	if format != settings.FormatAuto {
		return format
	}
	if isTTYWriter(w) {
		return string(render.FormatTerminal)
	}
	return string(render.FormatLLM)
}
