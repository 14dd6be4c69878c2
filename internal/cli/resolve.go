package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rjdinis/mqlpath/internal/types"
	"github.com/rjdinis/mqlpath/internal/unipath"
	"github.com/rjdinis/mqlpath/internal/validation"
	"github.com/rjdinis/mqlpath/pkg/utils"
)

// pathReport is the resolved form of a path printed by resolve.
type pathReport struct {
	Input           string      `json:"input" yaml:"input" toml:"input"`
	Kind            string      `json:"kind" yaml:"kind" toml:"kind"`
	Host            string      `json:"host" yaml:"host" toml:"host"`
	WSL             bool        `json:"wsl" yaml:"wsl" toml:"wsl"`
	Wine            bool        `json:"wine" yaml:"wine" toml:"wine"`
	Space           string      `json:"space" yaml:"space" toml:"space"`
	Valid           bool        `json:"valid" yaml:"valid" toml:"valid"`
	Invocation      string      `json:"invocation,omitempty" yaml:"invocation,omitempty" toml:"invocation,omitempty"`
	InvocationError string      `json:"invocation_error,omitempty" yaml:"invocation_error,omitempty" toml:"invocation_error,omitempty"`
	Local           string      `json:"local,omitempty" yaml:"local,omitempty" toml:"local,omitempty"`
	LocalError      string      `json:"local_error,omitempty" yaml:"local_error,omitempty" toml:"local_error,omitempty"`
	Matches         *bool       `json:"matches,omitempty" yaml:"matches,omitempty" toml:"matches,omitempty"`
	Log             *pathReport `json:"log,omitempty" yaml:"log,omitempty" toml:"log,omitempty"`

	err error
}

func newPathReport(p unipath.Path) *pathReport {
	r := &pathReport{
		Input: p.Raw(),
		Kind:  p.Kind().String(),
		Host:  p.Host().String(),
		WSL:   p.IsWSL(),
		Wine:  p.IsWinePath(),
		Space: p.Space().String(),
		Valid: p.IsValid(),
	}

	inv, err := p.InvocationPath()
	if err != nil {
		r.InvocationError = err.Error()
		r.err = err
	} else {
		r.Invocation = inv
	}

	local, err := p.LocalPath()
	if err != nil {
		r.LocalError = err.Error()
		if r.err == nil {
			r.err = err
		}
	} else {
		r.Local = local
	}
	return r
}

func (r *pathReport) pairs() [][2]string {
	pairs := [][2]string{
		{"Input", r.Input},
		{"Kind", utils.Blue(r.Kind)},
		{"Host", r.Host},
		{"WSL mode", utils.YesNo(r.WSL)},
		{"Inside Wine", utils.YesNo(r.Wine)},
		{"Valid", utils.YesNo(r.Valid)},
		{"Invocation", orError(r.Invocation, r.InvocationError)},
		{"Local", orError(r.Local, r.LocalError)},
	}
	if r.Matches != nil {
		pairs = append(pairs, [2]string{"Matches", utils.YesNo(*r.Matches)})
	}
	return pairs
}

func orError(v, errMsg string) string {
	if errMsg != "" {
		return utils.Red(errMsg)
	}
	return v
}

func (r *pathReport) printTable(w io.Writer) {
	utils.KeyValueTable(w, "Path", r.pairs(), 12, 0)
	if r.Log != nil {
		utils.KeyValueTable(w, "Log file", r.Log.pairs()[6:], 12, 0)
	}
	fmt.Fprintln(w)
}

func newResolveCmd() *cobra.Command {
	var (
		wine    bool
		withLog bool
		match   string
	)
	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show every view of a path",
		Long: `Classify a path and convert it for the current environment.

Prints the path kind, the host and WSL settings, whether the path can be
converted, the invocation path passed to the compiler and the local path
the caller uses for file I/O.`,
		Example: `  mqlpath resolve 'C:\Users\trader\MQL5\Experts\EA.mq5'
  mqlpath resolve --wsl --host windows /home/trader/EA.mq5
  mqlpath resolve --wine --log 'C:\users\trader\EA.mq5' -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.OutOrStdout(), args[0], wine, withLog, match)
		},
	}
	cmd.Flags().BoolVar(&wine, "wine", false, "The path is a Windows path as seen inside Wine")
	cmd.Flags().BoolVar(&withLog, "log", false, "Also resolve the compiler's log file")
	cmd.Flags().StringVar(&match, "match", "", "Compare the local path with an open document path")
	return cmd
}

func runResolve(w io.Writer, raw string, wine, withLog bool, match string) error {
	ctx := getContext()
	log := ctx.Logger

	p, err := ctx.parsePath("resolve", raw, wine)
	if err != nil {
		return err
	}

	report := newPathReport(p)
	if withLog {
		report.Log = newPathReport(unipath.LogPath(p))
	}
	if match != "" && report.err == nil {
		ok, err := p.MatchesDocument(match)
		if err != nil {
			return err
		}
		report.Matches = &ok
	}

	if ctx.Config.Quiet && ctx.Config.Output == "table" {
		fmt.Fprintln(w, report.Invocation)
		fmt.Fprintln(w, report.Local)
		return report.err
	}

	if err := render(w, ctx.Config.Output, report, report.printTable); err != nil {
		return err
	}
	if report.err != nil {
		return report.err
	}
	if !report.Valid {
		log.Warn("Path is not valid in this environment; conversions are best effort")
	} else if report.Matches != nil && *report.Matches {
		log.Success("%s is the open document", report.Local)
	}
	return nil
}

func newCliPathCmd() *cobra.Command {
	var wine bool
	cmd := &cobra.Command{
		Use:   "cli-path <path>",
		Short: "Print the path to pass on the compiler command line",
		Example: `  mqlpath cli-path --wsl --host windows 'C:\MQL5\EA.mq5'
  mqlpath cli-path /home/trader/.wine/dosdevices/c:/MQL5/EA.mq5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCliPath(cmd.OutOrStdout(), args[0], wine)
		},
	}
	cmd.Flags().BoolVar(&wine, "wine", false, "The path is a Windows path as seen inside Wine")
	return cmd
}

func runCliPath(w io.Writer, raw string, wine bool) error {
	ctx := getContext()

	p, err := ctx.parsePath("cli path", raw, wine)
	if err != nil {
		return err
	}
	if !p.IsValid() {
		return types.NewPathError("cli path", p.Raw(), types.ErrUnconvertiblePath, types.HelpUnconvertible)
	}

	inv, err := p.InvocationPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, inv)
	return nil
}

func newLocalPathCmd() *cobra.Command {
	var (
		wine  bool
		match string
	)
	cmd := &cobra.Command{
		Use:   "local-path <path>",
		Short: "Print the path the caller uses to access the file",
		Example: `  mqlpath local-path --wine 'C:\users\trader\MQL5\EA.mq5'
  mqlpath local-path --wsl --host windows /home/trader/EA.mq5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocalPath(cmd.OutOrStdout(), args[0], wine, match)
		},
	}
	cmd.Flags().BoolVar(&wine, "wine", false, "The path is a Windows path as seen inside Wine")
	cmd.Flags().StringVar(&match, "match", "", "Exit with an error unless the local path names this document")
	return cmd
}

func runLocalPath(w io.Writer, raw string, wine bool, match string) error {
	ctx := getContext()

	p, err := ctx.parsePath("local path", raw, wine)
	if err != nil {
		return err
	}

	local, err := p.LocalPath()
	if err != nil {
		return err
	}

	if match != "" {
		ok, err := p.MatchesDocument(match)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("local path %q does not match %q", local, match)
		}
		ctx.Logger.Debug("Local path matches %s", match)
	}

	fmt.Fprintln(w, local)
	return nil
}

func newLogPathCmd() *cobra.Command {
	var (
		wine bool
		ext  string
	)
	cmd := &cobra.Command{
		Use:   "log-path <path>",
		Short: "Print both views of the compiler's log file",
		Long: `Swap the extension of a source path and print the invocation path and the
local path of the result, one per line. The compiler writes its log next
to the source file with a .log extension.`,
		Example: `  mqlpath log-path 'C:\MQL5\Experts\EA.mq5'
  mqlpath log-path --ext ex5 /mnt/c/MQL5/Experts/EA.mq5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogPath(cmd.OutOrStdout(), args[0], wine, ext)
		},
	}
	cmd.Flags().BoolVar(&wine, "wine", false, "The path is a Windows path as seen inside Wine")
	cmd.Flags().StringVar(&ext, "ext", "log", "Extension of the sibling file")
	return cmd
}

func runLogPath(w io.Writer, raw string, wine bool, ext string) error {
	ctx := getContext()

	if err := validation.ValidateExtension(ext); err != nil {
		return fmt.Errorf("invalid extension %q: %w", ext, err)
	}

	p, err := ctx.parsePath("log path", raw, wine)
	if err != nil {
		return err
	}
	sibling := p.WithExtension(ext)

	inv, err := sibling.InvocationPath()
	if err != nil {
		return err
	}
	local, err := sibling.LocalPath()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, inv)
	fmt.Fprintln(w, local)
	return nil
}
