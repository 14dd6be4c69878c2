package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rjdinis/mqlpath/internal/mql"
	"github.com/rjdinis/mqlpath/internal/validation"
	"github.com/rjdinis/mqlpath/pkg/utils"
)

type platformReport struct {
	File      string `json:"file" yaml:"file" toml:"file"`
	Version   int    `json:"version" yaml:"version" toml:"version"`
	NeedsWine bool   `json:"needs_wine" yaml:"needs_wine" toml:"needs_wine"`
	Launcher  string `json:"launcher,omitempty" yaml:"launcher,omitempty" toml:"launcher,omitempty"`
	Command   string `json:"command" yaml:"command" toml:"command"`
}

func newPlatformCmd() *cobra.Command {
	var workspace string
	cmd := &cobra.Command{
		Use:   "platform <file>",
		Short: "Detect the MetaTrader platform of a source file",
		Long: `Detect whether a source file belongs to MetaTrader 4 or 5 and which Wine
launcher runs its compiler. Header files (.mqh) belong to MetaTrader 4 only
when the workspace name contains MQL4.`,
		Example: `  mqlpath platform Experts/EA.mq5
  mqlpath platform --workspace MQL4 Include/lib.mqh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatform(cmd.OutOrStdout(), args[0], workspace)
		},
	}
	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace name used to classify headers")
	return cmd
}

func runPlatform(w io.Writer, file, workspace string) error {
	ctx := getContext()
	cfg := ctx.Config

	if err := validation.ValidateRawPath(file); err != nil {
		return fmt.Errorf("invalid file %q: %w", validation.SanitizeString(file), err)
	}

	version, err := mql.DetectPlatformVersion(file, workspace)
	if err != nil {
		return err
	}

	report := platformReport{
		File:      file,
		Version:   version,
		NeedsWine: mql.NeedsWine(cfg.Host(), cfg.PassThroughWSL),
	}
	if report.NeedsWine {
		launcher, err := mql.WineExecutable(version, ctx.WSL)
		if err != nil {
			return err
		}
		report.Launcher = launcher
	}

	editor, err := mql.MetaEditorExecutable(version)
	if err != nil {
		return err
	}
	argv, err := mql.CompilerCommand(version, ctx.WSL, cfg.Host(), cfg.PassThroughWSL, []string{editor})
	if err != nil {
		return err
	}
	name, args := ctx.WSL.Command(argv[0], argv[1:]...)
	report.Command = strings.Join(append([]string{name}, args...), " ")

	if cfg.Quiet && cfg.Output == "table" {
		fmt.Fprintf(w, "%d %s\n", report.Version, report.Launcher)
		return nil
	}

	return render(w, cfg.Output, report, func(w io.Writer) {
		launcher := report.Launcher
		if launcher == "" {
			launcher = "(native)"
		}
		utils.KeyValueTable(w, "Platform", [][2]string{
			{"File", report.File},
			{"Version", fmt.Sprintf("MetaTrader %d", report.Version)},
			{"Launcher", launcher},
			{"Command", report.Command},
		}, 10, 0)
		fmt.Fprintln(w)
	})
}
