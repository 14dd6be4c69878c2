package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rjdinis/mqlpath/internal/mql"
	"github.com/rjdinis/mqlpath/pkg/utils"
)

type envReport struct {
	Host          string   `json:"host" yaml:"host" toml:"host"`
	WSL           bool     `json:"wsl" yaml:"wsl" toml:"wsl"`
	WinePrefix    string   `json:"wine_prefix" yaml:"wine_prefix" toml:"wine_prefix"`
	User          string   `json:"user,omitempty" yaml:"user,omitempty" toml:"user,omitempty"`
	Distro        string   `json:"distro,omitempty" yaml:"distro,omitempty" toml:"distro,omitempty"`
	NeedsWine     bool     `json:"needs_wine" yaml:"needs_wine" toml:"needs_wine"`
	Wine          bool     `json:"wine" yaml:"wine" toml:"wine"`
	Wine64        bool     `json:"wine64" yaml:"wine64" toml:"wine64"`
	Distributions []string `json:"distributions,omitempty" yaml:"distributions,omitempty" toml:"distributions,omitempty"`
	ConfigFile    string   `json:"config_file,omitempty" yaml:"config_file,omitempty" toml:"config_file,omitempty"`
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the environment paths are resolved in",
		Long: `Show the host environment, WSL mode and the facts some conversions query:
the Unix user owning the Wine prefix, the default WSL distribution and the
installed Wine launchers. Lookups that fail are reported as unavailable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cmd.OutOrStdout())
		},
	}
}

func runEnv(w io.Writer) error {
	ctx := getContext()
	log := ctx.Logger
	cfg := ctx.Config

	report := envReport{
		Host:       cfg.Host().String(),
		WSL:        cfg.PassThroughWSL,
		WinePrefix: cfg.WinePrefix,
		NeedsWine:  mql.NeedsWine(cfg.Host(), cfg.PassThroughWSL),
		ConfigFile: cfg.File,
	}

	if user, err := ctx.Context.UserName(); err != nil {
		log.Debug("User lookup failed: %v", err)
	} else {
		report.User = user
	}
	if distro, err := ctx.Context.DistroName(); err != nil {
		log.Debug("Distribution lookup failed: %v", err)
	} else {
		report.Distro = distro
	}
	if names, err := ctx.WSL.ListDistributions(); err != nil {
		log.Debug("%v", err)
	} else {
		report.Distributions = names
	}
	if report.NeedsWine {
		report.Wine = ctx.WSL.HasWine()
		report.Wine64 = ctx.WSL.HasWine64()
	}

	if cfg.Quiet && cfg.Output == "table" {
		fmt.Fprintf(w, "%s %v %s %s\n", report.Host, report.WSL, report.User, report.Distro)
		return nil
	}

	return render(w, cfg.Output, report, report.printTable)
}

func (r envReport) printTable(w io.Writer) {
	pairs := [][2]string{
		{"Host", r.Host},
		{"WSL mode", utils.YesNo(r.WSL)},
		{"Wine prefix", r.WinePrefix},
		{"User", orUnavailable(r.User)},
		{"Distribution", orUnavailable(r.Distro)},
		{"Needs Wine", utils.YesNo(r.NeedsWine)},
	}
	if r.NeedsWine {
		pairs = append(pairs,
			[2]string{"wine", utils.YesNo(r.Wine)},
			[2]string{"wine64", utils.YesNo(r.Wine64)},
		)
	}
	if r.ConfigFile != "" {
		pairs = append(pairs, [2]string{"Config file", r.ConfigFile})
	}

	if len(r.Distributions) == 0 {
		pairs = append(pairs, [2]string{"Distributions", unavailable()})
	}

	utils.KeyValueTable(w, "Environment", pairs, 14, 0)
	fmt.Fprintln(w)

	if len(r.Distributions) > 0 {
		r.printDistributions(w)
	}
}

func (r envReport) printDistributions(w io.Writer) {
	widths := []int{len("NAME"), len("DEFAULT")}
	for _, name := range r.Distributions {
		widths[0] = max(widths[0], len(name))
	}

	utils.PrintTableHeader(w, widths, []string{"NAME", "DEFAULT"})
	for _, name := range r.Distributions {
		def := ""
		if name == r.Distro {
			def = "*"
		}
		utils.PrintTableRow(w, widths, name, def)
	}
	utils.PrintTableFooter(w, widths)
	fmt.Fprintln(w)
}

func unavailable() string { return utils.Yellow("(unavailable)") }

func orUnavailable(v string) string {
	if v == "" {
		return unavailable()
	}
	return v
}
