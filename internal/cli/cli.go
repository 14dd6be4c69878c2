// Package cli implements the command-line interface for mqlpath.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rjdinis/mqlpath/internal/config"
	"github.com/rjdinis/mqlpath/internal/logging"
	"github.com/rjdinis/mqlpath/internal/types"
	"github.com/rjdinis/mqlpath/internal/unipath"
	"github.com/rjdinis/mqlpath/internal/validation"
	"github.com/rjdinis/mqlpath/internal/wsl"
)

type AppContext struct {
	Config  *config.Config
	Logger  *logging.Logger
	WSL     *wsl.Client
	Context *wsl.ContextCache
}

var (
	appCtx     *AppContext
	quiet      bool
	debug      bool
	wslMode    bool
	hostName   string
	winePrefix string
	distro     string
	wineUser   string
	output     string

	// newRunner builds the command runner; tests replace it.
	newRunner = func() wsl.Runner { return wsl.ExecRunner{} }
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mqlpath",
		Short: "MetaEditor path resolution across Windows, WSL and Wine",
		Long: `mqlpath converts file paths between the Windows host, WSL and Wine views
so the MetaEditor compiler can be invoked from any of them.

For every path it reports the invocation path (what the compiler receives
on its command line) and the local path (what the calling process uses to
read the file and its compile log).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			appCtx, err = initContext(cmd)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	resetFlags()
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&quiet, "quiet", "q", false, "Run in quiet mode")
	pf.BoolVarP(&debug, "debug", "d", false, "Run in debug mode")
	pf.BoolVar(&wslMode, "wsl", false, "Pass commands through WSL (Windows host only)")
	pf.StringVar(&hostName, "host", "", "Host environment: auto, windows or unix")
	pf.StringVar(&winePrefix, "wine-prefix", "", "Wine prefix directory under the user's home")
	pf.StringVar(&distro, "distro", "", "WSL distribution (skips the wsl.exe lookup)")
	pf.StringVar(&wineUser, "user", "", "Unix user owning the Wine prefix (skips whoami)")
	pf.StringVarP(&output, "output", "o", "", "Output format: table, json, yaml or toml")

	rootCmd.AddCommand(
		newVersionCmd(version, commit, date),
		newCompletionCmd(),
		newResolveCmd(),
		newCliPathCmd(),
		newLocalPathCmd(),
		newLogPathCmd(),
		newEnvCmd(),
		newPlatformCmd(),
	)

	return rootCmd
}

func resetFlags() {
	appCtx = nil
	quiet, debug, wslMode = false, false, false
	hostName, winePrefix, distro, wineUser, output = "", "", "", "", ""
}

func initContext(cmd *cobra.Command) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if quiet {
		cfg.SetQuiet(true)
	}
	if debug {
		cfg.SetDebug(true)
	}
	if wslMode {
		cfg.SetPassThroughWSL(true)
	}
	if hostName != "" {
		cfg.SetHostName(hostName)
	}
	if winePrefix != "" {
		cfg.SetWinePrefix(winePrefix)
	}
	if distro != "" {
		cfg.SetWSLDistro(distro)
	}
	if wineUser != "" {
		cfg.SetWineUser(wineUser)
	}
	if output != "" {
		cfg.SetOutput(output)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Quiet, cfg.Debug)
	if cfg.File != "" {
		logger.Debug("Loaded config from %s", cfg.File)
	}

	// WSL mode only changes how commands run on a Windows host.
	viaWSL := cfg.Host() == types.HostNativeWindows && cfg.PassThroughWSL
	client := wsl.NewClient(logger, newRunner(), viaWSL)
	cache := wsl.NewContextCache(client,
		wsl.WithUser(cfg.WineUser),
		wsl.WithDistro(cfg.WSLDistro),
	)

	return &AppContext{
		Config:  cfg,
		Logger:  logger,
		WSL:     client,
		Context: cache,
	}, nil
}

func validateConfig(cfg *config.Config) error {
	checks := []struct {
		name  string
		value string
		fn    func(string) error
	}{
		{"host", cfg.HostName, validation.ValidateHost},
		{"wine prefix", cfg.WinePrefix, validation.ValidateWinePrefix},
		{"output", cfg.Output, validation.ValidateOutputFormat},
	}
	for _, c := range checks {
		if err := c.fn(c.value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", c.name, c.value, err)
		}
	}
	if cfg.WSLDistro != "" {
		if err := validation.ValidateDistroName(cfg.WSLDistro); err != nil {
			return fmt.Errorf("invalid distro %q: %w", cfg.WSLDistro, err)
		}
	}
	if cfg.WineUser != "" {
		if err := validation.ValidateUserName(cfg.WineUser); err != nil {
			return fmt.Errorf("invalid user %q: %w", cfg.WineUser, err)
		}
	}
	return nil
}

func getContext() *AppContext { return appCtx }

// pathOptions returns the environment a path given on the command line is
// resolved in.
func (a *AppContext) pathOptions(wine bool) unipath.Options {
	return unipath.Options{
		WinePath:   wine,
		Host:       a.Config.Host(),
		WSL:        a.Config.PassThroughWSL,
		Context:    a.Context,
		WinePrefix: a.Config.WinePrefix,
	}
}

// parsePath validates and parses a path argument.
func (a *AppContext) parsePath(op, raw string, wine bool) (unipath.Path, error) {
	if err := validation.ValidateRawPath(raw); err != nil {
		return unipath.Path{}, types.NewPathError(op, validation.SanitizeString(raw), err, "")
	}
	p, err := unipath.Parse(strings.TrimSpace(raw), a.pathOptions(wine))
	if err != nil {
		return unipath.Path{}, err
	}
	a.Logger.With("op", op).Debug("Parsed %s", p)
	return p, nil
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mqlpath version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
