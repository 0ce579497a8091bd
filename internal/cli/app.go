package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"svnq.dev/svnq/internal/config"
	svnerrors "svnq.dev/svnq/internal/errors"
	"svnq.dev/svnq/internal/logging"
	"svnq.dev/svnq/internal/output"
	"svnq.dev/svnq/svn"
)

// PasswordEnv is consulted when no password arrives via flag or prompt.
const PasswordEnv = "SVNQ_PASSWORD"

// app carries the state every command shares: configuration, the logger,
// the svn client, and the renderer for stdout.
type app struct {
	version string
	flags   rootFlags

	cfg    *config.Config
	logger *logging.Logger
	client *svn.Client
	render *output.Renderer
}

// rootFlags holds persistent flag values before they fold into the client
// defaults. Tri-state flags (non-interactive and friends) only apply when
// the user actually set them, which Changed() on the flag set tells us.
type rootFlags struct {
	configPath      string
	repo            string
	username        string
	password        string
	askPassword     bool
	nonInteractive  bool
	trustServerCert bool
	noAuthCache     bool
	verbose         bool
	timeout         time.Duration
	binary          string
	logFile         string
}

// setup loads configuration, builds the logger and assembles the svn
// client. It runs once per invocation from the root PersistentPreRunE.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.flags.configPath != "" {
		a.cfg, err = config.FromFile(a.flags.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logPath := a.cfg.LogFile
	if a.flags.logFile != "" {
		logPath = a.flags.logFile
	}
	a.logger, err = logging.New(logging.Options{
		Verbose:  a.flags.verbose || a.cfg.Verbose,
		FilePath: logPath,
	})
	if err != nil {
		return err
	}

	output.SetupColors()
	a.render = output.NewRenderer(cmd.OutOrStdout())

	defaults, err := a.buildDefaults(cmd)
	if err != nil {
		return err
	}

	clientOpts := []svn.ClientOption{
		svn.WithDefaults(defaults),
		svn.WithLogger(a.logger.Logger),
	}
	if bin := lo.CoalesceOrEmpty(a.flags.binary, a.cfg.Binary); bin != "" {
		clientOpts = append(clientOpts, svn.WithBinary(bin))
	}
	timeout := a.cfg.TimeoutDuration()
	if rootFlagChanged(cmd, "timeout") {
		timeout = a.flags.timeout
	}
	if timeout > 0 {
		clientOpts = append(clientOpts, svn.WithTimeout(timeout))
	}

	a.client = svn.New(clientOpts...)
	return nil
}

// buildDefaults layers configuration under the persistent flags.
func (a *app) buildDefaults(cmd *cobra.Command) (svn.Options, error) {
	defaults := svn.Options{
		Repo:            a.cfg.Repo,
		Username:        a.cfg.Username,
		NonInteractive:  a.cfg.NonInteractive,
		TrustServerCert: a.cfg.TrustServerCert,
		NoAuthCache:     a.cfg.NoAuthCache,
	}

	if a.flags.repo != "" {
		defaults.Repo = a.flags.repo
	}
	if a.flags.username != "" {
		defaults.Username = a.flags.username
	}

	switch {
	case a.flags.password != "":
		defaults.Password = a.flags.password
	case a.flags.askPassword:
		pw, err := promptPassword()
		if err != nil {
			return svn.Options{}, err
		}
		defaults.Password = pw
	default:
		defaults.Password = os.Getenv(PasswordEnv)
	}

	if rootFlagChanged(cmd, "non-interactive") {
		defaults.NonInteractive = lo.ToPtr(a.flags.nonInteractive)
	}
	if rootFlagChanged(cmd, "trust-server-cert") {
		defaults.TrustServerCert = lo.ToPtr(a.flags.trustServerCert)
	}
	if rootFlagChanged(cmd, "no-auth-cache") {
		defaults.NoAuthCache = lo.ToPtr(a.flags.noAuthCache)
	}

	return defaults, nil
}

// close releases resources owned by the app, currently the file log.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

func rootFlagChanged(cmd *cobra.Command, name string) bool {
	return cmd.Root().PersistentFlags().Changed(name)
}

func promptPassword() (string, error) {
	var pw string
	prompt := &survey.Password{Message: "Repository password"}
	if err := survey.AskOne(prompt, &pw); err != nil {
		return "", fmt.Errorf("password prompt canceled")
	}
	return pw, nil
}

// failure converts a failed ExecResult into the error the user sees.
func failure(sub string, res *svn.ExecResult) error {
	return svnerrors.NewCommandError("svn "+sub, res.Stdout, res.Stderr, res.ExitCode, nil)
}

// finish renders a successful mutating result or converts the failure.
func (a *app) finish(sub string, res *svn.ExecResult) error {
	if !res.Success {
		return failure(sub, res)
	}
	a.render.Lines(res.Stdout)
	return nil
}

// targetOrDot returns args[0] or "." for commands that default to the
// current directory.
func targetOrDot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
