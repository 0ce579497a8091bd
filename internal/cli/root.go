package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd(version string) *cobra.Command {
	app := &app{version: version}

	rootCmd := &cobra.Command{
		Use:   "svnq",
		Short: "svnq drives Subversion with safe quoting and typed output",
		Long: `svnq wraps the svn command-line client. Targets are resolved against a
configurable base repository, every argument is escaped for the platform
shell, and results come back parsed instead of as raw text.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.flags.configPath, "config", "", "Use this config file instead of the discovered ones")
	pf.StringVar(&app.flags.repo, "repo", "", "Base repository URL that relative targets resolve against")
	pf.StringVarP(&app.flags.username, "username", "u", "", "Repository username")
	pf.StringVar(&app.flags.password, "password", "", "Repository password (prefer --ask-password or "+PasswordEnv+")")
	pf.BoolVar(&app.flags.askPassword, "ask-password", false, "Prompt for the repository password")
	pf.BoolVar(&app.flags.nonInteractive, "non-interactive", true, "Keep svn from prompting on the terminal")
	pf.BoolVar(&app.flags.trustServerCert, "trust-server-cert", false, "Accept unknown certificate authorities")
	pf.BoolVar(&app.flags.noAuthCache, "no-auth-cache", false, "Do not cache credentials on disk")
	pf.BoolVar(&app.flags.verbose, "verbose", false, "Show debug output")
	pf.DurationVar(&app.flags.timeout, "timeout", 0, "Per-command timeout, e.g. 90s or 5m")
	pf.StringVar(&app.flags.binary, "svn-binary", "", "Path to the svn executable")
	pf.StringVar(&app.flags.logFile, "log-file", "", "Write a debug log to this file")

	rootCmd.AddCommand(
		newInfoCmd(app),
		newStatusCmd(app),
		newLogCmd(app),
		newListCmd(app),
		newCatCmd(app),
		newCheckoutCmd(app),
		newUpdateCmd(app),
		newSwitchCmd(app),
		newRelocateCmd(app),
		newUpgradeCmd(app),
		newCleanupCmd(app),
		newAddCmd(app),
		newDeleteCmd(app),
		newRevertCmd(app),
		newResolveCmd(app),
		newMkdirCmd(app),
		newCopyCmd(app),
		newMoveCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newCommitCmd(app),
		newLockCmd(app),
		newUnlockCmd(app),
		newMergeCmd(app),
		newPropCmd(app),
	)

	return rootCmd
}
