package main

import (
	"errors"
	"os"

	"svnq.dev/svnq/internal/cli"
	svnerrors "svnq.dev/svnq/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		// Failed svn invocations carry the tool's own exit code.
		var cmdErr *svnerrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode != nil {
			os.Exit(*cmdErr.ExitCode)
		}
		os.Exit(1)
	}
}
