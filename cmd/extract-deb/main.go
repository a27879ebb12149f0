package main

import (
	"fmt"
	"io"
	"os"

	"github.com/etnz/extract-deb/deb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newExtractCommand returns the root command. It takes no flags besides help:
// every argument is the path of a Debian package.
func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-deb DEB [DEB...]",
		Short: "Extract the data archive of Debian packages",
		Long: `Extract the data.tar* member of each Debian package given on the command
line. The payload is copied as is to <package>.data.tar.xz next to the package.

Packages are processed in order; the first failure stops the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

// runExtract extracts each package in turn and prints one confirmation line
// per package on stdout.
func runExtract(stdout io.Writer, paths []string) error {
	for _, path := range paths {
		out, err := deb.Extract(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Extracted %s\n", out)
	}
	return nil
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := newExtractCommand()
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
