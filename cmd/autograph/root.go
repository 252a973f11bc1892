package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(version string) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:          "autograph",
		Short:        "Cluster molecular conformers by RMSD and pick one representative per cluster.",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "f", "", "path to a YAML configuration file")

	root.AddCommand(newRunCmd(g), newVersionCmd(version))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "autograph version %s\n", version)
		},
	}
}

func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}
