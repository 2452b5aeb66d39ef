package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsatke/memsim"
	"github.com/tsatke/memsim/internal/logger"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "memsim"
)

var (
	debug   bool
	noColor bool

	rootCmd = &cobra.Command{
		Use:   AppName + " [script]",
		Short: "simulate a process's stack and heap memory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(debug, noColor)

			sim := memsim.New()
			if len(args) == 1 {
				return sim.ExecFile(args[0])
			}
			return sim.Interactive(os.Stdin)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log dispatched commands")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err)
		os.Exit(1)
	}
}
