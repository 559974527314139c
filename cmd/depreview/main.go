package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depreview/internal"
	"github.com/rios0rios0/depreview/internal/infrastructure/controllers"
)

func buildRootCommand(detectController *controllers.DetectController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "depreview",
		Short: "Dependency manifest change detector for pull requests",
		Long: `Detects which Go (go.mod, go.sum) and Rust (Cargo.toml, Cargo.lock)
dependencies changed between two revisions, for use inside CI pipelines.

Usage modes:
  depreview                           Diff BASE_SHA...HEAD_SHA (or the defaults)
  depreview --base main --head HEAD   Diff two explicit revisions
  depreview -d github.com/lib/pq      Force mode: report one dependency as is
  depreview manifests                 List the changed manifests only`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return detectController.Execute(command, args)
		},
	}

	detectController.AddFlags(cmd)
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:          bind.Use,
			Short:        bind.Short,
			Long:         bind.Long,
			Args:         cobra.NoArgs,
			SilenceUsage: true,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	detectController := injectDetectController()
	cobraRoot := buildRootCommand(detectController)

	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'depreview': %s", err)
	}
}
