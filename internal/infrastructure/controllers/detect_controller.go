package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depreview/internal/domain/commands"
	"github.com/rios0rios0/depreview/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depreview/internal/infrastructure/repositories"
)

// DetectController handles the root command and the "detect" subcommand.
type DetectController struct {
	command          commands.Detect
	revisionRegistry *infraRepos.RevisionRegistry
	outputRegistry   *infraRepos.OutputRegistry
}

// NewDetectController creates a new DetectController.
func NewDetectController(
	command commands.Detect,
	revisionRegistry *infraRepos.RevisionRegistry,
	outputRegistry *infraRepos.OutputRegistry,
) *DetectController {
	return &DetectController{
		command:          command,
		revisionRegistry: revisionRegistry,
		outputRegistry:   outputRegistry,
	}
}

// GetBind returns the Cobra command metadata for the detect controller.
func (it *DetectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "detect",
		Short: "Detect dependency changes between two revisions",
		Long: `Detect which Go and Rust dependency manifests changed between two
revisions, and which packages were added or moved to a new version.

The result is emitted as has_changes, ecosystem and dependencies. Passing
--dependency skips diffing entirely and reports the given token as is.`,
	}
}

// AddFlags adds detect-specific flags to the given Cobra command.
func (it *DetectController) AddFlags(cmd *cobra.Command) {
	addRevisionFlags(cmd)
	cmd.Flags().StringP(keyDependency, "d", "",
		"Force mode: report this dependency token verbatim (env INPUT_DEPENDENCY)")
	cmd.Flags().StringP(keyEcosystem, "e", "",
		"Force mode ecosystem override: go, rust or mixed (env INPUT_ECOSYSTEM)")
	cmd.Flags().Bool(keyIncludeUnchanged, false,
		"Also emit dependencies whose version did not change")
	cmd.Flags().StringP(keyFormat, "f", "",
		"Output format: text, json, yaml or github (default: github when an output file is set, else text)")
	cmd.Flags().StringP(keyOutput, "o", "",
		"GitHub output file to append results to (env GITHUB_OUTPUT)")
	cmd.Flags().Int(keySearchDepth, entities.DefaultManifestSearchDepth,
		"Directory depth searched for Cargo.toml when inferring the force mode ecosystem")
}

// Execute runs detection and emits the result.
func (it *DetectController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	input, err := loadSettingsInput(cmd)
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		return err
	}
	if input.Dependency == "" {
		resolveDefaultRevisions(ctx, it.revisionRegistry, &input)
	}

	settings, err := entities.NewSettings(input)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return err
	}

	result, err := it.command.Execute(ctx, settings)
	if err != nil {
		logger.Errorf("Detection failed: %v", err)
		return err
	}

	output, err := it.outputRegistry.Get(settings.OutputFormat, settings.OutputPath, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrInvalidSettings, err)
	}
	if err = output.Emit(result); err != nil {
		logger.Errorf("Failed to emit result: %v", err)
		return err
	}
	return nil
}
