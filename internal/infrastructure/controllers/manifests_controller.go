package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depreview/internal/domain/commands"
	"github.com/rios0rios0/depreview/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depreview/internal/infrastructure/repositories"
)

// ManifestsController handles the "manifests" subcommand.
type ManifestsController struct {
	command          commands.Manifests
	revisionRegistry *infraRepos.RevisionRegistry
}

// NewManifestsController creates a new ManifestsController.
func NewManifestsController(
	command commands.Manifests,
	revisionRegistry *infraRepos.RevisionRegistry,
) *ManifestsController {
	return &ManifestsController{command: command, revisionRegistry: revisionRegistry}
}

// GetBind returns the Cobra command metadata for the manifests controller.
func (it *ManifestsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "manifests",
		Short: "List changed dependency manifests between two revisions",
		Long:  "Print each changed go.mod, go.sum, Cargo.toml and Cargo.lock path with its kind.",
	}
}

// AddFlags adds the revision flags to the given Cobra command.
func (it *ManifestsController) AddFlags(cmd *cobra.Command) {
	addRevisionFlags(cmd)
}

// Execute prints one "kind<TAB>path" line per changed manifest.
func (it *ManifestsController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	input, err := loadSettingsInput(cmd)
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		return err
	}
	resolveDefaultRevisions(ctx, it.revisionRegistry, &input)

	settings, err := entities.NewSettings(input)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return err
	}

	changed, err := it.command.Execute(ctx, settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, kind := range entities.AllManifestKinds() {
		for _, path := range changed.ByKind[kind] {
			if _, err = fmt.Fprintf(out, "%s\t%s\n", kind, path); err != nil {
				return fmt.Errorf("failed to write manifest listing: %w", err)
			}
		}
	}
	return nil
}
