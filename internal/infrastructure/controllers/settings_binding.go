package controllers

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depreview/internal/infrastructure/repositories"
)

// Configuration keys, each bound to one flag and optionally to environment variables.
const (
	keyBase             = "base"
	keyHead             = "head"
	keyDependency       = "dependency"
	keyEcosystem        = "ecosystem"
	keyRepoRoot         = "repo-root"
	keyBackend          = "backend"
	keyIncludeUnchanged = "include-unchanged"
	keyFormat           = "format"
	keyOutput           = "output"
	keySearchDepth      = "search-depth"
	keyEnvFile          = "env-file"
	keyVerbose          = "verbose"
)

//nolint:gochecknoglobals // static flag to environment mapping
var envBindings = map[string][]string{
	keyBase:       {"BASE_SHA"},
	keyHead:       {"HEAD_SHA"},
	keyDependency: {"INPUT_DEPENDENCY"},
	keyEcosystem:  {"INPUT_ECOSYSTEM"},
	keyRepoRoot:   {"GITHUB_WORKSPACE"},
	keyOutput:     {"GITHUB_OUTPUT"},
}

// commandContext returns the command context, or a background context when
// the command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// addRevisionFlags registers the flags shared by every revision-reading command.
func addRevisionFlags(cmd *cobra.Command) {
	cmd.Flags().String(keyBase, "", "Base revision (env BASE_SHA, default: merge base with the remote default branch)")
	cmd.Flags().String(keyHead, "", "Head revision (env HEAD_SHA, default: HEAD)")
	cmd.Flags().String(keyRepoRoot, "", "Repository root (env GITHUB_WORKSPACE, default: current directory)")
	cmd.Flags().String(keyBackend, entities.BackendGoGit, "Revision backend: gogit or gitcli")
	cmd.Flags().String(keyEnvFile, "", "Load environment variables from a dotenv file")
}

// loadSettingsInput merges flags, environment and the optional dotenv file.
// Explicitly set flags win over the environment.
func loadSettingsInput(cmd *cobra.Command) (entities.SettingsInput, error) {
	if verbose, _ := cmd.Flags().GetBool(keyVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if envFile, _ := cmd.Flags().GetString(keyEnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return entities.SettingsInput{}, fmt.Errorf("%w: failed to load env file %q: %w",
				entities.ErrInvalidSettings, envFile, err)
		}
		logger.Debugf("Loaded environment from %s", envFile)
	}

	config, err := bindConfig(cmd.Flags())
	if err != nil {
		return entities.SettingsInput{}, err
	}

	return entities.SettingsInput{
		Base:             config.GetString(keyBase),
		Head:             config.GetString(keyHead),
		Dependency:       config.GetString(keyDependency),
		Ecosystem:        config.GetString(keyEcosystem),
		RepoRoot:         config.GetString(keyRepoRoot),
		Backend:          config.GetString(keyBackend),
		IncludeUnchanged: config.GetBool(keyIncludeUnchanged),
		OutputFormat:     config.GetString(keyFormat),
		OutputPath:       config.GetString(keyOutput),
		SearchDepth:      config.GetInt(keySearchDepth),
	}, nil
}

// bindConfig binds every known key present in flags, plus its environment
// variables, to a fresh viper instance.
func bindConfig(flags *pflag.FlagSet) (*viper.Viper, error) {
	config := viper.New()
	for _, key := range []string{
		keyBase, keyHead, keyDependency, keyEcosystem, keyRepoRoot, keyBackend,
		keyIncludeUnchanged, keyFormat, keyOutput, keySearchDepth,
	} {
		if flag := flags.Lookup(key); flag != nil {
			if err := config.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", key, err)
			}
		}
		if envs, ok := envBindings[key]; ok {
			if err := config.BindEnv(append([]string{key}, envs...)...); err != nil {
				return nil, fmt.Errorf("failed to bind env for %q: %w", key, err)
			}
		}
	}
	return config, nil
}

// resolveDefaultRevisions fills a missing head and base from the backend.
// Failures leave the fields empty so that settings validation reports them.
func resolveDefaultRevisions(
	ctx context.Context,
	registry *infraRepos.RevisionRegistry,
	input *entities.SettingsInput,
) {
	if input.Base != "" && input.Head != "" {
		return
	}

	backendName := input.Backend
	if backendName == "" {
		backendName = entities.BackendGoGit
	}
	root := input.RepoRoot
	if root == "" {
		root = "."
	}

	backend, err := registry.Get(backendName, root)
	if err != nil {
		logger.Warnf("Cannot resolve default revisions: %v", err)
		return
	}

	if input.Head == "" {
		head, headErr := backend.DefaultHead(ctx)
		if headErr != nil {
			logger.Warnf("Failed to resolve default head revision: %v", headErr)
			return
		}
		input.Head = head.String()
		logger.Debugf("Resolved head revision: %s", input.Head)
	}

	if input.Base == "" {
		base, baseErr := backend.DefaultBase(ctx, entities.Revision(input.Head))
		if baseErr != nil {
			logger.Warnf("Failed to resolve default base revision: %v", baseErr)
			return
		}
		input.Base = base.String()
		logger.Debugf("Resolved base revision: %s", input.Base)
	}
}
