package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSettings wraps every configuration error. These are the only
// failures a detection run surfaces to its caller.
var ErrInvalidSettings = errors.New("invalid settings")

// DetectionMode selects between diffing two revisions and trusting an
// explicitly supplied dependency.
type DetectionMode string

const (
	ModeAuto  DetectionMode = "auto"
	ModeForce DetectionMode = "force"
)

// Output formats understood by the emitters.
const (
	OutputGitHub = "github"
	OutputText   = "text"
	OutputJSON   = "json"
	OutputYAML   = "yaml"
)

// Revision backends.
const (
	BackendGoGit  = "gogit"
	BackendGitCLI = "gitcli"
)

// DefaultManifestSearchDepth bounds the force-mode crate manifest search.
const DefaultManifestSearchDepth = 3

// SettingsInput is the raw, unvalidated configuration gathered by a controller.
type SettingsInput struct {
	Base             string
	Head             string
	Dependency       string
	Ecosystem        string
	RepoRoot         string
	Backend          string
	IncludeUnchanged bool
	OutputFormat     string
	OutputPath       string
	SearchDepth      int
}

// Settings is the immutable configuration of one detection run. It is built
// once, before any work starts, and passed by value.
type Settings struct {
	Mode             DetectionMode
	Revisions        RevisionRange
	ForcedDependency string
	ForcedEcosystem  EcosystemLabel // empty means infer
	RepoRoot         string
	Backend          string
	IncludeUnchanged bool
	OutputFormat     string
	OutputPath       string
	SearchDepth      int
}

// NewSettings validates the input and derives the detection mode: a
// non-empty dependency selects force mode, otherwise both revisions are
// required.
func NewSettings(input SettingsInput) (Settings, error) {
	settings := Settings{
		Mode:             ModeAuto,
		Revisions:        RevisionRange{Base: Revision(strings.TrimSpace(input.Base)), Head: Revision(strings.TrimSpace(input.Head))},
		ForcedDependency: strings.TrimSpace(input.Dependency),
		RepoRoot:         input.RepoRoot,
		Backend:          strings.ToLower(strings.TrimSpace(input.Backend)),
		IncludeUnchanged: input.IncludeUnchanged,
		OutputFormat:     strings.ToLower(strings.TrimSpace(input.OutputFormat)),
		OutputPath:       strings.TrimSpace(input.OutputPath),
		SearchDepth:      input.SearchDepth,
	}

	if settings.RepoRoot == "" {
		settings.RepoRoot = "."
	}
	if settings.Backend == "" {
		settings.Backend = BackendGoGit
	}
	if settings.SearchDepth <= 0 {
		settings.SearchDepth = DefaultManifestSearchDepth
	}
	if settings.OutputFormat == "" {
		settings.OutputFormat = OutputText
		if settings.OutputPath != "" {
			settings.OutputFormat = OutputGitHub
		}
	}

	if settings.ForcedDependency != "" {
		settings.Mode = ModeForce
	}

	if err := settings.validate(input.Ecosystem); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *Settings) validate(rawEcosystem string) error {
	if strings.TrimSpace(rawEcosystem) != "" {
		label, err := ParseEcosystem(rawEcosystem)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
		s.ForcedEcosystem = label
	}

	switch s.Backend {
	case BackendGoGit, BackendGitCLI:
	default:
		return fmt.Errorf("%w: unknown revision backend %q", ErrInvalidSettings, s.Backend)
	}

	switch s.OutputFormat {
	case OutputGitHub:
		if s.OutputPath == "" {
			return fmt.Errorf("%w: github output format requires an output file (set --output or GITHUB_OUTPUT)", ErrInvalidSettings)
		}
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidSettings, s.OutputFormat)
	}

	if s.Mode == ModeAuto {
		if s.Revisions.Base.IsEmpty() {
			return fmt.Errorf("%w: base revision is required in auto-detect mode", ErrInvalidSettings)
		}
		if s.Revisions.Head.IsEmpty() {
			return fmt.Errorf("%w: head revision is required in auto-detect mode", ErrInvalidSettings)
		}
	}

	return nil
}
