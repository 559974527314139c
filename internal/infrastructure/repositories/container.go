package repositories

import (
	"io"

	"go.uber.org/dig"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depreview/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/depreview/internal/infrastructure/repositories/filesystem"
	gitcliRepo "github.com/rios0rios0/depreview/internal/infrastructure/repositories/gitcli"
	gogitRepo "github.com/rios0rios0/depreview/internal/infrastructure/repositories/gogit"
	goRepo "github.com/rios0rios0/depreview/internal/infrastructure/repositories/golang"
	outputRepo "github.com/rios0rios0/depreview/internal/infrastructure/repositories/output"
	rustRepo "github.com/rios0rios0/depreview/internal/infrastructure/repositories/rust"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Parsers register in emission order: Go before Rust
	if err := container.Provide(func() *ParserRegistry {
		reg := NewParserRegistry()
		reg.Register(goRepo.NewGoParserRepository())
		reg.Register(rustRepo.NewRustParserRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() *RevisionRegistry {
		reg := NewRevisionRegistry()
		reg.Register(entities.BackendGoGit, gogitRepo.NewGoGitRevisionRepository)
		reg.Register(entities.BackendGitCLI, gitcliRepo.NewGitCLIRevisionRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() *OutputRegistry {
		reg := NewOutputRegistry()
		reg.Register(entities.OutputGitHub, func(path string, _ io.Writer) domainRepos.OutputRepository {
			return outputRepo.NewGitHubOutputRepository(path)
		})
		reg.Register(entities.OutputText, func(_ string, writer io.Writer) domainRepos.OutputRepository {
			return outputRepo.NewTextOutputRepository(writer)
		})
		reg.Register(entities.OutputJSON, func(_ string, writer io.Writer) domainRepos.OutputRepository {
			return outputRepo.NewJSONOutputRepository(writer)
		})
		reg.Register(entities.OutputYAML, func(_ string, writer io.Writer) domainRepos.OutputRepository {
			return outputRepo.NewYAMLOutputRepository(writer)
		})
		return reg
	}); err != nil {
		return err
	}

	return container.Provide(fsRepo.NewFilesystemTreeRepository)
}
