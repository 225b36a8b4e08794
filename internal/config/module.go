package config

import (
	"path/filepath"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/git"
	"github.com/gitfleet/gitfleet/internal/manifest"
	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/gitfleet/gitfleet/pkg/badgerfx"
	"github.com/gitfleet/gitfleet/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:        cfg.Storage.DataDir,
				InMemory:   cfg.Storage.InMemory,
				GCInterval: cfg.Storage.GCInterval,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Timeout:           cfg.Git.Timeout,
				SafeBranch:        cfg.Git.SafeBranch,
				ProtectedBranches: cfg.Git.ProtectedBranches,
				Credentials: git.CredentialsConfig{
					Username: cfg.Git.Username,
					Password: cfg.Git.Password,
				},
				Author: git.AuthorConfig{
					Name:  cfg.Git.Author.Name,
					Email: cfg.Git.Author.Email,
				},
			}
		}),
		fx.Provide(func(cfg Config) projects.Config {
			return projects.Config{
				WorkHome:   cfg.Git.WorkHome,
				RemoteURLs: cfg.Git.Projects,
			}
		}),
		fx.Provide(func(cfg Config) manifest.Config {
			return manifest.Config{
				Enabled:      cfg.Manifest.Enabled,
				Path:         manifestPath(cfg),
				GroupID:      cfg.Manifest.GroupID,
				ArtifactID:   cfg.Manifest.ArtifactID,
				Version:      cfg.Manifest.Version,
				ModulePrefix: cfg.Manifest.ModulePrefix,
			}
		}),
		fx.Provide(func(cfg Config) fleet.Config {
			return fleet.Config{
				PageSize: cfg.Commits.PageSize,
			}
		}),
	)
}

// manifestPath defaults to pom/pom.xml next to the work home directory.
func manifestPath(cfg Config) string {
	if cfg.Manifest.Path != "" {
		return cfg.Manifest.Path
	}

	workHome, err := filepath.Abs(cfg.Git.WorkHome)
	if err != nil {
		workHome = cfg.Git.WorkHome
	}

	return filepath.Join(filepath.Dir(workHome), "pom", "pom.xml")
}
