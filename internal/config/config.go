package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	OpenAPI openAPIConfig `koanf:"openapi"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type storageConfig struct {
	DataDir    string        `koanf:"data_dir"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

type gitAuthorConfig struct {
	Name  string `koanf:"name"`
	Email string `koanf:"email"`
}

type gitConfig struct {
	WorkHome          string          `koanf:"work_home"`
	Projects          []string        `koanf:"projects"`
	Username          string          `koanf:"username"`
	Password          string          `koanf:"password"`
	Timeout           time.Duration   `koanf:"timeout"`
	SafeBranch        string          `koanf:"safe_branch"`
	ProtectedBranches []string        `koanf:"protected_branches"`
	Author            gitAuthorConfig `koanf:"author"`
}

type manifestConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Path         string `koanf:"path"`
	GroupID      string `koanf:"group_id"`
	ArtifactID   string `koanf:"artifact_id"`
	Version      string `koanf:"version"`
	ModulePrefix string `koanf:"module_prefix"`
}

type commitsConfig struct {
	PageSize int `koanf:"page_size"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage  storageConfig  `koanf:"storage"`
	Git      gitConfig      `koanf:"git"`
	Manifest manifestConfig `koanf:"manifest"`
	Commits  commitsConfig  `koanf:"commits"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
			OpenAPI: openAPIConfig{
				Enabled:    true,
				PublicHost: "",
				PublicPath: "/api/v1",
			},
		},

		Storage: storageConfig{
			DataDir:    "./data",
			GCInterval: 10 * time.Minute,
		},

		Git: gitConfig{
			WorkHome:          "./workspace/modules",
			Projects:          []string{},
			Timeout:           2 * time.Minute,
			SafeBranch:        "master",
			ProtectedBranches: []string{"master", "develop"},
		},

		Manifest: manifestConfig{
			Enabled:      false,
			Path:         "",
			GroupID:      "com.example",
			ArtifactID:   "fleet",
			Version:      "1.0.0-SNAPSHOT",
			ModulePrefix: "../modules/",
		},

		Commits: commitsConfig{
			PageSize: 10,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
