package config

import (
	"github.com/caarlos0/env/v11"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultImageTemplate renders the image reference of a task instance.
const DefaultImageTemplate = "swebench/sweb.eval.x86_64.{{ .Owner | lower }}_1776_{{ .Repo | lower }}-{{ .PR }}"

// Settings are process-level options read from the environment.
type Settings struct {
	ConfigPath    string `env:"PREP_CONFIG"             envDefault:"prep.yaml"`
	StateDir      string `env:"PREP_STATE_DIR"          envDefault:".prep"`
	LogFormat     string `env:"PREP_LOG_FORMAT"         envDefault:"auto"`
	ImageTemplate string `env:"PREP_IMAGE_TEMPLATE"`
	DockerNetwork string `env:"PREP_DOCKER_NETWORK"     envDefault:"none"`
	GitHubToken   string `env:"GITHUB_TOKEN"`
	GitHubAPIURL  string `env:"PREP_GITHUB_GRAPHQL_URL" envDefault:"https://api.github.com/graphql"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}
	if s.ImageTemplate == "" {
		s.ImageTemplate = DefaultImageTemplate
	}
	return &s, nil
}
