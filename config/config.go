package config

import (
	"github.com/speakerdesk/sd_backend/environment"

	"go.uber.org/config"
)

// EmailConfig is a struct to store the configuration for outgoing emails
type EmailConfig struct {
	NoreplyEmailAddr string `yaml:"noreply_email_addr"`
	NoreplyEmailName string `yaml:"noreply_email_name"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name        string      `yaml:"name"`
	AppURL      string      `yaml:"app_url"`
	DefaultRole string      `yaml:"default_role"`
	Email       EmailConfig `yaml:"email"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	var configProvider *config.YAML
	var err error
	configFiles := []config.YAMLOption{config.File("base.yaml")}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File("production.yaml"))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File("development.yaml"))
	}
	configProvider, err = config.NewYAML(configFiles...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
