// Package config loads the resource locations of wsdindex.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/revelaction/wsdindex/wordnet"
)

const (
	DefaultResources = "resources"
	DefaultFormat    = "bin"
	EnvFile          = ".env"
)

// Config holds the locations of the corpora and of the WordNet dictionary.
type Config struct {
	// Directory with WSD_Training_Corpora and WSD_Unified_Evaluation_Datasets
	Resources string `yaml:"resources"`

	// WordNet dict directory or index.sense file
	WordNet string `yaml:"wordnet"`

	WordNetVersion string `yaml:"wordnet_version"`

	// Output format: bin or sqlite
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Resources:      DefaultResources,
		WordNetVersion: wordnet.DefaultVersion,
		Format:         DefaultFormat,
	}
}

// Load reads the YAML file at path over the defaults. Empty fields keep
// their default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	c.merge(fc)
	return c, nil
}

// LoadEnv loads environment variables from a .env file in the working
// directory, if there is one. Variables already set are not overridden.
func LoadEnv() error {
	err := godotenv.Load(EnvFile)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *Config) merge(o Config) {
	if o.Resources != "" {
		c.Resources = o.Resources
	}
	if o.WordNet != "" {
		c.WordNet = o.WordNet
	}
	if o.WordNetVersion != "" {
		c.WordNetVersion = o.WordNetVersion
	}
	if o.Format != "" {
		c.Format = o.Format
	}
}
