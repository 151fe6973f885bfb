package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Holds settings that are awkward to express as env vars.
type YAMLConfig struct {
	Fallback FallbackConfig  `yaml:"fallback"`
	Keywords []KeywordConfig `yaml:"keywords"`
}

// FallbackConfig shapes the filler reply used when no keyword matches.
type FallbackConfig struct {
	Vocabulary []string `yaml:"vocabulary,omitempty"`
	MaxWords   int      `yaml:"max_words,omitempty"` // exclusive upper bound on word count
}

// KeywordConfig is an extra keyword/response pair layered over the seed file.
type KeywordConfig struct {
	Keyword  string `yaml:"keyword"`
	Response string `yaml:"response"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFrom(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFrom loads the YAML configuration from path.
func LoadYAMLConfigFrom(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Pairs flattens the keyword list into alternating keyword, response strings.
func (c *YAMLConfig) Pairs() []string {
	if c == nil {
		return nil
	}
	pairs := make([]string, 0, 2*len(c.Keywords))
	for _, k := range c.Keywords {
		pairs = append(pairs, k.Keyword, k.Response)
	}
	return pairs
}

// FallbackVocabulary returns the configured filler words, or nil for the default.
func (c *YAMLConfig) FallbackVocabulary() []string {
	if c == nil {
		return nil
	}
	return c.Fallback.Vocabulary
}

// FallbackMaxWords returns the configured filler length bound, or 0 for the default.
func (c *YAMLConfig) FallbackMaxWords() int {
	if c == nil {
		return 0
	}
	return c.Fallback.MaxWords
}
