// CLAUDE:SUMMARY Keeper configuration: wrapper/container conventions, event names, collision policy, YAML loader.
package domswap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Collision policies for two simultaneously-preserved wrappers claiming
// the same identity key.
const (
	// CollisionReject keeps the first parked wrapper; the newcomer stays in
	// the dying document and is not preserved.
	CollisionReject = "reject"
	// CollisionReplace evicts the first parked wrapper in favour of the
	// newcomer; the evicted one stays detached.
	CollisionReplace = "replace"
)

// Config holds all keeper configuration.
type Config struct {
	// IslandTag is the tag name identifying wrapper elements.
	IslandTag string `yaml:"island_tag"`
	// PropsAttr is the attribute carrying the serialized properties JSON.
	PropsAttr string `yaml:"props_attr"`
	// KeyProp is the property whose [0, "<key>"] value declares identity.
	KeyProp string `yaml:"key_prop"`
	// ContainerID is the well-known id of the holding container. The
	// surrounding document must mark that element to survive the swap.
	ContainerID string `yaml:"container_id"`
	// BeforeEvent and AfterEvent are the two document-level signals
	// bracketing a swap.
	BeforeEvent string `yaml:"before_event"`
	AfterEvent  string `yaml:"after_event"`
	// Collision selects the duplicate-key policy: reject | replace.
	Collision string `yaml:"collision"`
}

func (c *Config) defaults() {
	if c.IslandTag == "" {
		c.IslandTag = "astro-island"
	}
	if c.PropsAttr == "" {
		c.PropsAttr = "props"
	}
	if c.KeyProp == "" {
		c.KeyProp = "persist"
	}
	if c.ContainerID == "" {
		c.ContainerID = "island-keeper"
	}
	if c.BeforeEvent == "" {
		c.BeforeEvent = "astro:before-swap"
	}
	if c.AfterEvent == "" {
		c.AfterEvent = "astro:after-swap"
	}
	if c.Collision == "" {
		c.Collision = CollisionReject
	}
}

func (c *Config) validate() error {
	switch c.Collision {
	case CollisionReject, CollisionReplace:
		return nil
	default:
		return fmt.Errorf("domswap: unknown collision policy %q", c.Collision)
	}
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("domswap: parse config %s: %w", path, err)
	}
	cfg.defaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
