// Package config loads and validates the TOML configuration of the agent
// binaries. Invalid configuration is fatal at startup; validation never
// prints secret material.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/outbe/fingerprinting/secretsharing"
)

// Engine modes recognized in fingerprint-service.type.
const (
	TypeNaive       = "Naive"
	TypeCooperative = "Cooperative"
)

// Duration wraps time.Duration for TOML strings like "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// GRPC is the public endpoint of agents hosting the fingerprint service.
type GRPC struct {
	Address string `toml:"address"`
	Port    int    `toml:"port"`
}

// AgentGRPC is the agent-to-agent cooperation endpoint.
type AgentGRPC struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Member references one agent of the deployment.
type Member struct {
	AgentID int    `toml:"agent_id"`
	Address string `toml:"address"`
}

// Service selects and parameterizes the protocol engine.
type Service struct {
	Type string `toml:"type"`

	// Naive mode.
	Secret string `toml:"secret"`

	// Cooperative mode.
	AgentID     int      `toml:"agent_id"`
	SecretShard string   `toml:"secret_shard"`
	Agents      int      `toml:"agents"`
	Threshold   int      `toml:"threshold"`
	Members     []Member `toml:"members"`

	// Optional per-request deadline, default 5s.
	Deadline Duration `toml:"deadline"`
}

// Config is the full agent configuration.
type Config struct {
	GRPC               GRPC      `toml:"grpc"`
	AgentGRPC          AgentGRPC `toml:"agent-grpc"`
	FingerprintService Service   `toml:"fingerprint-service"`
}

// Default returns the reference configuration user files overlay.
func Default() *Config {
	return &Config{
		GRPC:      GRPC{Address: "0.0.0.0", Port: 9000},
		AgentGRPC: AgentGRPC{Host: "0.0.0.0", Port: 9001},
		FingerprintService: Service{
			Type:     TypeNaive,
			Deadline: Duration(5 * time.Second),
		},
	}
}

// Load reads the TOML file at path over the defaults and validates it.
func Load(path string) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadLight reads the configuration of a light agent: only the cooperation
// endpoint and the shard are required.
func LoadLight(path string) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	if err := c.ValidateShard(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for a full agent.
func (c *Config) Validate() error {
	switch c.FingerprintService.Type {
	case TypeNaive:
		return c.validateNaive()
	case TypeCooperative:
		return c.validateCooperative()
	default:
		return fmt.Errorf("fingerprint-service.type must be %s or %s, got %q",
			TypeNaive, TypeCooperative, c.FingerprintService.Type)
	}
}

func (c *Config) validateNaive() error {
	if c.FingerprintService.Secret == "" {
		return errors.New("fingerprint-service.secret is missing")
	}
	if _, err := secretsharing.DecodeScalar(c.FingerprintService.Secret); err != nil {
		return fmt.Errorf("fingerprint-service.secret: %v", err)
	}
	return nil
}

func (c *Config) validateCooperative() error {
	s := &c.FingerprintService
	if s.Agents < 1 {
		return errors.New("fingerprint-service.agents must be at least 1")
	}
	if s.Threshold < 1 || s.Threshold > s.Agents {
		return fmt.Errorf("fingerprint-service.threshold %d out of range for %d agents", s.Threshold, s.Agents)
	}
	if s.AgentID < 1 || s.AgentID > s.Agents {
		return fmt.Errorf("fingerprint-service.agent_id %d out of range for %d agents", s.AgentID, s.Agents)
	}
	if err := c.ValidateShard(); err != nil {
		return err
	}
	if len(s.Members) != s.Agents {
		return fmt.Errorf("fingerprint-service.members lists %d agents, expected %d", len(s.Members), s.Agents)
	}
	seen := make(map[int]bool)
	selfListed := false
	for _, m := range s.Members {
		if m.AgentID < 1 || m.AgentID > s.Agents {
			return fmt.Errorf("members: agent_id %d out of range", m.AgentID)
		}
		if seen[m.AgentID] {
			return fmt.Errorf("members: duplicate agent_id %d", m.AgentID)
		}
		seen[m.AgentID] = true
		if m.AgentID == s.AgentID {
			selfListed = true
			continue
		}
		if m.Address == "" {
			return fmt.Errorf("members: agent %d has no address", m.AgentID)
		}
	}
	if !selfListed {
		return fmt.Errorf("members: own agent_id %d is not listed", s.AgentID)
	}
	return nil
}

// ValidateShard checks presence and decodability of the secret shard. Light
// agents use it directly, without the full cooperative topology.
func (c *Config) ValidateShard() error {
	if c.FingerprintService.SecretShard == "" {
		return errors.New("fingerprint-service.secret_shard is missing")
	}
	if _, err := secretsharing.DecodeScalar(c.FingerprintService.SecretShard); err != nil {
		return fmt.Errorf("fingerprint-service.secret_shard: %v", err)
	}
	return nil
}
