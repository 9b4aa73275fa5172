// Package workload drives arenas with configurable allocation mixes and
// verifies that every handle resolves back to the value it was minted for.
package workload

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

// Kind names a value type the workload can allocate.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindFloat  Kind = "float64"
	KindRecord Kind = "record"
)

// TypeSpec asks for Count values of one Kind.
type TypeSpec struct {
	Kind  Kind `yaml:"kind"`
	Count int  `yaml:"count"`
}

// Config describes a workload run.
type Config struct {
	// Workers is the number of goroutines, each with its own arena.
	Workers int `yaml:"workers"`
	// Rounds is the number of times each worker runs the schedule, each
	// round on a fresh arena that is released at the end of the round.
	Rounds int `yaml:"rounds"`
	// Interleave allocates kinds round-robin instead of one kind after another.
	Interleave bool       `yaml:"interleave"`
	Types      []TypeSpec `yaml:"types"`
}

// Default returns the built-in workload.
func Default() *Config {
	return &Config{
		Workers:    4,
		Rounds:     1,
		Interleave: true,
		Types: []TypeSpec{
			{Kind: KindInt, Count: 5000},
			{Kind: KindString, Count: 1200},
			{Kind: KindFloat, Count: 300},
			{Kind: KindRecord, Count: 2000},
		},
	}
}

// Load reads a YAML workload from path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workload")
	}
	defer f.Close()

	// An empty file leaves the defaults in place.
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && errors.Cause(err) != io.EOF {
		return nil, errors.Wrapf(err, "decode workload %s", path)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the workload can run.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Rounds <= 0 {
		return errors.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if len(c.Types) == 0 {
		return errors.New("no types configured")
	}
	seen := make(map[Kind]bool, len(c.Types))
	for _, t := range c.Types {
		switch t.Kind {
		case KindInt, KindString, KindFloat, KindRecord:
		default:
			return errors.Errorf("unknown kind %q", t.Kind)
		}
		if seen[t.Kind] {
			return errors.Errorf("kind %q listed twice", t.Kind)
		}
		seen[t.Kind] = true
		if t.Count < 0 {
			return errors.Errorf("kind %q: count must not be negative, got %d", t.Kind, t.Count)
		}
	}
	return nil
}

// Total returns the number of values one worker allocates per round.
func (c *Config) Total() int {
	n := 0
	for _, t := range c.Types {
		n += t.Count
	}
	return n
}

// schedule returns the order in which one worker allocates kinds.
func (c *Config) schedule() []Kind {
	plan := make([]Kind, 0, c.Total())
	if !c.Interleave {
		for _, t := range c.Types {
			for i := 0; i < t.Count; i++ {
				plan = append(plan, t.Kind)
			}
		}
		return plan
	}

	left := make([]int, len(c.Types))
	for i, t := range c.Types {
		left[i] = t.Count
	}
	for len(plan) < cap(plan) {
		for i, t := range c.Types {
			if left[i] > 0 {
				plan = append(plan, t.Kind)
				left[i]--
			}
		}
	}
	return plan
}
