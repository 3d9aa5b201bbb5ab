package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a stress run. A YAML file may set any subset of the
// fields; unset fields fall back to the defaults.
type Scenario struct {
	Name     string  `yaml:"name"`
	Ops      int     `yaml:"ops"`
	Capacity int     `yaml:"capacity"`
	Seed     int64   `yaml:"seed"`
	FailRate float64 `yaml:"fail_rate"`
	Weights  Weights `yaml:"weights"`
}

// Weights sets the relative frequency of each operation kind. A zero weight
// disables the operation.
type Weights struct {
	Push    int `yaml:"push"`
	Pop     int `yaml:"pop"`
	Insert  int `yaml:"insert"`
	InsertN int `yaml:"insert_n"`
	Erase   int `yaml:"erase"`
	Resize  int `yaml:"resize"`
	Swap    int `yaml:"swap"`
	Clear   int `yaml:"clear"`
}

func defaultWeights() Weights {
	return Weights{
		Push:    30,
		Pop:     20,
		Insert:  15,
		InsertN: 5,
		Erase:   15,
		Resize:  8,
		Swap:    5,
		Clear:   2,
	}
}

func (s *Scenario) applyDefaults() {
	if s.Name == "" {
		s.Name = "default"
	}
	if s.Ops <= 0 {
		s.Ops = 200000
	}
	if s.Capacity <= 0 {
		s.Capacity = 64
	}
	if s.Weights == (Weights{}) {
		s.Weights = defaultWeights()
	}
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &s, nil
}
