package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3YAML is a plain (x,y,z) triple as it appears in a scenario file.
type Vec3YAML struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Move describes one requested motion in a scenario file.
type Move struct {
	Type      string   `yaml:"type"` // "line", "circle", or "rigidtap"
	Label     string   `yaml:"label"`
	Start     Vec3YAML `yaml:"start"`
	End       Vec3YAML `yaml:"end"`
	Center    Vec3YAML `yaml:"center,omitempty"`
	ReqVel    float64  `yaml:"reqvel"`
	MaxVel    float64  `yaml:"maxvel"`
	MaxAccel  float64  `yaml:"maxaccel"`
	Tolerance float64  `yaml:"tolerance"`
	// RigidTap fields, only meaningful when Type == "rigidtap".
	UUPerRev       float64 `yaml:"uu_per_rev"`
	ReversalTarget float64 `yaml:"reversal_target"`
}

// Scenario is a full scenario file: global planner settings plus an
// ordered list of moves.
type Scenario struct {
	Name       string  `yaml:"name"`
	CycleTime  float64 `yaml:"cycle_time"`
	VMax       float64 `yaml:"vmax"`
	VLimit     float64 `yaml:"vlimit"`
	AMax       float64 `yaml:"amax"`
	QueueDepth int     `yaml:"queue_depth"`
	Moves      []Move  `yaml:"moves"`
}

// LoadScenario reads and parses a scenario file from path.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, err
	}
	if sc.CycleTime <= 0 {
		sc.CycleTime = 0.001
	}
	if sc.QueueDepth <= 0 {
		sc.QueueDepth = 32
	}
	return sc, nil
}
