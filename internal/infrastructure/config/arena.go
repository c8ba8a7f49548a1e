package config

// ArenaConfig is the root config for arena geometry files
type ArenaConfig struct {
	ID     string        `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name"`
	Spawn  [3]float64    `json:"spawn" yaml:"spawn"`
	Facing [3]float64    `json:"facing" yaml:"facing"`
	Boxes  []BoxConfig   `json:"boxes" yaml:"boxes"`
	Planes []PlaneConfig `json:"planes" yaml:"planes"`
}

// BoxConfig is an axis-aligned solid box.
// An empty Surface is inferred from Name.
type BoxConfig struct {
	Name    string     `json:"name" yaml:"name"`
	Min     [3]float64 `json:"min" yaml:"min"`
	Max     [3]float64 `json:"max" yaml:"max"`
	Surface string     `json:"surface,omitempty" yaml:"surface,omitempty"`
}

// PlaneConfig is an infinite one-sided plane
type PlaneConfig struct {
	Name    string     `json:"name" yaml:"name"`
	Point   [3]float64 `json:"point" yaml:"point"`
	Normal  [3]float64 `json:"normal" yaml:"normal"`
	Surface string     `json:"surface,omitempty" yaml:"surface,omitempty"`
}
