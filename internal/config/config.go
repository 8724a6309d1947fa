package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultN0        = 1.0
	DefaultSteps     = 100
	DefaultR         = 0.5
	DefaultK         = 20.0
	DefaultSweepMin  = 0.5
	DefaultSweepMax  = 3.5
	DefaultSweepVals = 300
	DefaultSweepTail = 100
)

type Config struct {
	Law     string      `yaml:"law"`
	N0      float64     `yaml:"n0"`
	Steps   int         `yaml:"steps"`
	Params  LawParams   `yaml:"params"`
	Harvest float64     `yaml:"harvest"`
	Sweep   SweepConfig `yaml:"sweep"`
}

type LawParams struct {
	R float64 `yaml:"r"`
	K float64 `yaml:"k"`
}

type SweepConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
	Tail  int     `yaml:"tail"`
}

func DefaultConfig() *Config {
	return &Config{
		Law:   "ricker",
		N0:    DefaultN0,
		Steps: DefaultSteps,
		Params: LawParams{
			R: DefaultR,
			K: DefaultK,
		},
		Sweep: SweepConfig{
			Min:   DefaultSweepMin,
			Max:   DefaultSweepMax,
			Steps: DefaultSweepVals,
			Tail:  DefaultSweepTail,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
