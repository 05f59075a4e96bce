package taskpool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imgtools/taskpool/pkg/common/validation"
	"github.com/imgtools/taskpool/pkg/metrics"
)

// FileConfig is the on-disk configuration for constructing a pool.
type FileConfig struct {
	Pool PoolFileConfig `yaml:"pool" json:"pool"`
}

// PoolFileConfig holds the pool settings of a configuration file.
type PoolFileConfig struct {
	Workers int    `yaml:"workers" json:"workers"`
	Name    string `yaml:"name" json:"name"`
	Metrics bool   `yaml:"metrics" json:"metrics"`
}

// LoadConfigFile reads a pool configuration from a YAML or JSON file,
// selected by file extension.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config FileConfig
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	return &config, nil
}

// Validate checks the loaded values.
func (f *FileConfig) Validate() error {
	return validation.ValidateNonNegative("config", "pool.workers", f.Pool.Workers)
}

// PoolConfig converts the file values into a runtime Config.
func (f *FileConfig) PoolConfig() Config {
	return Config{
		Workers: f.Pool.Workers,
		Name:    f.Pool.Name,
	}
}

// NewFromFile builds a pool from a configuration file. Setting workers to
// 0 in the file disables concurrency without changing call sites; setting
// metrics to true registers the pool with the default Prometheus registry.
func NewFromFile(path string) (*Pool, error) {
	fc, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	if err := fc.Validate(); err != nil {
		return nil, err
	}

	pool, err := NewWithConfig(fc.PoolConfig())
	if err != nil {
		return nil, err
	}

	if fc.Pool.Metrics {
		if err := pool.EnableMetrics(metrics.DefaultConfig()); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}
