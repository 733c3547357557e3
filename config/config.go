// Package config loads server configuration from YAML with defaults for
// everything except the normalization policy, which has to be an explicit
// choice: a defaulted policy that mismatches the weights degrades accuracy
// without any error.
package config

import (
	"fmt"
	"time"

	"github.com/sdeoras/servable/pipeline"
	"github.com/spf13/viper"
)

// Recognized classifier backends.
const (
	BackendTensorFlow = "tensorflow"
	BackendONNX       = "onnx"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Model    ModelConfig    `mapstructure:"model"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

type ServerConfig struct {
	GRPCHost string `mapstructure:"grpc_host"`
	HTTPHost string `mapstructure:"http_host"`
	Mode     string `mapstructure:"mode"`
}

type ModelConfig struct {
	Backend    string `mapstructure:"backend"`
	BundleDir  string `mapstructure:"bundle_dir"`
	GraphPath  string `mapstructure:"graph_path"`
	OnnxPath   string `mapstructure:"onnx_path"`
	InputOp    string `mapstructure:"input_op"`
	OutputOp   string `mapstructure:"output_op"`
	LabelsPath string `mapstructure:"labels_path"`
	NumClasses int    `mapstructure:"num_classes"`
}

type PipelineConfig struct {
	Policy        string `mapstructure:"policy"`
	DecodeWorkers int    `mapstructure:"decode_workers"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Load reads a YAML config file over the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// New loads config.yaml from the working directory, falling back to the
// defaults when the file is absent.
func New() *Config {
	cfg, err := Load("config.yaml")
	if err != nil {
		return getDefaultConfig()
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_host", ":7001")
	v.SetDefault("server.http_host", ":8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("model.backend", BackendTensorFlow)
	v.SetDefault("model.bundle_dir", "")
	v.SetDefault("model.graph_path", "")
	v.SetDefault("model.onnx_path", "")
	v.SetDefault("model.input_op", "input")
	v.SetDefault("model.output_op", "output")
	v.SetDefault("model.labels_path", "")
	v.SetDefault("model.num_classes", pipeline.NumClasses)

	// no default for pipeline.policy: it must be chosen explicitly
	v.SetDefault("pipeline.policy", "")
	v.SetDefault("pipeline.decode_workers", 0)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", time.Hour)
}

func getDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCHost: ":7001",
			HTTPHost: ":8080",
			Mode:     "release",
		},
		Model: ModelConfig{
			Backend:    BackendTensorFlow,
			InputOp:    "input",
			OutputOp:   "output",
			NumClasses: pipeline.NumClasses,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  time.Hour,
		},
	}
}

// Validate checks backend selection, model sources, and the policy. A bundle
// directory carries its own policy, so pipeline.policy may stay empty in
// that case only.
func (c *Config) Validate() error {
	switch c.Model.Backend {
	case BackendTensorFlow:
		if c.Model.BundleDir == "" && c.Model.GraphPath == "" {
			return &pipeline.ConfigurationError{Reason: "tensorflow backend needs model.bundle_dir or model.graph_path"}
		}
	case BackendONNX:
		if c.Model.OnnxPath == "" {
			return &pipeline.ConfigurationError{Reason: "onnx backend needs model.onnx_path"}
		}
	default:
		return &pipeline.ConfigurationError{Reason: "unknown model backend " + c.Model.Backend}
	}

	usesBundlePolicy := c.Model.Backend == BackendTensorFlow && c.Model.BundleDir != "" && c.Pipeline.Policy == ""
	if !usesBundlePolicy {
		if _, err := pipeline.ParsePolicy(c.Pipeline.Policy); err != nil {
			return err
		}
	}

	if c.Model.NumClasses <= 0 {
		return &pipeline.ConfigurationError{Reason: fmt.Sprintf("bad model.num_classes %d", c.Model.NumClasses)}
	}

	return nil
}
