package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/sdeoras/servable/pipeline"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  grpc_host: ":9001"
model:
  backend: onnx
  onnx_path: /models/resnet50.onnx
  num_classes: 1000
pipeline:
  policy: centered-unit
  decode_workers: 4
cache:
  enabled: true
  addr: redis:6379
  ttl: 10m
`
	if err := ioutil.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.GRPCHost != ":9001" {
		t.Fatalf("grpc_host: got %q", cfg.Server.GRPCHost)
	}
	if cfg.Server.HTTPHost != ":8080" {
		t.Fatalf("http_host default missing: got %q", cfg.Server.HTTPHost)
	}
	if cfg.Model.Backend != BackendONNX || cfg.Model.OnnxPath != "/models/resnet50.onnx" {
		t.Fatalf("model section: %+v", cfg.Model)
	}
	if cfg.Model.NumClasses != 1000 {
		t.Fatalf("num_classes: got %d", cfg.Model.NumClasses)
	}
	if cfg.Pipeline.Policy != string(pipeline.PolicyCenteredUnit) {
		t.Fatalf("policy: got %q", cfg.Pipeline.Policy)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Addr != "redis:6379" {
		t.Fatalf("cache section: %+v", cfg.Cache)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c := getDefaultConfig()
		c.Model.GraphPath = "/models/graph.pb"
		c.Pipeline.Policy = string(pipeline.PolicyMeanSubtracted)
		return c
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	c := base()
	c.Model.Backend = "caffe"
	if err := c.Validate(); err == nil {
		t.Fatal("unknown backend accepted")
	}

	c = base()
	c.Pipeline.Policy = ""
	if err := c.Validate(); err == nil {
		t.Fatal("unset policy accepted without a bundle")
	}

	// a bundle dir carries its own policy
	c = base()
	c.Model.GraphPath = ""
	c.Model.BundleDir = "/models/servable"
	c.Pipeline.Policy = ""
	if err := c.Validate(); err != nil {
		t.Fatalf("bundle-provided policy rejected: %v", err)
	}

	c = base()
	c.Model.Backend = BackendONNX
	if err := c.Validate(); err == nil {
		t.Fatal("onnx backend without a model path accepted")
	}

	c = base()
	c.Model.GraphPath = ""
	if err := c.Validate(); err == nil {
		t.Fatal("tensorflow backend without graph or bundle accepted")
	}

	c = base()
	c.Model.NumClasses = 0
	if err := c.Validate(); err == nil {
		t.Fatal("zero num_classes accepted")
	}
}
