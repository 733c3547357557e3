package main

import (
	"flag"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sdeoras/servable/cache"
	"github.com/sdeoras/servable/config"
	"github.com/sdeoras/servable/export"
	"github.com/sdeoras/servable/onnxmodel"
	"github.com/sdeoras/servable/pipeline"
	"github.com/sdeoras/servable/proto"
	"github.com/sdeoras/servable/tfmodel"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type modelHandle interface {
	pipeline.Classifier
	Close() error
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Info("could not read ", *configPath, ", using defaults")
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	if !strings.Contains(cfg.Server.GRPCHost, ":") {
		logrus.Fatal("server.grpc_host requires a port number")
	}

	model, policy, version, sigKey, err := buildModel(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	pipe, err := pipeline.New(model, policy, cfg.Pipeline.DecodeWorkers)
	if err != nil {
		logrus.Fatal(err)
	}

	svc := &predictService{
		pipe:          pipe,
		backend:       cfg.Model.Backend,
		policy:        policy,
		signatureKey:  sigKey,
		numClasses:    cfg.Model.NumClasses,
		bundleVersion: version,
	}

	if cfg.Cache.Enabled {
		c := cache.New(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, cfg.Cache.TTL)
		if err := c.Ping(context.Background()); err != nil {
			logrus.Warn("redis unreachable, serving without cache: ", err)
			c.Close()
		} else {
			logrus.Info("prediction cache enabled: ", cfg.Cache.Addr)
			svc.cache = c
		}
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCHost)
	if err != nil {
		logrus.Fatal(err)
	}
	s := grpc.NewServer()
	proto.RegisterPredictServer(s, &predictServer{svc: svc})
	reflection.Register(s)

	cerr := make(chan error)
	go func(c chan error) {
		logrus.Info("grpc listening on ", cfg.Server.GRPCHost)
		c <- s.Serve(lis)
	}(cerr)

	go func(c chan error) {
		logrus.Info("http listening on ", cfg.Server.HTTPHost)
		c <- newRouter(svc, cfg.Server.Mode).Run(cfg.Server.HTTPHost)
	}(cerr)

	logrus.Info("serving backend: ", cfg.Model.Backend,
		", policy: ", policy,
		", bundle version: ", version)
	logrus.Info("ctrl-c to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-cerr:
		model.Close()
		logrus.Fatal(err)
	case sig := <-stop:
		logrus.Info("shutting down on signal: ", sig)
		s.GracefulStop()
		if svc.cache != nil {
			svc.cache.Close()
		}
		if err := model.Close(); err != nil {
			logrus.Error("closing model: ", err)
		}
	}
}

// buildModel constructs the configured classifier handle and resolves the
// effective policy, bundle version, and signature key. An explicit
// pipeline.policy overrides the one recorded in a bundle.
func buildModel(cfg *config.Config) (modelHandle, pipeline.Policy, int64, string, error) {
	sigKey := export.DefaultSignatureKey

	switch cfg.Model.Backend {
	case config.BackendTensorFlow:
		if cfg.Model.BundleDir != "" {
			bundle, err := export.Latest(cfg.Model.BundleDir)
			if err != nil {
				return nil, "", 0, "", err
			}
			logrus.Info("loading bundle version ", bundle.Version, " from ", cfg.Model.BundleDir)

			policyName := bundle.Signature.Policy
			if cfg.Pipeline.Policy != "" {
				policyName = cfg.Pipeline.Policy
			}
			policy, err := pipeline.ParsePolicy(policyName)
			if err != nil {
				return nil, "", 0, "", err
			}

			model, err := tfmodel.New(bundle.GraphDef, bundle.Signature.InputOp, bundle.Signature.OutputOp)
			if err != nil {
				return nil, "", 0, "", err
			}
			return model, policy, bundle.Version, bundle.Signature.Key, nil
		}

		policy, err := pipeline.ParsePolicy(cfg.Pipeline.Policy)
		if err != nil {
			return nil, "", 0, "", err
		}
		logrus.Info("loading frozen graph: ", cfg.Model.GraphPath)
		model, err := tfmodel.LoadFile(cfg.Model.GraphPath, cfg.Model.InputOp, cfg.Model.OutputOp)
		if err != nil {
			return nil, "", 0, "", err
		}
		return model, policy, 0, sigKey, nil

	case config.BackendONNX:
		policy, err := pipeline.ParsePolicy(cfg.Pipeline.Policy)
		if err != nil {
			return nil, "", 0, "", err
		}
		logrus.Info("loading onnx model: ", cfg.Model.OnnxPath)
		model, err := onnxmodel.New(cfg.Model.OnnxPath, cfg.Model.InputOp, cfg.Model.OutputOp, cfg.Model.NumClasses)
		if err != nil {
			return nil, "", 0, "", err
		}
		return model, policy, 0, sigKey, nil

	default:
		return nil, "", 0, "", &pipeline.ConfigurationError{Reason: "unknown model backend " + cfg.Model.Backend}
	}
}
