package main

import (
	"context"

	"github.com/sdeoras/servable/cache"
	"github.com/sdeoras/servable/pipeline"
	"github.com/sirupsen/logrus"
)

// predictService is the transport-independent core both the gRPC and HTTP
// surfaces call into: cache lookup, pipeline run, cache fill.
type predictService struct {
	pipe          *pipeline.Pipeline
	cache         *cache.Cache
	backend       string
	policy        pipeline.Policy
	signatureKey  string
	numClasses    int
	bundleVersion int64
}

func (s *predictService) predict(ctx context.Context, reqID string, images [][]byte) (*pipeline.BatchResult, error) {
	log := logrus.WithField("reqID", reqID).WithField("images", len(images))

	var key string
	if s.cache != nil {
		key = cache.Key(s.backend, s.policy, images)
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warn("cache get failed: ", err)
		} else if cached != nil {
			log.Info("cache hit")
			return cached, nil
		}
	}

	res, err := s.pipe.Run(ctx, images)
	if err != nil {
		log.Error("predict failed: ", err)
		return nil, err
	}
	log.Info("predicted")

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res); err != nil {
			log.Warn("cache set failed: ", err)
		}
	}

	return res, nil
}
