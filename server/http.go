package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sdeoras/servable/pipeline"
)

type predictRequest struct {
	Images [][]byte `json:"images"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter(svc *predictService, mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/v1/model", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"backend":        svc.backend,
			"policy":         string(svc.policy),
			"signature_key":  svc.signatureKey,
			"num_classes":    svc.numClasses,
			"bundle_version": svc.bundleVersion,
		})
	})

	r.POST("/v1/predict", func(c *gin.Context) {
		var req predictRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		reqID := uuid.New().String()
		res, err := svc.predict(c.Request.Context(), reqID, req.Images)
		if err != nil {
			c.JSON(httpStatus(err), errorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, res)
	})

	return r
}

func httpStatus(err error) int {
	switch err.(type) {
	case *pipeline.DecodeError:
		return http.StatusBadRequest
	case *pipeline.ConfigurationError:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
