package main

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/sdeoras/servable/pipeline"
	"github.com/sdeoras/servable/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	srv := &predictServer{svc: newTestService(t, nil)}

	req := &proto.PredictRequest{Images: [][]byte{
		testJPEG(t, color.RGBA{R: 250, G: 0, B: 0, A: 255}),
		testJPEG(t, color.RGBA{R: 0, G: 250, B: 0, A: 255}),
	}}

	resp, err := srv.Classify(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Classes) != 2 || len(resp.Probabilities) != 2 {
		t.Fatalf("expected 2 rows, got %d/%d", len(resp.Classes), len(resp.Probabilities))
	}
	for i := range resp.Classes {
		if len(resp.Classes[i].Ids) != pipeline.TopCount {
			t.Fatalf("row %d: expected %d ids, got %d", i, pipeline.TopCount, len(resp.Classes[i].Ids))
		}
		if len(resp.Probabilities[i].Values) != pipeline.TopCount {
			t.Fatalf("row %d: expected %d values, got %d", i, pipeline.TopCount, len(resp.Probabilities[i].Values))
		}
	}
}

func TestClassifyBadImage(t *testing.T) {
	srv := &predictServer{svc: newTestService(t, nil)}

	req := &proto.PredictRequest{Images: [][]byte{
		testJPEG(t, color.RGBA{R: 250, G: 0, B: 0, A: 255}),
		[]byte("not a jpeg"),
	}}

	_, err := srv.Classify(context.Background(), req)
	if err == nil {
		t.Fatal("expected failure for a bad image")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestClassifyModelFault(t *testing.T) {
	srv := &predictServer{svc: newTestService(t, errors.New("session is gone"))}

	req := &proto.PredictRequest{Images: [][]byte{
		testJPEG(t, color.RGBA{R: 1, G: 1, B: 1, A: 255}),
	}}

	_, err := srv.Classify(context.Background(), req)
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}

func TestClassifyEmptyBatch(t *testing.T) {
	srv := &predictServer{svc: newTestService(t, nil)}

	resp, err := srv.Classify(context.Background(), &proto.PredictRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Classes) != 0 || len(resp.Probabilities) != 0 {
		t.Fatal("expected empty response for empty batch")
	}
}

func TestInfo(t *testing.T) {
	srv := &predictServer{svc: newTestService(t, nil)}

	info, err := srv.Info(context.Background(), &proto.Empty{})
	if err != nil {
		t.Fatal(err)
	}
	if info.Backend != "tensorflow" || info.Policy != string(pipeline.PolicyCenteredUnit) {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.SignatureKey != "predict" || info.BundleVersion != 1 {
		t.Fatalf("unexpected info: %+v", info)
	}
}
