package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sdeoras/servable/proto"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

type Results struct {
	Round       int
	BatchSize   int
	ComputeTime time.Duration
}

// bench replays the same predict batch repeatedly and records per-round
// latency, for sizing deployments.
func main() {
	t0 := time.Now()
	host := flag.String("host", "0.0.0.0:7001", "grpc server host:port")
	outDir := flag.String("out-dir", "/tf/output", "output dir")
	inputDir := flag.String("input-dir", "/tf/images", "input folder")
	jobID := flag.String("job-id", "default", "job id")
	batchSize := flag.Int("batch-size", 32, "images per predict call")
	rounds := flag.Int("rounds", 10, "number of rounds to run")
	flag.Parse()

	if !strings.Contains(*host, ":") {
		logrus.Fatal("--host needs a port number")
	}

	if *jobID == "default" {
		*jobID = uuid.New().String()
		logrus.Info("using job id:", *jobID)
	}

	logrus.Info("dialing grpc server: ", *host)
	ctx := context.Background()
	conn, err := grpc.Dial(*host, grpc.WithInsecure())
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()
	client := proto.NewPredictClient(conn)
	logrus.Info("connected to grpc server: ", *host)

	files, err := ioutil.ReadDir(*inputDir)
	if err != nil {
		logrus.Fatal(err)
	}

	var images [][]byte
	for _, f := range files {
		if f.IsDir() || strings.ToLower(filepath.Ext(f.Name())) != ".jpg" {
			continue
		}
		raw, err := ioutil.ReadFile(filepath.Join(*inputDir, f.Name()))
		if err != nil {
			logrus.Fatal(err)
		}
		images = append(images, raw)
		if len(images) == *batchSize {
			break
		}
	}
	if len(images) == 0 {
		logrus.Fatal("no .jpg files under ", *inputDir)
	}
	logrus.Info("benchmark batch size: ", len(images))

	var b bytes.Buffer
	bw := bufio.NewWriter(&b)
	for i := 0; i < *rounds; i++ {
		t := time.Now()
		if _, err := client.Classify(ctx, &proto.PredictRequest{Images: images}); err != nil {
			logrus.Fatal(err)
		}

		out := Results{Round: i, BatchSize: len(images), ComputeTime: time.Since(t)}
		jb, err := json.Marshal(out)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(bw, string(jb))
		logrus.Info("round ", i, " took: ", out.ComputeTime)
	}

	if err := bw.Flush(); err != nil {
		logrus.Fatal(err)
	}

	timeStamp := strconv.FormatInt(time.Now().UnixNano(), 16)
	dirName := filepath.Join(*outDir, *jobID)
	fileName := filepath.Join(dirName, *jobID+"_"+timeStamp+".json")

	if err := os.MkdirAll(dirName, 0755); err != nil {
		logrus.Fatal(err)
	}
	if err := ioutil.WriteFile(fileName, b.Bytes(), 0644); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("writing output: ", fileName)
	logrus.Info("all done: ", time.Since(t0))
}
