package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"image/jpeg"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/sdeoras/servable/labels"
	"github.com/sdeoras/servable/pipeline"
	"github.com/sdeoras/servable/proto"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

func getFileList(inputDir string) ([]string, error) {
	var names []string

	files, err := ioutil.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name()))
		if !f.IsDir() && (ext == ".jpg" || ext == ".jpeg") {
			names = append(names, f.Name())
		}
	}

	return names, nil
}

// prepareJPEG resizes an arbitrary jpeg to the model input size and
// re-encodes it. Resizing is the client's job; the server never resamples.
func prepareJPEG(raw []byte) ([]byte, error) {
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != pipeline.ImageSize || b.Dy() != pipeline.ImageSize {
		img = resize.Resize(pipeline.ImageSize, pipeline.ImageSize, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func main() {
	t0 := time.Now()
	var b bytes.Buffer
	bw := bufio.NewWriter(&b)

	// flag management
	host := flag.String("host", "0.0.0.0:7001", "grpc server host:port")
	inDir := flag.String("input-dir", "/tf/images", "input dir")
	outDir := flag.String("out-dir", "/tf/out", "output dir")
	jobID := flag.String("job-id", "default", "job id")
	batchSize := flag.Int("batch-size", 32, "images per predict call")
	labelsPath := flag.String("labels", "", "optional imagenet labels file")
	flag.Parse()

	if !strings.Contains(*host, ":") {
		logrus.Fatal("--host requires a port number")
	}

	if *batchSize <= 0 {
		logrus.Fatal("--batch-size has to be a positive integer")
	}

	if *jobID == "default" {
		*jobID = uuid.New().String()
		logrus.Info("using job id: ", *jobID)
	}

	var labelTable []string
	if *labelsPath != "" {
		var err error
		labelTable, err = labels.Load(*labelsPath)
		if err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("loaded labels: ", len(labelTable))
	}

	// grpc dialing
	logrus.Info("dialing grpc server: ", *host)
	ctx := context.Background()
	conn, err := grpc.Dial(*host, grpc.WithInsecure())
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()
	client := proto.NewPredictClient(conn)
	logrus.Info("connected to grpc server: ", *host)

	filenames, err := getFileList(*inDir)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("found images: ", len(filenames))

	// loop over batches
	for start := 0; start < len(filenames); start += *batchSize {
		end := start + *batchSize
		if end > len(filenames) {
			end = len(filenames)
		}
		names := filenames[start:end]

		images := make([][]byte, 0, len(names))
		sizes := make([]uint64, 0, len(names))
		ioTimes := make([]time.Duration, 0, len(names))
		kept := make([]string, 0, len(names))

		for _, name := range names {
			tLoop := time.Now()
			fileName := filepath.Join(*inDir, name)
			raw, err := ioutil.ReadFile(fileName)
			if err != nil {
				logrus.Error("error on file read: ", err, ", ", fileName)
				continue
			}

			prepared, err := prepareJPEG(raw)
			if err != nil {
				logrus.Error("error preparing image: ", err, ", ", fileName)
				continue
			}

			images = append(images, prepared)
			sizes = append(sizes, uint64(len(raw)))
			ioTimes = append(ioTimes, time.Since(tLoop))
			kept = append(kept, name)
		}

		if len(images) == 0 {
			continue
		}

		logrus.Info("computing batch of: ", len(images))
		tBatch := time.Now()
		resp, err := client.Classify(ctx, &proto.PredictRequest{Images: images})
		if err != nil {
			logrus.Fatal("error in predict call: ", err)
		}
		computeTime := time.Since(tBatch)

		result, err := proto.UnmarshalResult(resp)
		if err != nil {
			logrus.Fatal("bad response: ", err)
		}
		if len(result.Classes) != len(images) {
			logrus.Fatal("response rows do not match request: ", len(result.Classes))
		}

		for i, name := range kept {
			top := make([]LabelResult, len(result.Classes[i]))
			for j, class := range result.Classes[i] {
				top[j] = LabelResult{
					Class:       class,
					Label:       labels.Name(labelTable, class),
					Probability: result.Probabilities[i][j],
				}
			}

			out := ClassifyResult{
				Filename:    name,
				FileSize:    sizes[i],
				FileIOTime:  ioTimes[i],
				ComputeTime: computeTime,
				Labels:      top,
			}
			if len(top) > 0 {
				out.Label = top[0].Label
				out.Conf = int(top[0].Probability * 100)
			}

			jb, err := json.Marshal(out)
			if err != nil {
				logrus.Error("error in json marshaling: ", err, ", ", name)
				continue
			}
			bw.Write(jb)
			bw.Write([]byte("\n"))
		}
		logrus.Info("batch took: ", computeTime, ", for jobID: ", *jobID)
	}

	// output
	timeStamp := strconv.FormatInt(time.Now().UnixNano(), 16)
	dirName := filepath.Join(*outDir, *jobID)
	fileName := filepath.Join(dirName, *jobID+"_"+timeStamp+".json")

	if err := os.MkdirAll(dirName, 0755); err != nil {
		logrus.Fatal(err)
	}

	if err := bw.Flush(); err != nil {
		logrus.Fatal(err)
	}
	if outBytes := b.Bytes(); len(outBytes) > 0 {
		if err := ioutil.WriteFile(fileName, outBytes, 0644); err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("writing output: ", fileName)
	}

	// all done
	logrus.Info("all done: ", time.Since(t0))
}
