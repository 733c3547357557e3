// exporter packages a frozen classification graph, its label file, and the
// predict signature into a new immutable bundle version.
package main

import (
	"flag"
	"io/ioutil"
	"time"

	"github.com/sdeoras/servable/export"
	"github.com/sdeoras/servable/labels"
	"github.com/sdeoras/servable/pipeline"
	"github.com/sirupsen/logrus"
)

var (
	graphPath    *string
	labelsPath   *string
	baseDir      *string
	version      *int64
	useTimestamp *bool
	policyName   *string
	inputOp      *string
	outputOp     *string
	sigKey       *string
)

func main() {
	// flag management
	graphPath = flag.String("graph", "", "path to frozen graph .pb file")
	labelsPath = flag.String("labels", "", "optional path to imagenet labels file")
	baseDir = flag.String("base", "/tf/servable", "bundle base dir")
	version = flag.Int64("version", -1, "bundle version, -1 picks the next one")
	useTimestamp = flag.Bool("use-timestamp", false, "use unix time as the version")
	policyName = flag.String("policy", "", "normalization policy: centered-unit or mean-subtracted")
	inputOp = flag.String("input-op", "input", "graph input operation")
	outputOp = flag.String("output-op", "output", "graph output operation")
	sigKey = flag.String("signature-key", export.DefaultSignatureKey, "signature key")
	flag.Parse()

	if *graphPath == "" {
		logrus.Fatal("--graph is required")
	}

	policy, err := pipeline.ParsePolicy(*policyName)
	if err != nil {
		logrus.Fatal(err)
	}

	graphDef, err := ioutil.ReadFile(*graphPath)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("read graph: ", *graphPath, ", bytes: ", len(graphDef))

	var labelTable []string
	if *labelsPath != "" {
		labelTable, err = labels.Load(*labelsPath)
		if err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("read labels: ", len(labelTable))
	}

	v := *version
	if *useTimestamp {
		v = time.Now().Unix()
	} else if v < 0 {
		v, err = export.NextVersion(*baseDir)
		if err != nil {
			logrus.Fatal(err)
		}
	}

	sig := export.DefaultSignature(policy, *inputOp, *outputOp)
	sig.Key = *sigKey

	dir, err := export.Export(*baseDir, v, graphDef, labelTable, sig)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("exported bundle version ", v, ": ", dir)
}
