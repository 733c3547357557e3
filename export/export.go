// Package export writes and reads versioned servable bundles: one immutable
// directory per version pairing a frozen graph with the signature that
// declares the predict request/response contract.
package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sdeoras/servable/pipeline"
)

// Files inside a bundle version directory.
const (
	GraphFile     = "frozen_graph.pb"
	LabelsFile    = "labels.txt"
	SignatureFile = "signature.json"
)

// DefaultSignatureKey is the signature name clients and servers agree on.
const DefaultSignatureKey = "predict"

// Signature declares the contract a bundle serves: the named key, the input
// and output fields, the normalization policy the weights were trained
// under, and the graph operations to feed and fetch.
type Signature struct {
	Key        string   `json:"signature_key"`
	Inputs     []string `json:"inputs"`
	Outputs    []string `json:"outputs"`
	Policy     string   `json:"normalization_policy"`
	InputOp    string   `json:"input_op"`
	OutputOp   string   `json:"output_op"`
	NumClasses int      `json:"num_classes"`
	ImageSize  int      `json:"image_size"`
	TopCount   int      `json:"top_count"`
}

// DefaultSignature fills the fixed parts of the predict contract.
func DefaultSignature(policy pipeline.Policy, inputOp, outputOp string) Signature {
	return Signature{
		Key:        DefaultSignatureKey,
		Inputs:     []string{"images"},
		Outputs:    []string{"classes", "probabilities"},
		Policy:     string(policy),
		InputOp:    inputOp,
		OutputOp:   outputOp,
		NumClasses: pipeline.NumClasses,
		ImageSize:  pipeline.ImageSize,
		TopCount:   pipeline.TopCount,
	}
}

func (s Signature) validate() error {
	if s.Key == "" {
		return &pipeline.ConfigurationError{Reason: "signature key is empty"}
	}
	if _, err := pipeline.ParsePolicy(s.Policy); err != nil {
		return err
	}
	return nil
}

// Bundle is one loaded servable version.
type Bundle struct {
	Version   int64
	Signature Signature
	GraphDef  []byte
	Labels    []string
}

// Export writes a new bundle under <base>/<version>/ and returns its path.
// An already-existing version directory fails the export and stays
// untouched: deployed versions are immutable.
func Export(base string, version int64, graphDef []byte, labels []string, sig Signature) (string, error) {
	if version < 0 {
		return "", &pipeline.ConfigurationError{Reason: fmt.Sprintf("bad bundle version %d", version)}
	}
	if err := sig.validate(); err != nil {
		return "", err
	}
	if len(graphDef) == 0 {
		return "", &pipeline.ConfigurationError{Reason: "empty graph def"}
	}

	if err := os.MkdirAll(base, 0755); err != nil {
		return "", err
	}

	dir := filepath.Join(base, strconv.FormatInt(version, 10))
	if _, err := os.Stat(dir); err == nil {
		return "", &pipeline.ConfigurationError{
			Reason: fmt.Sprintf("bundle version %d already exists under %s", version, base),
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}

	// Stage the bundle in a temp sibling and rename into place, so a failed
	// write never leaves a partial version directory claiming the id.
	// Versions skips non-numeric names, so the staging dir stays invisible.
	tmp, err := ioutil.TempDir(base, ".export-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmp)

	if err := ioutil.WriteFile(filepath.Join(tmp, GraphFile), graphDef, 0644); err != nil {
		return "", err
	}

	if len(labels) > 0 {
		var b bytes.Buffer
		for _, l := range labels {
			fmt.Fprintln(&b, l)
		}
		if err := ioutil.WriteFile(filepath.Join(tmp, LabelsFile), b.Bytes(), 0644); err != nil {
			return "", err
		}
	}

	jb, err := json.MarshalIndent(sig, "", "  ")
	if err != nil {
		return "", err
	}
	if err := ioutil.WriteFile(filepath.Join(tmp, SignatureFile), jb, 0644); err != nil {
		return "", err
	}

	// Rename fails if dir appeared since the Stat, keeping versions immutable.
	if err := os.Rename(tmp, dir); err != nil {
		if dirExists(dir) {
			return "", &pipeline.ConfigurationError{
				Reason: fmt.Sprintf("bundle version %d already exists under %s", version, base),
				Err:    err,
			}
		}
		return "", err
	}

	return dir, nil
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Versions lists the bundle versions under base in ascending order.
func Versions(base string) ([]int64, error) {
	entries, err := ioutil.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var versions []int64
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := strconv.ParseInt(e.Name(), 10, 64)
		if err != nil || v < 0 {
			continue
		}
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions, nil
}

// NextVersion returns the smallest version strictly greater than every
// existing one, starting at 1 for an empty base.
func NextVersion(base string) (int64, error) {
	versions, err := Versions(base)
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 1, nil
	}
	return versions[len(versions)-1] + 1, nil
}

// Open loads one bundle version.
func Open(base string, version int64) (*Bundle, error) {
	dir := filepath.Join(base, strconv.FormatInt(version, 10))

	jb, err := ioutil.ReadFile(filepath.Join(dir, SignatureFile))
	if err != nil {
		return nil, &pipeline.ConfigurationError{
			Reason: fmt.Sprintf("bundle %d has no readable signature", version),
			Err:    err,
		}
	}
	var sig Signature
	if err := json.Unmarshal(jb, &sig); err != nil {
		return nil, &pipeline.ConfigurationError{
			Reason: fmt.Sprintf("bundle %d signature is malformed", version),
			Err:    err,
		}
	}
	if err := sig.validate(); err != nil {
		return nil, err
	}

	graphDef, err := ioutil.ReadFile(filepath.Join(dir, GraphFile))
	if err != nil {
		return nil, &pipeline.ConfigurationError{
			Reason: fmt.Sprintf("bundle %d has no readable graph", version),
			Err:    err,
		}
	}

	var labels []string
	if f, err := os.Open(filepath.Join(dir, LabelsFile)); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if line != "" {
				labels = append(labels, line)
			}
		}
		serr := scanner.Err()
		f.Close()
		if serr != nil {
			return nil, serr
		}
	}

	return &Bundle{
		Version:   version,
		Signature: sig,
		GraphDef:  graphDef,
		Labels:    labels,
	}, nil
}

// Latest opens the highest version under base.
func Latest(base string) (*Bundle, error) {
	versions, err := Versions(base)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, &pipeline.ConfigurationError{Reason: "no bundle versions under " + base}
	}
	return Open(base, versions[len(versions)-1])
}
