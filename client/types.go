package main

import "time"

type ClassifyResult struct {
	Filename    string        `json:"filename"`
	Label       string        `json:"label"`
	Conf        int           `json:"conf"`
	FileSize    uint64        `json:"filesize"`
	FileIOTime  time.Duration `json:"fileiotime"`
	ComputeTime time.Duration `json:"computetime"`
	Labels      []LabelResult `json:"labels"`
}

type LabelResult struct {
	Class       int     `json:"class"`
	Label       string  `json:"label,omitempty"`
	Probability float32 `json:"probability"`
}
