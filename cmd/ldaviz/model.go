package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/ldaviz/prepare"
)

// modelFile is the on-disk shape of a fitted model's raw output. Field names
// follow the conventional artifact layout emitted by topic-model tooling.
type modelFile struct {
	TopicTermDists [][]float64 `json:"topic_term_dists"`
	DocTopicDists  [][]float64 `json:"doc_topic_dists"`
	DocLengths     []float64   `json:"doc_lengths"`
	Vocab          []string    `json:"vocab"`
	TermFrequency  []float64   `json:"term_frequency"`
}

// loadModelFile reads and decodes a model artifact. Shape and stochasticity
// validation is left to prepare.Prepare, which reports every violation at
// once.
func loadModelFile(path string) (prepare.ModelData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return prepare.ModelData{}, fmt.Errorf("read model file: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(raw, &mf); err != nil {
		return prepare.ModelData{}, fmt.Errorf("decode model file %s: %w", path, err)
	}

	return prepare.ModelData{
		TopicTermDists: mf.TopicTermDists,
		DocTopicDists:  mf.DocTopicDists,
		DocLengths:     mf.DocLengths,
		Vocab:          mf.Vocab,
		TermFrequency:  mf.TermFrequency,
	}, nil
}
