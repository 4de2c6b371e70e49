// Package bench drives a benchmark run: it verifies every variant, times
// all (subject, variant) pairs over repeated trials and hands the averaged
// tables to the report writers.
package bench

import (
	"github.com/weiihann/algobench/algo"
	"github.com/weiihann/algobench/harness"
)

// Domain is the fixed configuration of one benchmark family.
type Domain struct {
	// Name appears in logs and summaries.
	Name string

	// Label titles the subject column of the reports.
	Label string

	Registry *algo.Registry
	Metric   harness.Metric

	// QualityName describes the quality metric in summaries.
	QualityName string

	// SpeedFile and QualityFile are the report names inside the output
	// directory.
	SpeedFile   string
	QualityFile string
}

// Compression measures compressors on files.
func Compression() (Domain, error) {
	reg, err := algo.Compressors()
	if err != nil {
		return Domain{}, err
	}

	return Domain{
		Name:        "compression",
		Label:       "filename",
		Registry:    reg,
		Metric:      harness.Ratio,
		QualityName: "Ratio",
		SpeedFile:   "speed.csv",
		QualityFile: "compression.csv",
	}, nil
}

// Hashing measures hash functions on synthetic buffers.
func Hashing() (Domain, error) {
	reg, err := algo.Hashes()
	if err != nil {
		return Domain{}, err
	}

	return Domain{
		Name:        "hash",
		Label:       "bytes",
		Registry:    reg,
		Metric:      harness.Throughput,
		QualityName: "MiB/s",
		SpeedFile:   "hash_speed.csv",
		QualityFile: "hash_throughput.csv",
	}, nil
}
