// Package workload produces the subjects a benchmark run measures: files
// read from disk, or deterministic synthetic buffers.
package workload

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	mrand "math/rand"
)

// Segment kinds mixed by the generator. Text and runs compress well,
// random bytes do not, hex sits in between.
const (
	SegmentText   = "text"
	SegmentRandom = "random"
	SegmentRun    = "run"
	SegmentHex    = "hex"
)

var segmentKinds = []string{SegmentText, SegmentRandom, SegmentRun, SegmentHex}

var vocabulary = []string{
	"state", "trie", "block", "frame", "window", "literal", "match",
	"offset", "entropy", "huffman", "token", "buffer", "stream", "header",
	"checksum", "digest", "round", "lane", "seed", "bound",
}

// Summary contains statistics about generated content.
type Summary struct {
	Bytes    int
	Segments map[string]int
}

// Config controls synthetic content generation.
type Config struct {
	Seed int64

	// SegmentSize is the average length of one homogeneous segment.
	SegmentSize int
}

// DefaultSegmentSize is used when Config.SegmentSize is not positive.
const DefaultSegmentSize = 4 << 10

// Generator produces deterministic content from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = DefaultSegmentSize
	}

	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Generate writes exactly n bytes of mixed content to w.
func (g *Generator) Generate(w io.Writer, n int) (Summary, error) {
	summary := Summary{Segments: make(map[string]int, len(segmentKinds))}

	for summary.Bytes < n {
		kind := segmentKinds[g.rng.Intn(len(segmentKinds))]
		size := g.cfg.SegmentSize/2 + g.rng.Intn(g.cfg.SegmentSize)
		size = min(size, n-summary.Bytes)

		var seg []byte
		switch kind {
		case SegmentText:
			seg = g.text(size)
		case SegmentRandom:
			seg = g.Random(size)
		case SegmentRun:
			seg = bytes.Repeat([]byte{byte(g.rng.Intn(256))}, size)
		case SegmentHex:
			seg = g.hex(size)
		}

		if _, err := w.Write(seg); err != nil {
			return summary, fmt.Errorf("write %s segment: %w", kind, err)
		}

		summary.Bytes += len(seg)
		summary.Segments[kind]++
	}

	return summary, nil
}

// Random returns n pseudo-random bytes.
func (g *Generator) Random(n int) []byte {
	buf := make([]byte, n)
	g.rng.Read(buf)

	return buf
}

func (g *Generator) text(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n + 16)

	for buf.Len() < n {
		buf.WriteString(vocabulary[g.rng.Intn(len(vocabulary))])
		buf.WriteByte(' ')
	}

	return buf.Bytes()[:n]
}

func (g *Generator) hex(n int) []byte {
	raw := g.Random(n/2 + 1)
	out := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(out, raw)

	return out[:n]
}

// SelfCheckName identifies the built-in self-check subject.
const SelfCheckName = "self-check"

// SelfCheck builds the fixed subject every variant is verified against
// before any user input is touched.
func SelfCheck(cfg Config, size int) (Subject, error) {
	var buf bytes.Buffer
	buf.Grow(size)

	if _, err := NewGenerator(cfg).Generate(&buf, size); err != nil {
		return Subject{}, fmt.Errorf("generate self-check: %w", err)
	}

	return Subject{Name: SelfCheckName, Data: buf.Bytes()}, nil
}
