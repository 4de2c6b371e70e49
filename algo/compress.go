package algo

import (
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// LZ4MaxInputSize is the largest block the LZ4 block format accepts
// (LZ4_MAX_INPUT_SIZE).
const LZ4MaxInputSize = 0x7E000000

// Compressors returns the compression registry in report column order:
// lz4, zstd_lvl1, zstd_lvl7, s2, snappy.
func Compressors() (*Registry, error) {
	zstd1, err := zstdVariant(1)
	if err != nil {
		return nil, err
	}

	zstd7, err := zstdVariant(7)
	if err != nil {
		return nil, err
	}

	return NewRegistry(KindCompression,
		lz4Variant(),
		zstd1,
		zstd7,
		s2Variant(),
		snappyVariant(),
	)
}

func lz4Variant() Variant {
	return Variant{
		Name: "lz4",
		Forward: func(dst, src []byte) (int, error) {
			n, err := lz4.CompressBlock(src, dst, nil)
			if err != nil {
				return 0, err
			}
			// A zero length means the block did not fit dst.
			if n == 0 {
				return 0, ErrShortBuffer
			}

			return n, nil
		},
		Inverse: func(dst, src []byte) (int, error) {
			return lz4.UncompressBlock(src, dst)
		},
		Bound:    lz4.CompressBlockBound,
		MaxInput: LZ4MaxInputSize,
	}
}

// zstdBound mirrors ZSTD_COMPRESSBOUND.
func zstdBound(n int) int {
	margin := 0
	if n < 128<<10 {
		margin = ((128 << 10) - n) >> 11
	}

	return n + (n >> 8) + margin
}

func zstdVariant(level int) (Variant, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return Variant{}, fmt.Errorf("zstd level %d encoder: %w", level, err)
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return Variant{}, fmt.Errorf("zstd decoder: %w", err)
	}

	return Variant{
		Name: fmt.Sprintf("zstd_lvl%d", level),
		Forward: func(dst, src []byte) (int, error) {
			return fit(dst, enc.EncodeAll(src, dst[:0]))
		},
		Inverse: func(dst, src []byte) (int, error) {
			var hdr zstd.Header
			if err := hdr.Decode(src); err != nil {
				return 0, fmt.Errorf("frame header: %w", err)
			}
			if hdr.HasFCS && hdr.FrameContentSize > uint64(len(dst)) {
				return 0, fmt.Errorf("%w: frame content size %d, have %d",
					ErrShortBuffer, hdr.FrameContentSize, len(dst))
			}

			out, err := dec.DecodeAll(src, dst[:0])
			if err != nil {
				return 0, err
			}

			return fit(dst, out)
		},
		Bound: zstdBound,
	}, nil
}

func s2Variant() Variant {
	return Variant{
		Name: "s2",
		Forward: func(dst, src []byte) (int, error) {
			return fit(dst, s2.Encode(dst, src))
		},
		Inverse: func(dst, src []byte) (int, error) {
			out, err := s2.Decode(dst, src)
			if err != nil {
				return 0, err
			}

			return fit(dst, out)
		},
		Bound: s2.MaxEncodedLen,
	}
}

func snappyVariant() Variant {
	return Variant{
		Name: "snappy",
		Forward: func(dst, src []byte) (int, error) {
			return fit(dst, snappy.Encode(dst, src))
		},
		Inverse: func(dst, src []byte) (int, error) {
			out, err := snappy.Decode(dst, src)
			if err != nil {
				return 0, err
			}

			return fit(dst, out)
		},
		Bound: snappy.MaxEncodedLen,
	}
}
