package algo

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/minio/highwayhash"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Keyed hashes use fixed keys so digests are reproducible across runs.
var (
	highwayKey = []byte("algobench highwayhash key 32byte")
	sipK0      = uint64(0x0706050403020100)
	sipK1      = uint64(0x0f0e0d0c0b0a0908)
	castagnoli = crc32.MakeTable(crc32.Castagnoli)
)

// Hashes returns the hash registry in report column order.
func Hashes() (*Registry, error) {
	return NewRegistry(KindHash,
		hash64("xxhash64", xxhash.Sum64),
		hash64("xxh3", xxh3.Hash),
		Variant{
			Name:  "xxh3_128",
			Width: 16,
			Bound: fixed(16),
			Forward: func(dst, src []byte) (int, error) {
				if len(dst) < 16 {
					return 0, ErrShortBuffer
				}
				sum := xxh3.Hash128(src)
				binary.BigEndian.PutUint64(dst[0:8], sum.Hi)
				binary.BigEndian.PutUint64(dst[8:16], sum.Lo)

				return 16, nil
			},
		},
		Variant{
			Name:  "blake3",
			Width: 32,
			Bound: fixed(32),
			Forward: func(dst, src []byte) (int, error) {
				if len(dst) < 32 {
					return 0, ErrShortBuffer
				}
				sum := blake3.Sum256(src)

				return copy(dst, sum[:]), nil
			},
		},
		hash64("highwayhash64", func(b []byte) uint64 {
			return highwayhash.Sum64(b, highwayKey)
		}),
		hash64("siphash", func(b []byte) uint64 {
			return siphash.Hash(sipK0, sipK1, b)
		}),
		Variant{
			Name:  "crc32c",
			Width: 4,
			Bound: fixed(4),
			Forward: func(dst, src []byte) (int, error) {
				if len(dst) < 4 {
					return 0, ErrShortBuffer
				}
				binary.LittleEndian.PutUint32(dst, crc32.Checksum(src, castagnoli))

				return 4, nil
			},
		},
	)
}

func hash64(name string, sum func([]byte) uint64) Variant {
	return Variant{
		Name:  name,
		Width: 8,
		Bound: fixed(8),
		Forward: func(dst, src []byte) (int, error) {
			if len(dst) < 8 {
				return 0, ErrShortBuffer
			}
			binary.LittleEndian.PutUint64(dst, sum(src))

			return 8, nil
		},
	}
}

// fixed is the bound of a digest: its width regardless of input size.
func fixed(width int) func(int) int {
	return func(int) int { return width }
}
