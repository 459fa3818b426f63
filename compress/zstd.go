package compress

// ZstdCompressor compresses patch payloads with Zstandard. Best compression
// ratio of the built-in codecs; suited to archival patches that are written
// once and read rarely.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// and a pure-Go fallback (klauspost/compress/zstd) for cgo-less builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
