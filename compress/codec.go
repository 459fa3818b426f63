package compress

import (
	"fmt"
	"sync"

	"github.com/sadkowsr/pointcloud/format"
)

// Compressor compresses a flat patch payload (concatenated point records).
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a flat patch payload from its compressed form.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// The input must have been produced by the matching Compressor; corrupted
	// or mismatched data yields an error. The returned slice is newly
	// allocated and owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one scheme. The internal
// layout of a codec's output is opaque to the wire format: a patch record
// only stores which selector produced the payload.
type Codec interface {
	Compressor
	Decompressor
}

var (
	codecMu sync.RWMutex
	codecs  = map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
)

// GetCodec retrieves the Codec registered for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	codecMu.RLock()
	defer codecMu.RUnlock()

	if codec, ok := codecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Register installs a codec for a compression selector, replacing any
// previous registration. It is the extension point for compression schemes
// whose internals this module does not define: embedders register the codec
// once at startup and tag their schemas with the matching selector.
func Register(compressionType format.CompressionType, codec Codec) {
	codecMu.Lock()
	defer codecMu.Unlock()

	codecs[compressionType] = codec
}
