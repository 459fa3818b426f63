// Package compress provides the pluggable compression codecs applied to
// patch payloads before they are written as wire records.
//
// Built-in codecs cover the common cases:
//   - NoOp: raw concatenated records, no transformation
//   - Zstd: best ratio, for archival patches (cgo and pure-Go builds)
//   - S2: fastest, for hot read/write paths
//   - LZ4: balanced block compression
//
// Schemes beyond the built-ins plug in through Register; their internal
// layout is opaque to the wire format, which records only the selector.
package compress
