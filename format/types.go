package format

type (
	// Interpretation describes the numeric storage kind of a dimension.
	Interpretation uint8
	// CompressionType selects the patch payload compression scheme.
	CompressionType uint8
	// Endianness flags the byte order of serialized records.
	Endianness uint8
)

const (
	TypeUnknown Interpretation = 0x0
	TypeInt8    Interpretation = 0x1 // TypeInt8 represents a signed 8-bit integer.
	TypeUint8   Interpretation = 0x2 // TypeUint8 represents an unsigned 8-bit integer.
	TypeInt16   Interpretation = 0x3 // TypeInt16 represents a signed 16-bit integer.
	TypeUint16  Interpretation = 0x4 // TypeUint16 represents an unsigned 16-bit integer.
	TypeInt32   Interpretation = 0x5 // TypeInt32 represents a signed 32-bit integer.
	TypeUint32  Interpretation = 0x6 // TypeUint32 represents an unsigned 32-bit integer.
	TypeInt64   Interpretation = 0x7 // TypeInt64 represents a signed 64-bit integer.
	TypeUint64  Interpretation = 0x8 // TypeUint64 represents an unsigned 64-bit integer.
	TypeFloat32 Interpretation = 0x9 // TypeFloat32 represents an IEEE-754 32-bit float.
	TypeFloat64 Interpretation = 0xA // TypeFloat64 represents an IEEE-754 64-bit float.

	CompressionNone CompressionType = 0x0 // CompressionNone stores raw concatenated records.
	CompressionZstd CompressionType = 0x1 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x2 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x3 // CompressionLZ4 represents LZ4 block compression.

	NDR Endianness = 0x0 // NDR is little-endian wire data.
	XDR Endianness = 0x1 // XDR is big-endian wire data.
)

// Size returns the number of bytes a value of this interpretation occupies,
// or 0 for TypeUnknown.
func (i Interpretation) Size() int {
	switch i {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// IsInteger reports whether the interpretation stores an integer value.
func (i Interpretation) IsInteger() bool {
	switch i {
	case TypeInt8, TypeUint8, TypeInt16, TypeUint16, TypeInt32, TypeUint32, TypeInt64, TypeUint64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether the interpretation stores a signed value.
// Floats count as signed.
func (i Interpretation) IsSigned() bool {
	switch i {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64, TypeFloat32, TypeFloat64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the interpretation stores a floating-point value.
func (i Interpretation) IsFloat() bool {
	return i == TypeFloat32 || i == TypeFloat64
}

func (i Interpretation) String() string {
	switch i {
	case TypeInt8:
		return "int8_t"
	case TypeUint8:
		return "uint8_t"
	case TypeInt16:
		return "int16_t"
	case TypeUint16:
		return "uint16_t"
	case TypeInt32:
		return "int32_t"
	case TypeUint32:
		return "uint32_t"
	case TypeInt64:
		return "int64_t"
	case TypeUint64:
		return "uint64_t"
	case TypeFloat32:
		return "float"
	case TypeFloat64:
		return "double"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the interpretation as its schema-document type name,
// keeping JSON schema reports readable and stable.
func (i Interpretation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// ParseInterpretation maps a dimension-document type name to an
// Interpretation. It accepts both the C-style names used by pointcloud XML
// schema documents and the Go-style aliases.
func ParseInterpretation(name string) Interpretation {
	switch name {
	case "int8_t", "int8":
		return TypeInt8
	case "uint8_t", "uint8":
		return TypeUint8
	case "int16_t", "int16":
		return TypeInt16
	case "uint16_t", "uint16":
		return TypeUint16
	case "int32_t", "int32":
		return TypeInt32
	case "uint32_t", "uint32":
		return TypeUint32
	case "int64_t", "int64":
		return TypeInt64
	case "uint64_t", "uint64":
		return TypeUint64
	case "float", "float32":
		return TypeFloat32
	case "double", "float64":
		return TypeFloat64
	default:
		return TypeUnknown
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (e Endianness) String() string {
	switch e {
	case NDR:
		return "NDR"
	case XDR:
		return "XDR"
	default:
		return "Unknown"
	}
}
