package wire

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sadkowsr/pointcloud/errs"
)

// DecodeHex converts a base-16 string into a freshly owned byte buffer of
// half its character length. Odd-length input and non-hex characters fail
// with ErrMalformedHex. Both upper and lower case digits are accepted.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", errs.ErrMalformedHex, len(s))
	}

	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedHex, err)
	}

	return buf, nil
}

// EncodeHex renders bytes as an upper-case base-16 string, the form wire
// records take in textual database dumps.
func EncodeHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
