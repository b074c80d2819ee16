package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const checksumBytes = 4

// ErrBadEncoding is returned for text that is not prefix_base58check.
var ErrBadEncoding = errors.New("bad base58check encoding")

// EncodeCheck returns prefix + "_" + base58(payload || checksum), where the
// checksum is the first four bytes of a double SHA-256 over payload.
func EncodeCheck(prefix string, payload []byte) string {
	buf := make([]byte, 0, len(payload)+checksumBytes)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload)...)
	return prefix + "_" + base58.Encode(buf)
}

// DecodeCheck reverses EncodeCheck, verifying both the prefix and the checksum.
func DecodeCheck(prefix, s string) ([]byte, error) {
	body, ok := strings.CutPrefix(s, prefix+"_")
	if !ok {
		return nil, fmt.Errorf("%w: want %s_ prefix", ErrBadEncoding, prefix)
	}
	raw, err := base58.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	if len(raw) < checksumBytes {
		return nil, fmt.Errorf("%w: too short", ErrBadEncoding)
	}
	payload, sum := raw[:len(raw)-checksumBytes], raw[len(raw)-checksumBytes:]
	if !bytes.Equal(checksum(payload), sum) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrBadEncoding)
	}
	return payload, nil
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumBytes]
}
