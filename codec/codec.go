package codec

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rentdb/rentdb/model"
)

// A Codec converts one entity record to and from its fixed-size binary
// slot. Layouts are little-endian: a 1-byte active flag, a 4-byte signed
// id, then the entity fields in declaration order. The flag position is
// part of the wire contract; Marshal always writes it active, only the
// store flips it when tombstoning.
type Codec[T model.Record] interface {
	// Size returns the fixed slot size in bytes.
	Size() int
	// Marshal encodes rec into a new Size()-byte block.
	Marshal(rec T) ([]byte, error)
	// Unmarshal decodes a Size()-byte block; any other length fails
	// with ErrSlotSize.
	Unmarshal(data []byte) (T, error)
}

var ErrSlotSize = errors.New("codec: slot size mismatch")

// ActiveFlag and InactiveFlag are the two values of a slot's leading byte.
const (
	ActiveFlag   byte = 1
	InactiveFlag byte = 0
)

// Active reports whether a slot's leading flag byte marks it live.
// Any non-zero value counts.
func Active(flag byte) bool { return flag != InactiveFlag }

// putString right-pads s with zero bytes to the width of dst. dst comes
// from a freshly zeroed block, so copying is enough; oversized text is
// rejected upstream by record validation.
func putString(dst []byte, s string) {
	copy(dst, s)
}

// getString decodes a zero-padded text field: the bytes before the first
// NUL, whitespace-trimmed. Undecodable sequences become the empty string.
func getString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	if !utf8.Valid(src) {
		return ""
	}
	return strings.TrimSpace(string(src))
}
