package vfs

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encoding tags how a file payload is stored in the source document.
type Encoding uint8

const (
	// EncodingText stores the payload verbatim.
	EncodingText Encoding = iota
	// EncodingBase64 stores the payload base64-encoded; it is decoded
	// lazily on read, never at load time.
	EncodingBase64
)

// String returns the encoding as it appears in source documents.
func (e Encoding) String() string {
	if e == EncodingBase64 {
		return "base64"
	}
	return "text"
}

// ParseEncoding maps a document encoding attribute to an Encoding.
// The empty string defaults to text.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "", "text":
		return EncodingText, nil
	case "base64":
		return EncodingBase64, nil
	default:
		return EncodingText, fmt.Errorf("unknown encoding %q", s)
	}
}

// Content is a file payload tagged with its stored encoding.
type Content struct {
	encoding Encoding
	raw      string
}

// NewContent creates a payload in its raw, undecoded form.
func NewContent(encoding Encoding, raw string) Content {
	return Content{encoding: encoding, raw: raw}
}

// Encoding returns the stored encoding tag.
func (c Content) Encoding() Encoding { return c.encoding }

// Raw returns the payload exactly as it appeared in the source document.
func (c Content) Raw() string { return c.raw }

// Size returns the stored payload length in bytes.
func (c Content) Size() int { return len(c.raw) }

// Bytes decodes the payload per its encoding. Base64 payloads tolerate
// embedded whitespace, which XML sources routinely introduce.
func (c Content) Bytes() ([]byte, error) {
	switch c.encoding {
	case EncodingBase64:
		compact := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\n', '\r':
				return -1
			}
			return r
		}, c.raw)
		data, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return nil, fmt.Errorf("base64: %v: %w", err, ErrDecode)
		}
		return data, nil
	default:
		return []byte(c.raw), nil
	}
}
