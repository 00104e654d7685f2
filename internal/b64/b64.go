// Package b64 implements the base64 codec used when embedding image payloads
// into cell metadata. The encoder is written against the exact bit-packing the
// notebook format expects so output stays byte-for-byte stable across hosts.
package b64

import (
	"errors"
	"fmt"
	"strings"
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	padChar = '='
)

// ErrInvalidLength indicates an encoded string whose length cannot result from
// a valid encoding (4n+1 symbols before padding).
var ErrInvalidLength = errors.New("b64: invalid encoded length")

// ErrTrailingBits indicates an encoded string whose final symbol carries
// non-zero unused bits, which no encoder output can produce.
var ErrTrailingBits = errors.New("b64: non-zero trailing bits")

type config struct {
	padded  bool
	urlSafe bool
}

// Option adjusts encoder or decoder behaviour.
type Option func(*config)

// WithoutPadding suppresses trailing '=' characters on encode and makes the
// decoder tolerate their absence.
func WithoutPadding() Option {
	return func(c *config) {
		c.padded = false
	}
}

// URLSafe selects the URL-safe alphabet ('-' and '_' instead of '+' and '/').
func URLSafe() Option {
	return func(c *config) {
		c.urlSafe = true
	}
}

func newConfig(opts []Option) config {
	cfg := config{padded: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) alphabet() string {
	if c.urlSafe {
		return urlAlphabet
	}
	return stdAlphabet
}

// Encode converts data into base64 text. Input is consumed in 3-byte groups,
// each mapped to four symbols most-significant bits first. A 1-byte remainder
// yields two symbols, a 2-byte remainder three; padding fills the group to
// four symbols unless WithoutPadding is set. Empty input yields "".
func Encode(data []byte, opts ...Option) string {
	cfg := newConfig(opts)
	alphabet := cfg.alphabet()

	var out strings.Builder
	out.Grow((len(data) + 2) / 3 * 4)

	full := len(data) / 3 * 3
	for i := 0; i < full; i += 3 {
		v := uint32(data[i])<<16 | uint32(data[i+1])<<8 | uint32(data[i+2])
		out.WriteByte(alphabet[v>>18&0x3F])
		out.WriteByte(alphabet[v>>12&0x3F])
		out.WriteByte(alphabet[v>>6&0x3F])
		out.WriteByte(alphabet[v&0x3F])
	}

	switch len(data) - full {
	case 1:
		v := uint32(data[full])
		out.WriteByte(alphabet[v>>2])
		out.WriteByte(alphabet[v&0x03<<4])
		if cfg.padded {
			out.WriteByte(padChar)
			out.WriteByte(padChar)
		}
	case 2:
		v := uint32(data[full])<<8 | uint32(data[full+1])
		out.WriteByte(alphabet[v>>10])
		out.WriteByte(alphabet[v>>4&0x3F])
		out.WriteByte(alphabet[v&0x0F<<2])
		if cfg.padded {
			out.WriteByte(padChar)
		}
	}

	return out.String()
}

// Decode reverses Encode. Both alphabets are accepted regardless of options so
// callers can round-trip standard and URL-safe payloads with one decoder.
// Trailing padding is optional; non-canonical encodings whose final symbol
// carries non-zero unused bits are rejected.
func Decode(encoded string, opts ...Option) ([]byte, error) {
	_ = newConfig(opts)

	encoded = strings.TrimRight(encoded, string(padChar))
	if encoded == "" {
		return []byte{}, nil
	}
	if len(encoded)%4 == 1 {
		return nil, ErrInvalidLength
	}

	out := make([]byte, 0, len(encoded)/4*3+2)

	var (
		acc  uint32
		bits int
	)
	for i := 0; i < len(encoded); i++ {
		v, err := symbolValue(encoded[i])
		if err != nil {
			return nil, err
		}
		acc = acc<<6 | uint32(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
		}
	}

	if bits > 0 && acc&(1<<uint(bits)-1) != 0 {
		return nil, ErrTrailingBits
	}

	return out, nil
}

func symbolValue(c byte) (byte, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', nil
	case c >= 'a' && c <= 'z':
		return c - 'a' + 26, nil
	case c >= '0' && c <= '9':
		return c - '0' + 52, nil
	case c == '+' || c == '-':
		return 62, nil
	case c == '/' || c == '_':
		return 63, nil
	}
	return 0, fmt.Errorf("b64: invalid symbol %q", c)
}
