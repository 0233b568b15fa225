// Package plantuml implements the PlantUML text encoding used to embed
// diagram source in rendering server URLs.
//
// The encoding is raw DEFLATE of the UTF-8 bytes followed by a base64-like
// transform over the alphabet 0-9A-Za-z-_ (same character set as URL-safe
// base64, but in a different order). The server reverses the transform to
// recover the original diagram text, so the only contract here is that
// [Decode] is the exact inverse of [Encode].
package plantuml

import (
	"bytes"
	"compress/flate"
	"io"
	"strings"

	"github.com/pumlex/pumlex/pkg/errors"
)

// alphabet maps 6-bit values to URL-safe characters in PlantUML's order.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// decodeTable is the inverse of alphabet; -1 marks invalid characters.
var decodeTable = func() [256]int16 {
	var t [256]int16
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int16(i)
	}
	return t
}()

// Encode compresses text with raw DEFLATE and encodes the result for use as
// a URL path segment. The transform is deterministic: the same text always
// yields the same token.
func Encode(text string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "compress diagram text")
	}
	if _, err := w.Write([]byte(text)); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "compress diagram text")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "compress diagram text")
	}
	return encode64(buf.Bytes()), nil
}

// Decode reverses Encode: it maps the token back to compressed bytes and
// inflates them into the original diagram text.
func Decode(token string) (string, error) {
	data, err := decode64(token)
	if err != nil {
		return "", err
	}
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	text, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "inflate token")
	}
	return string(text), nil
}

// encode64 packs each group of 3 bytes into 4 alphabet characters. A partial
// final group is zero-padded on the right; no padding characters are emitted,
// so the output length is always a multiple of 4.
func encode64(data []byte) string {
	var b strings.Builder
	b.Grow((len(data) + 2) / 3 * 4)
	for i := 0; i < len(data); i += 3 {
		var b2, b3 byte
		b1 := data[i]
		if i+1 < len(data) {
			b2 = data[i+1]
		}
		if i+2 < len(data) {
			b3 = data[i+2]
		}
		b.WriteByte(alphabet[b1>>2])
		b.WriteByte(alphabet[(b1&0x3)<<4|b2>>4])
		b.WriteByte(alphabet[(b2&0xF)<<2|b3>>6])
		b.WriteByte(alphabet[b3&0x3F])
	}
	return b.String()
}

// decode64 unpacks each group of 4 alphabet characters into 3 bytes. Padding
// introduced by encode64 decodes to trailing zero bytes, which the DEFLATE
// reader ignores past the end of the stream.
func decode64(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, errors.New(errors.ErrCodeEncoding, "token length %d is not a multiple of 4", len(s))
	}
	out := make([]byte, 0, len(s)/4*3)
	for i := 0; i < len(s); i += 4 {
		var v [4]byte
		for j := 0; j < 4; j++ {
			c := decodeTable[s[i+j]]
			if c < 0 {
				return nil, errors.New(errors.ErrCodeEncoding, "invalid token character %q", s[i+j])
			}
			v[j] = byte(c)
		}
		out = append(out, v[0]<<2|v[1]>>4, v[1]<<4|v[2]>>2, v[2]<<6|v[3])
	}
	return out, nil
}
