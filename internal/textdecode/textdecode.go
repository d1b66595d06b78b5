// Package textdecode turns raw Japanese text files into UTF-8.
package textdecode

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when the input is neither UTF-8, Shift_JIS nor EUC-JP.
var ErrUnknownEncoding = errors.New("unrecognized text encoding")

var candidates = []struct {
	name string
	enc  encoding.Encoding
}{
	{"shift_jis", japanese.ShiftJIS},
	{"euc-jp", japanese.EUCJP},
}

// Decode returns data as a UTF-8 string and the name of the encoding it was read as.
// A UTF-8 byte order mark is stripped.
func Decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
		if err != nil {
			return "", "", err
		}
		return string(text), "utf-8", nil
	}
	for _, c := range candidates {
		text, _, err := transform.Bytes(c.enc.NewDecoder(), data)
		if err != nil || !utf8.Valid(text) || bytes.ContainsRune(text, utf8.RuneError) {
			continue
		}
		return string(text), c.name, nil
	}
	return "", "", ErrUnknownEncoding
}
