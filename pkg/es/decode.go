// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf8BOM    = []byte{0xef, 0xbb, 0xbf}
	utf16leBOM = []byte{0xff, 0xfe}
	utf16beBOM = []byte{0xfe, 0xff}
)

// decodeOutput converts raw es.exe output to a string. Depending on
// version and console settings es.exe emits UTF-8 (optionally with BOM),
// UTF-16, or the ANSI codepage, so try them in that order.
func decodeOutput(b []byte) string {
	if bytes.HasPrefix(b, utf8BOM) {
		return string(bytes.TrimPrefix(b, utf8BOM))
	}
	if bytes.HasPrefix(b, utf16leBOM) || bytes.HasPrefix(b, utf16beBOM) {
		if s, err := fromUTF16(b); err == nil {
			return s
		}
	}
	if utf8.Valid(b) {
		return string(b)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(b); err == nil {
		return string(decoded)
	}
	return string(b)
}

// fromUTF16 decodes UTF-16 data, honoring the BOM and falling back to
// little endian, which is what Windows uses by default.
func fromUTF16(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(b), dec))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
