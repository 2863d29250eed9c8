package xml

import "unicode/utf8"

// utf8SeqLen classifies each possible lead byte by the number of bytes its
// UTF-8 sequence occupies. Values of 0 mark continuation/invalid lead bytes,
// which decodeRune treats as a single opaque byte. Supplements the parser's
// byte classification the way TinyXML's static utf8ByteTable[256] does.
var utf8SeqLen = func() [256]int {
	var t [256]int
	for b := 0; b < 0x80; b++ {
		t[b] = 1
	}
	for b := 0xC2; b <= 0xDF; b++ {
		t[b] = 2
	}
	for b := 0xE0; b <= 0xEF; b++ {
		t[b] = 3
	}
	for b := 0xF0; b <= 0xF4; b++ {
		t[b] = 4
	}
	return t
}()

// utf8BOM is the three-byte UTF-8 byte-order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeRune decodes the character at buf[pos] under the given encoding.
// Under EncodingLegacy every byte is its own one-byte "character". Under
// EncodingUTF8 a malformed lead byte still consumes exactly one byte so the
// scanner always makes progress.
func decodeRune(buf []byte, pos int, enc Encoding) (r rune, size int) {
	if pos >= len(buf) {
		return 0, 0
	}
	if enc == EncodingLegacy {
		return rune(buf[pos]), 1
	}
	b := buf[pos]
	if b < 0x80 {
		return rune(b), 1
	}
	n := utf8SeqLen[b]
	if n == 0 || pos+n > len(buf) {
		return utf8.RuneError, 1
	}
	r, sz := utf8.DecodeRune(buf[pos : pos+n])
	if r == utf8.RuneError && sz <= 1 {
		return utf8.RuneError, 1
	}
	return r, sz
}

// encodeUTF32ToUTF8 encodes a single code point into its UTF-8 byte
// sequence (1 to 4 bytes), as needed to materialize a decoded numeric
// character reference regardless of the source encoding mode.
func encodeUTF32ToUTF8(cp rune) []byte {
	if cp < 0 || cp > utf8.MaxRune || (cp >= 0xD800 && cp <= 0xDFFF) {
		cp = utf8.RuneError
	}
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, cp)
	return buf[:n]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipWhitespace advances past spaces, tabs, newlines, and carriage returns,
// additionally consuming one leading UTF-8 BOM at the very start of the
// buffer. It returns the new position; the caller is responsible for
// advancing a cursor over the skipped range.
func skipWhitespace(buf []byte, pos int, enc Encoding) int {
	if pos == 0 && enc == EncodingUTF8 && len(buf) >= 3 &&
		buf[0] == utf8BOM[0] && buf[1] == utf8BOM[1] && buf[2] == utf8BOM[2] {
		pos = 3
	}
	for pos < len(buf) && isSpaceByte(buf[pos]) {
		pos++
	}
	return pos
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isNameStart reports whether r may begin an XML name: an ASCII letter, an
// underscore, or any non-ASCII character (under legacy encoding any high
// byte; under UTF-8 any decoded code point except an invalid sequence).
func isNameStart(r rune, enc Encoding) bool {
	if isAlpha(r) || r == '_' {
		return true
	}
	if enc == EncodingLegacy {
		return r >= 0x80
	}
	return r >= 0x80 && r != utf8.RuneError
}

// isNameContinue reports whether r may continue (but not start) an XML
// name: everything isNameStart allows, plus digits, '-', '.', ':'.
func isNameContinue(r rune, enc Encoding) bool {
	if isNameStart(r, enc) || isDigit(r) {
		return true
	}
	return r == '-' || r == '.' || r == ':'
}

// readName reads an XML name starting at buf[pos]. ok is false, with pos
// unchanged, if the byte at pos cannot start a name.
func readName(buf []byte, pos int, enc Encoding) (name string, newPos int, ok bool) {
	start := pos
	r, n := decodeRune(buf, pos, enc)
	if n == 0 || !isNameStart(r, enc) {
		return "", pos, false
	}
	pos += n
	for pos < len(buf) {
		r, n = decodeRune(buf, pos, enc)
		if n == 0 || !isNameContinue(r, enc) {
			break
		}
		pos += n
	}
	return string(buf[start:pos]), pos, true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// stringEqual reports whether target occurs at buf[pos:]. In case-insensitive
// mode only ASCII letters are folded, matching the parser's treatment of
// ASCII-only keywords like "xml" and "CDATA".
func stringEqual(buf []byte, pos int, target string, ignoreCase bool) bool {
	if pos+len(target) > len(buf) {
		return false
	}
	for i := 0; i < len(target); i++ {
		a, b := buf[pos+i], target[i]
		if ignoreCase {
			a, b = lowerASCII(a), lowerASCII(b)
		}
		if a != b {
			return false
		}
	}
	return true
}
