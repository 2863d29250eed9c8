package xml

import "strconv"

// entityTable holds the five predefined XML entities, checked longest-name
// first isn't necessary here since each maps to a distinct decoded rune.
var entityTable = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',
}

const (
	maxDecimalDigits = 10
	maxHexDigits     = 8
)

// decodeEntity decodes the entity or character reference starting at
// buf[pos], which must be '&'. It returns the decoded bytes (UTF-8 encoded
// regardless of source encoding, since every numeric reference names a
// Unicode code point) and the number of source bytes consumed.
//
// If the reference is malformed (no terminating ';', or an empty digit
// run for a numeric reference), the '&' is treated as a literal character:
// one byte is returned, consuming only the '&'.
func decodeEntity(buf []byte, pos int) (decoded []byte, size int) {
	if pos >= len(buf) || buf[pos] != '&' {
		return nil, 0
	}
	rest := buf[pos+1:]

	if len(rest) > 0 && rest[0] == '#' {
		return decodeNumericEntity(rest)
	}

	semi := indexByte(rest, ';')
	if semi < 0 {
		return literalAmp()
	}
	name := string(rest[:semi])
	if r, ok := entityTable[name]; ok {
		return []byte{byte(r)}, 2 + semi // '&' + name + ';'
	}
	return literalAmp()
}

func literalAmp() ([]byte, int) {
	return []byte{'&'}, 1
}

// decodeNumericEntity decodes "#N;" or "#xH;" given rest = buf[pos+1:],
// i.e. the bytes immediately following the leading '&'.
func decodeNumericEntity(rest []byte) ([]byte, int) {
	body := rest[1:] // drop '#'
	hex := len(body) > 0 && (body[0] == 'x' || body[0] == 'X')
	digits := body
	if hex {
		digits = body[1:]
	}

	maxDigits := maxDecimalDigits
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	if hex {
		maxDigits = maxHexDigits
		isDigit = isHexDigit
	}

	n := 0
	for n < len(digits) && n < maxDigits && isDigit(digits[n]) {
		n++
	}
	if n == 0 || n >= len(digits) || digits[n] != ';' {
		return literalAmp()
	}

	digitStr := string(digits[:n])
	var cp int64
	var err error
	if hex {
		cp, err = strconv.ParseInt(digitStr, 16, 64)
	} else {
		cp, err = strconv.ParseInt(digitStr, 10, 64)
	}
	if err != nil {
		return literalAmp()
	}

	prefixLen := 2 // '&' + '#'
	if hex {
		prefixLen++
	}
	consumed := prefixLen + n + 1 // + digits + ';'
	return encodeUTF32ToUTF8(rune(cp)), consumed
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}
