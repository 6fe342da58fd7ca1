package urlencoded

import (
	"bytes"

	"github.com/indigo-web/lite/internal/hex"
)

// Decode decodes %XX escapes and translates + into spaces. Malformed escapes (not followed
// by two hex digits) are left as they are instead of failing the whole input. The source
// is returned untouched if there's nothing to decode, otherwise the result is appended to
// dst. The second returned value is the (probably grown) dst buffer.
func Decode(src, dst []byte) (decoded, buffer []byte) {
	if bytes.IndexByte(src, '%') == -1 && bytes.IndexByte(src, '+') == -1 {
		return src, dst
	}

	head := len(dst)

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '+':
			dst = append(dst, ' ')
		case '%':
			if i+2 < len(src) && hex.Is(src[i+1]) && hex.Is(src[i+2]) {
				dst = append(dst, hex.Un(src[i+1])<<4|hex.Un(src[i+2]))
				i += 2
				continue
			}

			dst = append(dst, c)
		default:
			dst = append(dst, c)
		}
	}

	return dst[head:], dst
}

// Encode appends the escaped form of src to dst. Unreserved characters are kept as is,
// spaces become + and everything else is %XX-escaped.
func Encode(src, dst []byte) []byte {
	for _, c := range src {
		switch {
		case isUnreserved(c):
			dst = append(dst, c)
		case c == ' ':
			dst = append(dst, '+')
		default:
			hi, lo := hex.Upper(c)
			dst = append(dst, '%', hi, lo)
		}
	}

	return dst
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}

	return false
}
