package hex

const digits = "0123456789ABCDEF"

func Is(char byte) bool {
	switch {
	case '0' <= char && char <= '9':
		return true
	case 'a' <= char && char <= 'f':
		return true
	case 'A' <= char && char <= 'F':
		return true
	}
	return false
}

func Un(char byte) byte {
	switch {
	case '0' <= char && char <= '9':
		return char - '0'
	case 'a' <= char && char <= 'f':
		return char - 'a' + 10
	case 'A' <= char && char <= 'F':
		return char - 'A' + 10
	}
	return 0
}

// Upper returns the upper-case hex digits of the byte.
func Upper(b byte) (hi, lo byte) {
	return digits[b>>4], digits[b&0x0f]
}
