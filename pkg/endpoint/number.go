package endpoint

// ReadNumber decodes the run of ASCII digits at the start of buf.
// It returns the number of bytes consumed and the decoded value. Zero bytes
// consumed means buf does not start with a digit; result is then 0.
// There is no sign handling and no overflow detection: the value wraps
// modulo 2^32, so callers bound the input length.
func ReadNumber(buf []byte) (consumed int, result uint32) {
	for consumed < len(buf) {
		c := buf[consumed]
		if c < '0' || c > '9' {
			break
		}
		result = result*10 + uint32(c-'0')
		consumed++
	}
	return consumed, result
}
