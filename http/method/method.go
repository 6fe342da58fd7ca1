package method

// Method is a request method exactly as it was received. Methods are compared
// case-sensitively, so "get" is not GET.
type Method = string

const (
	GET  Method = "GET"
	POST Method = "POST"
)
