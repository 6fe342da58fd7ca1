package status

type Code uint16

// The engine only ever produces these codes itself, however handlers are free to
// respond with any other one.
const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	NotFound            Code = 404 // RFC 9110, 15.5.5
	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

var reasons = map[Code]string{
	OK:                  "OK",
	NotFound:            "Not Found",
	InternalServerError: "Internal Server Error",
}

// Text returns the reason phrase for the code. Codes missing from the table are
// rendered as "OK".
func Text(code Code) string {
	if reason, found := reasons[code]; found {
		return reason
	}

	return reasons[OK]
}
