package address

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

const DefaultHost = "0.0.0.0"

type Address struct {
	Host string
	Port uint16
}

// Parse splits the address into host and port. Missing host is replaced by DefaultHost,
// missing port is an error. Port 0 is accepted and lets the system pick one.
func Parse(addr string) (Address, error) {
	colon := strings.LastIndexByte(addr, ':')
	if colon == -1 {
		return Address{}, errors.New("no port given")
	}

	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return Address{}, err
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("invalid port: %s", rawPort)
	}

	if len(host) == 0 {
		host = DefaultHost
	}

	return Address{
		Host: host,
		Port: uint16(port),
	}, nil
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}

func (a Address) IsLocalhost() bool {
	return strings.EqualFold(a.Host, "localhost")
}
