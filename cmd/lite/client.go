package main

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"time"
)

const clientTimeout = 10 * time.Second

// fetch sends a bare GET request over a raw socket and returns the whole response,
// including the status line and headers.
func fetch(rawURL string) ([]byte, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "80")
	}

	conn, err := net.DialTimeout("tcp", host, clientTimeout)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err = conn.SetDeadline(time.Now().Add(clientTimeout)); err != nil {
		return nil, err
	}

	request := "GET " + u.RequestURI() + " HTTP/1.1\r\n" +
		"Host: " + u.Host + "\r\n" +
		"Connection: close\r\n" +
		"\r\n"

	if _, err = io.WriteString(conn, request); err != nil {
		return nil, err
	}

	return io.ReadAll(conn)
}
