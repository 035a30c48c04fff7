package core

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrPortInUse matches any PortInUseError via errors.Is.
var ErrPortInUse = errors.New("port in use")

// PortInUseError reports that the HTTP port is held by another process.
type PortInUseError struct {
	Addr  string
	Cause error
}

func (e *PortInUseError) Error() string {
	return fmt.Sprintf("address %s is already in use; stop the other process or set PORT", e.Addr)
}

func (e *PortInUseError) Is(target error) bool {
	return target == ErrPortInUse
}

func (e *PortInUseError) Unwrap() error {
	return e.Cause
}

// ListenTCP opens the server listener, turning EADDRINUSE into a PortInUseError.
func ListenTCP(host string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	listener, err := net.Listen("tcp", addr)
	if err == nil {
		return listener, nil
	}
	if !isAddrInUse(err) {
		return nil, err
	}
	return nil, &PortInUseError{Addr: addr, Cause: err}
}
