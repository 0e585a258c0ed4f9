// Package utils holds small shared helpers that have no better home.
package utils

import (
	"net"

	"github.com/arthur-debert/appkit/pkg/errors"
)

// FreePort asks the kernel for an ephemeral TCP port and returns it.
// The port is released before returning, so another process can grab
// it in the meantime; callers needing a guarantee must bind it
// themselves and pass the listener along.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrInternal, "failed to probe for a free port")
	}
	defer func() { _ = l.Close() }()

	return l.Addr().(*net.TCPAddr).Port, nil
}
