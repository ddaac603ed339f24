//go:build unix

package tui

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// fdSource reads bytes straight from a file descriptor so nothing is held in
// a user-space buffer between keystrokes.
type fdSource struct {
	fd int
}

// NewFileSource returns a ByteSource reading from f's descriptor.
func NewFileSource(f *os.File) ByteSource {
	return &fdSource{fd: int(f.Fd())}
}

func (s *fdSource) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := unix.Read(s.fd, buf)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			if err := s.wait(-1); err != nil {
				return 0, err
			}
			continue
		case err != nil:
			return 0, err
		case n == 0:
			return 0, io.EOF
		}
		return buf[0], nil
	}
}

func (s *fdSource) ReadPending(n int) ([]byte, bool) {
	if n <= 0 || s.wait(0) != nil {
		return nil, false
	}
	buf := make([]byte, n)
	got, err := unix.Read(s.fd, buf)
	if err != nil || got <= 0 {
		return nil, false
	}
	return buf[:got], true
}

// wait polls for readability. timeout is in milliseconds; 0 returns at once,
// -1 blocks. It returns errNotReady when the poll times out.
func (s *fdSource) wait(timeout int) error {
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeout)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return errNotReady
		}
		return nil
	}
}

var errNotReady = errors.New("no input pending")
