// Package fd wraps OS file descriptors with scoped ownership, mirroring the
// open/dup/close lifecycle the sandbox helper needs when wiring a child
// process's standard streams.
package fd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Flag selects how a path is opened, matching the open(2) access modes the
// child-side redirection logic cares about.
type Flag int

const (
	In    Flag = unix.O_RDONLY
	Out   Flag = unix.O_WRONLY
	InOut Flag = unix.O_RDWR
	App   Flag = unix.O_APPEND
	Trunc Flag = unix.O_TRUNC
)

// FileDescriptor owns an OS file descriptor, or merely observes one it did
// not open (e.g. os.Stdin.Fd()). Only an owning FileDescriptor closes its fd
// on Close.
type FileDescriptor struct {
	fd      int
	isOwner bool
}

// Borrow wraps an existing fd without taking ownership of it.
func Borrow(raw int) *FileDescriptor {
	return &FileDescriptor{fd: raw, isOwner: false}
}

// Open creates a new owning FileDescriptor for path, creating the file with
// user/group/other-read, user-write permissions if it does not exist yet.
func Open(path string, flag Flag) (*FileDescriptor, error) {
	mode := os.FileMode(0)
	openFlag := int(flag)
	if _, err := os.Stat(path); err != nil {
		openFlag |= unix.O_CREAT
		mode = 0644
	}
	raw, err := unix.Open(path, openFlag, uint32(mode))
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return &FileDescriptor{fd: raw, isOwner: true}, nil
}

// Close releases the descriptor if this FileDescriptor owns it. Closing a
// borrowed or already-closed descriptor is a no-op.
func (f *FileDescriptor) Close() error {
	if !f.isOwner || f.fd == -1 {
		return nil
	}
	err := unix.Close(f.fd)
	f.fd = -1
	return err
}

// Redirect makes f's descriptor number refer to other's open file, the Go
// analogue of dup2.
func (f *FileDescriptor) Redirect(other *FileDescriptor) error {
	if err := unix.Dup2(other.fd, f.fd); err != nil {
		return fmt.Errorf("redirect fd %d to %d: %w", f.fd, other.fd, err)
	}
	return nil
}

// Read drains the descriptor's remaining contents into out.
func (f *FileDescriptor) Read(out io.Writer) error {
	if !f.IsReadable() {
		return fmt.Errorf("fd %d is not open for reading", f.fd)
	}
	buf := make([]byte, 256)
	for {
		n, err := unix.Read(f.fd, buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if n == 0 || err != nil {
			if err != nil {
				return fmt.Errorf("read fd %d: %w", f.fd, err)
			}
			return nil
		}
	}
}

// Write copies in's remaining contents into the descriptor.
func (f *FileDescriptor) Write(in io.Reader) error {
	if !f.IsWritable() {
		return fmt.Errorf("fd %d is not open for writing", f.fd)
	}
	buf := make([]byte, 256)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			total := 0
			for total < n {
				written, werr := unix.Write(f.fd, buf[total:n])
				if werr != nil {
					return fmt.Errorf("write fd %d: %w", f.fd, werr)
				}
				total += written
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}

// Fd returns the raw descriptor number.
func (f *FileDescriptor) Fd() int { return f.fd }

// IsOpened reports whether the descriptor is valid.
func (f *FileDescriptor) IsOpened() bool { return f.fd != -1 }

// accessMode queries the descriptor's current open(2) access mode via
// fcntl(F_GETFL), masked to O_ACCMODE. O_RDONLY is 0, so a bitmask of the
// construction-time Flag can never distinguish "opened read-only" from
// "opened with no flag at all" — the live fcntl status is authoritative.
func (f *FileDescriptor) accessMode() (int, error) {
	if !f.IsOpened() {
		return -1, fmt.Errorf("fd is not open")
	}
	flags, err := unix.FcntlInt(uintptr(f.fd), unix.F_GETFL, 0)
	if err != nil {
		return -1, fmt.Errorf("fcntl fd %d: %w", f.fd, err)
	}
	return flags & unix.O_ACCMODE, nil
}

// IsReadable reports whether the descriptor is currently open for reading.
func (f *FileDescriptor) IsReadable() bool {
	mode, err := f.accessMode()
	return err == nil && (mode == unix.O_RDONLY || mode == unix.O_RDWR)
}

// IsWritable reports whether the descriptor is currently open for writing.
func (f *FileDescriptor) IsWritable() bool {
	mode, err := f.accessMode()
	return err == nil && (mode == unix.O_WRONLY || mode == unix.O_RDWR)
}
