//go:build !linux && !windows

package rawprocess

import (
	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/perms"
)

// otherProcess satisfies RawProcess on any GOOS this module does not
// implement a backend for, generalizing the Windows stub's "not supported"
// initialization error to every unsupported platform.
type otherProcess struct {
	pid int
}

// Open always fails with ErrUnsupported on an unrecognized GOOS.
func Open(pid int) (RawProcess, error) {
	return nil, errors.WrapWithPid(errors.ErrPlatformUnsupported, errors.ErrUnsupported, "open", pid)
}

func (p *otherProcess) Pid() int      { return p.pid }
func (p *otherProcess) IsLocal() bool { return false }

func (p *otherProcess) ReadMemory(addr uintptr, n int) ([]byte, error) {
	return nil, errors.ErrPlatformUnsupported
}

func (p *otherProcess) WriteMemory(addr uintptr, data []byte) (int, error) {
	return 0, errors.ErrPlatformUnsupported
}

func (p *otherProcess) AllocateMemory(size uintptr, permissions perms.Permissions) (uintptr, error) {
	return 0, errors.ErrPlatformUnsupported
}

func (p *otherProcess) FreeMemory(addr, size uintptr) error {
	return errors.ErrPlatformUnsupported
}
