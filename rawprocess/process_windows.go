package rawprocess

import (
	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/perms"
)

// windowsProcess satisfies RawProcess on GOOS=windows without implementing
// any of it: this module's core is the ptrace/process_vm_readv path, which
// has no Windows equivalent here. A Windows backend beyond an
// interface-satisfying stub is an explicit non-goal.
type windowsProcess struct {
	pid int
}

// Open always fails on Windows with ErrUnsupported.
func Open(pid int) (RawProcess, error) {
	return nil, errors.WrapWithPid(errors.ErrPlatformUnsupported, errors.ErrUnsupported, "open", pid)
}

func (p *windowsProcess) Pid() int      { return p.pid }
func (p *windowsProcess) IsLocal() bool { return false }

func (p *windowsProcess) ReadMemory(addr uintptr, n int) ([]byte, error) {
	return nil, errors.ErrPlatformUnsupported
}

func (p *windowsProcess) WriteMemory(addr uintptr, data []byte) (int, error) {
	return 0, errors.ErrPlatformUnsupported
}

func (p *windowsProcess) AllocateMemory(size uintptr, permissions perms.Permissions) (uintptr, error) {
	return 0, errors.ErrPlatformUnsupported
}

func (p *windowsProcess) FreeMemory(addr, size uintptr) error {
	return errors.ErrPlatformUnsupported
}
