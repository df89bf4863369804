package rawprocess

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/ffi"
	"github.com/kornnellio/memtap/perms"
	"github.com/kornnellio/memtap/trampoline"
)

// unixProcess implements RawProcess for both the calling process and a
// foreign one: process_vm_readv/writev works identically against either,
// so read/write share one code path regardless of isLocal. Only
// allocate/free branch, since mmap/munmap have no foreign-process form
// other than syscall injection.
type unixProcess struct {
	pid     int
	isLocal bool
}

// Open probes pid for existence and returns a handle to its address space.
func Open(pid int) (RawProcess, error) {
	if pid <= 0 {
		return nil, errors.ErrInvalidPid
	}

	if err := unix.Kill(pid, 0); err != nil {
		return nil, errors.WrapWithPid(errors.ErrProcessNotFound, errors.ErrNoSuchProcess, "open", pid)
	}

	return &unixProcess{pid: pid, isLocal: pid == os.Getpid()}, nil
}

func (p *unixProcess) Pid() int      { return p.pid }
func (p *unixProcess) IsLocal() bool { return p.isLocal }

func (p *unixProcess) ReadMemory(addr uintptr, n int) ([]byte, error) {
	buf, err := ffi.ReadProcessMem(p.pid, addr, n)
	if err != nil {
		return nil, errors.WrapWithPid(err, errors.ErrKernel, "readmemory", p.pid)
	}
	if len(buf) != n {
		return nil, errors.WrapWithPid(errors.ErrShortTransfer, errors.ErrPartialTransfer, "readmemory", p.pid)
	}
	return buf, nil
}

func (p *unixProcess) WriteMemory(addr uintptr, data []byte) (int, error) {
	n, err := ffi.WriteProcessMem(p.pid, addr, data)
	if err != nil {
		return n, errors.WrapWithPid(err, errors.ErrKernel, "writememory", p.pid)
	}
	if n != len(data) {
		return n, errors.WrapWithPid(errors.ErrShortTransfer, errors.ErrPartialTransfer, "writememory", p.pid)
	}
	return n, nil
}

func (p *unixProcess) AllocateMemory(size uintptr, permissions perms.Permissions) (uintptr, error) {
	prot := permissions.ToProt()
	flags := int32(unix.MAP_PRIVATE | unix.MAP_ANONYMOUS)

	if p.isLocal {
		addr, err := ffi.Mmap(0, size, prot, flags, -1, 0)
		if err != nil {
			return 0, errors.WrapWithPid(err, errors.ErrKernel, "allocate", p.pid)
		}
		return addr, nil
	}

	ret, err := trampoline.ForeignSyscall(p.pid, uintptr(unix.SYS_MMAP), [6]uintptr{
		0, size, uintptr(prot), uintptr(flags), ^uintptr(0), 0,
	})
	if err != nil {
		return 0, err
	}
	if ffi.ErrnoWindow(ret) {
		return 0, errors.WrapWithPid(errors.ErrRemoteAllocFailed, errors.ErrRemoteAllocationFailed, "allocate", p.pid)
	}
	return uintptr(ret), nil
}

func (p *unixProcess) FreeMemory(addr, size uintptr) error {
	if p.isLocal {
		if err := ffi.Munmap(addr, size); err != nil {
			return errors.WrapWithPid(err, errors.ErrKernel, "free", p.pid)
		}
		return nil
	}

	ret, err := trampoline.ForeignSyscall(p.pid, uintptr(unix.SYS_MUNMAP), [6]uintptr{addr, size})
	if err != nil {
		return err
	}
	if ffi.ErrnoWindow(ret) {
		return errors.WrapWithPid(errors.ErrRemoteMunmapFailed, errors.ErrRemoteFreeFailed, "free", p.pid)
	}
	return nil
}
