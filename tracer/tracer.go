// Package tracer provides the low-level ptrace operations the foreign-
// syscall trampoline is built from: attach/detach, register get/set, text
// peek/poke, and the single-step/continue/wait primitives. Every function
// takes a pid directly — there is no handle to construct or close, mirroring
// how a traced thread holds no resource of its own beyond what the kernel
// already tracks for that pid.
package tracer

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"github.com/kornnellio/memtap/errors"
)

// Attach begins tracing pid and waits for the resulting stop. The caller
// is responsible for detaching with Detach once done.
func Attach(pid int) error {
	if err := unix.PtraceAttach(pid); err != nil {
		if err == unix.EPERM {
			return errors.WrapWithPid(err, errors.ErrPermissionDenied, "attach", pid)
		}
		if err == unix.ESRCH {
			return errors.WrapWithPid(err, errors.ErrNoSuchProcess, "attach", pid)
		}
		return errors.WrapWithPid(err, errors.ErrKernel, "attach", pid)
	}

	if _, err := WaitStop(pid); err != nil {
		return err
	}
	return nil
}

// Detach stops tracing pid, letting it resume normal execution.
func Detach(pid int) error {
	if err := unix.PtraceDetach(pid); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "detach", pid)
	}
	return nil
}

// GetRegs reads pid's current general-purpose register state.
func GetRegs(pid int) (unix.PtraceRegs, error) {
	var regs unix.PtraceRegs
	if err := unix.PtraceGetRegs(pid, &regs); err != nil {
		return regs, errors.WrapWithPid(err, errors.ErrKernel, "getregs", pid)
	}
	return regs, nil
}

// SetRegs writes regs into pid's register state.
func SetRegs(pid int, regs unix.PtraceRegs) error {
	if err := unix.PtraceSetRegs(pid, &regs); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "setregs", pid)
	}
	return nil
}

// PeekText reads the 8-byte instruction word at addr in pid's text.
func PeekText(pid int, addr uintptr) (uint64, error) {
	var buf [8]byte
	n, err := unix.PtracePeekText(pid, addr, buf[:])
	if err != nil {
		return 0, errors.WrapWithPid(err, errors.ErrKernel, "peektext", pid)
	}
	if n != len(buf) {
		return 0, errors.WrapWithPid(errors.ErrShortTransfer, errors.ErrPartialTransfer, "peektext", pid)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// PokeText writes an 8-byte instruction word at addr in pid's text.
func PokeText(pid int, addr uintptr, word uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], word)

	n, err := unix.PtracePokeText(pid, addr, buf[:])
	if err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "poketext", pid)
	}
	if n != len(buf) {
		return errors.WrapWithPid(errors.ErrShortTransfer, errors.ErrPartialTransfer, "poketext", pid)
	}
	return nil
}

// SingleStep resumes pid for exactly one instruction, then stops it again.
func SingleStep(pid int) error {
	if err := unix.PtraceSingleStep(pid); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "singlestep", pid)
	}
	return nil
}

// Cont resumes pid, optionally delivering sig, until the next trace stop.
func Cont(pid int, sig int) error {
	if err := unix.PtraceCont(pid, sig); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "cont", pid)
	}
	return nil
}

// WaitStop blocks until pid reports a wait status, retrying on EINTR.
func WaitStop(pid int) (unix.WaitStatus, error) {
	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, 0, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return status, errors.WrapWithPid(err, errors.ErrKernel, "wait4", pid)
		}
		return status, nil
	}
}
