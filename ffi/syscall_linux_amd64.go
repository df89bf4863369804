package ffi

import "golang.org/x/sys/unix"

// SyscallArgs is the x86-64 Linux syscall calling convention, reduced to
// the six integer argument registers plus the syscall number.
type SyscallArgs struct {
	Nr                     uintptr
	A0, A1, A2, A3, A4, A5 uintptr
}

// ApplyTo writes args into the syscall argument registers of regs. The
// caller is responsible for poking the shellcode word at the instruction
// pointer separately; ApplyTo only prepares the register frame.
//
// Orig_rax is cleared to -1, not loaded with the injected number: the
// kernel uses Orig_rax to detect and restart a syscall the tracee was
// blocked in when attached, and a stale or merely-different value there
// can trigger that restart logic against the wrong syscall.
func (a SyscallArgs) ApplyTo(regs *unix.PtraceRegs) {
	regs.Orig_rax = ^uint64(0)
	regs.Rax = uint64(a.Nr)
	regs.Rdi = uint64(a.A0)
	regs.Rsi = uint64(a.A1)
	regs.Rdx = uint64(a.A2)
	regs.R10 = uint64(a.A3)
	regs.R8 = uint64(a.A4)
	regs.R9 = uint64(a.A5)
}

// ReadFrom returns the syscall's result, as left in Rax after the
// tracer single-steps past the injected instruction.
func ReadFrom(regs *unix.PtraceRegs) int64 {
	return int64(regs.Rax)
}

// InstructionPointer returns the tracee's current program counter. This
// is the single seam that needs widening to support an architecture other
// than x86-64.
func InstructionPointer(regs *unix.PtraceRegs) uintptr {
	return uintptr(regs.Rip)
}

// SetInstructionPointer sets the tracee's program counter.
func SetInstructionPointer(regs *unix.PtraceRegs, addr uintptr) {
	regs.Rip = uint64(addr)
}
