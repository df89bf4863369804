package memblock

import (
	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/perms"
)

// callFunc6 is implemented in call_amd64.s. It has no cgo dependency: Go
// has no built-in way to cast an address to a callable value the way
// ctypes.CFUNCTYPE does, so this hand-written trampoline loads up to six
// uintptr arguments into the System V AMD64 integer argument registers and
// calls through addr directly.
func callFunc6(addr uintptr, a0, a1, a2, a3, a4, a5 uintptr) int32

// Execute interprets the block's address as a function pointer and invokes
// it with up to six uintptr arguments, returning its int32 result. It is
// local-only: there is no way to invoke code in a foreign process without
// also providing a syscall-injection-driven calling convention, which is
// out of scope for this primitive (use the trampoline package directly to
// run code in a foreign process).
func (b *Block) Execute(args ...uintptr) (int32, error) {
	if err := b.checkAlive("execute"); err != nil {
		return 0, err
	}
	if !b.perms.Has(perms.Execute) {
		return 0, errors.ErrNotExecutable
	}
	if !b.process.IsLocal() {
		return 0, errors.ErrLocalExecuteOnly
	}
	if len(args) > 6 {
		return 0, errors.New(errors.ErrUnsupported, "execute", "at most 6 arguments are supported")
	}

	var a [6]uintptr
	copy(a[:], args)

	return callFunc6(b.addr, a[0], a[1], a[2], a[3], a[4], a[5]), nil
}
