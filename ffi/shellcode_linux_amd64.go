package ffi

// Shellcode is the fixed 8-byte instruction word injected at the tracee's
// instruction pointer to perform a syscall under ptrace control:
//
//	syscall ; int3 ; nop ; nop ; nop ; nop ; nop
//
// The trailing int3 halts execution right after the syscall returns so the
// tracer's wait loop sees a predictable SIGTRAP; the nops pad the word out
// to a full 8 bytes so it can be poked with one PTRACE_POKETEXT.
var Shellcode = [8]byte{0x0f, 0x05, 0xcc, 0x90, 0x90, 0x90, 0x90, 0x90}

// ShellcodeWord is Shellcode reinterpreted as the little-endian uint64
// PokeText expects.
const ShellcodeWord uint64 = 0x9090909090cc050f
