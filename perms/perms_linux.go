package perms

import "golang.org/x/sys/unix"

// ToProt maps p to the PROT_* flags mmap/mprotect expect. An empty set
// maps to PROT_NONE. This lives outside perms.go because golang.org/x/sys/unix
// itself only builds on Unix-like targets; the bitset and its other methods
// stay portable so a Windows build of this module can still reason about
// permissions without a backing mmap implementation.
func (p Permissions) ToProt() int32 {
	var prot int32
	if p.Has(Read) {
		prot |= unix.PROT_READ
	}
	if p.Has(Write) {
		prot |= unix.PROT_WRITE
	}
	if p.Has(Execute) {
		prot |= unix.PROT_EXEC
	}
	return prot
}
