package ffi

import "golang.org/x/sys/unix"

// Mmap issues a raw mmap(2) syscall for the calling process, deliberately
// bypassing golang.org/x/sys/unix.Mmap. That wrapper hands back a
// GC-visible []byte over the mapping, which gets in the way of mapping
// executable pages at a caller-chosen address: this module wants the bare
// address mmap returned, nothing more.
func Mmap(addr, length uintptr, prot, flags int32, fd int32, offset int64) (uintptr, error) {
	ret, _, errno := unix.Syscall6(
		unix.SYS_MMAP,
		addr,
		length,
		uintptr(prot),
		uintptr(flags),
		uintptr(fd),
		uintptr(offset),
	)
	if errno != 0 {
		return 0, errno
	}
	return ret, nil
}

// Munmap issues a raw munmap(2) syscall for the calling process.
func Munmap(addr, length uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_MUNMAP, addr, length, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
