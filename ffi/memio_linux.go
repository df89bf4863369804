package ffi

import "golang.org/x/sys/unix"

// ReadProcessMem copies n bytes starting at addr out of pid's address
// space using the kernel's process_vm_readv scatter/gather primitive. It
// works whether pid is the calling process or a foreign one: the kernel
// performs the cross-space copy either way.
func ReadProcessMem(pid int, addr uintptr, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)

	local := []unix.Iovec{{Base: &buf[0], Len: uint64(n)}}
	remote := []unix.RemoteIovec{{Base: addr, Len: n}}

	nRead, err := unix.ProcessVMReadv(pid, local, remote, 0)
	if err != nil {
		return nil, err
	}
	return buf[:nRead], nil
}

// WriteProcessMem copies data into pid's address space starting at addr
// using process_vm_writev. It returns the number of bytes actually
// written, which the caller must check against len(data): a short count
// here is not retried by this package.
func WriteProcessMem(pid int, addr uintptr, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	local := []unix.Iovec{{Base: &data[0], Len: uint64(len(data))}}
	remote := []unix.RemoteIovec{{Base: addr, Len: len(data)}}

	return unix.ProcessVMWritev(pid, local, remote, 0)
}
