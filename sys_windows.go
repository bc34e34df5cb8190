package sockx

import "golang.org/x/sys/windows"

// Winsock has no post-creation inheritance flag worth racing for;
// WSA_FLAG_NO_HANDLE_INHERIT does it at creation time.
func sysSocket(family, typ int, cloexec bool) (uintptr, bool, error) {
	flags := uint32(windows.WSA_FLAG_OVERLAPPED)
	if cloexec {
		flags |= windows.WSA_FLAG_NO_HANDLE_INHERIT
	}
	h, err := windows.WSASocket(int32(family), int32(typ), 0, nil, 0, flags)
	if err != nil {
		return 0, false, err
	}
	return uintptr(h), false, nil
}

func closeFd(fd uintptr) error {
	return windows.Closesocket(windows.Handle(fd))
}
