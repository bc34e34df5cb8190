package sockx

import "golang.org/x/sys/windows"

const (
	INET  Family = windows.AF_INET
	INET6 Family = windows.AF_INET6
	Local Family = windows.AF_UNIX
)

const (
	Stream   Type = windows.SOCK_STREAM
	Datagram Type = windows.SOCK_DGRAM
)
