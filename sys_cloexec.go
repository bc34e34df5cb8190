//go:build darwin || aix || solaris

package sockx

// No socket-time flags here; always the fixup path.
func sysSocket(family, typ int, cloexec bool) (uintptr, bool, error) {
	return sysSocketPosthoc(family, typ, cloexec)
}
