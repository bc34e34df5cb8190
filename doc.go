/*
Package sockx creates non-blocking sockets and gives typed access to
descriptor flags.

New hands back a descriptor that is already non-blocking, close-on-exec, and
(best effort) address-reusable and SIGPIPE-quiet, ready for any poller or
event loop without further fixup:

	s, err := sockx.New(sockx.INET, sockx.Stream)
	if err != nil {
		return err
	}
	defer s.Close()
	poll(s.RawFd())
*/
package sockx
