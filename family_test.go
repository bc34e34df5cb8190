package sockx

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFamilyText(t *testing.T) {
	var f Family
	qt.Assert(t, qt.IsNil(f.UnmarshalText([]byte("inet6"))))
	qt.Check(t, qt.Equals(f, INET6))
	qt.Assert(t, qt.IsNil(f.UnmarshalText([]byte("IPv4"))))
	qt.Check(t, qt.Equals(f, INET))
	qt.Check(t, qt.Equals(INET.String(), "inet"))
	qt.Check(t, qt.IsNotNil(f.UnmarshalText([]byte("bogus"))))
}

func TestTypeText(t *testing.T) {
	var ty Type
	qt.Assert(t, qt.IsNil(ty.UnmarshalText([]byte("dgram"))))
	qt.Check(t, qt.Equals(ty, Datagram))
	qt.Check(t, qt.Equals(Stream.String(), "stream"))
	qt.Check(t, qt.IsNotNil(ty.UnmarshalText([]byte("seqpacket"))))
}
