package sockx

import (
	"os"
	"testing"

	"github.com/anacrolix/envpprof"
)

func TestMain(m *testing.M) {
	code := m.Run()
	envpprof.Stop()
	os.Exit(code)
}
