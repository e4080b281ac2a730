package ttyfind

import (
	"os"
	"os/exec"
	"syscall"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// TestResolveLivePty spawns a child on a real pseudo-terminal and resolves
// its controlling tty against the host /proc.
func TestResolveLivePty(t *testing.T) {
	if _, err := os.ReadFile("/proc/tty/drivers"); err != nil {
		t.Skipf("tty driver registry unavailable: %v", err)
	}

	ptm, tts, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptm.Close()
	defer tts.Close()

	cmd := exec.Command("sleep", "30")
	cmd.Stdin = tts
	cmd.Stdout = tts
	cmd.Stderr = tts
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}
	require.NoError(t, cmd.Start())
	defer func() {
		cmd.Process.Kill()
		cmd.Wait()
	}()

	path, ok := FindTTYForPID(cmd.Process.Pid)
	require.True(t, ok)
	require.Equal(t, tts.Name(), path)
}
