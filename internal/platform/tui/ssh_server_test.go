package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestListenAndServeReturnsBindError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer busy.Close()

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = busy.Addr().String()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}

	result := make(chan error, 1)
	go func() {
		result <- srv.ListenAndServe()
	}()

	select {
	case err := <-result:
		if err == nil {
			t.Error("ListenAndServe() = nil, expected a bind error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return after the listener failed")
	}
}
