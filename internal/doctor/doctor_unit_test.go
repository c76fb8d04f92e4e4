package doctor

import (
	"net"
	"testing"
)

func TestCheckListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"port only", ":8080", false},
		{"host and port", "127.0.0.1:9000", false},
		{"ephemeral", "localhost:0", false},
		{"ipv6", "[::1]:8080", false},
		{"max port", ":65535", false},
		{"missing port", "localhost", true},
		{"empty", "", true},
		{"named port", ":http", true},
		{"port too large", ":65536", true},
		{"negative port", ":-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkListenAddr(tt.addr)
			if tt.wantErr && err == nil {
				t.Fatalf("checkListenAddr(%q) = nil; want error", tt.addr)
			}

			if !tt.wantErr && err != nil {
				t.Fatalf("checkListenAddr(%q) error: %v", tt.addr, err)
			}
		})
	}
}

func TestTryListen(t *testing.T) {
	if err := TryListen("127.0.0.1:0"); err != nil {
		t.Fatalf("TryListen(ephemeral) error: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	if err := TryListen(ln.Addr().String()); err == nil {
		t.Error("TryListen on a bound address = nil; want error")
	}
}
