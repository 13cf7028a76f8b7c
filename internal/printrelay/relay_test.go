package printrelay

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startRelayServer accepts connections and forwards each newline-delimited
// JSON message onto the returned channel.
func startRelayServer(t *testing.T) (string, <-chan Message) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	msgs := make(chan Message, 16)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				scanner := bufio.NewScanner(conn)
				scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
				for scanner.Scan() {
					var msg Message
					if json.Unmarshal(scanner.Bytes(), &msg) == nil {
						msgs <- msg
					}
				}
			}(conn)
		}
	}()

	return ln.Addr().String(), msgs
}

func waitForMessage(t *testing.T, msgs <-chan Message) Message {
	t.Helper()
	select {
	case msg := <-msgs:
		return msg
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for relay message")
		return Message{}
	}
}

func TestClient_Send(t *testing.T) {
	addr, msgs := startRelayServer(t)

	client := NewClient(addr)
	defer client.Close()

	payload := []byte{0x1B, '@', 'h', 'i'}
	require.NoError(t, client.Send(Message{PrinterAddr: "192.168.1.50:9100", Data: payload}))

	got := waitForMessage(t, msgs)
	assert.Equal(t, "192.168.1.50:9100", got.PrinterAddr)
	assert.Equal(t, payload, got.Data)
}

func TestClient_SendUnreachable(t *testing.T) {
	client := NewClient("127.0.0.1:1")
	defer client.Close()

	err := client.Send(Message{PrinterAddr: "x", Data: []byte("y")})
	assert.Error(t, err)
}

func TestClient_ReconnectsAfterServerDrop(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	msgs := make(chan Message, 16)
	conns := make(chan net.Conn, 4)
	accept := func(ln net.Listener) {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conns <- conn
			go func(conn net.Conn) {
				scanner := bufio.NewScanner(conn)
				for scanner.Scan() {
					var msg Message
					if json.Unmarshal(scanner.Bytes(), &msg) == nil {
						msgs <- msg
					}
				}
			}(conn)
		}
	}
	go accept(ln)

	client := NewClient(addr)
	defer client.Close()

	require.NoError(t, client.Send(Message{PrinterAddr: "a", Data: []byte("1")}))
	waitForMessage(t, msgs)

	// Kill the server side of the established connection and restart the
	// listener on the same address.
	require.NoError(t, ln.Close())
	(<-conns).Close()

	ln2, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	defer ln2.Close()
	go accept(ln2)

	// A write into the dead socket may land in the OS buffer before the
	// reset is observed, so drive sends until one arrives over the new
	// connection.
	deadline := time.Now().Add(3 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "client never reconnected")
		_ = client.Send(Message{PrinterAddr: "b", Data: []byte("2")})
		select {
		case got := <-msgs:
			assert.Equal(t, "b", got.PrinterAddr)
			return
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func TestDispatcher_DeliversQueuedJobs(t *testing.T) {
	addr, msgs := startRelayServer(t)

	d := NewDispatcher(NewClient(addr), 8)

	d.Enqueue(Message{PrinterAddr: "p1", Data: []byte("one")})
	d.Enqueue(Message{PrinterAddr: "p2", Data: []byte("two")})

	first := waitForMessage(t, msgs)
	second := waitForMessage(t, msgs)
	assert.Equal(t, "p1", first.PrinterAddr)
	assert.Equal(t, "p2", second.PrinterAddr)

	d.Close()
	// Close is idempotent.
	d.Close()
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	// Client pointed at a dead address: the worker blocks on dial timeouts
	// while the queue fills up. Enqueue must never block.
	d := NewDispatcher(NewClient("127.0.0.1:1"), 1)
	defer d.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			d.Enqueue(Message{PrinterAddr: "x", Data: []byte("y")})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestNopSender(t *testing.T) {
	// Must accept jobs without a relay configured.
	NewNopSender().Enqueue(Message{PrinterAddr: "anywhere", Data: []byte("data")})
}
