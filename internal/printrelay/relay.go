package printrelay

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

// Message is one print instruction sent to the external relay process. The
// relay owns the physical printer connections; we only tell it where the
// payload goes. Data is base64-encoded by the JSON marshaller.
type Message struct {
	PrinterAddr string `json:"printer_addr"`
	Data        []byte `json:"data"`
}

// Client maintains a long-lived TCP connection to the print relay and writes
// newline-delimited JSON messages to it. Writes re-dial on failure; a message
// that cannot be delivered after one reconnect attempt is returned as an
// error and dropped by the caller.
type Client struct {
	address     string
	dialTimeout time.Duration

	mu   sync.Mutex
	conn net.Conn
}

// NewClient creates a relay client for the given address. No connection is
// made until the first send.
func NewClient(address string) *Client {
	return &Client{
		address:     address,
		dialTimeout: 5 * time.Second,
	}
}

// Send delivers one message to the relay.
func (c *Client) Send(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("printrelay: failed to encode message: %w", err)
	}
	payload = append(payload, '\n')

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.write(payload); err == nil {
		return nil
	}

	// Stale connection; reconnect once and retry.
	c.closeLocked()
	if err := c.connectLocked(); err != nil {
		return err
	}
	return c.write(payload)
}

func (c *Client) write(payload []byte) error {
	if c.conn == nil {
		if err := c.connectLocked(); err != nil {
			return err
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if _, err := c.conn.Write(payload); err != nil {
		return fmt.Errorf("printrelay: write to %s failed: %w", c.address, err)
	}
	return nil
}

func (c *Client) connectLocked() error {
	conn, err := net.DialTimeout("tcp", c.address, c.dialTimeout)
	if err != nil {
		return fmt.Errorf("printrelay: failed to connect to %s: %w", c.address, err)
	}
	c.conn = conn
	return nil
}

func (c *Client) closeLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// IsConnected reports whether the relay is reachable.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return true
	}
	conn, err := net.DialTimeout("tcp", c.address, 2*time.Second)
	if err != nil {
		return false
	}
	c.conn = conn
	return true
}

// Close releases the relay connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return nil
}
