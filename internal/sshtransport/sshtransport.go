// Package sshtransport dials a remote host over SSH and exposes it as a
// PTY-backed shell: a reader for combined stdout/stderr, a writer for
// stdin, and resize/keepalive operations. It has no notion of sessions,
// brokering, or scrollback — sessionmgr builds those on top of it.
package sshtransport

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/ssh"
)

// Config carries the timing parameters used for every dialed connection.
type Config struct {
	DialTimeout       time.Duration
	InactivityTimeout time.Duration
	KeepaliveInterval time.Duration
	KeepaliveMax      int
}

// Terminal is a live PTY-backed shell on a remote host.
type Terminal struct {
	client  *ssh.Client
	session *ssh.Session

	stdin  io.WriteCloser
	stdout io.Reader

	cfg Config

	lastActivity atomic.Int64 // unix nanoseconds, updated on every Read

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Dial opens a TCP connection, completes the SSH handshake and password
// authentication, requests a PTY and starts an interactive shell. The
// server host key is never verified: hive-server brokers to hosts the
// operator already trusts by address, not by key.
func Dial(addr, username, password string, cols, rows int, cfg Config) (*Terminal, error) {
	clientCfg := &ssh.ClientConfig{
		User: username,
		Auth: []ssh.AuthMethod{ssh.Password(password)},
		HostKeyCallback: func(_ string, _ net.Addr, key ssh.PublicKey) error {
			slog.Info("ssh host key accepted", "addr", addr, "user", username, "fingerprint", ssh.FingerprintSHA256(key))
			return nil
		},
		Timeout: cfg.DialTimeout,
	}

	conn, err := net.DialTimeout("tcp", addr, cfg.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientCfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}
	client := ssh.NewClient(sshConn, chans, reqs)

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("open session: %w", err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty("xterm-256color", rows, cols, modes); err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("request pty: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	stderr, err := session.StderrPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("start shell: %w", err)
	}

	// Drain stdout and stderr concurrently into one pipe so stderr output
	// is delivered as it arrives rather than after stdout ends.
	merged, mergedW := io.Pipe()
	var copiers sync.WaitGroup
	copiers.Add(2)
	for _, r := range []io.Reader{stdout, stderr} {
		go func(r io.Reader) {
			defer copiers.Done()
			io.Copy(mergedW, r)
		}(r)
	}
	go func() {
		copiers.Wait()
		mergedW.Close()
	}()

	t := &Terminal{
		client:  client,
		session: session,
		stdin:   stdin,
		stdout:  merged,
		cfg:     cfg,
		done:    make(chan struct{}),
	}

	t.lastActivity.Store(time.Now().UnixNano())

	go t.keepalive()
	go t.watchInactivity()

	return t, nil
}

// Read reads combined stdout/stderr output from the remote shell.
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := t.stdout.Read(p)
	if n > 0 {
		t.lastActivity.Store(time.Now().UnixNano())
	}
	return n, err
}

// Write sends keystrokes to the remote shell's stdin.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.stdin.Write(p)
}

// Resize informs the remote PTY of a terminal dimension change.
func (t *Terminal) Resize(cols, rows int) error {
	if err := t.session.WindowChange(rows, cols); err != nil {
		return fmt.Errorf("resize pty: %w", err)
	}
	return nil
}

// Close tears down the SSH session and underlying connection. Safe to
// call more than once.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.done)

	sessErr := t.session.Close()
	clientErr := t.client.Close()
	if sessErr != nil && sessErr != io.EOF {
		return fmt.Errorf("close session: %w", sessErr)
	}
	if clientErr != nil {
		return fmt.Errorf("close client: %w", clientErr)
	}
	return nil
}

// keepalive sends periodic keepalive channel requests so idle connections
// survive intermediate NATs/firewalls, and gives up after KeepaliveMax
// consecutive failures the same way the inactivity timeout would.
func (t *Terminal) keepalive() {
	if t.cfg.KeepaliveInterval <= 0 {
		return
	}

	ticker := time.NewTicker(t.cfg.KeepaliveInterval)
	defer ticker.Stop()

	misses := 0
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			_, _, err := t.client.SendRequest("keepalive@hive-server", true, nil)
			if err != nil {
				misses++
				slog.Debug("ssh keepalive missed", "misses", misses, "error", err)
				if t.cfg.KeepaliveMax > 0 && misses >= t.cfg.KeepaliveMax {
					slog.Warn("ssh keepalive exhausted, closing terminal", "misses", misses)
					t.Close()
					return
				}
				continue
			}
			misses = 0
		}
	}
}

// watchInactivity closes the terminal once no output has been read for
// longer than cfg.InactivityTimeout. Keystrokes sent by the client don't
// reset the clock: an idle shell that is still being watched is still idle.
func (t *Terminal) watchInactivity() {
	if t.cfg.InactivityTimeout <= 0 {
		return
	}

	interval := t.cfg.InactivityTimeout / 4
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			last := time.Unix(0, t.lastActivity.Load())
			if time.Since(last) >= t.cfg.InactivityTimeout {
				slog.Warn("ssh terminal idle, closing", "idle_for", time.Since(last))
				t.Close()
				return
			}
		}
	}
}
