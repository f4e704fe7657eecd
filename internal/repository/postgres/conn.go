// Package postgres implements the store access layer: a cached connection
// service plus the event and booking repositories built on database/sql and
// lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"

	"eventbooker/internal/domain"
)

// ConnState is the lifecycle state of the connection service.
type ConnState int

const (
	StateUninitialized ConnState = iota
	StateConnecting
	StateConnected
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "uninitialized"
	}
}

// attempt is one in-flight acquisition shared by every caller that arrives
// while it is pending.
type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Conn hands out a process-wide cached *sql.DB. At most one acquisition is
// in flight at a time: concurrent callers wait for and share the pending
// attempt's result instead of opening a second connection. A failed attempt
// clears the in-flight marker so the next call retries from scratch.
//
// Conn is an injectable service, not a package global; pass one instance to
// every repository.
type Conn struct {
	url string

	mu      sync.Mutex
	db      *sql.DB
	pending *attempt

	// openFn performs the actual acquisition; replaceable in tests.
	openFn func(ctx context.Context) (*sql.DB, error)
}

// NewConn creates an unconnected Conn for the given database URL. No I/O
// happens until the first DB call.
func NewConn(dbURL string) *Conn {
	c := &Conn{url: dbURL}
	c.openFn = c.open
	return c
}

// NewConnWithDB wraps an already-open handle, bypassing acquisition. Used
// by tests and anywhere the handle lifecycle is managed externally.
func NewConnWithDB(db *sql.DB) *Conn {
	c := &Conn{db: db}
	c.openFn = func(context.Context) (*sql.DB, error) { return db, nil }
	return c
}

func (c *Conn) open(ctx context.Context) (*sql.DB, error) {
	if c.url == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL is not configured", domain.ErrConnection)
	}
	db, err := sql.Open("postgres", c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", domain.ErrConnection, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping: %v", domain.ErrConnection, err)
	}
	return db, nil
}

// DB returns the cached handle, acquiring it on first use. Callers arriving
// during a pending acquisition receive that same attempt's result.
func (c *Conn) DB(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	if c.db != nil {
		db := c.db
		c.mu.Unlock()
		return db, nil
	}
	if a := c.pending; a != nil {
		c.mu.Unlock()
		select {
		case <-a.done:
			return a.db, a.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	a := &attempt{done: make(chan struct{})}
	c.pending = a
	c.mu.Unlock()

	db, err := c.openFn(ctx)

	c.mu.Lock()
	a.db, a.err = db, err
	if c.pending == a {
		if err == nil {
			c.db = db
		}
		c.pending = nil
	} else if db != nil {
		// Reset ran while this attempt was in flight; discard the handle.
		db.Close()
		a.db, a.err = nil, domain.ErrConnection
	}
	close(a.done)
	c.mu.Unlock()

	return a.db, a.err
}

// State reports the current lifecycle state.
func (c *Conn) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.db != nil:
		return StateConnected
	case c.pending != nil:
		return StateConnecting
	default:
		return StateUninitialized
	}
}

// Reset closes any cached handle and returns the service to uninitialized.
// A pending acquisition is left to finish; its result is discarded.
func (c *Conn) Reset() {
	c.mu.Lock()
	db := c.db
	c.db = nil
	c.pending = nil
	c.mu.Unlock()
	if db != nil {
		db.Close()
	}
}
