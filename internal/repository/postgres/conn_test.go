package postgres

import (
	"context"
	"database/sql"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"eventbooker/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestConn_MissingConfiguration(t *testing.T) {
	conn := NewConn("")
	_, err := conn.DB(context.Background())
	require.ErrorIs(t, err, domain.ErrConnection)
	require.Equal(t, StateUninitialized, conn.State())
}

func TestConn_CachesHandle(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var opens atomic.Int32
	conn := NewConn("postgres://example")
	conn.openFn = func(ctx context.Context) (*sql.DB, error) {
		opens.Add(1)
		return db, nil
	}

	first, err := conn.DB(context.Background())
	require.NoError(t, err)
	second, err := conn.DB(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, int32(1), opens.Load())
	require.Equal(t, StateConnected, conn.State())
}

// Concurrent callers during a pending acquisition must share its result
// rather than triggering additional opens.
func TestConn_DeduplicatesConcurrentAcquisition(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var opens atomic.Int32
	release := make(chan struct{})
	conn := NewConn("postgres://example")
	conn.openFn = func(ctx context.Context) (*sql.DB, error) {
		opens.Add(1)
		<-release
		return db, nil
	}

	const callers = 16
	results := make([]*sql.DB, callers)
	errs := make([]error, callers)
	var started, finished sync.WaitGroup
	for i := 0; i < callers; i++ {
		started.Add(1)
		finished.Add(1)
		go func(i int) {
			started.Done()
			results[i], errs[i] = conn.DB(context.Background())
			finished.Done()
		}(i)
	}
	started.Wait()
	close(release)
	finished.Wait()

	require.Equal(t, int32(1), opens.Load(), "exactly one acquisition may run")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Same(t, db, results[i])
	}
}

// A failed acquisition must clear the in-flight marker so the next call
// retries instead of replaying the stale failure.
func TestConn_FailureClearsInflight(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var opens atomic.Int32
	boom := errors.New("network down")
	conn := NewConn("postgres://example")
	conn.openFn = func(ctx context.Context) (*sql.DB, error) {
		if opens.Add(1) == 1 {
			return nil, boom
		}
		return db, nil
	}

	_, err = conn.DB(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, StateUninitialized, conn.State())

	got, err := conn.DB(context.Background())
	require.NoError(t, err)
	require.Same(t, db, got)
	require.Equal(t, int32(2), opens.Load())
}

func TestConn_Reset(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)

	conn := NewConn("postgres://example")
	conn.openFn = func(ctx context.Context) (*sql.DB, error) { return db, nil }

	_, err = conn.DB(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateConnected, conn.State())

	conn.Reset()
	require.Equal(t, StateUninitialized, conn.State())
}

func TestConn_WaiterHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	conn := NewConn("postgres://example")
	conn.openFn = func(ctx context.Context) (*sql.DB, error) {
		<-release
		return nil, errors.New("never reached in time")
	}

	go conn.DB(context.Background())

	// Wait until the first caller holds the in-flight slot.
	for conn.State() != StateConnecting {
		runtime.Gosched()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := conn.DB(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
