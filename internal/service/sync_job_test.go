package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-client/internal/logger"
)

type countingSync struct {
	SyncService
	calls atomic.Int32
}

func (s *countingSync) TriggerSync(context.Context) error {
	s.calls.Add(1)
	return nil
}

func TestSyncJob_Start_TriggersPeriodically(t *testing.T) {
	stub := &countingSync{}
	job := NewSyncJob(stub, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return stub.calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSyncJob_Stop_HaltsTriggers(t *testing.T) {
	stub := &countingSync{}
	job := NewSyncJob(stub, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return stub.calls.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	job.Stop()
	after := stub.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, stub.calls.Load(), "no triggers may fire after Stop")
}

func TestSyncJob_Stop_WithoutStart(t *testing.T) {
	job := NewSyncJob(&countingSync{}, logger.Nop())
	job.Stop() // must not panic or block
}

func TestSyncJob_Restart_ReplacesPreviousRun(t *testing.T) {
	stub := &countingSync{}
	job := NewSyncJob(stub, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return stub.calls.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)
}
