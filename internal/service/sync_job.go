// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-client/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// syncJob periodically triggers a full sync for the active user. Triggers
// that land while a sync is in flight are silently dropped by the
// coordinator, so overlapping ticks are harmless.
type syncJob struct {
	sync SyncService
	log  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob wires the background sync worker over the sync coordinator.
func NewSyncJob(syncSvc SyncService, log *logger.Logger) SyncJob {
	return &syncJob{sync: syncSvc, log: log}
}

func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(runCtx, interval)
}

func (j *syncJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	j.log.Debug().Dur("interval", interval).Msg("background sync started")
	for {
		select {
		case <-ctx.Done():
			j.log.Debug().Msg("background sync stopped")
			return
		case <-ticker.C:
			if err := j.sync.TriggerSync(ctx); err != nil {
				j.log.Warn().Err(err).Msg("background sync failed")
			}
		}
	}
}

func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
