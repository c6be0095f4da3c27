// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/associo/tallysync/internal/adapter"
)

// clientSyncJob runs the background sync loop. Three sources feed a single
// buffered trigger channel: the periodic ticker, the connectivity watcher
// (firing on the offline-to-online transition), and manual TriggerSync
// calls. The buffer of one coalesces bursts into at most one queued
// attempt.
type clientSyncJob struct {
	engine   ClientSyncService
	server   adapter.ServerAdapter
	interval time.Duration
	log      zerolog.Logger

	trigger chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewClientSyncJob creates the background sync loop with the given tick
// interval.
func NewClientSyncJob(engine ClientSyncService, server adapter.ServerAdapter, interval time.Duration, log zerolog.Logger) ClientSyncJob {
	return &clientSyncJob{
		engine:   engine,
		server:   server,
		interval: interval,
		log:      log,
		trigger:  make(chan struct{}, 1),
	}
}

// Start launches the loop and the connectivity watcher. It returns
// immediately; use Stop for a graceful shutdown.
func (j *clientSyncJob) Start(ctx context.Context) {
	ctx, j.cancel = context.WithCancel(ctx)

	j.wg.Add(2)
	go j.run(ctx)
	go j.watchConnectivity(ctx)

	j.log.Info().Dur("interval", j.interval).Msg("sync job started")
}

// Stop cancels the loop and waits for in-flight work to finish.
func (j *clientSyncJob) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	j.wg.Wait()
	j.log.Info().Msg("sync job stopped")
}

// TriggerSync requests an attempt without blocking the caller.
func (j *clientSyncJob) TriggerSync() {
	select {
	case j.trigger <- struct{}{}:
	default:
		// An attempt is already queued.
	}
}

func (j *clientSyncJob) run(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.TriggerSync()
		case <-j.trigger:
			j.syncOnce(ctx)
		}
	}
}

func (j *clientSyncJob) syncOnce(ctx context.Context) {
	_, err := j.engine.SyncOnce(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrOffline):
		j.log.Debug().Msg("sync skipped, device offline")
	case errors.Is(err, ErrSyncInProgress):
		j.log.Debug().Msg("sync skipped, attempt already in flight")
	default:
		j.log.Warn().Err(err).Msg("sync attempt failed")
	}
}

// watchConnectivity polls server reachability and fires a trigger on the
// offline-to-online transition, so a device that regains its link uploads
// promptly instead of waiting out the ticker.
func (j *clientSyncJob) watchConnectivity(ctx context.Context) {
	defer j.wg.Done()

	pollInterval := j.interval / 3
	if pollInterval > 10*time.Second {
		pollInterval = 10 * time.Second
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	online := j.server.Ping(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reachable := j.server.Ping(ctx)
			if reachable && !online {
				j.log.Info().Msg("server reachable again, triggering sync")
				j.TriggerSync()
			}
			online = reachable
		}
	}
}
