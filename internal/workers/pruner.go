// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/service"
)

const defaultPruneInterval = time.Hour

// JournalPruner deletes journal entries older than the retention period,
// once on start and then every interval.
type JournalPruner struct {
	history   service.HistoryService
	retention time.Duration
	interval  time.Duration

	logger *logger.Logger
}

func NewJournalPruner(history service.HistoryService, retention, interval time.Duration, logger *logger.Logger) *JournalPruner {
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	return &JournalPruner{
		history:   history,
		retention: retention,
		interval:  interval,
		logger:    logger,
	}
}

func (p *JournalPruner) Run(ctx context.Context) {
	log := p.logger.With().Str("worker", "journal_pruner").Logger()
	log.Info().
		Dur("retention", p.retention).
		Dur("interval", p.interval).
		Msg("journal pruner started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.prune(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("journal pruner stopped")
			return
		case <-ticker.C:
		}
	}
}

func (p *JournalPruner) prune(ctx context.Context) {
	deleted, err := p.history.PruneJournal(ctx, p.retention)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		p.logger.Err(err).Str("func", "*JournalPruner.prune").Msg("failed to prune journal")
		return
	}
	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Msg("journal pruned")
	}
}
