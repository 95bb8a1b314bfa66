package call

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler periodically closes published calls past their closing date.
type Scheduler struct {
	cron    *cron.Cron
	service CallService
	logger  *zap.Logger
}

func NewScheduler(service CallService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@every 10m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		closed, err := s.service.CloseExpired(ctx)
		if err != nil {
			s.logger.Error("Failed to close expired calls", zap.Error(err))
			return
		}
		if closed > 0 {
			s.logger.Info("Closed expired calls", zap.Int64("count", closed))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
