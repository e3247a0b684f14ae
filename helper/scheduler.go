package helper

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	menuScheduler gocron.Scheduler
	orderReport   *cron.Cron
)

// StartMenuCacheScheduler warms the menu cache on start and every day at 03:00.
func StartMenuCacheScheduler(loc *time.Location, warm func(ctx context.Context) error, log *zap.Logger) error {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := warm(ctx); err != nil {
				log.Warn("menu cache warm failed", zap.Error(err))
				return
			}
			log.Info("menu cache warmed")
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	menuScheduler = s
	s.Start()
	log.Info("menu cache scheduler started (03:00)")
	return nil
}

// StartPendingOrderReport logs every 15 minutes how many orders have been
// pending for longer than maxAge.
func StartPendingOrderReport(maxAge time.Duration, count func(ctx context.Context, before time.Time) (int64, error), log *zap.Logger) error {
	orderReport = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := orderReport.AddFunc("*/15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		n, err := count(ctx, time.Now().Add(-maxAge))
		if err != nil {
			log.Error("pending order report failed", zap.Error(err))
			return
		}
		if n > 0 {
			log.Warn("orders waiting for confirmation", zap.Int64("count", n), zap.Duration("older_than", maxAge))
		}
	})
	if err != nil {
		return err
	}

	orderReport.Start()
	log.Info("pending order report started (every 15 minutes)")
	return nil
}

func StopSchedulers() {
	if menuScheduler != nil {
		_ = menuScheduler.Shutdown()
	}
	if orderReport != nil {
		<-orderReport.Stop().Done()
	}
}
