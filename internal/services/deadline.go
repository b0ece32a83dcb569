package services

import (
	"context"
	"time"

	"github.com/Renal37/orderdesk/internal/logger"
	"github.com/Renal37/orderdesk/internal/models"
	"go.uber.org/zap"
)

// DeadlineService периодически просматривает незавершённые заказы и пишет в
// лог сводку по дедлайнам: сколько заказов должно уйти сегодня и сколько уже
// просрочено. Сервис ничего не сохраняет — просроченность это производное
// значение, оно каждый раз вычисляется заново по свежему снимку.
type DeadlineService struct {
	storage         deadlineStorage
	jobQueueService deadlineJobQueueService
	rescanInterval  time.Duration
}

type deadlineStorage interface {
	FindAllOrders(ctx context.Context) ([]models.Order, error)
}

type deadlineJobQueueService interface {
	Enqueue(job Job) error

	ScheduleJob(job Job, delay time.Duration)
}

func NewDeadlineService(storage deadlineStorage, jobQueueService deadlineJobQueueService, rescanInterval time.Duration) *DeadlineService {
	return &DeadlineService{
		storage:         storage,
		jobQueueService: jobQueueService,
		rescanInterval:  rescanInterval,
	}
}

// StartDeadlineWatch ставит первый обход в очередь заданий; каждый обход
// планирует следующий через rescanInterval.
func (ds *DeadlineService) StartDeadlineWatch(ctx context.Context) error {
	return ds.jobQueueService.Enqueue(func(ctx context.Context) {
		ds.scan(ctx)
	})
}

func (ds *DeadlineService) scan(ctx context.Context) {
	defer ds.jobQueueService.ScheduleJob(func(ctx context.Context) {
		ds.scan(ctx)
	}, ds.rescanInterval)

	orders, err := ds.storage.FindAllOrders(ctx)
	if err != nil {
		logger.Log.Error("deadline scan failed", zap.Error(err))
		return
	}

	now := time.Now()
	today := startOfDay(now)

	var dueToday, overdue, unassigned int

	for i := range orders {
		if orders[i].Status == models.StatusCompleted {
			continue
		}

		if orders[i].Unassigned() {
			unassigned++
		}

		view := ResolveView(orders[i], now)

		if view.Overdue {
			overdue++

			logger.Log.Warn("order is overdue",
				zap.String("orderID", orders[i].ID),
				zap.String("customer", orders[i].CustomerName),
				zap.Time("deadline", view.EffectiveDeadline.Time),
				zap.String("status", string(orders[i].Status)),
			)

			continue
		}

		if sameDay(view.EffectiveDeadline.Time, today) {
			dueToday++
		}
	}

	logger.Log.Info("deadline scan finished",
		zap.Int("orders", len(orders)),
		zap.Int("dueToday", dueToday),
		zap.Int("overdue", overdue),
		zap.Int("unassigned", unassigned),
	)
}
