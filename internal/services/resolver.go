package services

import (
	"time"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/Renal37/orderdesk/internal/utils"
)

// ResolvedOrder — производные поля заказа. Они не хранятся отдельно от
// заказа и пересчитываются при каждом чтении, чтобы хранимое и показанное
// значения не могли разойтись.
type ResolvedOrder struct {
	Priority models.Priority
	Start    time.Time
	Deadline time.Time
}

// ResolveOrder выводит эффективный приоритет и дедлайн заказа.
//
// Приоритет: High, если High хотя бы у одной позиции (без учёта регистра),
// иначе приоритет самого заказа, иначе Normal.
//
// Дедлайн: максимальная из дат поставки позиций и плановой даты заказа;
// если дат нет вовсе — дата размещения заказа. Отсутствующие и нулевые даты
// из вычисления исключаются, функция тотальна и не возвращает ошибок.
func ResolveOrder(o *models.Order) ResolvedOrder {
	resolved := ResolvedOrder{
		Priority: models.PriorityNormal,
		Start:    o.StartDate.Time,
	}

	if o.Priority.IsHigh() {
		resolved.Priority = models.PriorityHigh
	}

	var candidates []time.Time
	if d := dateOf(o.EstimatedDeliveryDate); !d.IsZero() {
		candidates = append(candidates, d)
	}

	for _, item := range o.Items {
		if item.Priority.IsHigh() {
			resolved.Priority = models.PriorityHigh
		}
		if d := dateOf(item.DeliveryDate); !d.IsZero() {
			candidates = append(candidates, d)
		}
	}

	resolved.Deadline = resolved.Start
	for _, candidate := range candidates {
		if resolved.Deadline.IsZero() || candidate.After(resolved.Deadline) {
			resolved.Deadline = candidate
		}
	}

	return resolved
}

// ResolveView собирает представление заказа с производными полями.
// Просроченность считается относительно переданного «сейчас»:
// дедлайн в прошлом и статус не Completed.
func ResolveView(o models.Order, now time.Time) models.OrderView {
	resolved := ResolveOrder(&o)

	return models.OrderView{
		Order:             o,
		EffectivePriority: resolved.Priority,
		EffectiveStart:    utils.RFC3339Date{Time: resolved.Start},
		EffectiveDeadline: utils.RFC3339Date{Time: resolved.Deadline},
		Overdue:           !resolved.Deadline.IsZero() && resolved.Deadline.Before(now) && o.Status != models.StatusCompleted,
	}
}

func dateOf(d *utils.RFC3339Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
