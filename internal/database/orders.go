package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/Renal37/orderdesk/internal/utils"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Определение пользовательских ошибок
var (
	ErrDuplicateJobNumber   = errors.New("номер работы уже занят")        // Нарушение уникальности номера работы
	ErrOrderAlreadyAssigned = errors.New("заказ уже назначен")            // Заказ успел назначить другой оператор
	ErrOrderNotFound        = errors.New("заказ не найден в базе данных") // Заказ отсутствует в хранилище
)

// SQL-запросы для работы с заказами
const (
	InsertOrderQuery = `
		INSERT INTO
			orders (id, po_number, customer_name, start_date, estimated_delivery_date, status, priority, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	InsertOrderItemQuery = `
		INSERT INTO
			order_items (order_id, position, name, quantity, unit, rate, amount, delivery_date, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	InsertStatusHistoryQuery = `
		INSERT INTO
			status_history (order_id, status, note)
		VALUES ($1, $2, $3)
	`
	SelectOrderQuery = `
		SELECT
			id,
			po_number,
			customer_name,
			job_number,
			start_date,
			estimated_delivery_date,
			status,
			priority,
			total_amount,
			notes,
			assigned_account_employee,
			accounts_employee,
			assigned_to
		FROM
			orders
		WHERE
			id = $1
	`
	SelectAllOrdersQuery = `
		SELECT
			id,
			po_number,
			customer_name,
			job_number,
			start_date,
			estimated_delivery_date,
			status,
			priority,
			total_amount,
			notes,
			assigned_account_employee,
			accounts_employee,
			assigned_to
		FROM
			orders
		ORDER BY
			created_at
	`
	SelectAllItemsQuery = `
		SELECT
			order_id,
			name,
			quantity,
			unit,
			rate,
			amount,
			delivery_date,
			priority
		FROM
			order_items
		ORDER BY
			order_id, position
	`
	SelectItemsQuery = `
		SELECT
			order_id,
			name,
			quantity,
			unit,
			rate,
			amount,
			delivery_date,
			priority
		FROM
			order_items
		WHERE
			order_id = $1
		ORDER BY
			position
	`
	SelectJobNumbersQuery = `
		SELECT
			job_number
		FROM
			orders
		WHERE
			job_number IS NOT NULL
	`
	ApplyAssignmentQuery = `
		UPDATE
			orders
		SET
			job_number = $2,
			assigned_account_employee = $3,
			updated_at = now()
		WHERE
			id = $1
			AND assigned_account_employee IS NULL
			AND accounts_employee IS NULL
			AND assigned_to IS NULL
	`
	UpdateOrderStatusQuery = `
		UPDATE
			orders
		SET
			status = $2,
			updated_at = now()
		WHERE
			id = $1
	`
)

// Определение статуса заказа с возможностью преобразования в/из базы данных
type OrderStatusDB struct {
	models.OrderStatus
}

// Реализация интерфейса sql.Scanner для чтения статуса заказа из базы данных
func (s *OrderStatusDB) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("статус заказа должен быть строкой, а не %T", value)
	}

	*s = OrderStatusDB{models.OrderStatus(strVal)}
	return nil
}

// Реализация интерфейса driver.Valuer для преобразования статуса заказа в строку перед записью в базу данных
func (s OrderStatusDB) Value() (driver.Value, error) {
	return string(s.OrderStatus), nil
}

// Создание нового заказа вместе с позициями и первой записью истории статусов.
// Все записи выполняются в одной транзакции.
func (d *Database) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, InsertOrderQuery,
		order.ID,
		order.PONumber,
		order.CustomerName,
		order.StartDate.Time,
		timePtr(order.EstimatedDeliveryDate),
		OrderStatusDB{order.Status},
		string(order.Priority),
		order.TotalAmount,
		order.Notes,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания заказа: %w", err)
	}

	for position, item := range order.Items {
		_, err = tx.Exec(ctx, InsertOrderItemQuery,
			order.ID,
			position,
			item.Name,
			item.Quantity,
			item.Unit,
			item.Rate,
			item.Amount,
			timePtr(item.DeliveryDate),
			string(item.Priority),
		)
		if err != nil {
			return fmt.Errorf("ошибка создания позиции заказа: %w", err)
		}
	}

	_, err = tx.Exec(ctx, InsertStatusHistoryQuery, order.ID, OrderStatusDB{order.Status}, "Заказ создан")
	if err != nil {
		return fmt.Errorf("ошибка записи истории статусов: %w", err)
	}

	return tx.Commit(ctx)
}

// Поиск заказа по его ID вместе с позициями.
// Если заказ не найден, возвращается nil без ошибки.
func (d *Database) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, SelectOrderQuery, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска заказа: %w", err)
	}

	items, err := d.findItems(ctx, SelectItemsQuery, orderID)
	if err != nil {
		return nil, err
	}

	order.Items = items[order.ID]

	return order, nil
}

// Поиск всех заказов с позициями. Снимок для движка назначений.
func (d *Database) FindAllOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := d.db.Query(ctx, SelectAllOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска заказов: %w", err)
	}
	defer rows.Close()

	var result []models.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с заказом: %w", err)
		}
		result = append(result, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	items, err := d.findItems(ctx, SelectAllItemsQuery)
	if err != nil {
		return nil, err
	}

	for i := range result {
		result[i].Items = items[result[i].ID]
	}

	return result, nil
}

// Поиск всех занятых номеров работ.
func (d *Database) FindJobNumbers(ctx context.Context) ([]string, error) {
	rows, err := d.db.Query(ctx, SelectJobNumbersQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска номеров работ: %w", err)
	}
	defer rows.Close()

	var result []string

	for rows.Next() {
		var jobNumber string
		if err := rows.Scan(&jobNumber); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с номером работы: %w", err)
		}
		result = append(result, jobNumber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// ApplyAssignment записывает номер работы и сотрудника одним запросом:
// либо фиксируются оба поля, либо ни одно. Условие в WHERE охватывает все
// унаследованные поля назначения, поэтому заказ, занятый параллельным
// оператором, проявится как ноль изменённых строк.
func (d *Database) ApplyAssignment(ctx context.Context, orderID, jobNumber, employeeID string) error {
	tag, err := d.db.Exec(ctx, ApplyAssignmentQuery, orderID, jobNumber, employeeID)
	if err != nil {
		var e *pgconn.PgError
		// Уникальный индекс по номеру работы — авторитетная проверка,
		// она срабатывает даже когда локальная проверка по снимку прошла.
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateJobNumber
		}
		return fmt.Errorf("ошибка применения назначения: %w", err)
	}

	if tag.RowsAffected() == 0 {
		order, err := d.FindOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		return ErrOrderAlreadyAssigned
	}

	return nil
}

// Обновление статуса заказа с записью в историю статусов.
func (d *Database) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus, note string) error {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, UpdateOrderStatusQuery, orderID, OrderStatusDB{status})
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса заказа: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	if note == "" {
		note = "Статус обновлён"
	}

	_, err = tx.Exec(ctx, InsertStatusHistoryQuery, orderID, OrderStatusDB{status}, note)
	if err != nil {
		return fmt.Errorf("ошибка записи истории статусов: %w", err)
	}

	return tx.Commit(ctx)
}

func (d *Database) findItems(ctx context.Context, query string, args ...interface{}) (map[string][]models.Item, error) {
	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска позиций заказов: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.Item)

	for rows.Next() {
		var (
			orderID      string
			item         models.Item
			priority     string
			deliveryDate *time.Time
		)

		if err := rows.Scan(&orderID, &item.Name, &item.Quantity, &item.Unit, &item.Rate, &item.Amount, &deliveryDate, &priority); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с позицией заказа: %w", err)
		}

		item.Priority = models.Priority(priority)
		item.DeliveryDate = datePtr(deliveryDate)

		result[orderID] = append(result[orderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		order         models.Order
		status        OrderStatusDB
		priority      string
		startDate     time.Time
		estimatedDate *time.Time
		totalAmount   decimal.Decimal
	)

	err := row.Scan(
		&order.ID,
		&order.PONumber,
		&order.CustomerName,
		&order.JobNumber,
		&startDate,
		&estimatedDate,
		&status,
		&priority,
		&totalAmount,
		&order.Notes,
		&order.AssignedAccountEmployee,
		&order.AccountsEmployee,
		&order.AssignedTo,
	)
	if err != nil {
		return nil, err
	}

	order.Status = status.OrderStatus
	order.Priority = models.Priority(priority)
	order.StartDate = utils.RFC3339Date{Time: startDate}
	order.EstimatedDeliveryDate = datePtr(estimatedDate)
	order.TotalAmount = totalAmount

	return &order, nil
}

func timePtr(d *utils.RFC3339Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	return &d.Time
}

func datePtr(t *time.Time) *utils.RFC3339Date {
	if t == nil {
		return nil
	}
	return &utils.RFC3339Date{Time: *t}
}
