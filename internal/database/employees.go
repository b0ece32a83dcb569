package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/jackc/pgx/v5"
)

// SQL-запросы для работы со справочником сотрудников
const (
	SelectEmployeesQuery = `
		SELECT
			id,
			name,
			email,
			role
		FROM
			employees
		ORDER BY
			name
	`
	SelectEmployeeQuery = `
		SELECT
			id,
			name,
			email,
			role
		FROM
			employees
		WHERE
			id = $1
	`
)

// Поиск всех сотрудников.
func (d *Database) FindEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := d.db.Query(ctx, SelectEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска сотрудников: %w", err)
	}
	defer rows.Close()

	var result []models.Employee

	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Email, &employee.Role); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с сотрудником: %w", err)
		}
		result = append(result, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// Поиск сотрудника по ID.
// Если сотрудник не найден, возвращается nil без ошибки.
func (d *Database) FindEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee := &models.Employee{}

	err := d.db.QueryRow(ctx, SelectEmployeeQuery, employeeID).
		Scan(&employee.ID, &employee.Name, &employee.Email, &employee.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска сотрудника: %w", err)
	}

	return employee, nil
}
