package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	"github.com/SscSPs/sky_delivery_backend/internal/models"
	"github.com/SscSPs/sky_delivery_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, name, username, password, phone, sex, id_number, status, create_time, create_user, update_time, update_user`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.ID, &m.Name, &m.Username, &m.PasswordHash, &m.Phone, &m.Sex, &m.IDNumber, &m.Status,
		&m.CreateTime, &m.CreateUser, &m.UpdateTime, &m.UpdateUser,
	)
	return m, err
}

// SaveEmployee inserts a new employee and writes the generated ID back.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	m := mapping.ToModelEmployee(*employee)
	query := `
		INSERT INTO employee (name, username, password, phone, sex, id_number, status, create_time, create_user, update_time, update_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Username, m.PasswordHash, m.Phone, m.Sex, m.IDNumber, m.Status,
		m.CreateTime, m.CreateUser, m.UpdateTime, m.UpdateUser,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.Username, err)
	}
	return nil
}

// UpdateEmployee updates profile fields; password and status are left alone.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	m := mapping.ToModelEmployee(*employee)
	query := `
		UPDATE employee
		SET name = $1, username = $2, phone = $3, sex = $4, id_number = $5, update_time = $6, update_user = $7
		WHERE id = $8;
	`
	err := r.execAffectingOne(ctx, query, m.Name, m.Username, m.Phone, m.Sex, m.IDNumber, m.UpdateTime, m.UpdateUser, m.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("failed to update employee %d: %w", m.ID, err)
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployeeStatus(ctx context.Context, employee *domain.Employee) error {
	query := `UPDATE employee SET status = $1, update_time = $2, update_user = $3 WHERE id = $4;`
	err := r.execAffectingOne(ctx, query, employee.Status, employee.UpdateTime, employee.UpdateUser, employee.ID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to update status of employee %d: %w", employee.ID, err)
	}
	return err
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %d: %w", employeeID, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE username = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by username %s: %w", username, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, q domain.EmployeeQuery) (domain.Page[domain.Employee], error) {
	var where whereBuilder
	if q.Name != "" {
		where.add("name ILIKE ?", "%"+q.Name+"%")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employee`+where.String(), where.args...).Scan(&total); err != nil {
		return domain.Page[domain.Employee]{}, fmt.Errorf("failed to count employees: %w", err)
	}

	limit, args := where.page(q.Page, q.PageSize)
	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employee`+where.String()+` ORDER BY create_time DESC, id DESC`+limit, args...)
	if err != nil {
		return domain.Page[domain.Employee]{}, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return domain.Page[domain.Employee]{}, fmt.Errorf("failed to scan employees: %w", err)
	}

	return domain.Page[domain.Employee]{Total: total, Records: mapping.ToDomainEmployeeSlice(modelEmployees)}, nil
}
