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

const dishColumns = `id, name, category_id, price, image, description, status, create_time, create_user, update_time, update_user`

type PgxDishRepository struct {
	BaseRepository
}

func newPgxDishRepository(pool *pgxpool.Pool) *PgxDishRepository {
	return &PgxDishRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DishRepositoryFacade = (*PgxDishRepository)(nil)

func scanDish(row pgx.Row) (models.Dish, error) {
	var m models.Dish
	err := row.Scan(&m.ID, &m.Name, &m.CategoryID, &m.Price, &m.Image, &m.Description, &m.Status,
		&m.CreateTime, &m.CreateUser, &m.UpdateTime, &m.UpdateUser)
	return m, err
}

func (r *PgxDishRepository) SaveDish(ctx context.Context, dish *domain.Dish) error {
	m := mapping.ToModelDish(*dish)
	query := `
		INSERT INTO dish (name, category_id, price, image, description, status, create_time, create_user, update_time, update_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.CategoryID, m.Price, m.Image, m.Description, m.Status,
		m.CreateTime, m.CreateUser, m.UpdateTime, m.UpdateUser,
	).Scan(&dish.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: dish %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save dish %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxDishRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	m := mapping.ToModelDish(*dish)
	query := `
		UPDATE dish
		SET name = $1, category_id = $2, price = $3, image = $4, description = $5, update_time = $6, update_user = $7
		WHERE id = $8;
	`
	err := r.execAffectingOne(ctx, query, m.Name, m.CategoryID, m.Price, m.Image, m.Description, m.UpdateTime, m.UpdateUser, m.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: dish %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update dish %d: %w", m.ID, err)
	}
	return nil
}

func (r *PgxDishRepository) UpdateDishStatus(ctx context.Context, dish *domain.Dish) error {
	query := `UPDATE dish SET status = $1, update_time = $2, update_user = $3 WHERE id = $4;`
	err := r.execAffectingOne(ctx, query, dish.Status, dish.UpdateTime, dish.UpdateUser, dish.ID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to update status of dish %d: %w", dish.ID, err)
	}
	return err
}

func (r *PgxDishRepository) FindDishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	m, err := scanDish(r.Pool.QueryRow(ctx, `SELECT `+dishColumns+` FROM dish WHERE id = $1;`, dishID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dish by ID %d: %w", dishID, err)
	}
	d := mapping.ToDomainDish(m)
	return &d, nil
}

func (r *PgxDishRepository) ListDishes(ctx context.Context, q domain.DishQuery) (domain.Page[domain.Dish], error) {
	var where whereBuilder
	if q.Name != "" {
		where.add("name ILIKE ?", "%"+q.Name+"%")
	}
	if q.CategoryID != nil {
		where.add("category_id = ?", *q.CategoryID)
	}
	if q.Status != nil {
		where.add("status = ?", *q.Status)
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM dish`+where.String(), where.args...).Scan(&total); err != nil {
		return domain.Page[domain.Dish]{}, fmt.Errorf("failed to count dishes: %w", err)
	}

	limit, args := where.page(q.Page, q.PageSize)
	rows, err := r.Pool.Query(ctx, `SELECT `+dishColumns+` FROM dish`+where.String()+` ORDER BY create_time DESC, id DESC`+limit, args...)
	if err != nil {
		return domain.Page[domain.Dish]{}, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	modelDishes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Dish, error) {
		return scanDish(row)
	})
	if err != nil {
		return domain.Page[domain.Dish]{}, fmt.Errorf("failed to scan dishes: %w", err)
	}
	return domain.Page[domain.Dish]{Total: total, Records: mapping.ToDomainDishSlice(modelDishes)}, nil
}

func (r *PgxDishRepository) CountDishesByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM dish WHERE category_id = $1;`, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dishes of category %d: %w", categoryID, err)
	}
	return count, nil
}
