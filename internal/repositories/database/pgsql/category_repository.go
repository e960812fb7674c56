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

const categoryColumns = `id, type, name, sort, status, create_time, create_user, update_time, update_user`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(&m.ID, &m.Type, &m.Name, &m.Sort, &m.Status, &m.CreateTime, &m.CreateUser, &m.UpdateTime, &m.UpdateUser)
	return m, err
}

func collectCategories(rows pgx.Rows) ([]domain.Category, error) {
	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCategorySlice(modelCategories), nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	m := mapping.ToModelCategory(*category)
	query := `
		INSERT INTO category (type, name, sort, status, create_time, create_user, update_time, update_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query, m.Type, m.Name, m.Sort, m.Status, m.CreateTime, m.CreateUser, m.UpdateTime, m.UpdateUser).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	m := mapping.ToModelCategory(*category)
	query := `UPDATE category SET type = $1, name = $2, sort = $3, update_time = $4, update_user = $5 WHERE id = $6;`
	err := r.execAffectingOne(ctx, query, m.Type, m.Name, m.Sort, m.UpdateTime, m.UpdateUser, m.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update category %d: %w", m.ID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategoryStatus(ctx context.Context, category *domain.Category) error {
	query := `UPDATE category SET status = $1, update_time = $2, update_user = $3 WHERE id = $4;`
	err := r.execAffectingOne(ctx, query, category.Status, category.UpdateTime, category.UpdateUser, category.ID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to update status of category %d: %w", category.ID, err)
	}
	return err
}

// DeleteCategory removes a category that no dish references. The category row
// is locked while dishes are counted so a concurrent dish insert cannot slip in.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var locked int64
	if err = tx.QueryRow(ctx, `SELECT id FROM category WHERE id = $1 FOR UPDATE;`, categoryID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock category %d: %w", categoryID, err)
	}

	var dishCount int64
	if err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM dish WHERE category_id = $1;`, categoryID).Scan(&dishCount); err != nil {
		return fmt.Errorf("failed to count dishes of category %d: %w", categoryID, err)
	}
	if dishCount > 0 {
		return fmt.Errorf("%w: category %d is linked to %d dishes", apperrors.ErrValidation, categoryID, dishCount)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM category WHERE id = $1;`, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	m, err := scanCategory(r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM category WHERE id = $1;`, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %d: %w", categoryID, err)
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, q domain.CategoryQuery) (domain.Page[domain.Category], error) {
	var where whereBuilder
	if q.Name != "" {
		where.add("name ILIKE ?", "%"+q.Name+"%")
	}
	if q.Type != 0 {
		where.add("type = ?", int(q.Type))
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM category`+where.String(), where.args...).Scan(&total); err != nil {
		return domain.Page[domain.Category]{}, fmt.Errorf("failed to count categories: %w", err)
	}

	limit, args := where.page(q.Page, q.PageSize)
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM category`+where.String()+` ORDER BY sort ASC, create_time DESC`+limit, args...)
	if err != nil {
		return domain.Page[domain.Category]{}, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories, err := collectCategories(rows)
	if err != nil {
		return domain.Page[domain.Category]{}, fmt.Errorf("failed to scan categories: %w", err)
	}
	return domain.Page[domain.Category]{Total: total, Records: categories}, nil
}

func (r *PgxCategoryRepository) ListEnabledCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	var where whereBuilder
	where.add("status = ?", domain.StatusEnabled)
	if categoryType != 0 {
		where.add("type = ?", int(categoryType))
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM category`+where.String()+` ORDER BY sort ASC, create_time DESC`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories by type: %w", err)
	}
	defer rows.Close()

	categories, err := collectCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}
