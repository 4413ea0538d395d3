package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/models"
)

// itemRepository is the SQLite-backed implementation of [ItemRepository].
// It never opens transactions itself: every call runs on the [Session] the
// caller obtained from [UnitOfWork.WithSession].
type itemRepository struct {
	// logger is used when the request context carries none
	logger *logger.Logger
	now    func() time.Time
}

// NewItemRepository constructs an [ItemRepository].
func NewItemRepository(log *logger.Logger) ItemRepository {
	log.Debug().Msg("creating item repository")
	return &itemRepository{
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *itemRepository) ListItems(ctx context.Context, s Session) ([]models.Item, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildListItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := scanItem(rows, &item); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *itemRepository) GetItem(ctx context.Context, s Session, id int64) (models.Item, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildGetItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	if err := scanItem(s.QueryRowContext(ctx, query, args...), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error scanning row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemRepository) CreateItem(ctx context.Context, s Session, item models.Item) (models.Item, error) {
	log := logger.FromContextOr(ctx, r.logger)

	now := r.now()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args, err := buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Item{}, ErrItemAlreadyExists
		}
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error executing insert")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error reading inserted id")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	item.ID = id

	return item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, s Session, item models.Item) (models.Item, error) {
	log := logger.FromContextOr(ctx, r.logger)

	item.UpdatedAt = r.now()

	query, args, err := buildUpdateItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Item{}, ErrItemAlreadyExists
		}
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error executing update")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := requireAffected(res); err != nil {
		return models.Item{}, err
	}

	// re-read to pick up created_at
	return r.GetItem(ctx, s, item.ID)
}

func (r *itemRepository) DeleteItem(ctx context.Context, s Session, id int64) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *models.Item) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Priority,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
