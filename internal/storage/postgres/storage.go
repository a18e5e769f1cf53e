package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/domain/repository"
)

// pgxPool is the pool surface the storage uses; pgxmock satisfies it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type dishRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Dishes() repository.DishRepository {
	return &dishRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id SERIAL PRIMARY KEY,
            owner_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
            name TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            is_promoted BOOLEAN NOT NULL DEFAULT FALSE,
            promoted_until TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS dishes (
            id SERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL,
            options JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
            driver_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
            restaurant_id BIGINT REFERENCES restaurants(id) ON DELETE SET NULL,
            total BIGINT,
            status TEXT NOT NULL DEFAULT 'Pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            dish_id BIGINT REFERENCES dishes(id) ON DELETE SET NULL,
            options JSONB NOT NULL DEFAULT '[]'
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            transaction_id TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_driver ON orders(driver_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_dishes_restaurant ON dishes(restaurant_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role model.UserRole) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- RestaurantRepository implementation ---

func (r *restaurantRepository) Create(ctx context.Context, ownerID int64, name, address string) (*model.Restaurant, error) {
	const query = `INSERT INTO restaurants (owner_id, name, address) VALUES ($1, $2, $3) RETURNING id, created_at`
	var rest model.Restaurant
	if err := r.storage.pool.QueryRow(ctx, query, ownerID, name, address).Scan(&rest.ID, &rest.CreatedAt); err != nil {
		return nil, err
	}
	rest.OwnerID = ownerID
	rest.Name = name
	rest.Address = address
	return &rest, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT id, owner_id, name, address, is_promoted, promoted_until, created_at
                   FROM restaurants WHERE id=$1`
	var rest model.Restaurant
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&rest.ID, &rest.OwnerID, &rest.Name, &rest.Address, &rest.IsPromoted, &rest.PromotedUntil, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Restaurant, error) {
	const query = `SELECT id, owner_id, name, address, is_promoted, promoted_until, created_at
                   FROM restaurants WHERE owner_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Address, &rest.IsPromoted, &rest.PromotedUntil, &rest.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *restaurantRepository) SetPromoted(ctx context.Context, id int64, until time.Time) error {
	const query = `UPDATE restaurants SET is_promoted=TRUE, promoted_until=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, until)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrRestaurantNotFound
	}
	return nil
}

func (r *restaurantRepository) ClearExpiredPromotions(ctx context.Context, now time.Time) (int64, error) {
	const query = `UPDATE restaurants SET is_promoted=FALSE, promoted_until=NULL
                   WHERE is_promoted AND promoted_until < $1`
	tag, err := r.storage.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- DishRepository implementation ---

func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	const query = `INSERT INTO dishes (restaurant_id, name, description, price, options)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *dish
	err := r.storage.pool.QueryRow(ctx, query, dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Options).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *dishRepository) GetByID(ctx context.Context, id int64) (*model.Dish, error) {
	const query = `SELECT id, restaurant_id, name, description, price, options, created_at
                   FROM dishes WHERE id=$1`
	var d model.Dish
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Price, &d.Options, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrDishNotFound
		}
		return nil, err
	}
	return &d, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	created.Items = append([]model.OrderItem(nil), order.Items...)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (customer_id, restaurant_id, total, status)
                             VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, order.CustomerID, order.RestaurantID, order.Total, order.Status).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, dish_id, options) VALUES ($1, $2, $3) RETURNING id`
		for i := range created.Items {
			item := &created.Items[i]
			if err := tx.QueryRow(ctx, insertItem, created.ID, item.DishID, item.Options).Scan(&item.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64, withRestaurant bool) (*model.Order, error) {
	var order model.Order

	if withRestaurant {
		const query = `SELECT o.id, o.customer_id, o.driver_id, o.restaurant_id, o.total, o.status,
                              o.created_at, o.updated_at,
                              r.owner_id, r.name, r.address, r.is_promoted, r.promoted_until, r.created_at
                       FROM orders o
                       LEFT JOIN restaurants r ON r.id = o.restaurant_id
                       WHERE o.id=$1`
		var (
			restOwner *int64
			restName  *string
			restAddr  *string
			promoted  *bool
			promUntil *time.Time
			restCr    *time.Time
		)
		err := r.storage.pool.QueryRow(ctx, query, id).Scan(
			&order.ID, &order.CustomerID, &order.DriverID, &order.RestaurantID, &order.Total, &order.Status,
			&order.CreatedAt, &order.UpdatedAt,
			&restOwner, &restName, &restAddr, &promoted, &promUntil, &restCr)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domainErrors.ErrOrderNotFound
			}
			return nil, err
		}
		if order.RestaurantID != nil && restName != nil {
			order.Restaurant = &model.Restaurant{
				ID:            *order.RestaurantID,
				Name:          *restName,
				Address:       *restAddr,
				IsPromoted:    *promoted,
				PromotedUntil: promUntil,
				CreatedAt:     *restCr,
			}
			if restOwner != nil {
				order.Restaurant.OwnerID = *restOwner
			}
		}
	} else {
		const query = `SELECT id, customer_id, driver_id, restaurant_id, total, status, created_at, updated_at
                       FROM orders WHERE id=$1`
		err := r.storage.pool.QueryRow(ctx, query, id).Scan(
			&order.ID, &order.CustomerID, &order.DriverID, &order.RestaurantID, &order.Total, &order.Status,
			&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domainErrors.ErrOrderNotFound
			}
			return nil, err
		}
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, dish_id, options FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.DishID, &item.Options); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const orderColumns = `id, customer_id, driver_id, restaurant_id, total, status, created_at, updated_at`

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64, status *model.OrderStatus) ([]model.Order, error) {
	return r.list(ctx, `customer_id=$1`, customerID, status)
}

func (r *orderRepository) ListByDriver(ctx context.Context, driverID int64, status *model.OrderStatus) ([]model.Order, error) {
	return r.list(ctx, `driver_id=$1`, driverID, status)
}

func (r *orderRepository) list(ctx context.Context, cond string, id int64, status *model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + cond
	args := []any{id}
	if status != nil {
		query += ` AND status=$2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Order, error) {
	const query = `SELECT o.id, o.customer_id, o.driver_id, o.restaurant_id, o.total, o.status, o.created_at, o.updated_at
                   FROM orders o
                   JOIN restaurants r ON r.id = o.restaurant_id
                   WHERE r.owner_id=$1
                   ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.DriverID, &o.RestaurantID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

// AssignDriver claims the order only while driver_id is still NULL, so two
// racing drivers cannot both win.
func (r *orderRepository) AssignDriver(ctx context.Context, orderID, driverID int64) error {
	const query = `UPDATE orders SET driver_id=$1, updated_at=NOW() WHERE id=$2 AND driver_id IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, driverID, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrDriverTaken
	}
	return nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) Create(ctx context.Context, userID, restaurantID int64, transactionID string) (*model.Payment, error) {
	const query = `INSERT INTO payments (user_id, restaurant_id, transaction_id)
                   VALUES ($1, $2, $3) RETURNING id, created_at`
	p := model.Payment{UserID: userID, RestaurantID: restaurantID, TransactionID: transactionID}
	if err := r.storage.pool.QueryRow(ctx, query, userID, restaurantID, transactionID).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	const query = `SELECT id, user_id, restaurant_id, transaction_id, created_at
                   FROM payments WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.RestaurantID, &p.TransactionID, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
