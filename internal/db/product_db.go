package db

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gogumamarket/goguma-api/internal/models"
)

// InsertProductParams — поля нового товара после валидации
type InsertProductParams struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	Price       int64
	Category    string
	Location    string
	Images      []string
}

// GetAvailableProducts возвращает товары со статусом available,
// отсортированные по дате создания (сначала новые)
func GetAvailableProducts(limit int) ([]models.Product, error) {
	ctx, cancel := GetContext()
	defer cancel()

	rows, err := Pool.Query(ctx, `
		SELECT id, seller_id, title, description, price, category, location,
		       status, images, view_count, created_at, updated_at
		FROM products
		WHERE status = 'available'
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе товаров: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании товара: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении товаров: %w", err)
	}
	return products, nil
}

// GetProductWithProfile возвращает товар вместе с профилем продавца.
// Отсутствие записи возвращается как pgx.ErrNoRows.
func GetProductWithProfile(id uuid.UUID) (*models.ProductWithProfile, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var result models.ProductWithProfile
	var sellerID pgtype.UUID
	var description, category, location pgtype.Text
	var profileID pgtype.UUID
	var username, avatarURL, profileLocation pgtype.Text
	var profileCreatedAt pgtype.Timestamptz

	err := Pool.QueryRow(ctx, `
		SELECT p.id, p.seller_id, p.title, p.description, p.price, p.category,
		       p.location, p.status, p.images, p.view_count, p.created_at, p.updated_at,
		       pr.id, pr.username, pr.avatar_url, pr.location, pr.created_at
		FROM products p
		LEFT JOIN profiles pr ON pr.id = p.seller_id
		WHERE p.id = $1
	`, id).Scan(
		&result.ID, &sellerID, &result.Title, &description, &result.Price,
		&category, &location, &result.Status, &result.Images, &result.ViewCount,
		&result.CreatedAt, &result.UpdatedAt,
		&profileID, &username, &avatarURL, &profileLocation, &profileCreatedAt,
	)

	if err != nil {
		// pgx.ErrNoRows пробрасываем как есть, сервис превратит его в NotFound
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("ошибка при запросе товара: %w", err)
	}

	result.Description = description.String
	result.Category = category.String
	result.Location = location.String
	if sellerID.Valid {
		u := uuid.UUID(sellerID.Bytes)
		result.SellerID = &u
	}

	if profileID.Valid {
		result.Seller = &models.Profile{
			ID:        uuid.UUID(profileID.Bytes),
			Username:  username.String,
			AvatarURL: avatarURL.String,
			Location:  profileLocation.String,
			CreatedAt: profileCreatedAt.Time,
		}
	}

	return &result, nil
}

// InsertProduct создаёт товар через привилегированный пул. Статус всегда
// фиксируется как available, продавец после вставки не меняется.
func InsertProduct(params InsertProductParams) (uuid.UUID, error) {
	ctx, cancel := GetContext()
	defer cancel()

	images := params.Images
	if images == nil {
		images = []string{}
	}

	var id uuid.UUID
	err := ServicePool.QueryRow(ctx, `
		INSERT INTO products (seller_id, title, description, price, category, location, status, images)
		VALUES ($1, $2, $3, $4, $5, $6, 'available', $7)
		RETURNING id
	`, params.SellerID, params.Title, nullText(params.Description), params.Price,
		nullText(params.Category), nullText(params.Location), images).Scan(&id)

	if err != nil {
		return uuid.Nil, fmt.Errorf("ошибка при создании товара: %w", err)
	}
	return id, nil
}

// IncrementViewCount увеличивает счётчик просмотров на единицу
func IncrementViewCount(id uuid.UUID) error {
	ctx, cancel := GetContext()
	defer cancel()

	_, err := ServicePool.Exec(ctx, `
		UPDATE products SET view_count = view_count + 1 WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("ошибка при обновлении счётчика просмотров: %w", err)
	}
	return nil
}

// scanProduct читает строку выборки товаров
func scanProduct(rows pgx.Rows) (models.Product, error) {
	var product models.Product
	var sellerID pgtype.UUID
	var description, category, location pgtype.Text

	err := rows.Scan(
		&product.ID, &sellerID, &product.Title, &description, &product.Price,
		&category, &location, &product.Status, &product.Images,
		&product.ViewCount, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}

	product.Description = description.String
	product.Category = category.String
	product.Location = location.String
	if sellerID.Valid {
		u := uuid.UUID(sellerID.Bytes)
		product.SellerID = &u
	}

	return product, nil
}
