package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gogumamarket/goguma-api/internal/models"
)

// UsernameTaken проверяет точечным запросом, занято ли имя пользователя.
// Проверка и последующая вставка не атомарны: гонка между одновременными
// регистрациями остаётся возможной и ловится ограничением уникальности в базе.
func UsernameTaken(username string) (bool, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var id uuid.UUID
	err := Pool.QueryRow(ctx, `
		SELECT id FROM profiles WHERE username = $1
	`, username).Scan(&id)

	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке имени пользователя: %w", err)
	}
	return true, nil
}

// InsertProfile создаёт профиль продавца через привилегированный пул
func InsertProfile(username, location string) (*models.Profile, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var profile models.Profile
	var avatarURL, loc pgtype.Text
	var createdAt time.Time

	err := ServicePool.QueryRow(ctx, `
		INSERT INTO profiles (username, location)
		VALUES ($1, $2)
		RETURNING id, username, avatar_url, location, created_at
	`, username, nullText(location)).Scan(
		&profile.ID, &profile.Username, &avatarURL, &loc, &createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("ошибка при создании профиля: %w", err)
	}

	profile.AvatarURL = avatarURL.String
	profile.Location = loc.String
	profile.CreatedAt = createdAt
	return &profile, nil
}

// nullText преобразует пустую строку в NULL
func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
