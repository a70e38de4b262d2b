package product

import (
	"github.com/google/uuid"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
	"github.com/gogumamarket/goguma-api/internal/db"
	"github.com/gogumamarket/goguma-api/internal/models"
	"github.com/gogumamarket/goguma-api/internal/validation"
)

// Store — операции хранилища, которые нужны процессу создания товара
type Store interface {
	UsernameTaken(username string) (bool, error)
	InsertProfile(username, location string) (*models.Profile, error)
	InsertProduct(params db.InsertProductParams) (uuid.UUID, error)
}

// FeedInvalidator сбрасывает кеш ленты после успешной вставки
type FeedInvalidator interface {
	Invalidate()
}

// pgStore — реализация Store поверх пулов пакета db
type pgStore struct{}

func (pgStore) UsernameTaken(username string) (bool, error) {
	return db.UsernameTaken(username)
}

func (pgStore) InsertProfile(username, location string) (*models.Profile, error) {
	return db.InsertProfile(username, location)
}

func (pgStore) InsertProduct(params db.InsertProductParams) (uuid.UUID, error) {
	return db.InsertProduct(params)
}

// CreateRequest — входные данные процесса создания товара. Profile берётся
// из cookie; если его нет, Username и SellerLocation описывают нового продавца.
type CreateRequest struct {
	Profile        *models.StoredProfile
	Username       string
	SellerLocation string
	Product        validation.ProductInput
}

// CreateResult — результат успешного прохождения процесса
type CreateResult struct {
	ProductID uuid.UUID
	// NewProfile заполнен, только если профиль был создан на этом шаге
	NewProfile *models.StoredProfile
}

// createListing проводит заявку через все шаги: валидация, создание профиля
// при его отсутствии, вставка товара, сброс кеша ленты. Любая ошибка
// прерывает процесс; откатов нет — созданный профиль остаётся и при
// неудачной вставке товара, повторная отправка его переиспользует.
func createListing(store Store, feed FeedInvalidator, req CreateRequest) (*CreateResult, error) {
	// Обе валидации выполняются до какой-либо записи в хранилище
	var profileData validation.ProfileData
	needProfile := req.Profile == nil

	if needProfile {
		var err error
		profileData, err = validation.ValidateProfile(validation.ProfileInput{
			Username: req.Username,
			Location: req.SellerLocation,
		})
		if err != nil {
			return nil, err
		}
	}

	productData, err := validation.ValidateProduct(req.Product)
	if err != nil {
		return nil, err
	}

	// При необходимости создаём профиль. Проверка имени и вставка не
	// атомарны, гонку окончательно разрешает ограничение уникальности.
	result := &CreateResult{}
	sellerID := uuid.Nil

	if needProfile {
		taken, err := store.UsernameTaken(profileData.Username)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		if taken {
			return nil, apperrors.Conflict(apperrors.MsgUsernameTaken)
		}

		profile, err := store.InsertProfile(profileData.Username, profileData.Location)
		if err != nil {
			return nil, apperrors.Store(err)
		}

		result.NewProfile = &models.StoredProfile{
			ID:       profile.ID,
			Username: profile.Username,
			Location: profile.Location,
		}
		sellerID = profile.ID
	} else {
		sellerID = req.Profile.ID
	}

	productID, err := store.InsertProduct(db.InsertProductParams{
		SellerID:    sellerID,
		Title:       productData.Title,
		Description: productData.Description,
		Price:       productData.Price,
		Category:    productData.Category,
		Location:    productData.Location,
		Images:      productData.Images,
	})
	if err != nil {
		return nil, apperrors.Store(err)
	}

	// Сбрасываем кеш, чтобы следующая выборка ленты увидела новый товар
	feed.Invalidate()

	result.ProductID = productID
	return result, nil
}
