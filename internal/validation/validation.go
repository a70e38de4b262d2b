package validation

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
)

// Ограничения полей. Цена хранится как целое число вон.
const (
	UsernameMinLen = 2
	UsernameMaxLen = 20
	TitleMaxLen    = 100
	DescMaxLen     = 1000
	PriceMax       = 999_999_999
)

// Categories — фиксированный список категорий товара
var Categories = []string{
	"디지털기기",
	"생활가전",
	"가구/인테리어",
	"유아용품",
	"스포츠/레저",
	"여성의류",
	"남성의류",
	"생활/가공식품",
	"도서",
	"기타",
}

// Имя пользователя: хангыль, латиница, цифры, подчёркивание
var usernameRe = regexp.MustCompile(`^[가-힣a-zA-Z0-9_]+$`)

// ProfileInput — кандидат профиля до валидации
type ProfileInput struct {
	Username string `json:"username"`
	Location string `json:"location"`
}

// ProfileData — нормализованный профиль после валидации
type ProfileData struct {
	Username string
	Location string
}

// ProductInput — кандидат товара до валидации. Images — строка URL,
// разделённых запятыми, как её присылает форма. Цена принимается как
// json.Number, чтобы дробное значение давало понятное сообщение, а не
// ошибку декодирования всего тела.
type ProductInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Location    string      `json:"location"`
	Images      string      `json:"images"`
}

// ProductData — нормализованный товар после валидации
type ProductData struct {
	Title       string
	Description string
	Price       int64
	Category    string
	Location    string
	Images      []string
}

// ValidateProfile проверяет кандидата профиля и возвращает нормализованную
// запись либо ошибку первого нарушенного ограничения. Без I/O.
func ValidateProfile(in ProfileInput) (ProfileData, error) {
	username := strings.TrimSpace(in.Username)

	if utf8.RuneCountInString(username) < UsernameMinLen {
		return ProfileData{}, apperrors.Validation("사용자 이름은 최소 2자 이상이어야 합니다")
	}
	if utf8.RuneCountInString(username) > UsernameMaxLen {
		return ProfileData{}, apperrors.Validation("사용자 이름은 최대 20자까지 입력 가능합니다")
	}
	if !usernameRe.MatchString(username) {
		return ProfileData{}, apperrors.Validation("사용자 이름은 한글, 영문, 숫자, 밑줄만 사용 가능합니다")
	}

	return ProfileData{
		Username: username,
		Location: strings.TrimSpace(in.Location),
	}, nil
}

// ValidateProduct проверяет кандидата товара и возвращает нормализованную
// запись либо ошибку первого нарушенного ограничения. Без I/O.
func ValidateProduct(in ProductInput) (ProductData, error) {
	title := strings.TrimSpace(in.Title)

	if title == "" {
		return ProductData{}, apperrors.Validation("제목을 입력해주세요")
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return ProductData{}, apperrors.Validation("제목은 최대 100자까지 입력 가능합니다")
	}
	if utf8.RuneCountInString(in.Description) > DescMaxLen {
		return ProductData{}, apperrors.Validation("설명은 최대 1000자까지 입력 가능합니다")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return ProductData{}, err
	}

	category := strings.TrimSpace(in.Category)
	if category != "" && !validCategory(category) {
		return ProductData{}, apperrors.Validation("올바른 카테고리를 선택해주세요")
	}

	return ProductData{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Category:    category,
		Location:    strings.TrimSpace(in.Location),
		Images:      ParseImageURLs(in.Images),
	}, nil
}

// parsePrice превращает цену из запроса в целое число вон. Пустое поле
// считается нулём, дробное или нечисловое значение отклоняется.
func parsePrice(raw json.Number) (int64, error) {
	if raw.String() == "" {
		return 0, nil
	}
	price, err := raw.Int64()
	if err != nil {
		return 0, apperrors.Validation("가격은 정수만 입력 가능합니다")
	}
	if price < 0 {
		return 0, apperrors.Validation("가격은 0원 이상이어야 합니다")
	}
	if price > PriceMax {
		return 0, apperrors.Validation("가격이 너무 큽니다")
	}
	return price, nil
}

// ParseImageURLs разбирает строку URL, разделённых запятыми, в упорядоченный
// список; пустые элементы отбрасываются
func ParseImageURLs(raw string) []string {
	urls := []string{}
	for _, part := range strings.Split(raw, ",") {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
