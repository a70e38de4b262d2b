package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
)

func TestValidateProfile(t *testing.T) {
	t.Run("валидный профиль нормализуется", func(t *testing.T) {
		data, err := ValidateProfile(ProfileInput{
			Username: "  판매자1  ",
			Location: " 서울시 강남구 ",
		})

		require.NoError(t, err)
		assert.Equal(t, "판매자1", data.Username)
		assert.Equal(t, "서울시 강남구", data.Location)
	})

	t.Run("имя короче двух символов", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Username: "a"})

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Contains(t, apperrors.UserMessage(err), "최소 2자")
	})

	t.Run("имя длиннее двадцати символов", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Username: strings.Repeat("가", 21)})

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("ровно двадцать символов допустимо", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Username: strings.Repeat("가", 20)})
		assert.NoError(t, err)
	})

	t.Run("недопустимые символы", func(t *testing.T) {
		for _, username := range []string{"판매 자", "seller!", "이름@집", "a-b"} {
			_, err := ValidateProfile(ProfileInput{Username: username})
			require.Error(t, err, "username %q", username)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		}
	})

	t.Run("хангыль, латиница, цифры и подчёркивание допустимы", func(t *testing.T) {
		for _, username := range []string{"고구마팔아요", "seller_01", "판매자1", "AB_99"} {
			_, err := ValidateProfile(ProfileInput{Username: username})
			assert.NoError(t, err, "username %q", username)
		}
	})

	t.Run("локация необязательна", func(t *testing.T) {
		data, err := ValidateProfile(ProfileInput{Username: "판매자1"})
		require.NoError(t, err)
		assert.Empty(t, data.Location)
	})
}

func TestValidateProduct(t *testing.T) {
	valid := ProductInput{
		Title:    "자전거",
		Price:    json.Number("15000"),
		Category: "스포츠/레저",
		Images:   "a.jpg,b.jpg",
	}

	t.Run("валидный товар нормализуется", func(t *testing.T) {
		data, err := ValidateProduct(valid)

		require.NoError(t, err)
		assert.Equal(t, "자전거", data.Title)
		assert.Equal(t, int64(15000), data.Price)
		assert.Equal(t, "스포츠/레저", data.Category)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, data.Images)
	})

	t.Run("пустой заголовок", func(t *testing.T) {
		in := valid
		in.Title = "   "
		_, err := ValidateProduct(in)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("заголовок длиннее ста символов", func(t *testing.T) {
		in := valid
		in.Title = strings.Repeat("가", 101)
		_, err := ValidateProduct(in)
		require.Error(t, err)
	})

	t.Run("описание длиннее тысячи символов", func(t *testing.T) {
		in := valid
		in.Description = strings.Repeat("가", 1001)
		_, err := ValidateProduct(in)
		require.Error(t, err)
	})

	t.Run("отрицательная цена", func(t *testing.T) {
		in := valid
		in.Price = json.Number("-5")
		_, err := ValidateProduct(in)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("цена выше верхней границы", func(t *testing.T) {
		in := valid
		in.Price = json.Number("1000000000")
		_, err := ValidateProduct(in)
		require.Error(t, err)
	})

	t.Run("граничные цены допустимы", func(t *testing.T) {
		for _, price := range []json.Number{"0", "999999999"} {
			in := valid
			in.Price = price
			_, err := ValidateProduct(in)
			assert.NoError(t, err, "price %s", price)
		}
	})

	t.Run("дробная цена отклоняется", func(t *testing.T) {
		in := valid
		in.Price = json.Number("15000.5")
		_, err := ValidateProduct(in)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Equal(t, "가격은 정수만 입력 가능합니다", apperrors.UserMessage(err))
	})

	t.Run("пустая цена считается нулём", func(t *testing.T) {
		in := valid
		in.Price = json.Number("")
		data, err := ValidateProduct(in)

		require.NoError(t, err)
		assert.Equal(t, int64(0), data.Price)
	})

	t.Run("категория вне списка", func(t *testing.T) {
		in := valid
		in.Category = "우주선"
		_, err := ValidateProduct(in)
		require.Error(t, err)
	})

	t.Run("категория необязательна", func(t *testing.T) {
		in := valid
		in.Category = ""
		data, err := ValidateProduct(in)
		require.NoError(t, err)
		assert.Empty(t, data.Category)
	})
}

func TestParseImageURLs(t *testing.T) {
	t.Run("разбор с сохранением порядка", func(t *testing.T) {
		urls := ParseImageURLs("a.jpg,b.jpg,c.jpg")
		assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, urls)
	})

	t.Run("пробелы обрезаются, пустые элементы отбрасываются", func(t *testing.T) {
		urls := ParseImageURLs("  a.jpg , , b.jpg ,")
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, urls)
	})

	t.Run("пустая строка даёт пустой список", func(t *testing.T) {
		assert.Empty(t, ParseImageURLs(""))
		assert.Empty(t, ParseImageURLs("  ,  ,  "))
	})
}
