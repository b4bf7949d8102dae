package validation

import (
	"regexp"
	"strconv"
)

// Правила формата. Проверка даты намеренно ограничена формой записи:
// календарная корректность (например, 31 день в апреле) не проверяется,
// как и в исходном сервисе.
var (
	emailRe = regexp.MustCompile(`\A\S+@\S+\.\S+\z`)
	phoneRe = regexp.MustCompile(`\A7\d{10}\z`)
	dateRe  = regexp.MustCompile(`\A(0[1-9]|[12][0-9]|3[01])\.(0[1-9]|1[0-2])\.\d{4}\z`)
)

// Границы года рождения.
const (
	birthYearMin = 1950
	birthYearMax = 2020
)

// Допустимые значения пола.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// toInt64 приводит значение к int64.
// JSON-числа декодируются в float64, поэтому принимаем и их,
// но только с целой частью без остатка.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

// Char — строковое поле.
type Char struct{}

func (Char) Empty(value any) bool {
	s, ok := value.(string)
	return ok && s == ""
}

func (Char) Check(field string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, newError(field, KindTypeMismatch, "поле '%s' должно быть строкой", field)
	}
	return s, nil
}

// Arguments — словарь аргументов метода.
type Arguments struct{}

func (Arguments) Empty(value any) bool {
	m, ok := value.(map[string]any)
	return ok && len(m) == 0
}

func (Arguments) Check(field string, value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, newError(field, KindTypeMismatch, "поле '%s' должно быть объектом", field)
	}
	return m, nil
}

// Email — строка, похожая на адрес электронной почты.
// Проверка намеренно нестрогая: непробельные символы, '@', точка в домене.
type Email struct{}

func (Email) Empty(value any) bool {
	return Char{}.Empty(value)
}

func (Email) Check(field string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, newError(field, KindTypeMismatch, "поле '%s' должно быть строкой", field)
	}
	if !emailRe.MatchString(s) {
		return nil, newError(field, KindFormatMismatch,
			"поле '%s' должно содержать адрес электронной почты", field)
	}
	return s, nil
}

// Phone — телефон строкой или числом: 11 цифр, первая — 7.
// Нормализуется к строке цифр.
type Phone struct{}

func (Phone) Empty(value any) bool {
	s, ok := value.(string)
	return ok && s == ""
}

func (Phone) Check(field string, value any) (any, error) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	default:
		n, ok := toInt64(value)
		if !ok {
			return nil, newError(field, KindTypeMismatch,
				"поле '%s' должно быть строкой или числом", field)
		}
		s = strconv.FormatInt(n, 10)
	}
	if !phoneRe.MatchString(s) {
		return nil, newError(field, KindFormatMismatch,
			"поле '%s' должно содержать 11 цифр и начинаться с 7", field)
	}
	return s, nil
}

// Date — дата строкой в формате ДД.ММ.ГГГГ.
type Date struct{}

func (Date) Empty(value any) bool {
	return Char{}.Empty(value)
}

func (Date) Check(field string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, newError(field, KindTypeMismatch, "поле '%s' должно быть строкой", field)
	}
	if !dateRe.MatchString(s) {
		return nil, newError(field, KindFormatMismatch,
			"поле '%s' должно быть датой в формате ДД.ММ.ГГГГ", field)
	}
	return s, nil
}

// BirthDay — дата рождения: формат даты плюс ограничение на год.
type BirthDay struct{}

func (BirthDay) Empty(value any) bool {
	return Char{}.Empty(value)
}

func (BirthDay) Check(field string, value any) (any, error) {
	checked, err := Date{}.Check(field, value)
	if err != nil {
		return nil, err
	}
	s := checked.(string)
	year, err := strconv.Atoi(s[len(s)-4:])
	if err != nil || year < birthYearMin || year > birthYearMax {
		return nil, newError(field, KindFormatMismatch,
			"год в поле '%s' должен быть в диапазоне от %d до %d", field, birthYearMin, birthYearMax)
	}
	return s, nil
}

// Gender — целое число: 0, 1 или 2.
type Gender struct{}

func (Gender) Empty(any) bool {
	// У числового поля нет пустого значения: 0 — допустимый пол.
	return false
}

func (Gender) Check(field string, value any) (any, error) {
	n, ok := toInt64(value)
	if !ok {
		return nil, newError(field, KindTypeMismatch, "поле '%s' должно быть числом", field)
	}
	if n != GenderUnknown && n != GenderMale && n != GenderFemale {
		return nil, newError(field, KindFormatMismatch,
			"поле '%s' должно быть числом %d, %d или %d", field, GenderUnknown, GenderMale, GenderFemale)
	}
	return int(n), nil
}

// ClientIDs — непустой список целых идентификаторов клиентов.
// Нормализуется к []int с сохранением порядка.
type ClientIDs struct{}

func (ClientIDs) Empty(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) == 0
	case []int:
		return len(v) == 0
	default:
		return false
	}
}

func (ClientIDs) Check(field string, value any) (any, error) {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []int:
		items = make([]any, len(v))
		for i, n := range v {
			items[i] = n
		}
	default:
		return nil, newError(field, KindTypeMismatch, "поле '%s' должно быть списком", field)
	}
	ids := make([]int, len(items))
	for i, item := range items {
		n, ok := toInt64(item)
		if !ok {
			return nil, newError(field, KindTypeMismatch,
				"элементы поля '%s' должны быть числами", field)
		}
		ids[i] = int(n)
	}
	return ids, nil
}
