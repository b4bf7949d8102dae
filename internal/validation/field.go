// Package validation реализует декларативную проверку полей запроса.
//
// Поле описывается правилом типа (Rule) и флагами Required/Nullable.
// Значение поля проходит три стадии: отсутствие (nil), пустое значение
// (пустая строка, пустой список, пустой словарь) и непустое значение.
// Проверка типа и формата выполняется только для непустых значений.
package validation

// Rule — проверка типа и формата для одного вида поля.
// Check вызывается только для непустых значений и возвращает
// нормализованное значение (например, телефон приводится к строке цифр).
type Rule interface {
	// Empty сообщает, считается ли переданное значение пустым для этого типа.
	Empty(value any) bool
	// Check проверяет непустое значение и возвращает нормализованный результат.
	Check(field string, value any) (any, error)
}

// FieldDef — ограничение одного именованного поля схемы.
type FieldDef struct {
	Name     string
	Required bool
	Nullable bool
	Rule     Rule
}

// Validate применяет ограничение к сырому значению.
// nil означает, что значение не передано (или передан JSON null).
func (d FieldDef) Validate(value any) (any, error) {
	if value == nil {
		if d.Required {
			return nil, newError(d.Name, KindMissingRequired,
				"поле '%s' обязательно, но значение не передано", d.Name)
		}
		return nil, nil
	}
	if d.Rule.Empty(value) {
		if !d.Nullable {
			return nil, newError(d.Name, KindEmptyNotAllowed,
				"поле '%s' не может быть пустым", d.Name)
		}
		// Пустое значение допустимо, проверка формата не выполняется.
		return value, nil
	}
	return d.Rule.Check(d.Name, value)
}
