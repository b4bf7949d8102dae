package validation

// Schema — упорядоченный набор ограничений полей запроса.
// Порядок объявления определяет порядок проверки.
type Schema []FieldDef

// Construct проверяет сырой словарь против схемы и возвращает
// словарь нормализованных значений. Проверка останавливается на первом
// невалидном поле (включая отсутствующие обязательные поля).
// Отсутствующее в словаре поле и явный null неразличимы: оба дают nil.
func (s Schema) Construct(raw map[string]any) (map[string]any, error) {
	values := make(map[string]any, len(s))
	for _, def := range s {
		value, err := def.Validate(raw[def.Name])
		if err != nil {
			return nil, err
		}
		values[def.Name] = value
	}
	return values, nil
}

// Names возвращает имена полей схемы в порядке объявления.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, def := range s {
		names[i] = def.Name
	}
	return names
}
