package services

// RequestContext — изменяемая запись одного запроса.
// Обработчики методов складывают сюда аудиторские метаданные
// (список переданных полей, число клиентов), транспортный слой
// записывает их в лог после завершения диспетчеризации.
// Экземпляр живет в пределах одного запроса и не разделяется между ними.
type RequestContext struct {
	RequestID string
	fields    map[string]any
}

// NewRequestContext создает контекст запроса с указанным идентификатором.
func NewRequestContext(requestID string) *RequestContext {
	return &RequestContext{
		RequestID: requestID,
		fields:    make(map[string]any),
	}
}

// Set записывает значение по ключу.
func (c *RequestContext) Set(key string, value any) {
	c.fields[key] = value
}

// Get возвращает значение по ключу.
func (c *RequestContext) Get(key string) (any, bool) {
	value, ok := c.fields[key]
	return value, ok
}

// Fields возвращает все записанные пары ключ-значение.
func (c *RequestContext) Fields() map[string]any {
	return c.fields
}
