package db

import (
	"time"
)

// Link представляет запись в таблице links
type Link struct {
	ID          string    // уникальный идентификатор ссылки (UUID, выдаётся при создании)
	ShortCode   string    // короткий код (например, "abc123"), уникален в пределах таблицы
	OriginalURL string    // исходный длинный URL
	AccessCount int       // количество переходов по ссылке
	CreatedAt   time.Time // дата и время создания записи, ключ сортировки при пагинации
}
