package service

import "time"

// ResponseLink - данные ссылки в ответах API (POST /links выход, элемент списков)
type ResponseLink struct {
	ID          string    `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	AccessCount int       `json:"access_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResponsePage - страница списка ссылок (GET /links выход);
// NextCursor присутствует только когда страница полная и есть смысл листать дальше
type ResponsePage struct {
	Items      []*ResponseLink `json:"items"`
	NextCursor string          `json:"next_cursor,omitempty"`
}
