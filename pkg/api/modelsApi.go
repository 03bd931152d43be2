package api

// CreateRequest - запрос на создание короткой ссылки (POST /links вход);
// формат original_url и short_code дополнительно проверяет бизнес-слой
type CreateRequest struct {
	OriginalURL string `json:"original_url" binding:"required"`
	ShortCode   string `json:"short_code" binding:"omitempty,max=64"`
}

// ExportResponse - ответ на запуск выгрузки (POST /exports выход)
type ExportResponse struct {
	URL string `json:"url"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
