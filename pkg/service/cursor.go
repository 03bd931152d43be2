package service

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// pageCursor — позиция пагинации: created_at и id последней выданной строки
type pageCursor struct {
	CreatedAt time.Time `json:"t"`
	ID        string    `json:"id"`
}

// encodeCursor упаковывает позицию в непрозрачный токен (base64url от JSON),
// клиент не разбирает ни формат времени, ни разделители
func encodeCursor(createdAt time.Time, id string) string {

	data, err := json.Marshal(pageCursor{CreatedAt: createdAt, ID: id})
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeCursor распаковывает токен пагинации обратно в позицию (created_at, id)
func decodeCursor(token string) (time.Time, string, error) {

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", ErrBadCursor
	}

	var cursor pageCursor
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return time.Time{}, "", ErrBadCursor
	}

	// пустая позиция означает повреждённый или чужой токен
	if cursor.ID == "" || cursor.CreatedAt.IsZero() {
		return time.Time{}, "", ErrBadCursor
	}

	return cursor.CreatedAt, cursor.ID, nil
}
