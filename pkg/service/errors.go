package service

import "errors"

// ошибки бизнес-логики; слой API подбирает по ним HTTP-статусы
var (
	ErrNotFound       = errors.New("ссылка не найдена")
	ErrShortCodeTaken = errors.New("короткий код уже занят")
	ErrBadShortCode   = errors.New("недопустимый формат короткого кода")
	ErrBadOriginalURL = errors.New("оригинальный URL должен быть абсолютным")
	ErrBadID          = errors.New("недопустимый идентификатор ссылки")
	ErrBadCursor      = errors.New("недопустимый курсор пагинации")
	ErrCreateFailed   = errors.New("не удалось создать ссылку после нескольких попыток")
)
