package service

import (
	"math/rand/v2"
	"regexp"
)

const sizeShortCode = 6 // длина сгенерированного короткого кода по умолчанию

// алфавит генерации — только цифры и латинские буквы (62 символа),
// поэтому сгенерированный код заведомо проходит ValidShortCode
const codeAlphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// shortCodeRe — допустимый синтаксис короткого кода,
// единый для пользовательских и сгенерированных кодов
var shortCodeRe = regexp.MustCompile(`^[0-9A-Za-z_-]{4,64}$`)

// NewShortCode возвращает случайный короткий код указанной длины
func NewShortCode(size int) string {

	if size == 0 {
		size = sizeShortCode
	}

	chars := []rune(codeAlphabet)

	b := make([]rune, size)
	for i := range b {
		b[i] = chars[rand.N(len(chars))]
	}

	return string(b)
}

// ValidShortCode проверяет, что код состоит из 4–64 символов
// латиницы, цифр, дефиса и подчёркивания
func ValidShortCode(code string) bool {

	return shortCodeRe.MatchString(code)
}
