package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewShortCode тестирует длину и алфавит сгенерированных кодов
func TestNewShortCode(t *testing.T) {

	tests := []struct {
		name     string // название теста
		size     int    // запрошенная длина
		expected int    // ожидаемая длина результата
	}{
		{
			name:     "нулевая длина даёт длину по умолчанию",
			size:     0,
			expected: 6,
		},
		{
			name:     "минимальная допустимая длина",
			size:     4,
			expected: 4,
		},
		{
			name:     "произвольная длина",
			size:     10,
			expected: 10,
		},
		{
			name:     "максимальная допустимая длина",
			size:     64,
			expected: 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			// генерация случайная, поэтому проверяем несколько раз
			for range 50 {
				code := NewShortCode(tt.size)

				assert.Len(t, code, tt.expected)

				// каждый символ должен принадлежать 62-символьному алфавиту
				for _, r := range code {
					assert.True(t, strings.ContainsRune(codeAlphabet, r),
						"символ %q вне алфавита в коде %q", r, code)
				}
			}
		})
	}
}

// TestNewShortCodePassesValidation проверяет, что сгенерированный код
// всегда проходит общий контроль формата
func TestNewShortCodePassesValidation(t *testing.T) {

	for range 100 {
		code := NewShortCode(0)
		assert.True(t, ValidShortCode(code), "код %q не прошёл проверку формата", code)
	}
}

// TestValidShortCode тестирует проверку синтаксиса короткого кода
func TestValidShortCode(t *testing.T) {

	tests := []struct {
		name     string // название теста
		code     string // проверяемый код
		expected bool   // ожидаемый результат
	}{
		{
			name:     "обычный сгенерированный код",
			code:     "aB3x9Z",
			expected: true,
		},
		{
			name:     "минимальная длина четыре символа",
			code:     "ab12",
			expected: true,
		},
		{
			name:     "дефис и подчёркивание допустимы",
			code:     "my-link_2024",
			expected: true,
		},
		{
			name:     "максимальная длина 64 символа",
			code:     strings.Repeat("a", 64),
			expected: true,
		},
		{
			name:     "короче четырёх символов",
			code:     "abc",
			expected: false,
		},
		{
			name:     "длиннее 64 символов",
			code:     strings.Repeat("a", 65),
			expected: false,
		},
		{
			name:     "пустая строка",
			code:     "",
			expected: false,
		},
		{
			name:     "недопустимый символ доллара",
			code:     "abc$def",
			expected: false,
		},
		{
			name:     "пробел внутри кода",
			code:     "ab cd",
			expected: false,
		},
		{
			name:     "кириллица не допускается",
			code:     "ссылка",
			expected: false,
		},
		{
			name:     "плюс из старого алфавита не допускается",
			code:     "ab+cd",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidShortCode(tt.code))
		})
	}
}
