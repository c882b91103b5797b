package cardnumber

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/bank-cards/internal/utils/luhn"
)

// Length длина генерируемого номера карты (четыре группы по четыре цифры)
const Length = 16

// ErrTooShort возвращается при попытке маскировать номер короче 4 символов
var ErrTooShort = errors.New("card number must contain at least 4 characters")

// Generate генерирует новый номер карты: 16 случайных цифр,
// последняя — контрольная цифра по алгоритму Луна.
func Generate() (string, error) {
	buf := make([]byte, Length-1)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cardnumber: failed to read random bytes: %w", err)
	}

	var b strings.Builder
	for _, v := range buf {
		b.WriteByte(v%10 + '0')
	}

	partial := b.String()
	b.WriteByte(byte(luhn.CheckDigit(partial)) + '0')

	return b.String(), nil
}

// Mask маскирует номер карты, оставляя видимыми только последние 4 символа.
// Скрытая часть заменяется на '*' группами по 4, разделенными пробелами;
// неполная группа остается в начале: "1234567812345678" -> "**** **** **** 5678",
// "123456" -> "** 3456".
func Mask(number string) (string, error) {
	if len(number) < 4 {
		return "", ErrTooShort
	}

	last4 := number[len(number)-4:]
	hidden := len(number) - 4

	var b strings.Builder
	for hidden >= 4 {
		b.WriteString("**** ")
		hidden -= 4
	}
	if hidden > 0 {
		b.WriteString(strings.Repeat("*", hidden))
		b.WriteByte(' ')
	}
	b.WriteString(last4)

	return b.String(), nil
}
