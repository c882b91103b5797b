package luhn

import "strings"

// Validate проверяет номер по алгоритму Луна
func Validate(number string) bool {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) == 0 {
		return false
	}

	for _, ch := range number {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return checksum(number, true)%10 == 0
}

// CheckDigit вычисляет контрольную цифру для номера без нее.
// Возвращает -1, если во входной строке есть нецифровые символы.
func CheckDigit(partial string) int {
	if len(partial) == 0 {
		return -1
	}

	for _, ch := range partial {
		if ch < '0' || ch > '9' {
			return -1
		}
	}

	// Контрольная цифра занимает последнюю позицию, поэтому удвоение
	// начинается с последней цифры partial
	return (10 - checksum(partial, false)%10) % 10
}

// checksum считает сумму Луна. fromCheckDigit == true, если последняя
// цифра строки является контрольной.
func checksum(number string, fromCheckDigit bool) int {
	sum := 0
	double := !fromCheckDigit

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum
}
