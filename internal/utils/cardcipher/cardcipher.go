package cardcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecrypt возвращается, если шифротекст поврежден или не проходит
// проверку аутентификации GCM. Для хранимых данных это фатальная
// ошибка целостности, а не ошибка пользователя.
var ErrDecrypt = errors.New("card number decryption failed")

// Codec выполняет обратимое шифрование номера карты для хранения.
//
// Используется AES-GCM с фиксированным нулевым nonce: одинаковый
// открытый номер всегда дает одинаковый шифротекст. Это сознательный
// компромисс — детерминизм нужен для проверки уникальности и поиска
// по зашифрованному номеру, семантическая стойкость им жертвуется.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec создает Codec с заданным симметричным ключом.
// Ключ должен быть длиной 16, 24 или 32 байта.
func NewCodec(key []byte) (*Codec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cardcipher: failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cardcipher: failed to create GCM: %w", err)
	}

	return &Codec{aead: aead}, nil
}

// Encrypt шифрует номер карты и возвращает base64-шифротекст
func (c *Codec) Encrypt(plainNumber string) string {
	nonce := make([]byte, c.aead.NonceSize())
	sealed := c.aead.Seal(nil, nonce, []byte(plainNumber), nil)
	return base64.StdEncoding.EncodeToString(sealed)
}

// Decrypt расшифровывает base64-шифротекст обратно в номер карты
func (c *Codec) Decrypt(cipherText string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	nonce := make([]byte, c.aead.NonceSize())
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return string(plain), nil
}
