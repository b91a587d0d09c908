package kernel

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	ErrCiphertextIsInvalid = errors.New("ciphertext is invalid")
	ErrPaddingIsInvalid    = errors.New("padding is invalid")
)

// PasswordCipher encrypts passwords with AES in CBC mode and PKCS#7 padding.
// Every encryption draws a fresh random IV that is stored in front of the
// ciphertext, so two encryptions of the same password differ.
//
// The key comes from configuration; its length selects AES-128, AES-192 or
// AES-256.
type PasswordCipher struct {
	block cipher.Block
}

// NewPasswordCipher builds a cipher from a raw 16, 24 or 32 byte key.
func NewPasswordCipher(key []byte) (*PasswordCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("password cipher: %w", err)
	}
	return &PasswordCipher{block: block}, nil
}

// NewPasswordCipherFromHex builds a cipher from a hex encoded key, the format
// used by the PASSWORD_SECRET_KEY setting.
func NewPasswordCipherFromHex(hexKey string) (*PasswordCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("password cipher: key is not hex: %w", err)
	}
	return NewPasswordCipher(key)
}

// Encrypt returns IV || AES-CBC(PKCS7(plaintext)).
func (c *PasswordCipher) Encrypt(plaintext string) ([]byte, error) {
	blockSize := c.block.BlockSize()
	padded := pkcs7Pad([]byte(plaintext), blockSize)

	out := make([]byte, blockSize+len(padded))
	iv := out[:blockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("password cipher: read iv: %w", err)
	}

	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out[blockSize:], padded)
	return out, nil
}

// Decrypt reverses Encrypt.
func (c *PasswordCipher) Decrypt(blob []byte) (string, error) {
	blockSize := c.block.BlockSize()
	if len(blob) < 2*blockSize || len(blob)%blockSize != 0 {
		return "", ErrCiphertextIsInvalid
	}

	iv, body := blob[:blockSize], blob[blockSize:]
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plain, body)

	unpadded, err := pkcs7Unpad(plain, blockSize)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrPaddingIsInvalid
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrPaddingIsInvalid
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrPaddingIsInvalid
		}
	}
	return data[:len(data)-n], nil
}
