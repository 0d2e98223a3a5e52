package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"

	goredis "github.com/redis/go-redis/v9"
)

const apiKeyStorageKey = "openai:api_key"

// KeyStore holds the OpenAI API key in Redis, encrypted at rest with
// AES-GCM. The key survives server restarts but is never written to the
// database or to configuration files.
type KeyStore struct {
	encryptionKey []byte
}

var (
	setStoreValue = Set
	getStoreValue = Get
	delStoreValue = Del
)

// NewKeyStore creates a new key store
func NewKeyStore(encryptionKeyHex string) (*KeyStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &KeyStore{encryptionKey: key}, nil
}

// Set stores the encrypted API key with no expiry
func (s *KeyStore) Set(ctx context.Context, apiKey string) error {
	encrypted, err := s.encrypt([]byte(apiKey))
	if err != nil {
		return err
	}
	return setStoreValue(ctx, apiKeyStorageKey, encrypted, 0)
}

// Get retrieves and decrypts the API key. Returns "" when no key is set.
func (s *KeyStore) Get(ctx context.Context) (string, error) {
	encrypted, err := getStoreValue(ctx, apiKeyStorageKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}

	decrypted, err := s.decrypt(encrypted)
	if err != nil {
		return "", err
	}
	return string(decrypted), nil
}

// Delete removes the stored API key
func (s *KeyStore) Delete(ctx context.Context) error {
	return delStoreValue(ctx, apiKeyStorageKey)
}

func (s *KeyStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *KeyStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, data := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, data, nil)
}
