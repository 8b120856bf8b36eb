package config_test

import (
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should panic on a short key")
			}
		}()
		config.InitCrypto("too-short")
	})

	t.Run("ValidKey", func(t *testing.T) {
		config.InitCrypto(testKey)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	config.InitCrypto(testKey)

	t.Run("RoundTrip", func(t *testing.T) {
		plaintext := "smtp-password-secret"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption is not randomized; two ciphertexts should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		if _, err := config.Decrypt("bm90LXJlYWwtY2lwaGVydGV4dA=="); err == nil {
			t.Fatal("Decrypt should fail on tampered ciphertext")
		}
	})
}
