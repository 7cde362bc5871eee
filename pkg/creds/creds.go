// Package creds resolves controller passwords: environment variables
// (optionally loaded from a .env file), encrypted password files, or an
// interactive terminal prompt.
package creds

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/term"
)

const (
	secretMagic = "UCSCR1"
	saltLen     = 16
	pbkdf2Iters = 200_000
	keyLen      = 32
)

// LoadDotenv loads variables from a .env file into the process
// environment. A missing file with an empty path is not an error; a named
// file must exist.
func LoadDotenv(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// FromEnv returns the password held in the named environment variable.
func FromEnv(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", fmt.Errorf("environment variable %s is not set", name)
	}
	return v, nil
}

// Prompt reads a password from the terminal without echo.
func Prompt(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// Seal encrypts a password under a passphrase-derived key (PBKDF2-SHA256,
// AES-256-GCM). The output is suitable for WriteSecretFile.
func Seal(password, passphrase string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	out := []byte(secretMagic)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, gcm.Seal(nil, nonce, []byte(password), nil)...)
	return out, nil
}

// Open decrypts a sealed password. A wrong passphrase or corrupted file
// fails authentication.
func Open(sealed []byte, passphrase string) (string, error) {
	if len(sealed) < len(secretMagic)+saltLen || string(sealed[:len(secretMagic)]) != secretMagic {
		return "", fmt.Errorf("not an encrypted password file")
	}
	rest := sealed[len(secretMagic):]
	salt, rest := rest[:saltLen], rest[saltLen:]

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", fmt.Errorf("truncated password file")
	}
	nonce, ct := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	pw, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt password: %w", err)
	}
	return string(pw), nil
}

// WriteSecretFile writes a sealed password with owner-only permissions.
func WriteSecretFile(path string, sealed []byte) error {
	if err := os.WriteFile(path, sealed, 0o600); err != nil {
		return fmt.Errorf("write password file %s: %w", path, err)
	}
	return nil
}

// ReadSecretFile reads and decrypts a password file.
func ReadSecretFile(path, passphrase string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read password file %s: %w", path, err)
	}
	return Open(data, passphrase)
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iters, keyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
