package database

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/akyairhashvil/focustime/internal/models"
)

const pbkdf2Iterations = 100_000

type exportEnvelope struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt,omitempty"`
	Nonce     string `json:"nonce,omitempty"`
	Data      string `json:"data,omitempty"`

	Sessions []models.Session `json:"sessions,omitempty"`
}

// ExportSessions writes all sessions as JSON. A non-empty passphrase
// encrypts the payload with AES-GCM under a pbkdf2-derived key.
func (d *Database) ExportSessions(ctx context.Context, w io.Writer, passphrase string) error {
	sessions, err := d.GetSessionsSince(ctx, 0)
	if err != nil {
		return err
	}

	if passphrase == "" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exportEnvelope{Sessions: sessions})
	}

	payload, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	wrapped, err := encryptPayload(payload, passphrase)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(wrapped)
}

// DecryptSessions reverses an encrypted export.
func DecryptSessions(raw []byte, passphrase string) ([]models.Session, error) {
	var env exportEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if !env.Encrypted {
		return env.Sessions, nil
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}
	payload, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt export: %w", err)
	}

	var sessions []models.Session
	if err := json.Unmarshal(payload, &sessions); err != nil {
		return nil, fmt.Errorf("parse sessions: %w", err)
	}
	return sessions, nil
}

func encryptPayload(payload []byte, passphrase string) (exportEnvelope, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return exportEnvelope{}, err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return exportEnvelope{}, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return exportEnvelope{}, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	return exportEnvelope{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
