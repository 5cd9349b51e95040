package credential

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"golang.org/x/crypto/nacl/secretbox"
	"io"
	"os"
)

const EnvKey = "CREDENTIAL_KEY"

var ErrSealed = errors.New("unable to open sealed secret")

// Vault seals refresh tokens at rest with a 32 byte key.
type Vault struct {
	key [32]byte
}

func NewVault(key [32]byte) Vault {
	return Vault{key: key}
}

// VaultFromEnv reads a hex encoded 32 byte key from CREDENTIAL_KEY.
func VaultFromEnv() (Vault, error) {
	raw, err := hex.DecodeString(os.Getenv(EnvKey))
	if err != nil {
		return Vault{}, fmt.Errorf("decoding %s: %w", EnvKey, err)
	}
	if len(raw) != 32 {
		return Vault{}, fmt.Errorf("%s must be 32 bytes, was %d", EnvKey, len(raw))
	}
	var key [32]byte
	copy(key[:], raw)
	return NewVault(key), nil
}

func (v Vault) Seal(plain string) (string, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &v.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (v Vault) Open(sealed string) (string, error) {
	box, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(box) < 24 {
		return "", ErrSealed
	}
	var nonce [24]byte
	copy(nonce[:], box[:24])
	plain, ok := secretbox.Open(nil, box[24:], &nonce, &v.key)
	if !ok {
		return "", ErrSealed
	}
	return string(plain), nil
}
