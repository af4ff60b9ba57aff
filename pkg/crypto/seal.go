package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/gtank/cryptopasta"
	"io"
	"strings"
)

const minKeyLen = 32

var (
	ErrInvalidKey   = fmt.Errorf("key must be url safe base64 of at least %d bytes", minKeyLen)
	ErrMalformed    = errors.New("sealed data is malformed")
	ErrBadSignature = errors.New("signature validation failed")
)

// Keys holds the encryption and signing secrets for sealed data.
type Keys struct {
	Encryption string
	Signature  string
}

// NewKeys returns a pair of fresh random keys.
func NewKeys() (Keys, error) {
	enc, err := NewRandomKey()
	if err != nil {
		return Keys{}, err
	}
	sig, err := NewRandomKey()
	return Keys{Encryption: enc, Signature: sig}, err
}

// NewRandomKey generates a random key, base64 encoded.
func NewRandomKey() (string, error) {
	key := &[33]byte{} // one spare byte over minKeyLen
	_, err := io.ReadFull(rand.Reader, key[:])
	return base64.RawURLEncoding.EncodeToString(key[:]), err
}

// Seal encrypts plaintext and appends an HMAC of the ciphertext, giving
// "<ciphertext>.<signature>" in url safe base64.
func Seal(plaintext []byte, keys Keys) (string, error) {
	enc, sig, err := keys.raw()
	if err != nil {
		return "", err
	}

	cyphertext, err := cryptopasta.Encrypt(plaintext, enc)
	if err != nil {
		return "", err
	}
	signature := cryptopasta.GenerateHMAC(cyphertext, sig)

	return fmt.Sprintf(
		"%s.%s",
		base64.RawURLEncoding.EncodeToString(cyphertext),
		base64.RawURLEncoding.EncodeToString(signature),
	), nil
}

// Open checks the signature of sealed and decrypts it.
func Open(sealed string, keys Keys) ([]byte, error) {
	enc, sig, err := keys.raw()
	if err != nil {
		return nil, err
	}

	bits := strings.SplitN(strings.TrimSpace(sealed), ".", 2)
	if len(bits) != 2 {
		return nil, ErrMalformed
	}

	cyphertext, err := base64.RawURLEncoding.DecodeString(bits[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	signature, err := base64.RawURLEncoding.DecodeString(bits[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !cryptopasta.CheckHMAC(cyphertext, signature, sig) {
		return nil, ErrBadSignature
	}
	return cryptopasta.Decrypt(cyphertext, enc)
}

func (k Keys) raw() (*[32]byte, *[32]byte, error) {
	enc, err := toKey(k.Encryption)
	if err != nil {
		return nil, nil, err
	}
	sig, err := toKey(k.Signature)
	return enc, sig, err
}

// toKey decodes a key made by NewRandomKey into the *[32]byte cryptopasta
// wants, keeping the first 32 decoded bytes.
func toKey(s string) (*[32]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) < minKeyLen {
		return nil, ErrInvalidKey
	}
	data := &[32]byte{}
	copy(data[:], raw)
	return data, nil
}
