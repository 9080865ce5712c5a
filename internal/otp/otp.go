// Package otp generates the numeric one-time codes emailed to users for
// account verification and password resets. Codes are derived with HOTP
// from a random secret and counter, so each call yields an independent
// six-digit code.
package otp

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// Digits is the length of generated verification codes.
const Digits = otp.DigitsSix

// NewCode returns a fresh six-digit numeric verification code.
func NewCode() (string, error) {
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp secret: %w", err)
	}

	var counterBytes [8]byte
	if _, err := rand.Read(counterBytes[:]); err != nil {
		return "", fmt.Errorf("otp counter: %w", err)
	}
	counter := binary.BigEndian.Uint64(counterBytes[:])

	code, err := hotp.GenerateCodeCustom(
		base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret),
		counter,
		hotp.ValidateOpts{
			Digits:    Digits,
			Algorithm: otp.AlgorithmSHA1,
		},
	)
	if err != nil {
		return "", fmt.Errorf("otp generate: %w", err)
	}
	return code, nil
}
