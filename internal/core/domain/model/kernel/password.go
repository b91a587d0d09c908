package kernel

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const minPasswordLength = 8

var (
	ErrPasswordIsNotConstructed = errors.New("Password must be created via NewPassword or RestorePassword")
	ErrPasswordCipherIsRequired = errs.NewValueIsRequiredError("password cipher")

	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&#.]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
)

// Password holds an encrypted credential. The plaintext is never kept in
// memory after construction; Verify and Decrypt go through the cipher each
// time they are called.
//
// Example:
//
//	pwd, err := kernel.NewPassword("abc12345", cipher)
//	if err != nil {
//	    return err
//	}
//	pwd.Verify("abc12345") // true
//	pwd.Verify("wrong")    // false
type Password struct {
	ciphertext []byte
	cipher     *PasswordCipher
	guard      guard.ConstructorGuard
}

// NewPassword validates plaintext and encrypts it. A valid password has at
// least 8 characters, one letter and one digit, and uses only letters, digits
// and @$!%*?&#. as symbols.
func NewPassword(plaintext string, c *PasswordCipher) (Password, error) {
	if c == nil {
		return Password{}, ErrPasswordCipherIsRequired
	}
	if err := ValidatePasswordPlaintext(plaintext); err != nil {
		return Password{}, err
	}

	ciphertext, err := c.Encrypt(plaintext)
	if err != nil {
		return Password{}, err
	}

	return Password{ciphertext: ciphertext, cipher: c, guard: guard.NewConstructorGuard()}, nil
}

// RestorePassword wraps a ciphertext loaded from storage. It fails when the
// blob cannot be decrypted with c.
func RestorePassword(ciphertext []byte, c *PasswordCipher) (Password, error) {
	if c == nil {
		return Password{}, ErrPasswordCipherIsRequired
	}
	if _, err := c.Decrypt(ciphertext); err != nil {
		return Password{}, errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return Password{ciphertext: bytes.Clone(ciphertext), cipher: c, guard: guard.NewConstructorGuard()}, nil
}

// ValidatePasswordPlaintext checks the password rules without encrypting.
func ValidatePasswordPlaintext(plaintext string) error {
	if plaintext == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(plaintext) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters long", minPasswordLength))
	}
	if !passwordCharset.MatchString(plaintext) {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("may contain only letters, digits and @$!%*?&#."))
	}
	if !hasLetter.MatchString(plaintext) || !hasDigit.MatchString(plaintext) {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("must contain at least one letter and one number"))
	}
	return nil
}

// Ciphertext returns a copy of the encrypted blob for persistence.
func (p Password) Ciphertext() []byte {
	return bytes.Clone(p.ciphertext)
}

// Decrypt returns the plaintext. Callers other than credential checks should
// not need it.
func (p Password) Decrypt() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p.cipher.Decrypt(p.ciphertext)
}

// Verify reports whether plaintext matches the stored password.
func (p Password) Verify(plaintext string) bool {
	stored, err := p.Decrypt()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plaintext)) == 1
}

// IsEqual compares decrypted values; ciphertexts differ for equal passwords
// because of the random IV.
func (p Password) IsEqual(other Password) bool {
	plain, err := other.Decrypt()
	if err != nil {
		return false
	}
	return p.Verify(plain)
}

// String masks the password so it never reaches logs.
func (p Password) String() string {
	return strings.Repeat("*", minPasswordLength)
}

func (p Password) Validate() error {
	if err := p.guard.Validate(ErrPasswordIsNotConstructed); err != nil {
		return err
	}
	if p.cipher == nil {
		return ErrPasswordCipherIsRequired
	}
	return nil
}
