// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const signatureHeader = "-----BEGIN PGP SIGNATURE-----"

// Verifier checks signed git tag objects using ProtonMail's go-crypto
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a new GPG verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile imports armored or binary public keys from a file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for GPG key import
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	return v.ImportKeys(bytes.NewReader(data))
}

// ImportKeys imports armored or binary public keys from r
func (v *Verifier) ImportKeys(r io.ReadSeeker) error {
	entities, err := openpgp.ReadArmoredKeyRing(r)
	if err != nil {
		// Try reading as binary
		if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to reset key reader: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(r)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// VerifyTag checks the detached signature embedded in an annotated tag
// object, as printed by `git cat-file tag`
func (v *Verifier) VerifyTag(tagObject []byte) error {
	if len(v.keyring) == 0 {
		return errors.New("no GPG keys imported")
	}

	payload, signature, err := SplitTagObject(tagObject)
	if err != nil {
		return err
	}

	if _, err := openpgp.CheckArmoredDetachedSignature(v.keyring, bytes.NewReader(payload), bytes.NewReader(signature), nil); err != nil {
		return fmt.Errorf("tag signature verification failed: %w", err)
	}
	return nil
}

// SplitTagObject separates the signed payload of a tag object from its
// armored signature block
func SplitTagObject(tagObject []byte) (payload, signature []byte, err error) {
	idx := bytes.Index(tagObject, []byte(signatureHeader))
	if idx < 0 {
		return nil, nil, errors.New("tag is not signed")
	}
	return tagObject[:idx], tagObject[idx:], nil
}

// GetKeyringSize returns the number of keys in the keyring
func (v *Verifier) GetKeyringSize() int {
	return len(v.keyring)
}
