package gpg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tagPayload = `object 5f3e1c8e9a1b2c3d4e5f60718293a4b5c6d7e8f9
type commit
tag release-3.2.0
tagger Release Bot <release@example.org> 1735689600 +0000

SDL 3.2.0
`

func newSigner(t *testing.T) *openpgp.Entity {
	t.Helper()
	entity, err := openpgp.NewEntity("Release Bot", "", "release@example.org", nil)
	require.NoError(t, err)
	return entity
}

func signTag(t *testing.T, signer *openpgp.Entity, payload string) []byte {
	t.Helper()
	var sig bytes.Buffer
	require.NoError(t, openpgp.ArmoredDetachSign(&sig, signer, strings.NewReader(payload), nil))
	return append([]byte(payload), sig.Bytes()...)
}

func writePublicKey(t *testing.T, entity *openpgp.Entity) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	require.NoError(t, err)
	require.NoError(t, entity.Serialize(w))
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "release.asc")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func TestVerifier_VerifyTag_Valid(t *testing.T) {
	signer := newSigner(t)
	v := NewVerifier()
	require.NoError(t, v.ImportKeyFromFile(writePublicKey(t, signer)))
	assert.Equal(t, 1, v.GetKeyringSize())

	assert.NoError(t, v.VerifyTag(signTag(t, signer, tagPayload)))
}

func TestVerifier_VerifyTag_Tampered(t *testing.T) {
	signer := newSigner(t)
	v := NewVerifier()
	require.NoError(t, v.ImportKeyFromFile(writePublicKey(t, signer)))

	object := signTag(t, signer, tagPayload)
	object = bytes.Replace(object, []byte("3.2.0"), []byte("3.9.0"), 1)

	assert.Error(t, v.VerifyTag(object))
}

func TestVerifier_VerifyTag_UnknownSigner(t *testing.T) {
	v := NewVerifier()
	require.NoError(t, v.ImportKeyFromFile(writePublicKey(t, newSigner(t))))

	err := v.VerifyTag(signTag(t, newSigner(t), tagPayload))

	assert.Error(t, err)
}

func TestVerifier_VerifyTag_Unsigned(t *testing.T) {
	v := NewVerifier()
	require.NoError(t, v.ImportKeyFromFile(writePublicKey(t, newSigner(t))))

	err := v.VerifyTag([]byte(tagPayload))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed")
}

func TestVerifier_VerifyTag_EmptyKeyring(t *testing.T) {
	err := NewVerifier().VerifyTag([]byte(tagPayload))
	assert.Error(t, err)
}

func TestVerifier_ImportKeyFromFile_NonexistentFile(t *testing.T) {
	err := NewVerifier().ImportKeyFromFile("/nonexistent/key.asc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open key file")
}

func TestVerifier_ImportKeyFromFile_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.asc")
	require.NoError(t, os.WriteFile(path, []byte("not a gpg key"), 0600))

	assert.Error(t, NewVerifier().ImportKeyFromFile(path))
}

func TestSplitTagObject(t *testing.T) {
	payload, sig, err := SplitTagObject([]byte("body\n-----BEGIN PGP SIGNATURE-----\nabc\n"))

	require.NoError(t, err)
	assert.Equal(t, "body\n", string(payload))
	assert.True(t, bytes.HasPrefix(sig, []byte(signatureHeader)))
}
