package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newTestKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))
	return path
}

func authorizedLine(key gossh.PublicKey) string {
	return strings.TrimSpace(string(gossh.MarshalAuthorizedKey(key))) + " user@laptop"
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newTestKey(t)
	other := newTestKey(t)

	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key at all",
		authorizedLine(allowed),
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := newTestKey(t)

	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "missing")))
}

func TestKeyFingerprint(t *testing.T) {
	key := newTestKey(t)

	fingerprint := keyFingerprint(key)

	assert.True(t, strings.HasPrefix(fingerprint, "SHA256:"))
	assert.Equal(t, fingerprint, keyFingerprint(key))
	assert.NotEqual(t, fingerprint, keyFingerprint(newTestKey(t)))
}
