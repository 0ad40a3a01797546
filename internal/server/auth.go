package server

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"pomo/internal/logging"
)

// publicKeyHandler admits keys listed in the configured authorized_keys file
func (s *Server) publicKeyHandler(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := keyFingerprint(key)
	user := ctx.User()

	if !isKeyAuthorized(key, s.config.AuthorizedKeysPath) {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
		return false
	}

	logging.Logger.Info("SSH key authenticated",
		"user", user,
		"fingerprint", fingerprint,
		"key_type", key.Type())
	return true
}

// isKeyAuthorized checks if the client's public key is in authorized_keys
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Failed to parse authorized key line", "error", err)
			continue
		}

		if bytes.Equal(clientKey.Marshal(), authorizedKey.Marshal()) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
		return false
	}

	return false
}

// keyFingerprint returns the SHA256 fingerprint of an SSH public key for the audit trail
func keyFingerprint(key ssh.PublicKey) string {
	return gossh.FingerprintSHA256(key)
}
