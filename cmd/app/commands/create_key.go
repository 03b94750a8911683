package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// RunCreateKey generates a cryptographically secure 256-bit encryption key
// and prints it in the format expected by SECRETS_ENCRYPTION_KEY_HEX.
func RunCreateKey() error {
	return createKey(os.Stdout)
}

func createKey(w io.Writer) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	fmt.Fprintln(w, "# Add this to your environment or .env file:")
	fmt.Fprintf(w, "SECRETS_ENCRYPTION_KEY_HEX=%s\n", hex.EncodeToString(key))

	return nil
}
