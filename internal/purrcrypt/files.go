package purrcrypt

import (
	"fmt"
	"io"
	"os"

	"github.com/purrcrypt/purr/internal/dialect"
	kerrors "github.com/purrcrypt/purr/internal/errors"
	"github.com/purrcrypt/purr/internal/keys"
)

// EncryptFile encrypts inputPath for the recipient and writes the
// dialect-encoded envelope to outputPath as UTF-8 text. The whole file is
// held in memory; purr does not stream.
func EncryptFile(inputPath, outputPath string, recipient keys.PublicKey, d dialect.Dialect, random io.Reader) error {
	plaintext, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file at %s: %w", inputPath, err)
	}

	env, err := Seal(plaintext, recipient, d, random)
	if err != nil {
		return err
	}

	text := dialect.Encode(env.Marshal(), d)
	// #nosec G306 -- Ciphertext is meant to be shareable text.
	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write encrypted file to %s: %w", outputPath, err)
	}
	return nil
}

// DecryptFile decodes and decrypts inputPath with the recipient's keypair
// and writes the plaintext to outputPath. The dialect is detected from the
// text itself; the envelope's authenticated dialect tag must agree with
// the dialect the text actually decoded under.
func DecryptFile(inputPath, outputPath string, kp *keys.KeyPair) error {
	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read encrypted file at %s: %w", inputPath, err)
	}

	d, err := dialect.Detect(string(text))
	if err != nil {
		return err
	}

	raw, err := dialect.Decode(string(text), d)
	if err != nil {
		return err
	}

	env, err := Parse(raw)
	if err != nil {
		return err
	}
	if env.Dialect != d {
		return fmt.Errorf("%w: text is %s but envelope is tagged %s",
			kerrors.ErrDecode, d, env.Dialect)
	}

	plaintext, err := env.Open(kp)
	if err != nil {
		return err
	}

	// #nosec G306 -- The decrypted file should be editable by the user.
	if err := os.WriteFile(outputPath, plaintext, 0644); err != nil {
		return fmt.Errorf("failed to write decrypted file to %s: %w", outputPath, err)
	}
	return nil
}
