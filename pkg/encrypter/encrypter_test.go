package encrypter

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	keys := map[string]string{
		"aes-128": "0123456789abcdef",
		"aes-256": "0123456789abcdef0123456789abcdef",
		"derived": "a passphrase of arbitrary length",
	}

	for name, key := range keys {
		t.Run(name, func(t *testing.T) {
			enc := New(key)

			ciphertext, err := enc.Encrypt("analysis-srv:s3cr3t")
			require.NoError(t, err)
			assert.NotEqual(t, "analysis-srv:s3cr3t", ciphertext)

			plaintext, err := enc.Decrypt(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, "analysis-srv:s3cr3t", plaintext)
		})
	}
}

func TestDecryptErrors(t *testing.T) {
	enc := New("0123456789abcdef")

	ciphertext, err := New("fedcba9876543210").Encrypt("x")
	require.NoError(t, err)

	_, err = enc.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = enc.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	_, err = enc.Decrypt("***")
	assert.Error(t, err)

	_, err = New("").Encrypt("x")
	assert.ErrorIs(t, err, ErrEmptyKey)
}
