package encrypter

// Encrypter provides symmetric encryption for service keys.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	EncryptBytesToString(data []byte) (string, error)
	DecryptStringToBytes(ciphertext string) ([]byte, error)
}

// New creates a new Encrypter. Keys of 16, 24 or 32 bytes are used as AES keys
// directly; any other non-empty key is stretched to 32 bytes with HKDF-SHA256.
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
