package encrypter

const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32

	hkdfInfo = "insight-srv service key"
)

type implEncrypter struct {
	key string
}
