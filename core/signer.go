package core

// Signer produces a signature over a byte buffer handed to it by the
// transaction layer. Key management and the signature scheme live outside
// this module; implementations typically wrap an ed25519 private key.
type Signer interface {
	Sign(buf []byte) ([]byte, error)
}
