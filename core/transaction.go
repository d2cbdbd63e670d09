package core

import (
	"encoding/json"

	"golang.org/x/crypto/blake2b"

	"github.com/erdkit/erdkit/common/hexutil"
)

// Transaction is the client-side transaction object. Field order matters: the
// network verifies signatures over the JSON serialization with fields in
// exactly this order, so do not reorder them.
type Transaction struct {
	Nonce            uint64        `json:"nonce"`
	Value            Value         `json:"value"`
	Receiver         Address       `json:"receiver"`
	Sender           Address       `json:"sender"`
	SenderUsername   []byte        `json:"senderUsername,omitempty"`
	ReceiverUsername []byte        `json:"receiverUsername,omitempty"`
	GasPrice         uint64        `json:"gasPrice"`
	GasLimit         Gas           `json:"gasLimit"`
	Data             []byte        `json:"data,omitempty"`
	ChainID          string        `json:"chainID"`
	Version          uint32        `json:"version"`
	Options          uint32        `json:"options,omitempty"`
	Guardian         string        `json:"guardian,omitempty"`
	Signature        hexutil.Bytes `json:"signature,omitempty"`
}

// SigningBytes returns the byte buffer a signer must sign: the JSON
// serialization without the signature field, or its blake2b-256 hash when the
// hash-sign option is set.
func (tx *Transaction) SigningBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signature = nil
	serialized, err := json.Marshal(&unsigned)
	if err != nil {
		return nil, err
	}
	if tx.Options&TxOptionHashSign != 0 {
		hash := blake2b.Sum256(serialized)
		return hash[:], nil
	}
	return serialized, nil
}

// Hash computes the transaction hash: blake2b-256 over the signed serialization.
func (tx *Transaction) Hash() ([]byte, error) {
	serialized, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}
	hash := blake2b.Sum256(serialized)
	return hash[:], nil
}

// Fee returns the cost of the transaction at its declared gas price and limit.
func (tx *Transaction) Fee() Value {
	return tx.GasLimit.ToValue(tx.GasPrice)
}

// Sign serializes the transaction for signing, obtains a signature from the
// signer and attaches it. The transaction is modified in place.
func (tx *Transaction) Sign(signer Signer) error {
	if signer == nil {
		return ErrMissingSigner
	}
	buf, err := tx.SigningBytes()
	if err != nil {
		return err
	}
	sig, err := signer.Sign(buf)
	if err != nil {
		return err
	}
	tx.Signature = sig
	return nil
}
