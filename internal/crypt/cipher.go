package crypt

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/aead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_gcmpb "github.com/tink-crypto/tink-go/v2/proto/aes_gcm_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"

	"google.golang.org/protobuf/proto"
)

// Cipher is an authenticated symmetric cipher bound to one key for the
// duration of a batch run. It is safe for sequential reuse across files.
type Cipher struct {
	aead tink.AEAD
}

// NewCipher builds an AES-256-GCM AEAD from the raw key bytes.
func NewCipher(key Key) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", ErrKeyFormat, KeySize)
	}

	handle, err := newAEADKeyHandle(key)
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := aead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating AEAD: %w", err)
	}

	return &Cipher{aead: primitive}, nil
}

// Encrypt seals plaintext under the bound key. Every call uses a fresh
// random nonce, so identical plaintexts produce distinct ciphertexts.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	ciphertext, err := c.aead.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}

	return ciphertext, nil
}

// Decrypt opens ciphertext sealed by Encrypt. A wrong key or any
// modification of the ciphertext yields ErrAuthentication.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext, err := c.aead.Decrypt(ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

// newAEADKeyHandle creates a Tink keyset handle for AES-GCM from raw key
// bytes. The handle is used to initialize the AEAD primitive.
func newAEADKeyHandle(key []byte) (*keyset.Handle, error) {
	aesGcmKey := &aes_gcmpb.AesGcmKey{
		Version:  0,
		KeyValue: key,
	}

	serializedKey, err := proto.Marshal(aesGcmKey)
	if err != nil {
		return nil, fmt.Errorf("serializing AesGcmKey: %w", err)
	}

	keyData := &tinkpb.KeyData{
		TypeUrl:         "type.googleapis.com/google.crypto.tink.AesGcmKey",
		Value:           serializedKey,
		KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
	}

	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData:          keyData,
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(
		keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	return handle, nil
}
