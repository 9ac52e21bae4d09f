// Package crypt implements the lockstr payload format: an authenticated
// AES-256-GCM cipher bound to a single key, the fixed magic marker that
// identifies lockstr-encrypted payloads, and the human-readable key form.
//
// Every encrypted file is the magic marker followed by the AEAD ciphertext.
// The marker is what makes double-encryption and decrypt-of-plaintext
// mistakes detectable before any bytes are touched.
package crypt
