package lamden

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrKeyMismatch is returned when a signing key does not belong to the sender
var ErrKeyMismatch = errors.New("signing key does not match sender verifying key")

// IsValidKey reports whether s is a 32 byte key in hex form
func IsValidKey(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// VerifyingKey derives the hex verifying key for a hex signing key
func VerifyingKey(sk string) (string, error) {
	priv, err := privateKey(sk)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(priv.Public().(ed25519.PublicKey)), nil
}

// SignMessage signs msg with the hex signing key and returns a hex signature
func SignMessage(sk string, msg []byte) (string, error) {
	priv, err := privateKey(sk)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(ed25519.Sign(priv, msg)), nil
}

// VerifyMessage checks a hex signature against a hex verifying key
func VerifyMessage(vk string, msg []byte, signature string) bool {
	pub, err := hex.DecodeString(vk)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return false
	}
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

func privateKey(sk string) (ed25519.PrivateKey, error) {
	seed, err := hex.DecodeString(sk)
	if err != nil {
		return nil, fmt.Errorf("signing key is not hex: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// marshalSorted encodes v as compact JSON with recursively sorted object
// keys and no HTML escaping, matching the masternode's view of the payload
func marshalSorted(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// formatKwargs converts kwargs into their wire form. Floats become
// {"__fixed__": "<decimal>"} so no precision is lost in transit.
func formatKwargs(kwargs map[string]any) map[string]any {
	out := make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		out[k] = formatValue(v)
	}
	return out
}

func formatValue(v any) any {
	switch val := v.(type) {
	case float64:
		return fixed(strconv.FormatFloat(val, 'f', -1, 64))
	case float32:
		return fixed(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case map[string]any:
		return formatKwargs(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = formatValue(item)
		}
		return items
	default:
		return v
	}
}

func fixed(s string) map[string]any {
	return map[string]any{"__fixed__": s}
}
