package wireguard

import (
	"encoding/base64"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// keyLen is the size of a Curve25519 key.
const keyLen = 32

// validateKey checks that a non-empty key is standard base64 of 32 bytes.
func validateKey(field, key string) error {
	if key == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil || len(raw) != keyLen {
		return apierrors.NewValidationError(field, "***", "must be a base64 encoded 32 byte key")
	}
	return nil
}

func validateKeyPtr(field string, key *string) error {
	if key == nil {
		return nil
	}
	return validateKey(field, *key)
}

func validatePeer(args AddPeerArgs) error {
	if err := routeros.ValidateRequired("interface", args.Interface); err != nil {
		return err
	}
	if err := routeros.ValidateRequired("public_key", args.PublicKey); err != nil {
		return err
	}
	if err := validateKey("public_key", args.PublicKey); err != nil {
		return err
	}
	if err := routeros.ValidateRequired("allowed_address", args.AllowedAddress); err != nil {
		return err
	}
	return validateKey("preshared_key", args.PresharedKey)
}
