package stdlib

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/burningli/bxscript/value"
)

// installCrypto binds __native_crypto.md5/sha1/sha256/hmac/base64Encode/
// base64Decode/hexEncode/hexDecode.
//
// Grounded on std/crypto.go (teacher, md5/sha1/sha256/base64/hex over
// crypto/* and encoding/*), widened with hmac per
// original_source/stdlib/CryptModule.h, which the teacher's module lacks.
func installCrypto(env value.Env) {
	digest := func(name string, sum func([]byte) []byte) *value.NativeFunction {
		return native(name, 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, name, "a string")
			if err != nil {
				return nil, err
			}
			return value.String(hex.EncodeToString(sum([]byte(s)))), nil
		})
	}

	fns := map[string]*value.NativeFunction{
		"md5": digest("md5", func(b []byte) []byte {
			sum := md5.Sum(b)
			return sum[:]
		}),
		"sha1": digest("sha1", func(b []byte) []byte {
			sum := sha1.Sum(b)
			return sum[:]
		}),
		"sha256": digest("sha256", func(b []byte) []byte {
			sum := sha256.Sum256(b)
			return sum[:]
		}),
		"hmac": native("hmac", 2, func(args []value.Value) (value.Value, error) {
			key, err := wantString(args, 0, "hmac", "(key, message)")
			if err != nil {
				return nil, err
			}
			message, err := wantString(args, 1, "hmac", "(key, message)")
			if err != nil {
				return nil, err
			}
			mac := hmac.New(sha256.New, []byte(key))
			mac.Write([]byte(message))
			return value.String(hex.EncodeToString(mac.Sum(nil))), nil
		}),
		"base64Encode": native("base64Encode", 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, "base64Encode", "a string")
			if err != nil {
				return nil, err
			}
			return value.String(base64.StdEncoding.EncodeToString([]byte(s))), nil
		}),
		"base64Decode": native("base64Decode", 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, "base64Decode", "a string")
			if err != nil {
				return nil, err
			}
			decoded, decErr := base64.StdEncoding.DecodeString(s)
			if decErr != nil {
				return nil, &value.RuntimeError{Message: "invalid base64: " + decErr.Error()}
			}
			return value.String(decoded), nil
		}),
		"hexEncode": native("hexEncode", 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, "hexEncode", "a string")
			if err != nil {
				return nil, err
			}
			return value.String(hex.EncodeToString([]byte(s))), nil
		}),
		"hexDecode": native("hexDecode", 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, "hexDecode", "a string")
			if err != nil {
				return nil, err
			}
			decoded, decErr := hex.DecodeString(s)
			if decErr != nil {
				return nil, &value.RuntimeError{Message: "invalid hex: " + decErr.Error()}
			}
			return value.String(decoded), nil
		}),
	}
	nativeNamespace(env, "__native_crypto", fns)
}
