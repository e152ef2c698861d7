package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestKeyFromHex(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("key length = %d, want 32", len(key))
	}

	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("KeyFromHex accepted non-hex input")
	}
	if _, err := KeyFromHex("abcd"); err == nil {
		t.Error("KeyFromHex accepted a short key")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	plaintexts := []string{
		"",
		"short",
		`{"allergies":["peanuts"],"goal":"weight loss"}`,
		strings.Repeat("long payload ", 1000),
	}

	for _, pt := range plaintexts {
		enc, err := Encrypt(key, pt)
		if err != nil {
			t.Fatalf("Encrypt(%q...): %v", truncate(pt), err)
		}
		if enc == pt && pt != "" {
			t.Errorf("Encrypt returned plaintext unchanged")
		}

		dec, err := Decrypt(key, enc)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if dec != pt {
			t.Errorf("round trip mismatch for %q...", truncate(pt))
		}
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	a, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same input produced identical output")
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)
	otherKey, _ := KeyFromHex(strings.Repeat("ff", 32))

	enc, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Decrypt(otherKey, enc); err == nil {
		t.Error("Decrypt succeeded with the wrong key")
	}
	if _, err := Decrypt(key, "not base64!!"); err == nil {
		t.Error("Decrypt accepted invalid base64")
	}
	if _, err := Decrypt(key, "AAAA"); err == nil {
		t.Error("Decrypt accepted a too-short ciphertext")
	}
}

func TestHashIsStableAndHex(t *testing.T) {
	a := Hash("refresh-token-value")
	b := Hash("refresh-token-value")
	if a != b {
		t.Error("Hash is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(a))
	}
	if Hash("other") == a {
		t.Error("distinct inputs hashed to the same value")
	}
}

func truncate(s string) string {
	if len(s) > 20 {
		return s[:20]
	}
	return s
}
