package lib_test

import (
	"regexp"
	"testing"

	"giftingstudio_server/lib"
)

func TestGenerateOTPCode(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)

	for range 50 {
		code, err := lib.GenerateOTPCode()
		if err != nil {
			t.Fatalf("GenerateOTPCode failed: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("code %q is not six digits", code)
		}
	}
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := lib.GenerateRandomToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := lib.GenerateRandomToken()
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Fatal("two tokens are identical")
	}
	if len(a) < 40 {
		t.Fatalf("token %q looks too short for 32 random bytes", a)
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^GS-[A-Z0-9]{4}$`)

	for range 20 {
		num := lib.GenerateOrderNumber()
		if !pattern.MatchString(num) {
			t.Fatalf("order number %q does not match GS-XXXX", num)
		}
	}
}

func TestSecureCompare(t *testing.T) {
	if !lib.SecureCompare([]byte("abc"), []byte("abc")) {
		t.Error("equal slices reported unequal")
	}
	if lib.SecureCompare([]byte("abc"), []byte("abd")) {
		t.Error("unequal slices reported equal")
	}
	if lib.SecureCompare([]byte("abc"), []byte("ab")) {
		t.Error("different lengths reported equal")
	}
}
