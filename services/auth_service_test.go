package services_test

import (
	"strings"
	"testing"

	"giftingstudio_server/config"
	"giftingstudio_server/services"

	"github.com/MonkyMars/gecho"
)

func newTestAuthService() *services.AuthService {
	return services.NewAuthService(config.GetConfig(), gecho.NewDefaultLogger(), nil)
}

func TestHashCodeRoundTrip(t *testing.T) {
	as := newTestAuthService()

	hash, err := as.HashCode("482913", services.DefaultParams)
	if err != nil {
		t.Fatalf("HashCode failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	ok, err := as.VerifyCodeHash("482913", hash)
	if err != nil {
		t.Fatalf("VerifyCodeHash failed: %v", err)
	}
	if !ok {
		t.Fatal("correct code rejected")
	}

	ok, err = as.VerifyCodeHash("482914", hash)
	if err != nil {
		t.Fatalf("VerifyCodeHash failed: %v", err)
	}
	if ok {
		t.Fatal("wrong code accepted")
	}
}

func TestHashCodeSaltsDiffer(t *testing.T) {
	as := newTestAuthService()

	a, err := as.HashCode("482913", services.DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	b, err := as.HashCode("482913", services.DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two hashes of the same code are identical, salt is not random")
	}
}

func TestVerifyCodeHashMalformed(t *testing.T) {
	as := newTestAuthService()

	if _, err := as.VerifyCodeHash("482913", "not-a-hash"); err == nil {
		t.Fatal("malformed hash accepted")
	}
	if _, err := as.VerifyCodeHash("482913", "$argon2i$v=19$m=65536,t=1,p=4$AAAA$BBBB"); err == nil {
		t.Fatal("wrong algorithm accepted")
	}
}
