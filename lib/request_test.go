package lib_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"giftingstudio_server/lib"
	"giftingstudio_server/structs"
)

func TestExtractAndValidateBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/verify", strings.NewReader(`{"email":"asha@example.com","code":"482913"}`))

	body, err := lib.ExtractAndValidateBody[structs.VerifyCodeRequest](r)
	if err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
	if body.Email != "asha@example.com" || body.Code != "482913" {
		t.Fatalf("decoded body wrong: %+v", body)
	}
}

func TestExtractAndValidateBodyUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/verify", strings.NewReader(`{"email":"asha@example.com","code":"482913","extra":true}`))

	if _, err := lib.ExtractAndValidateBody[structs.VerifyCodeRequest](r); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestExtractAndValidateBodyValidationErrors(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/verify", strings.NewReader(`{"email":"not-an-email","code":"12"}`))

	_, err := lib.ExtractAndValidateBody[structs.VerifyCodeRequest](r)
	if err == nil {
		t.Fatal("invalid body accepted")
	}

	ve, ok := err.(*lib.ValidationError)
	if !ok {
		t.Fatalf("got %T, want *lib.ValidationError", err)
	}

	fields := map[string]bool{}
	for _, fe := range ve.Errors {
		fields[fe.Field] = true
	}
	if !fields["email"] || !fields["code"] {
		t.Fatalf("expected email and code errors, got %v", ve.Errors)
	}
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/verify", strings.NewReader(`{"email":`))

	if _, err := lib.ExtractAndValidateBody[structs.VerifyCodeRequest](r); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}
