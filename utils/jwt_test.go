package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, err := GenerateToken("7", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !token.Valid {
		t.Fatal("token reported invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type %T", token.Claims)
	}
	if claims["username"] != "admin" {
		t.Errorf("username claim = %v, want admin", claims["username"])
	}
}

func TestExtractIDFromToken(t *testing.T) {
	tokenString, err := GenerateToken("42", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, err := ExtractIDFromToken(tokenString)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if sub != "42" {
		t.Errorf("sub = %q, want 42", sub)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	tokenString, err := GenerateToken("1", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(tokenString); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	tokenString, err := GenerateToken("1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	forged := parts[0] + "." + parts[1] + "." + "AAAA"
	if token, err := ValidateToken(forged); err == nil && token.Valid {
		t.Fatal("forged signature accepted")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Errorf("hash not deterministic: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if HashToken("other-token") == a {
		t.Error("distinct tokens hashed identically")
	}
}
