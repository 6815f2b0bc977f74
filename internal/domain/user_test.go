package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserJSON_CredentialHashesHidden(t *testing.T) {
	user := User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$examplehash",
		PinHash:      "$2a$10$pinhash",
		BonusTimes:   2,
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}

	body := string(raw)
	if strings.Contains(body, "password_hash") || strings.Contains(body, "$2a$10$examplehash") {
		t.Fatalf("json should not expose the password hash, got: %s", body)
	}
	if strings.Contains(body, "pin_hash") || strings.Contains(body, "$2a$10$pinhash") {
		t.Fatalf("json should not expose the pin hash, got: %s", body)
	}
	if !strings.Contains(body, "\"name\":\"Alice\"") {
		t.Fatalf("json should include name field, got: %s", body)
	}
	if !strings.Contains(body, "\"email\":\"alice@example.com\"") {
		t.Fatalf("json should include email field, got: %s", body)
	}
	if !strings.Contains(body, "\"bonus_times\":2") {
		t.Fatalf("json should include bonus_times field, got: %s", body)
	}
}

func TestUserJSON_UnmarshalIgnoresHashFields(t *testing.T) {
	input := `{"name":"Alice","email":"alice@example.com","password_hash":"attacker-controlled","pin_hash":"attacker-controlled"}`

	var user User
	if err := json.Unmarshal([]byte(input), &user); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}

	if user.Name != "Alice" {
		t.Fatalf("Name = %q, want %q", user.Name, "Alice")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("Email = %q, want %q", user.Email, "alice@example.com")
	}
	if user.PasswordHash != "" {
		t.Fatalf("PasswordHash = %q, want empty", user.PasswordHash)
	}
	if user.PinHash != "" {
		t.Fatalf("PinHash = %q, want empty", user.PinHash)
	}
}

func TestUser_HasPin(t *testing.T) {
	u := User{}
	if u.HasPin() {
		t.Error("expected HasPin=false for empty PinHash")
	}
	u.PinHash = "$2a$10$pinhash"
	if !u.HasPin() {
		t.Error("expected HasPin=true once PinHash is set")
	}
}
