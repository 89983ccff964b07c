package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestToEntityDropsID(t *testing.T) {
	foreign := uuid.New()
	dto := UserDTO{
		ID:        &foreign,
		FirstName: "Alice",
		LastName:  "Liddell",
		Birthdate: NewDate(1990, time.January, 1),
		Email:     "alice@example.com",
	}

	entity := ToEntity(dto)
	if entity.ID != uuid.Nil {
		t.Errorf("Expected nil ID on mapped entity, got %s", entity.ID)
	}
	if entity.FirstName != "Alice" || entity.LastName != "Liddell" || entity.Email != "alice@example.com" {
		t.Errorf("Mapped entity fields do not match DTO: %+v", entity)
	}
	if !entity.Birthdate.Equal(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected birthdate 1990-01-01, got %v", entity.Birthdate)
	}
}

func TestToDTORoundTrip(t *testing.T) {
	u := NewUser("Alice", "Liddell", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "alice@example.com")

	dto := ToDTO(u)
	if dto.ID == nil || *dto.ID != u.ID {
		t.Errorf("Expected DTO ID %s, got %v", u.ID, dto.ID)
	}

	back := ToEntity(dto)
	if back.FirstName != u.FirstName || back.LastName != u.LastName || back.Email != u.Email {
		t.Errorf("Round trip lost fields: %+v", back)
	}
	if !back.Birthdate.Equal(u.Birthdate) {
		t.Errorf("Round trip lost birthdate: %v", back.Birthdate)
	}
}

func TestDateJSON(t *testing.T) {
	out, err := json.Marshal(NewDate(1990, time.March, 14))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(out) != `"1990-03-14"` {
		t.Errorf(`Expected "1990-03-14", got %s`, out)
	}

	var d Date
	if err := json.Unmarshal([]byte(`"2001-07-30"`), &d); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !d.Equal(time.Date(2001, 7, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2001-07-30, got %v", d.Time)
	}

	if err := json.Unmarshal([]byte(`"30/07/2001"`), &d); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestUserDTOWireNames(t *testing.T) {
	u := NewUser("Alice", "Liddell", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "alice@example.com")

	out, err := json.Marshal(ToDTO(u))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, key := range []string{"id", "firstName", "lastName", "birthdate", "email"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Expected wire field %q, got %v", key, raw)
		}
	}
	if raw["birthdate"] != "1990-01-01" {
		t.Errorf("Expected birthdate 1990-01-01, got %v", raw["birthdate"])
	}
}
