package generator

import (
	"errors"
	"testing"
)

func TestGenerate(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12} {
		messages, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if messages == nil {
			t.Fatalf("Generate(%d) returned nil slice", n)
		}
		if len(messages) != n {
			t.Fatalf("Generate(%d) returned %d messages", n, len(messages))
		}
		for _, m := range messages {
			if m.Read {
				t.Errorf("Generate(%d): %q starts read", n, m.Subject)
			}
			if m.Description != DefaultDescription {
				t.Errorf("Generate(%d): description = %q", n, m.Description)
			}
		}
	}
}

func TestGenerate_Subjects(t *testing.T) {
	messages, _ := Generate(3)
	want := []string{"Message 1", "Message 2", "Message 3"}
	for i, m := range messages {
		if m.Subject != want[i] {
			t.Errorf("messages[%d].Subject = %q, want %q", i, m.Subject, want[i])
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate(4)
	b, _ := Generate(4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("messages[%d] differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_Negative(t *testing.T) {
	if _, err := Generate(-1); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestGenerateWithDescription(t *testing.T) {
	messages, err := GenerateWithDescription(2, "Lunch?")
	if err != nil {
		t.Fatalf("GenerateWithDescription: %v", err)
	}
	for _, m := range messages {
		if m.Description != "Lunch?" {
			t.Errorf("description = %q, want %q", m.Description, "Lunch?")
		}
	}
}
