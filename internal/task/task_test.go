package task

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("valid appointment", func(t *testing.T) {
		got, err := New("Maria Silva", "Rex", "11 99999-0000", "banho", "80.50", "pendente", "05/03/2024 14:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Client != "Maria Silva" {
			t.Errorf("client = %q, want %q", got.Client, "Maria Silva")
		}
		if got.Price != 80.50 {
			t.Errorf("price = %v, want 80.50", got.Price)
		}
		if got.DeadlineTimestamp == nil {
			t.Fatal("expected deadline timestamp to be derived from the deadline string")
		}
	})

	t.Run("empty client", func(t *testing.T) {
		_, err := New("", "Rex", "", "", "", "", "")
		if !errors.Is(err, ErrEmptyClient) {
			t.Errorf("got error %v, want %v", err, ErrEmptyClient)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := New("Maria", "", "", "", "-5", "", "")
		if !errors.Is(err, ErrNegativePrice) {
			t.Errorf("got error %v, want %v", err, ErrNegativePrice)
		}
	})

	t.Run("invalid payment status", func(t *testing.T) {
		_, err := New("Maria", "", "", "", "", "atrasado", "")
		if !errors.Is(err, ErrInvalidPaymentInfo) {
			t.Errorf("got error %v, want %v", err, ErrInvalidPaymentInfo)
		}
	})

	t.Run("malformed deadline", func(t *testing.T) {
		_, err := New("Maria", "", "", "", "", "", "amanhã de manhã")
		if !errors.Is(err, ErrInvalidDeadline) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDeadline)
		}
	})

	t.Run("sentinel deadline is accepted", func(t *testing.T) {
		got, err := New("Maria", "", "", "", "", "", DeadlineUndefined)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DeadlineTimestamp != nil {
			t.Error("sentinel deadline must not produce a timestamp")
		}
		if got.HasDeadline() {
			t.Error("sentinel deadline must not count as a deadline")
		}
	})
}

func TestTitle(t *testing.T) {
	withPet := &Task{Client: "Maria", PetName: "Rex"}
	if got := withPet.Title(); got != "Rex" {
		t.Errorf("got %q, want %q", got, "Rex")
	}

	withoutPet := &Task{Client: "Maria"}
	if got := withoutPet.Title(); got != "Maria" {
		t.Errorf("got %q, want %q", got, "Maria")
	}
}

func TestMatches(t *testing.T) {
	tk := &Task{Client: "Maria Silva", PetName: "Rex"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"maria", true},
		{"rex", true},
		{"silva", true},
		{"joão", false},
	}

	for _, tt := range tests {
		if got := tk.Matches(tt.term); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}
