package validate

import (
	"testing"

	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
)

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Score float64 `json:"score" validate:"gte=0,lte=5"`
}

func TestStructReportsFieldDetails(t *testing.T) {
	err := Struct(sample{Email: "nope", Score: 7})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["score"] != "must be at most 5" {
		t.Fatalf("unexpected score detail %q", details["score"])
	}
}

func TestStructPassesValidInput(t *testing.T) {
	if err := Struct(sample{Email: "a@b.com", Score: 4.5}); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}
