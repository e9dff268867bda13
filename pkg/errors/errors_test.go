package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		surfaced  bool
		publicMsg string
		detailsOK bool
	}{
		{code: CodeValidation, surfaced: true, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, surfaced: true, publicMsg: "item not found"},
		{code: CodeDuplicate, surfaced: true, publicMsg: "already present", detailsOK: true},
		{code: CodeCapacity, surfaced: true, publicMsg: "limit reached", detailsOK: true},
		{code: CodeLoad, surfaced: true, publicMsg: "catalog unavailable"},
		{code: CodeStorage, publicMsg: "storage unavailable"},
		{code: CodeInternal, publicMsg: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.Surfaced != tt.surfaced {
			t.Fatalf("code %s expected surfaced %v got %v", tt.code, tt.surfaced, meta.Surfaced)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.Surfaced {
		t.Fatal("unknown codes must not surface to the user")
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatal("details should be nil by default")
	}
	if base.Error() != "VALIDATION_ERROR: missing foo" {
		t.Fatalf("unexpected error string %q", base.Error())
	}

	withDetails := base.WithDetails(map[string]string{"field": "foo"})
	if withDetails.Details() == nil {
		t.Fatal("expected details to be attached")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk gone")
	wrapped := Wrap(CodeStorage, cause, "read favorites")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if Wrap(CodeStorage, nil, "no cause").Unwrap() != nil {
		t.Fatal("nil cause should wrap to nil")
	}
}

func TestAsAndHasCode(t *testing.T) {
	err := New(CodeCapacity, "compare list full")
	if typed := As(err); typed == nil || typed.Code() != CodeCapacity {
		t.Fatalf("As failed to recover typed error: %v", typed)
	}
	if As(nil) != nil {
		t.Fatal("As(nil) must be nil")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("As must not convert untyped errors")
	}
	if !HasCode(err, CodeCapacity) {
		t.Fatal("HasCode missed a matching code")
	}
	if HasCode(err, CodeDuplicate) {
		t.Fatal("HasCode matched the wrong code")
	}
}
