package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found", detailsOK: true},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected"},
		{code: CodeStateConflict, status: http.StatusUnprocessableEntity, publicMsg: "state transition disallowed", detailsOK: true},
		{code: CodeStorage, status: http.StatusServiceUnavailable, publicMsg: "storage unavailable", retryable: true},
		{code: CodeCanceled, status: 499, publicMsg: "request canceled"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("project", "missing")
	if err.Code() != CodeNotFound {
		t.Fatalf("expected not found code, got %s", err.Code())
	}
	if err.Message() != "project missing not found" {
		t.Fatalf("unexpected message %q", err.Message())
	}
	details, ok := err.Details().(map[string]string)
	if !ok || details["project_id"] != "missing" {
		t.Fatalf("unexpected details %#v", err.Details())
	}

	if NotFound("profile", "").Message() != "profile not found" {
		t.Fatalf("unexpected message for id-less not found")
	}
}

func TestWrapAndAs(t *testing.T) {
	cause := stdErrors.New("disk full")
	wrapped := Wrap(CodeStorage, cause, "write failed")
	outer := fmt.Errorf("persist: %w", wrapped)

	if !stdErrors.Is(outer, cause) {
		t.Fatal("expected cause to be reachable through the chain")
	}
	typed := As(outer)
	if typed == nil || typed.Code() != CodeStorage {
		t.Fatalf("expected storage code, got %#v", typed)
	}
	if !IsCode(outer, CodeStorage) || IsCode(outer, CodeNotFound) {
		t.Fatal("IsCode mismatch")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain error should not convert")
	}
	if Wrap(CodeInternal, nil, "x").Unwrap() != nil {
		t.Fatal("wrap of nil should carry no cause")
	}
}

func TestDump(t *testing.T) {
	if d := Dump(nil); d.TopMessage != "" {
		t.Fatalf("expected empty dump, got %#v", d)
	}

	pg := &pgconn.PgError{Code: "23505", ConstraintName: "kv_entries_pkey", TableName: "kv_entries", Message: "duplicate"}
	err := Wrap(CodeStorage, pg, "write failed")
	d := Dump(err)
	if d.Code != CodeStorage {
		t.Fatalf("expected storage code, got %s", d.Code)
	}
	if d.PGCode != "23505" || d.PGTable != "kv_entries" {
		t.Fatalf("expected pg fields, got %#v", d)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected two chain entries, got %v", d.Chain)
	}
}
