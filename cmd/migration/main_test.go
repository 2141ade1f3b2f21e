package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
)

func TestParseCount(t *testing.T) {
	t.Parallel()

	if n, err := parseCount(" 3 "); err != nil || n != 3 {
		t.Fatalf("parseCount(3) = %d, %v", n, err)
	}
	if _, err := parseCount("0"); err == nil {
		t.Fatal("zero should be rejected")
	}
	if _, err := parseCount("-2"); err == nil {
		t.Fatal("negative count should be rejected")
	}
	if _, err := parseCount("two"); err == nil {
		t.Fatal("non-numeric count should be rejected")
	}
}

func TestAppliedSwallowsNoChange(t *testing.T) {
	t.Parallel()

	if err := applied(migrate.ErrNoChange); err != nil {
		t.Fatalf("ErrNoChange should be success, got %v", err)
	}
	if err := applied(nil); err != nil {
		t.Fatalf("nil should pass through, got %v", err)
	}
	boom := errors.New("boom")
	if err := applied(boom); !errors.Is(err, boom) {
		t.Fatalf("real errors must pass through, got %v", err)
	}
}
