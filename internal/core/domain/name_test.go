package domain_test

import (
	"testing"

	"go.trai.ch/mason/internal/core/domain"
)

func TestKeyOf_CaseInsensitive(t *testing.T) {
	if domain.KeyOf("Build") != domain.KeyOf("build") {
		t.Error("keys must fold case")
	}
	if domain.KeyOf("build") == domain.KeyOf("test") {
		t.Error("distinct names must produce distinct keys")
	}
}

func TestTaskKey_String(t *testing.T) {
	if got := domain.KeyOf("Build").String(); got != "build" {
		t.Errorf("expected folded name, got %q", got)
	}

	var zero domain.TaskKey
	if zero.String() != "" {
		t.Error("zero key must stringify to empty")
	}
}

func TestTaskKey_IsZero(t *testing.T) {
	var zero domain.TaskKey
	if !zero.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if domain.KeyOf("build").IsZero() {
		t.Error("derived key must not report IsZero")
	}
}
