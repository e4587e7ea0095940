package validate

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name" validate:"required"`
	Width int    `yaml:"width" default:"5" validate:"min=1,max=59"`
	Mode  string `yaml:"mode" default:"text" validate:"oneof=text yaml"`
	Kind  string `yaml:"kind" validate:"omitempty,upper"`
}

func init() {
	RegisterValidation("upper", func(v string) bool { return v == strings.ToUpper(v) })
}

func TestStructAppliesDefaults(t *testing.T) {
	s := &sample{Name: "x"}
	if err := Struct(s); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if s.Width != 5 || s.Mode != "text" {
		t.Fatalf("defaults not applied: %+v", s)
	}
}

func TestStructCollectsFieldErrors(t *testing.T) {
	s := &sample{Width: 90, Mode: "csv", Kind: "lower"}
	err := Struct(s)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T %v", err, err)
	}
	codes := map[string]string{}
	for _, e := range verrs {
		codes[e.Field] = e.Code
	}
	want := map[string]string{
		"sample.name":  "ERR_REQUIRED",
		"sample.width": "ERR_MAX",
		"sample.mode":  "ERR_ONEOF",
		"sample.kind":  "ERR_UPPER",
	}
	for field, code := range want {
		if codes[field] != code {
			t.Fatalf("field %s: expected %s, got %q (all: %v)", field, code, codes[field], codes)
		}
	}
	if !strings.Contains(err.Error(), "sample.width must be at most 59") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestStructRejectsNonPointer(t *testing.T) {
	if err := Struct(sample{}); err == nil {
		t.Fatalf("expected error for non-pointer")
	}
}
