package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationErrorMap(t *testing.T) {
	type payload struct {
		UserName string `validate:"required"`
		Year     int    `validate:"min=2000"`
	}

	err := validator.New().Struct(payload{Year: 1999})
	got := ValidationErrorMap(err)

	if msgs := got["username"]; len(msgs) != 1 || msgs[0] != "required" {
		t.Fatalf("username harus [required], dapat %v", msgs)
	}
	if msgs := got["year"]; len(msgs) != 1 || msgs[0] != "min=2000" {
		t.Fatalf("year harus [min=2000], dapat %v", msgs)
	}
	if len(got) != 2 {
		t.Fatalf("cuma 2 field yang gagal, dapat %v", got)
	}
}

func TestValidationErrorMapNonValidator(t *testing.T) {
	got := ValidationErrorMap(errors.New("payload rusak"))
	if msgs := got["_"]; len(msgs) != 1 || msgs[0] != "payload rusak" {
		t.Fatalf("error non-validator harus masuk key _, dapat %v", got)
	}
}

func TestValidationErrorMapNil(t *testing.T) {
	if got := ValidationErrorMap(nil); len(got) != 0 {
		t.Fatalf("nil harus peta kosong, dapat %v", got)
	}
}
