package service

import (
	"errors"
	"testing"

	"mytutor_backend/internals/constants"
)

func TestCanApply(t *testing.T) {
	if err := CanApply(constants.QualFirstYear); !errors.Is(err, ErrQualificationTooLow) {
		t.Fatalf("tahun pertama harus ditolak, dapat %v", err)
	}

	allowed := []string{
		constants.QualSecondYear,
		constants.QualThirdYear,
		constants.QualHonours,
		constants.QualMasters,
		constants.QualPhD,
		constants.QualPostDoctorate,
	}
	for _, q := range allowed {
		if err := CanApply(q); err != nil {
			t.Errorf("jenjang %s harusnya boleh melamar: %v", q, err)
		}
	}
}
