package service

import (
	"errors"

	"mytutor_backend/internals/constants"
)

var (
	ErrQualificationTooLow = errors.New("jenjang kualifikasi belum memenuhi syarat melamar")
	ErrAlreadyApplied      = errors.New("lamaran sudah pernah dikirim")
)

// CanApply gerbang kelayakan melamar tutor/TA: mahasiswa tahun pertama
// belum boleh.
func CanApply(qualificationLevel string) error {
	if qualificationLevel == constants.QualFirstYear {
		return ErrQualificationTooLow
	}
	return nil
}
