package adapter

import (
	"fmt"

	"github.com/MKhiriev/syno-backup/models"
)

// errorCode extracts the numeric DSM error code from a failed envelope.
// A failed response without an error object yields 0, which the text
// tables report as unknown.
func errorCode(resp models.SynoResponse) int {
	if resp.Error == nil {
		return 0
	}
	return resp.Error.Code
}

func mapAuthError(resp models.SynoResponse) error {
	code := errorCode(resp)
	return fmt.Errorf("%w: %d - %s", ErrAuthFailed, code, authErrorText(code))
}

func mapFileStationError(resp models.SynoResponse) error {
	code := errorCode(resp)
	return fmt.Errorf("%w: %d - %s", ErrFileStation, code, fileStationErrorText(code))
}

func mapUploadError(resp models.SynoResponse) error {
	code := errorCode(resp)
	return fmt.Errorf("%w: %d - %s", ErrUploadFailed, code, uploadErrorText(code))
}

func mapInfoError(resp models.SynoResponse) error {
	code := errorCode(resp)
	return fmt.Errorf("%w: %d - %s", ErrFileStation, code, commonErrorText(code))
}
