package handler

import "github.com/MAHBUBNISHAN/yoga-school-server/pkg/validator"

func formatValidationError(err error) string {
	return validator.FormatValidationError(err)
}
