package storage

import (
	"fmt"

	"github.com/Kyz7/corporate-site/internal/apperr"
)

var (
	ErrTooLarge  = fmt.Errorf("%w: file exceeds %d MB", apperr.ErrValidation, MaxUploadSize/(1024*1024))
	ErrExtension = fmt.Errorf("%w: file type not allowed", apperr.ErrValidation)
	ErrOutside   = fmt.Errorf("%w: path outside upload directory", apperr.ErrNotFound)
)
