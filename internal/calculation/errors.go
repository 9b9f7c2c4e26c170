package calculation

import "github.com/laws2020/nigeriaPITaudit/internal/domain"

// Re-export the domain sentinels so callers of this package can match
// errors without importing domain.
var (
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrUnknownTransactionType = domain.ErrUnknownTransactionType
)
