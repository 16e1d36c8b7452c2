package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-tracker/internal/domain"
)

func TestIsValidation(t *testing.T) {
	assert.True(t, domain.IsValidation(domain.ErrInvalidName))
	assert.True(t, domain.IsValidation(fmt.Errorf("%w: -1", domain.ErrInvalidQuantity)))

	for _, err := range []error{domain.ErrItemNotFound, domain.ErrFileNotFound, domain.ErrReadFailed, domain.ErrMalformedData, domain.ErrPersist, nil} {
		assert.False(t, domain.IsValidation(err), "%v", err)
	}
}
