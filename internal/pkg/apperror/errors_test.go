package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/apperror"
)

func TestFromDomain(t *testing.T) {
	t.Run("maps wrapped sentinels", func(t *testing.T) {
		err := fmt.Errorf("rendering strip: %w", fmt.Errorf("%w: have 3, need 4", domain.ErrNotEnoughPhotos))

		appErr := apperror.FromDomain(err)

		assert.Equal(t, "NOT_ENOUGH_PHOTOS", appErr.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)
		assert.Equal(t, domain.ErrNotEnoughPhotos.Error(), appErr.Message)
		assert.ErrorIs(t, appErr, domain.ErrNotEnoughPhotos)
	})

	t.Run("asset failures are gateway errors", func(t *testing.T) {
		appErr := apperror.FromDomain(fmt.Errorf("%w: s3://x", domain.ErrAssetLoad))
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("refused references are forbidden", func(t *testing.T) {
		appErr := apperror.FromDomain(fmt.Errorf("%w: s3://sessions/other/photos/x.jpg", domain.ErrAssetNotAllowed))
		assert.Equal(t, "ASSET_NOT_ALLOWED", appErr.Code)
		assert.Equal(t, http.StatusForbidden, appErr.StatusCode)
	})

	t.Run("keeps app errors", func(t *testing.T) {
		orig := apperror.BadRequest("bad")
		assert.Same(t, orig, apperror.FromDomain(fmt.Errorf("wrapped: %w", orig)))
	})

	t.Run("hides unknown causes", func(t *testing.T) {
		appErr := apperror.FromDomain(errors.New("connection refused"))
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
		assert.Equal(t, "an internal error occurred", appErr.Message)
	})
}
