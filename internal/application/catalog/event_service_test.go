package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venus-catalog-api/internal/domain/entity"
	apperrors "venus-catalog-api/pkg/errors"
)

func TestEventCreateRejectsInvertedWindow(t *testing.T) {
	svc := &EventService{now: time.Now}
	start := time.Now()
	event := entity.NewEvent(entity.LocalizedName{NameEN: "Venus Festival"}, entity.EventTypeFestival, start, start.Add(-time.Hour))

	err := svc.Create(context.Background(), event)

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
	assert.Equal(t, "end_at must not precede start_at", appErr.Detail)

	// 预定义错误不被调用方污染
	assert.Empty(t, apperrors.ErrInvalidParam.Detail)
}
