package errors

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailReturnsCopy(t *testing.T) {
	err := ErrInvalidParam.WithDetail("end_at must not precede start_at")

	assert.Equal(t, "end_at must not precede start_at", err.Detail)
	assert.Equal(t, CodeInvalidParam, err.Code)
	assert.Equal(t, ErrInvalidParam.HTTPStatus, err.HTTPStatus)

	// 预定义错误保持干净
	assert.NotSame(t, ErrInvalidParam, err)
	assert.Empty(t, ErrInvalidParam.Detail)
}

func TestWithErrorReturnsCopy(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := ErrInternalError.WithError(cause)

	require.ErrorIs(t, err, cause)
	assert.NotSame(t, ErrInternalError, err)
	assert.Nil(t, ErrInternalError.Err)
}

func TestWithDetailConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			detail := fmt.Sprintf("detail-%d", i)
			err := ErrInvalidParam.WithDetail(detail)
			assert.Equal(t, detail, err.Detail)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, ErrInvalidParam.Detail)
}
