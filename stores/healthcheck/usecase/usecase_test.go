package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(errors.New("down")).Once()

	uc := New(repo)
	req.NoError(uc.Check(ctx.Background()))
	req.Error(uc.Check(ctx.Background()))
	repo.AssertExpectations(t)
}
