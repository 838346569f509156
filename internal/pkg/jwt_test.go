package pkg_test

import (
	"testing"

	"NovaCom/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParsePair(t *testing.T) {
	t.Parallel()

	pair, err := pkg.GeneratePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := pkg.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := pkg.ParseAccess("not-a-token")
	assert.Error(t, err)
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	t.Parallel()

	pair, err := pkg.GeneratePair(7)
	require.NoError(t, err)

	// refresh 用的是另一把密钥，不能当 access 用
	_, err = pkg.ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	t.Parallel()

	pair, err := pkg.GeneratePair(7)
	require.NoError(t, err)

	renewed, err := pkg.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := pkg.ParseAccess(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)

	_, err = pkg.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestRandDigits(t *testing.T) {
	t.Parallel()

	code, err := pkg.RandDigits(6)
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, ch := range code {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}
