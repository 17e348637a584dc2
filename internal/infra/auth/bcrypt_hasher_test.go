package auth

import (
	"testing"

	"coderr/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("asdasd")
	require.NoError(t, err)
	assert.NotEqual(t, "asdasd", hash)

	assert.True(t, hasher.Check("asdasd", hash))
	assert.False(t, hasher.Check("asdasd24", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("asdasd", "invalid_hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config uses default", cfg: nil, want: bcrypt.DefaultCost},
		{name: "missing auth section uses default", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "configured cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hash, err := NewBcryptHasher(tt.cfg).Hash("secret")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestNewBcryptHasherWithCost_Clamps(t *testing.T) {
	t.Parallel()

	hash, err := NewBcryptHasherWithCost(1).Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
