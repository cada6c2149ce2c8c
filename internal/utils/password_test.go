package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "secret")

	again, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salts must be fresh per hash")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		encoded  string
		want     bool
	}{
		{name: "correct password", password: "secret", encoded: hash, want: true},
		{name: "wrong password", password: "Secret", encoded: hash, want: false},
		{name: "empty password", password: "", encoded: hash, want: false},
		{name: "malformed hash", password: "secret", encoded: "not-a-hash", want: false},
		{name: "empty hash", password: "secret", encoded: "", want: false},
		{name: "wrong algorithm", password: "secret", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.encoded))
		})
	}
}
