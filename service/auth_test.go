package service

import (
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-Horse-battery-staple-42"

func TestAuth(t *testing.T) {
	t.Run("register then sign in", func(t *testing.T) {
		repo := newFakeUserRepo()
		tokenizer := &fakeTokenizer{}
		auth, err := NewAuthService(repo, tokenizer)
		require.NoError(t, err)

		require.NoError(t, auth.Register("maze_runner", strongPassword))

		user, token, err := auth.SignIn("maze_runner", strongPassword)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, user.ID.String(), tokenizer.claims["userID"])
		assert.Equal(t, "maze_runner", tokenizer.claims["username"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		auth, err := NewAuthService(newFakeUserRepo(), &fakeTokenizer{})
		require.NoError(t, err)

		require.NoError(t, auth.Register("maze_runner", strongPassword))
		assert.ErrorIs(t, auth.Register("maze_runner", strongPassword), dmn.ErrUsernameConflict)
	})

	t.Run("weak password", func(t *testing.T) {
		auth, err := NewAuthService(newFakeUserRepo(), &fakeTokenizer{})
		require.NoError(t, err)
		assert.ErrorIs(t, auth.Register("maze_runner", "123"), dmn.ErrWeakPassword)
	})

	t.Run("bad credentials", func(t *testing.T) {
		auth, err := NewAuthService(newFakeUserRepo(), &fakeTokenizer{})
		require.NoError(t, err)
		require.NoError(t, auth.Register("maze_runner", strongPassword))

		_, _, err = auth.SignIn("maze_runner", "not the password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = auth.SignIn("nobody", strongPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("requires dependencies", func(t *testing.T) {
		_, err := NewAuthService(nil, &fakeTokenizer{})
		assert.Error(t, err)
	})
}
