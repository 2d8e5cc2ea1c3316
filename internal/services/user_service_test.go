package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	ServiceTestSuite
}

func (s *UserServiceTestSuite) TestRegisterAndAuthenticate() {
	svc := NewUserService(s.db)

	user, err := svc.Register("alice", "pw1")
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), user.ID)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Empty(s.T(), user.PasswordHash, "hash must not leave the service")

	got, err := svc.Authenticate("alice", "pw1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, got.ID)
	assert.Empty(s.T(), got.PasswordHash)
}

func (s *UserServiceTestSuite) TestRegisterDuplicateUsername() {
	svc := NewUserService(s.db)

	_, err := svc.Register("alice", "pw1")
	require.NoError(s.T(), err)

	_, err = svc.Register("alice", "different")
	assert.ErrorIs(s.T(), err, ErrDuplicateUsername)
}

func (s *UserServiceTestSuite) TestRegisterEmptyFields() {
	svc := NewUserService(s.db)

	_, err := svc.Register("", "pw1")
	assert.ErrorIs(s.T(), err, ErrMissingFields)

	_, err = svc.Register("alice", "")
	assert.ErrorIs(s.T(), err, ErrMissingFields)
}

func (s *UserServiceTestSuite) TestAuthenticateFailuresAreUniform() {
	svc := NewUserService(s.db)

	_, err := svc.Register("alice", "pw1")
	require.NoError(s.T(), err)

	// Wrong password and unknown username must be indistinguishable.
	_, wrongPass := svc.Authenticate("alice", "wrong")
	_, unknownUser := svc.Authenticate("nobody", "pw1")
	assert.ErrorIs(s.T(), wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(s.T(), unknownUser, ErrInvalidCredentials)
	assert.Equal(s.T(), wrongPass, unknownUser)
}

func (s *UserServiceTestSuite) TestPasswordIsStoredHashed() {
	svc := NewUserService(s.db)

	_, err := svc.Register("alice", "pw1")
	require.NoError(s.T(), err)

	var stored string
	err = s.db.QueryRow("SELECT password_hash FROM users WHERE username = ?", "alice").Scan(&stored)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), "pw1", stored)
	assert.NotEmpty(s.T(), stored)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
