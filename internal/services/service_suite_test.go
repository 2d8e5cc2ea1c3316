package services

import (
	"database/sql"

	"github.com/jsoler/finplan-be/internal/database"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ServiceTestSuite gives each test a fresh in-memory database with the real
// schema applied.
type ServiceTestSuite struct {
	suite.Suite
	db *sql.DB
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := database.New(":memory:")
	require.NoError(s.T(), err, "failed to open test database")
	// Every pooled connection to :memory: is its own database; keep one.
	db.SetMaxOpenConns(1)
	require.NoError(s.T(), database.Migrate(db), "failed to migrate test database")
	s.db = db
}

func (s *ServiceTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

// mustRegister creates a user and returns its ID.
func (s *ServiceTestSuite) mustRegister(username string) string {
	user, err := NewUserService(s.db).Register(username, "pw1")
	require.NoError(s.T(), err)
	return user.ID
}
