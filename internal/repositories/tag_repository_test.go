package repositories

import (
	"testing"

	"spendtrack/internal/database"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TagRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo TagRepositoryInterface
}

func (suite *TagRepositoryTestSuite) SetupTest() {
	suite.db = database.SetupTestDB(suite.T())
	suite.repo = NewTagRepository(suite.db.DB)
}

func (suite *TagRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(suite.T(), suite.db)
}

func (suite *TagRepositoryTestSuite) TestCreate() {
	tag := &models.Tag{UserID: "user-1", Name: "work"}

	err := suite.repo.Create(tag)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tag.ID)
}

func (suite *TagRepositoryTestSuite) TestCreateDuplicateName() {
	database.CreateTestTag(suite.T(), suite.db, "user-1", "work")

	err := suite.repo.Create(&models.Tag{UserID: "user-1", Name: "work"})
	suite.ErrorIs(err, ErrTagAlreadyExists)
}

func (suite *TagRepositoryTestSuite) TestGetByIDs() {
	work := database.CreateTestTag(suite.T(), suite.db, "user-1", "work")
	home := database.CreateTestTag(suite.T(), suite.db, "user-1", "home")
	other := database.CreateTestTag(suite.T(), suite.db, "user-2", "other")

	tags, err := suite.repo.GetByIDs("user-1", []uuid.UUID{work.ID, home.ID, other.ID})
	suite.NoError(err)
	suite.Len(tags, 2)
}

func (suite *TagRepositoryTestSuite) TestGetByIDsEmpty() {
	tags, err := suite.repo.GetByIDs("user-1", nil)
	suite.NoError(err)
	suite.Empty(tags)
}

func (suite *TagRepositoryTestSuite) TestGetByUserID() {
	database.CreateTestTag(suite.T(), suite.db, "user-1", "work")
	database.CreateTestTag(suite.T(), suite.db, "user-1", "home")
	database.CreateTestTag(suite.T(), suite.db, "user-2", "other")

	tags, err := suite.repo.GetByUserID("user-1")
	suite.NoError(err)
	suite.Len(tags, 2)
	suite.Equal("home", tags[0].Name)
}

func (suite *TagRepositoryTestSuite) TestDelete() {
	tag := database.CreateTestTag(suite.T(), suite.db, "user-1", "work")

	err := suite.repo.Delete("user-1", tag.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID("user-1", tag.ID)
	suite.ErrorIs(err, ErrTagNotFound)
}

func (suite *TagRepositoryTestSuite) TestDeleteScopedToOwner() {
	tag := database.CreateTestTag(suite.T(), suite.db, "user-1", "work")

	err := suite.repo.Delete("user-2", tag.ID)
	suite.ErrorIs(err, ErrTagNotFound)
}

func TestTagRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TagRepositoryTestSuite))
}
