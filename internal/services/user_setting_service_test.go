package services

import (
	"testing"

	"spendtrack/internal/models"

	"github.com/stretchr/testify/suite"
)

type UserSettingServiceTestSuite struct {
	suite.Suite
	repo    *stubSettingRepo
	service UserSettingServiceInterface
}

func (suite *UserSettingServiceTestSuite) SetupTest() {
	suite.repo = newStubSettingRepo()
	suite.service = NewUserSettingService(suite.repo)
}

func (suite *UserSettingServiceTestSuite) TestGetSettingsCreatesDefaults() {
	setting, err := suite.service.GetSettings("user-1")

	suite.Require().NoError(err)
	suite.Equal(models.DefaultTheme, setting.Theme)

	again, err := suite.service.GetSettings("user-1")
	suite.Require().NoError(err)
	suite.Equal(setting.ID, again.ID)
}

func (suite *UserSettingServiceTestSuite) TestUpdateSettings() {
	setting, err := suite.service.UpdateSettings("user-1", "light")

	suite.Require().NoError(err)
	suite.Equal("light", setting.Theme)

	found, err := suite.service.GetSettings("user-1")
	suite.Require().NoError(err)
	suite.Equal("light", found.Theme)
}

func TestUserSettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserSettingServiceTestSuite))
}
