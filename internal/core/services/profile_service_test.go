package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	repo    *MockProfileRepository
	service portssvc.ProfileSvc
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.repo = new(MockProfileRepository)
	suite.service = services.NewProfileService(suite.repo)
}

func ptr[T any](v T) *T { return &v }

func (suite *ProfileServiceTestSuite) TestUpsertProfile_ReplacesWholeRow() {
	ctx := context.Background()
	req := dto.UpsertProfileRequest{
		FullName:  ptr("Alice Doe"),
		Age:       ptr(34),
		BloodType: ptr("O+"),
		Height:    ptr(165),
		Weight:    ptr(60),
	}

	suite.repo.On("ReplaceProfile", ctx, mock.MatchedBy(func(p domain.Profile) bool {
		return p.Username == "alice" &&
			*p.FullName == "Alice Doe" &&
			*p.Age == 34 &&
			p.Allergies == nil &&
			p.Picture == nil
	})).Return(nil).Once()

	got, err := suite.service.UpsertProfile(ctx, "alice", req)

	suite.Require().NoError(err)
	suite.Equal("alice", got.Username)
	suite.False(got.HasPicture())
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestUpsertPicture_DropsTextFields() {
	ctx := context.Background()
	picture := []byte{0x89, 'P', 'N', 'G'}

	suite.repo.On("ReplaceProfile", ctx, domain.Profile{Username: "alice", Picture: picture}).Return(nil).Once()

	suite.NoError(suite.service.UpsertPicture(ctx, "alice", picture))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestUpsertPicture_Empty() {
	err := suite.service.UpsertPicture(context.Background(), "alice", nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "ReplaceProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestGetPicture() {
	ctx := context.Background()
	suite.repo.On("FindProfileByUsername", ctx, "alice").
		Return(&domain.Profile{Username: "alice", Picture: []byte("jpeg")}, nil).Once()
	suite.repo.On("FindProfileByUsername", ctx, "bob").
		Return(&domain.Profile{Username: "bob", FullName: ptr("Bob")}, nil).Once()
	suite.repo.On("FindProfileByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("FindProfileByUsername", ctx, "broken").
		Return(nil, apperrors.Storage("failed to find profile", assert.AnError)).Once()

	pic, err := suite.service.GetPicture(ctx, "alice")
	suite.NoError(err)
	suite.Equal([]byte("jpeg"), pic)

	pic, err = suite.service.GetPicture(ctx, "bob")
	suite.NoError(err)
	suite.Nil(pic)

	pic, err = suite.service.GetPicture(ctx, "nobody")
	suite.NoError(err)
	suite.Nil(pic)

	_, err = suite.service.GetPicture(ctx, "broken")
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *ProfileServiceTestSuite) TestGetProfile_NotFound() {
	ctx := context.Background()
	suite.repo.On("FindProfileByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetProfile(ctx, "nobody")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
