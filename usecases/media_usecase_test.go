package usecases

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/keej24/visita-bohol-system-sub001/mocks"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type memoryBlob struct {
	bytes.Buffer
}

func (b *memoryBlob) Close() error { return nil }

type MediaUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.ChurchWorkflowRepository
	blobRepository  *mocks.BlobRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	dioceseId string
	churchId  string
	bucketUrl string
}

func (suite *MediaUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.ChurchWorkflowRepository)
	suite.blobRepository = new(mocks.BlobRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.executorFactory.ExecMock = suite.executor

	suite.dioceseId = "b26c0f6e-2e34-4fd5-a82f-7fd0e2a2a001"
	suite.churchId = "6ccdbd02-1f0a-4f3a-8c08-f05e4b9ba003"
	suite.bucketUrl = "mem://media"

	suite.executorFactory.On("NewExecutor").Return().Maybe()
}

func (suite *MediaUsecaseTestSuite) makeUsecase(role models.Role) MediaUsecase {
	creds := models.Credentials{
		ActorId:   "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002",
		Role:      role,
		DioceseId: suite.dioceseId,
	}
	return MediaUsecase{
		enforceSecurity: security.EnforceSecurity{Credentials: creds},
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		blobRepository:  suite.blobRepository,
		mediaBucketUrl:  suite.bucketUrl,
	}
}

func (suite *MediaUsecaseTestSuite) sampleChurch() models.Church {
	return models.Church{
		Id:        suite.churchId,
		DioceseId: suite.dioceseId,
		Status:    models.ChurchApproved,
	}
}

func (suite *MediaUsecaseTestSuite) TestUploadCoverPhoto_StoresBlobAndLinksKey() {
	ctx := context.Background()
	blob := new(memoryBlob)

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(suite.sampleChurch(), nil)
	suite.blobRepository.On("OpenStream", ctx, suite.bucketUrl, mock.Anything).
		Return(blob, nil)
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.CoverPhotoKey != nil &&
				strings.HasPrefix(*attrs.CoverPhotoKey, "churches/"+suite.churchId+"/cover/")
		})).Return(nil)

	key, err := suite.makeUsecase(models.PARISH_STAFF).
		UploadCoverPhoto(ctx, suite.churchId, "facade.jpg", strings.NewReader("image bytes"))

	suite.Require().NoError(err)
	suite.True(strings.HasSuffix(key, "-facade.jpg"))
	suite.Equal("image bytes", blob.String())
	suite.repository.AssertExpectations(suite.T())
	suite.blobRepository.AssertExpectations(suite.T())
}

func (suite *MediaUsecaseTestSuite) TestUploadCoverPhoto_DeletesPreviousObject() {
	ctx := context.Background()
	church := suite.sampleChurch()
	church.CoverPhotoKey = "churches/old/cover/old.jpg"

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)
	suite.blobRepository.On("OpenStream", ctx, suite.bucketUrl, mock.Anything).
		Return(new(memoryBlob), nil)
	suite.repository.On("UpdateChurch", ctx, suite.executor, mock.Anything).Return(nil)
	suite.blobRepository.On("DeleteFile", ctx, suite.bucketUrl, church.CoverPhotoKey).Return(nil)

	_, err := suite.makeUsecase(models.PARISH_STAFF).
		UploadCoverPhoto(ctx, suite.churchId, "facade.jpg", strings.NewReader("image bytes"))

	suite.Require().NoError(err)
	suite.blobRepository.AssertExpectations(suite.T())
}

func (suite *MediaUsecaseTestSuite) TestUploadSceneImage_ForbiddenForOtherDiocese() {
	ctx := context.Background()
	church := suite.sampleChurch()
	church.DioceseId = "0d7ecb4c-3f55-4a36-a215-000000000999"

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)

	_, err := suite.makeUsecase(models.PARISH_STAFF).
		UploadSceneImage(ctx, suite.churchId, "altar.jpg", strings.NewReader("image bytes"))

	suite.ErrorIs(err, models.ForbiddenError)
	suite.blobRepository.AssertNotCalled(suite.T(), "OpenStream",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(MediaUsecaseTestSuite))
}
