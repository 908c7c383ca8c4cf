package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

const maxMediaFileSize = 20 * 1024 * 1024

// MediaUsecase stores church media (cover photos, panorama images) in the
// blob bucket and links the object key to the record.
type MediaUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      ChurchWorkflowRepository
	blobRepository  repositories.BlobRepository
	mediaBucketUrl  string
}

func (uc MediaUsecase) UploadCoverPhoto(ctx context.Context, churchId, fileName string, file io.Reader) (string, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return "", err
	}
	if err := uc.enforceSecurity.UpdateChurch(church); err != nil {
		return "", err
	}

	key := fmt.Sprintf("churches/%s/cover/%s-%s", church.Id, uuid.NewString(), fileName)
	if err := uc.writeBlob(ctx, key, file); err != nil {
		return "", wrapUnexpected(ctx, err, "failed to store cover photo")
	}

	update := models.UpdateChurchAttributes{Id: church.Id, CoverPhotoKey: &key}
	if err := uc.repository.UpdateChurch(ctx, exec, update); err != nil {
		return "", wrapUnexpected(ctx, err, "failed to link cover photo to church record")
	}

	// Old object is orphaned on failure, not the record.
	if church.CoverPhotoKey != "" {
		if err := uc.blobRepository.DeleteFile(ctx, uc.mediaBucketUrl, church.CoverPhotoKey); err != nil {
			return key, wrapUnexpected(ctx, err, "failed to delete previous cover photo")
		}
	}
	return key, nil
}

func (uc MediaUsecase) UploadSceneImage(ctx context.Context, churchId, fileName string, file io.Reader) (string, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return "", err
	}
	if err := uc.enforceSecurity.UpdateChurch(church); err != nil {
		return "", err
	}

	key := fmt.Sprintf("churches/%s/scenes/%s-%s", church.Id, uuid.NewString(), fileName)
	if err := uc.writeBlob(ctx, key, file); err != nil {
		return "", wrapUnexpected(ctx, err, "failed to store scene image")
	}
	return key, nil
}

func (uc MediaUsecase) writeBlob(ctx context.Context, key string, file io.Reader) error {
	writer, err := uc.blobRepository.OpenStream(ctx, uc.mediaBucketUrl, key)
	if err != nil {
		return err
	}
	if _, err := io.Copy(writer, io.LimitReader(file, maxMediaFileSize)); err != nil {
		if closeErr := writer.Close(); closeErr != nil {
			return errors.Join(err, closeErr)
		}
		return err
	}
	return writer.Close()
}
