package usecases

import (
	"github.com/keej24/visita-bohol-system-sub001/infra"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

// Usecases owns the credential-independent collaborators. A request binds
// actor credentials to it with WithCreds before building usecases.
type Usecases struct {
	ExecutorFactory executor_factory.ExecutorFactory
	Repository      *repositories.VisitaDbRepository
	BlobRepository  repositories.BlobRepository
	AuditLogger     AuditLogger
	BlobConfig      infra.BlobConfig
}

func NewUsecases(
	executorFactory executor_factory.ExecutorFactory,
	repository *repositories.VisitaDbRepository,
	blobRepository repositories.BlobRepository,
	blobConfig infra.BlobConfig,
) Usecases {
	return Usecases{
		ExecutorFactory: executorFactory,
		Repository:      repository,
		BlobRepository:  blobRepository,
		AuditLogger:     NewBestEffortAuditLogger(executorFactory, repository),
		BlobConfig:      blobConfig,
	}
}

func (usecases Usecases) WithCreds(creds models.Credentials) UsecasesWithCreds {
	return UsecasesWithCreds{
		Usecases:    usecases,
		Credentials: creds,
	}
}

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases UsecasesWithCreds) enforceSecurity() security.EnforceSecurity {
	return security.EnforceSecurity{Credentials: usecases.Credentials}
}

func (usecases UsecasesWithCreds) NewChurchWorkflowUsecase() ChurchWorkflowUsecase {
	return ChurchWorkflowUsecase{
		enforceSecurity: usecases.enforceSecurity(),
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
		blobRepository:  usecases.BlobRepository,
		auditLogger:     usecases.AuditLogger,
		credentials:     usecases.Credentials,
		mediaBucketUrl:  usecases.BlobConfig.ChurchMediaBucketUrl,
	}
}

func (usecases UsecasesWithCreds) NewSceneUsecase() SceneUsecase {
	return SceneUsecase{
		enforceSecurity: usecases.enforceSecurity(),
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
	}
}

func (usecases UsecasesWithCreds) NewAnnouncementUsecase() AnnouncementUsecase {
	return AnnouncementUsecase{
		enforceSecurity: usecases.enforceSecurity(),
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
		auditLogger:     usecases.AuditLogger,
		credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewFeedbackUsecase() FeedbackUsecase {
	return FeedbackUsecase{
		enforceSecurity: usecases.enforceSecurity(),
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
	}
}

func (usecases UsecasesWithCreds) NewAuditUsecase() AuditUsecase {
	return AuditUsecase{
		enforceSecurity: usecases.enforceSecurity(),
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
		credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewDioceseUsecase() DioceseUsecase {
	return DioceseUsecase{
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
	}
}

func (usecases UsecasesWithCreds) NewMediaUsecase() MediaUsecase {
	return MediaUsecase{
		enforceSecurity: usecases.enforceSecurity(),
		executorFactory: usecases.ExecutorFactory,
		repository:      usecases.Repository,
		blobRepository:  usecases.BlobRepository,
		mediaBucketUrl:  usecases.BlobConfig.ChurchMediaBucketUrl,
	}
}
