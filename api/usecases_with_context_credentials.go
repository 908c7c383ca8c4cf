package api

import (
	"context"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/usecases"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) usecases.UsecasesWithCreds {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		panic("no credentials in context")
	}
	return uc.WithCreds(creds)
}

// usecasesPublic binds empty credentials for the unauthenticated routes
// (published profiles, visitor feedback).
func usecasesPublic(uc usecases.Usecases) usecases.UsecasesWithCreds {
	return uc.WithCreds(models.Credentials{})
}
