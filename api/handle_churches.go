package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/dto"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/pure_utils"
	"github.com/keej24/visita-bohol-system-sub001/usecases"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

func handleListChurches(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		statuses, err := models.ValidateChurchStatuses(c.QueryArray("status"))
		if presentError(ctx, c, err) {
			return
		}
		filters := models.ChurchFilters{
			DioceseId:      c.Query("diocese_id"),
			Statuses:       statuses,
			Classification: models.HeritageClassification(c.Query("classification")),
			Municipality:   c.Query("municipality"),
		}

		churches, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().ListChurches(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"churches": pure_utils.Map(churches, dto.AdaptChurchDto)})
	}
}

func handleGetChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		church, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().GetChurch(ctx, churchId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": dto.AdaptChurchDto(church)})
	}
}

func handleCreateChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateChurchBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		church, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().CreateChurch(ctx,
			models.CreateChurchAttributes{
				Id:        body.Id,
				DioceseId: body.DioceseId,
				Form:      dto.AdaptChurchForm(body.Form),
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"church": dto.AdaptChurchDto(church)})
	}
}

func handleUpdateChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.ChurchFormBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		church, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().
			UpdateChurch(ctx, churchId, dto.AdaptChurchForm(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": dto.AdaptChurchDto(church)})
	}
}

func handleStagedUpdateChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.ChurchFormBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		result, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().
			UpdateChurchWithStaging(ctx, churchId, dto.AdaptChurchForm(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptStagedUpdateResultDto(result))
	}
}

func handleReviewChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.ReviewChurchBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		church, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().
			ReviewChurch(ctx, models.ReviewChurchAttributes{
				ChurchId: churchId,
				Action:   models.ReviewAction(body.Action),
				Notes:    body.Notes,
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": dto.AdaptChurchDto(church)})
	}
}

func handleHeritageReviewChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.HeritageReviewBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		attrs := models.HeritageReviewAttributes{
			ChurchId:             churchId,
			HistoricalBackground: body.HistoricalBackground,
			FoundingYear:         body.FoundingYear,
			Founders:             body.Founders,
			ArchitecturalStyle:   body.ArchitecturalStyle,
			ReligiousOrder:       body.ReligiousOrder,
			HeritageDeclaration:  body.HeritageDeclaration,
			HeritageValidation:   body.HeritageValidation,
			ReviewNotes:          body.ReviewNotes,
		}
		if body.Classification != nil {
			classification, err := models.ValidateClassification(*body.Classification)
			if presentError(ctx, c, err) {
				return
			}
			attrs.Classification = &classification
		}
		if body.Status != nil {
			status := models.ChurchStatusFrom(*body.Status)
			if status == models.ChurchUnknownStatus {
				c.Status(http.StatusBadRequest)
				return
			}
			attrs.Status = &status
		}

		church, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().ReviewHeritage(ctx, attrs)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": dto.AdaptChurchDto(church)})
	}
}

func handleUnpublishChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.UnpublishChurchBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		church, err := usecasesWithCreds(ctx, uc).NewChurchWorkflowUsecase().
			UnpublishChurch(ctx, churchId, body.Reason)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": dto.AdaptChurchDto(church)})
	}
}

func handleListPublishedChurches(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		churches, err := usecasesPublic(uc).NewChurchWorkflowUsecase().
			ListPublishedChurches(ctx, c.Query("diocese_id"), c.Query("municipality"))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"churches": pure_utils.Map(churches, dto.AdaptChurchDto)})
	}
}

func handleGetPublishedChurch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		church, err := usecasesPublic(uc).NewChurchWorkflowUsecase().GetChurchWithLogos(ctx, churchId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": dto.AdaptChurchWithLogosDto(church)})
	}
}

func handleUploadCoverPhoto(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		defer file.Close()

		key, err := usecasesWithCreds(ctx, uc).NewMediaUsecase().
			UploadCoverPhoto(ctx, churchId, fileHeader.Filename, file)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"cover_photo_key": key})
	}
}
