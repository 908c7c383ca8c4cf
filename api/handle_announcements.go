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

func handleListAnnouncements(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		filters := models.AnnouncementFilters{
			DioceseId:     c.Query("diocese_id"),
			PublishedOnly: c.Query("published_only") == "true",
		}
		announcements, err := usecasesWithCreds(ctx, uc).NewAnnouncementUsecase().ListAnnouncements(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"announcements": pure_utils.Map(announcements, dto.AdaptAnnouncementDto)})
	}
}

func handleListPublicAnnouncements(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		announcements, err := usecasesPublic(uc).NewAnnouncementUsecase().
			ListAnnouncements(ctx, models.AnnouncementFilters{DioceseId: c.Query("diocese_id")})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"announcements": pure_utils.Map(announcements, dto.AdaptAnnouncementDto)})
	}
}

func handleCreateAnnouncement(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateAnnouncementBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		announcement, err := usecasesWithCreds(ctx, uc).NewAnnouncementUsecase().
			CreateAnnouncement(ctx, models.CreateAnnouncementAttributes{
				DioceseId: body.DioceseId,
				Title:     body.Title,
				Body:      body.Body,
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"announcement": dto.AdaptAnnouncementDto(announcement)})
	}
}

func handleUpdateAnnouncement(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		announcementId := c.Param("announcement_id")
		if err := utils.ValidateUuid(announcementId); presentError(ctx, c, err) {
			return
		}

		var body dto.UpdateAnnouncementBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		announcement, err := usecasesWithCreds(ctx, uc).NewAnnouncementUsecase().
			UpdateAnnouncement(ctx, dto.AdaptUpdateAnnouncementAttributes(announcementId, body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"announcement": dto.AdaptAnnouncementDto(announcement)})
	}
}

func handleDeleteAnnouncement(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		announcementId := c.Param("announcement_id")
		if err := utils.ValidateUuid(announcementId); presentError(ctx, c, err) {
			return
		}

		if err := usecasesWithCreds(ctx, uc).NewAnnouncementUsecase().
			DeleteAnnouncement(ctx, announcementId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
