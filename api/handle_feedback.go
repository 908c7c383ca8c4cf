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

func handleSubmitFeedback(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.CreateFeedbackBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		feedbackId, err := usecasesPublic(uc).NewFeedbackUsecase().SubmitFeedback(ctx,
			models.CreateFeedbackAttributes{
				ChurchId:     churchId,
				VisitorName:  body.VisitorName,
				VisitorEmail: body.VisitorEmail,
				Message:      body.Message,
				Rating:       body.Rating,
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": feedbackId})
	}
}

func handleListFeedback(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var statuses []models.FeedbackStatus
		for _, status := range c.QueryArray("status") {
			statuses = append(statuses, models.FeedbackStatus(status))
		}

		feedback, err := usecasesWithCreds(ctx, uc).NewFeedbackUsecase().ListFeedback(ctx, churchId, statuses)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedback": pure_utils.Map(feedback, dto.AdaptFeedbackDto)})
	}
}

func handleUpdateFeedbackStatus(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		feedbackId := c.Param("feedback_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}
		if err := utils.ValidateUuid(feedbackId); presentError(ctx, c, err) {
			return
		}

		var body dto.UpdateFeedbackStatusBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		if err := usecasesWithCreds(ctx, uc).NewFeedbackUsecase().
			UpdateFeedbackStatus(ctx, churchId, feedbackId, models.FeedbackStatus(body.Status)); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
