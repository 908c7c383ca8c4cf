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

func handleListScenes(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		scenes, err := usecasesWithCreds(ctx, uc).NewSceneUsecase().ListScenes(ctx, churchId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"scenes": pure_utils.Map(scenes, dto.AdaptSceneDto)})
	}
}

func handleAddScene(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		churchId := c.Param("church_id")
		if err := utils.ValidateUuid(churchId); presentError(ctx, c, err) {
			return
		}

		var body dto.CreateSceneBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		scene, err := usecasesWithCreds(ctx, uc).NewSceneUsecase().AddScene(ctx,
			models.CreateSceneAttributes{
				ChurchId: churchId,
				Title:    body.Title,
				ImageKey: body.ImageKey,
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"scene": dto.AdaptSceneDto(scene)})
	}
}

func handleUploadSceneImage(uc usecases.Usecases) gin.HandlerFunc {
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
			UploadSceneImage(ctx, churchId, fileHeader.Filename, file)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"image_key": key})
	}
}

func handleDeleteScene(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sceneId := c.Param("scene_id")
		if err := utils.ValidateUuid(sceneId); presentError(ctx, c, err) {
			return
		}

		if err := usecasesWithCreds(ctx, uc).NewSceneUsecase().DeleteScene(ctx, sceneId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
