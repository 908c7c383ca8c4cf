package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/dto"
	"github.com/keej24/visita-bohol-system-sub001/pure_utils"
	"github.com/keej24/visita-bohol-system-sub001/usecases"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

func handleListDioceses(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		dioceses, err := usecasesPublic(uc).NewDioceseUsecase().ListDioceses(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"dioceses": pure_utils.Map(dioceses, dto.AdaptDioceseDto)})
	}
}

func handleGetDiocese(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		dioceseId := c.Param("diocese_id")
		if err := utils.ValidateUuid(dioceseId); presentError(ctx, c, err) {
			return
		}

		diocese, err := usecasesPublic(uc).NewDioceseUsecase().GetDiocese(ctx, dioceseId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"diocese": dto.AdaptDioceseDto(diocese)})
	}
}
