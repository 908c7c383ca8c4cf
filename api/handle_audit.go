package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/dto"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/pure_utils"
	"github.com/keej24/visita-bohol-system-sub001/usecases"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

func handleListAuditLog(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		filters := models.AuditLogFilters{
			DioceseId:    c.Query("diocese_id"),
			ActorId:      c.Query("actor_id"),
			Action:       models.AuditAction(c.Query("action")),
			ResourceType: c.Query("resource_type"),
			ResourceId:   c.Query("resource_id"),
		}
		if from := c.Query("from"); from != "" {
			t, err := time.Parse(time.RFC3339, from)
			if err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			filters.From = &t
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse(time.RFC3339, to)
			if err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			filters.To = &t
		}

		limit, _ := strconv.Atoi(c.Query("limit"))

		entries, err := usecasesWithCreds(ctx, uc).NewAuditUsecase().
			ListAuditLog(ctx, filters, limit, c.Query("offset_id"))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": pure_utils.Map(entries, dto.AdaptAuditLogEntryDto)})
	}
}

func handleGetAuditLogEntry(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		entryId := c.Param("entry_id")
		if err := utils.ValidateUuid(entryId); presentError(ctx, c, err) {
			return
		}

		entry, err := usecasesWithCreds(ctx, uc).NewAuditUsecase().GetAuditLogEntry(ctx, entryId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"entry": dto.AdaptAuditLogEntryDto(entry)})
	}
}
