package api

import (
	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases, auth Authentication) {
	r.GET("/liveness", handleLivenessProbe)
	r.GET("/metrics", handleMetrics())

	// Visitor-facing routes, no authentication.
	r.GET("/public/dioceses", handleListDioceses(uc))
	r.GET("/public/dioceses/:diocese_id", handleGetDiocese(uc))
	r.GET("/public/churches", handleListPublishedChurches(uc))
	r.GET("/public/churches/:church_id", handleGetPublishedChurch(uc))
	r.GET("/public/announcements", handleListPublicAnnouncements(uc))
	r.POST("/public/churches/:church_id/feedback", handleSubmitFeedback(uc))

	router := r.Group("/", auth.Middleware)

	router.GET("/churches", handleListChurches(uc))
	router.POST("/churches", handleCreateChurch(uc))
	router.GET("/churches/:church_id", handleGetChurch(uc))
	router.PATCH("/churches/:church_id", handleUpdateChurch(uc))
	router.POST("/churches/:church_id/staged-update", handleStagedUpdateChurch(uc))
	router.POST("/churches/:church_id/review", handleReviewChurch(uc))
	router.POST("/churches/:church_id/heritage-review", handleHeritageReviewChurch(uc))
	router.POST("/churches/:church_id/unpublish", handleUnpublishChurch(uc))
	router.POST("/churches/:church_id/cover-photo", handleUploadCoverPhoto(uc))

	router.GET("/churches/:church_id/scenes", handleListScenes(uc))
	router.POST("/churches/:church_id/scenes", handleAddScene(uc))
	router.POST("/churches/:church_id/scene-image", handleUploadSceneImage(uc))
	router.DELETE("/scenes/:scene_id", handleDeleteScene(uc))

	router.GET("/churches/:church_id/feedback", handleListFeedback(uc))
	router.PATCH("/churches/:church_id/feedback/:feedback_id", handleUpdateFeedbackStatus(uc))

	router.GET("/announcements", handleListAnnouncements(uc))
	router.POST("/announcements", handleCreateAnnouncement(uc))
	router.PATCH("/announcements/:announcement_id", handleUpdateAnnouncement(uc))
	router.DELETE("/announcements/:announcement_id", handleDeleteAnnouncement(uc))

	router.GET("/audit-log", handleListAuditLog(uc))
	router.GET("/audit-log/:entry_id", handleGetAuditLogEntry(uc))
}
