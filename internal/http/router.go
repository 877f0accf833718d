package http

import (
	"net/http"

	"github.com/jaekwang-park/compliance-api/internal/http/handler"
	"github.com/jaekwang-park/compliance-api/internal/service"
)

func NewRouter(checklistSvc *service.ChecklistService, itemSvc *service.ItemService, authSvc *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	// Health check - intentionally outside /api/v1 for ALB health check compatibility
	health := handler.NewHealthHandler()
	mux.Handle("/health", health)

	// Cognito auth endpoints are only mounted when the client is configured
	if authSvc != nil {
		authHandler := handler.NewAuthHandler(authSvc)
		mux.Handle("/api/v1/auth/", authHandler)
	}

	// Checklist CRUD API plus items and stats sub-resources
	checklistHandler := handler.NewChecklistHandler(checklistSvc, itemSvc)
	mux.Handle("/api/v1/checklists", checklistHandler)
	mux.Handle("/api/v1/checklists/", checklistHandler)

	// Item CRUD API and completion endpoint
	itemHandler := handler.NewItemHandler(itemSvc)
	mux.Handle("/api/v1/items/", itemHandler)

	// Per-user dashboard stats
	mux.Handle("/api/v1/stats", handler.NewStatsHandler(checklistSvc))

	return mux
}
