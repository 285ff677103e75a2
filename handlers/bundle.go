package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler so route registration can
// receive one assembled value from main.
type HandlerBundle struct {
	// Calendar endpoints.
	GetAvailabilityHandler  gin.HandlerFunc
	SaveAvailabilityHandler gin.HandlerFunc
	GenerateMockHandler     gin.HandlerFunc
	SyncCalendarHandler     gin.HandlerFunc
	FindBestTimesHandler    gin.HandlerFunc

	// Group endpoints.
	CreateGroupHandler        gin.HandlerFunc
	GetGroupHandler           gin.HandlerFunc
	GetGroupsByUserHandler    gin.HandlerFunc
	AddGroupMemberHandler     gin.HandlerFunc
	CalculateBestTimesHandler gin.HandlerFunc
	VoteHandler               gin.HandlerFunc

	// User endpoints.
	CreateUserHandler     gin.HandlerFunc
	GetUserByIDHandler    gin.HandlerFunc
	GetUserByEmailHandler gin.HandlerFunc
	UpdateUserHandler     gin.HandlerFunc
}
