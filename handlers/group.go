package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"synkt/services/group"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GroupHandler exposes group and voting endpoints.
type GroupHandler struct {
	Service group.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc group.GroupService) *GroupHandler {
	return &GroupHandler{Service: svc}
}

// groupErrorStatus maps service errors to HTTP status codes.
func groupErrorStatus(err error) int {
	switch {
	case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, group.ErrProposedTimeNotFound):
		return http.StatusNotFound
	case errors.Is(err, group.ErrInvalidVote), errors.Is(err, group.ErrGroupFull), errors.Is(err, group.ErrAlreadyMember):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateGroupHandler creates a new group.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		Name      string   `json:"name" binding:"required"`
		CreatedBy string   `json:"createdBy" binding:"required"`
		MemberIDs []string `json:"memberIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	grp, err := h.Service.Create(input.Name, input.CreatedBy, input.MemberIDs)
	if err != nil {
		logger.Error("Failed to create group", zap.Error(err))
		c.JSON(groupErrorStatus(err), gin.H{"error": "Failed to create group"})
		return
	}
	c.JSON(http.StatusCreated, grp)
}

// GetGroupHandler returns a group by id.
func (h *GroupHandler) GetGroupHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	grp, err := h.Service.GetByID(id)
	if err != nil {
		status := groupErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to fetch group", zap.String("id", id), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": "Group not found"})
		return
	}
	c.JSON(http.StatusOK, grp)
}

// GetGroupsByUserHandler returns all groups a user belongs to.
func (h *GroupHandler) GetGroupsByUserHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	groups, err := h.Service.GetByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch groups", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// AddGroupMemberHandler adds a member to a group.
func (h *GroupHandler) AddGroupMemberHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	grp, err := h.Service.AddMember(id, input.UserID)
	if err != nil {
		status := groupErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to add member", zap.String("groupId", id), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grp)
}

// CalculateBestTimesHandler recomputes and stores a group's proposed
// meeting times.
func (h *GroupHandler) CalculateBestTimesHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	days := 0
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	grp, err := h.Service.CalculateBestTimes(id, days)
	if err != nil {
		status := groupErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to calculate best times", zap.String("groupId", id), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grp)
}

// VoteHandler records a member's vote on a proposed time.
func (h *GroupHandler) VoteHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		UserID    string `json:"userId" binding:"required"`
		TimeIndex *int   `json:"timeIndex" binding:"required"`
		Vote      string `json:"vote" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	grp, err := h.Service.Vote(id, input.UserID, *input.TimeIndex, input.Vote)
	if err != nil {
		status := groupErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to record vote", zap.String("groupId", id), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grp)
}
