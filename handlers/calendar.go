package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"synkt/config"
	"synkt/cron"
	"synkt/models"
	"synkt/services/calendar"
	"synkt/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// CalendarHandler exposes availability and best-times endpoints.
type CalendarHandler struct {
	Service calendar.CalendarService
	Engine  scheduling.Engine
	Cache   *redis.Client
	Tasks   *asynq.Client
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc calendar.CalendarService, engine scheduling.Engine, cache *redis.Client, tasks *asynq.Client) *CalendarHandler {
	return &CalendarHandler{Service: svc, Engine: engine, Cache: cache, Tasks: tasks}
}

// parseDate accepts RFC3339 timestamps or plain "2006-01-02" dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// GetAvailabilityHandler returns a user's availability records for a
// date range.
func (h *CalendarHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing startDate"})
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing endDate"})
		return
	}

	records, err := h.Service.GetAvailability(userID, start, end)
	if err != nil {
		logger.Error("Failed to fetch availability", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// SaveAvailabilityHandler upserts busy blocks for one calendar day.
func (h *CalendarHandler) SaveAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	var input struct {
		Day        time.Time          `json:"day" binding:"required"`
		BusyBlocks []models.TimeBlock `json:"busyBlocks"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Service.SaveAvailability(userID, input.Day, input.BusyBlocks)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidTimeBlock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save availability", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save availability"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GenerateMockHandler seeds mock busy data for a user.
func (h *CalendarHandler) GenerateMockHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	days := 7
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	records, err := h.Service.GenerateMockAvailability(userID, days)
	if err != nil {
		logger.Error("Failed to generate mock availability", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate mock availability"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"availability": records})
}

// SyncCalendarHandler queues a background calendar sync for the user.
func (h *CalendarHandler) SyncCalendarHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	task, err := cron.NewSyncTask(userID)
	if err != nil {
		logger.Error("Failed to build sync task", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue calendar sync"})
		return
	}
	if _, err := h.Tasks.Enqueue(task); err != nil {
		logger.Error("Failed to enqueue sync task", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue calendar sync"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "userId": userID})
}

// FindBestTimesHandler runs the matching engine for an ad-hoc set of
// users. Responses are cached briefly in Redis keyed by the raw query,
// since identical inputs over unchanged data are deterministic.
func (h *CalendarHandler) FindBestTimesHandler(c *gin.Context) {
	logger := getLogger(c)

	rawIDs := c.Query("userIds")
	if rawIDs == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userIds is required"})
		return
	}
	var userIDs []string
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}

	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing startDate"})
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing endDate"})
		return
	}

	duration := config.AppConfig.DefaultDurationMinutes
	if duration == 0 {
		duration = 60
	}
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer number of minutes"})
			return
		}
		duration = parsed
	}

	ctx := context.Background()
	cacheKey := "best-times:" + c.Request.URL.RawQuery
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	result, err := h.Engine.FindBestTimes(userIDs, start, end, duration)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find best times", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find best times"})
		return
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			ttl := time.Duration(config.AppConfig.BestTimesCacheTTLSeconds) * time.Second
			if ttl <= 0 {
				ttl = time.Minute
			}
			if err := h.Cache.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				logger.Warn("Failed to cache best-times response", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, result)
}
