package handlers

import (
	"net/http"

	"github.com/pixperk/pocketmind-server/internal/middleware"
	"github.com/pixperk/pocketmind-server/internal/models"
	"github.com/pixperk/pocketmind-server/internal/services"
	"github.com/pixperk/pocketmind-server/internal/utils"
	"github.com/pixperk/pocketmind-server/pkg/validator"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct {
	plannerService *services.PlannerService
}

func NewPlannerHandler(plannerService *services.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

func (h *PlannerHandler) CreateTask(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	task, err := h.plannerService.CreateTask(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "task created", task)
}

func (h *PlannerHandler) GetTasks(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	tasks, pagination, err := h.plannerService.GetTasks(userID, req.Page, req.PageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"tasks":      tasks,
		"pagination": pagination,
	})
}

func (h *PlannerHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		utils.Error(c, http.StatusBadRequest, "task id is required")
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	task, err := h.plannerService.UpdateTask(taskID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "task updated", task)
}

func (h *PlannerHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		utils.Error(c, http.StatusBadRequest, "task id is required")
		return
	}

	if err := h.plannerService.DeleteTask(taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "task deleted", nil)
}
