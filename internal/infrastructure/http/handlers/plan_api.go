// Package handlers provides HTTP handlers for the plan generation API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/ports/inbound"
	apperrors "github.com/nutriforge/v1/pkg/errors"
	"go.uber.org/zap"
)

// PlanAPIHandlers handles plan generation API requests
type PlanAPIHandlers struct {
	planService inbound.PlanService
	logger      *zap.Logger
}

// NewPlanAPIHandlers creates a new plan API handlers instance
func NewPlanAPIHandlers(planService inbound.PlanService, logger *zap.Logger) *PlanAPIHandlers {
	return &PlanAPIHandlers{
		planService: planService,
		logger:      logger,
	}
}

// APIResponse is the uniform response envelope
type APIResponse struct {
	Success  bool                    `json:"success"`
	Data     interface{}             `json:"data,omitempty"`
	Error    *apperrors.ErrorDetails `json:"error,omitempty"`
	Metadata interface{}             `json:"metadata,omitempty"`
}

// GenerateDietPlan handles POST /api/v1/plans/diet
func (h *PlanAPIHandlers) GenerateDietPlan(w http.ResponseWriter, r *http.Request) {
	var req inbound.GenerateDietPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("Invalid JSON payload"))
		return
	}
	if req.PlanDay == "" {
		h.writeError(w, r, apperrors.NewBadRequestError("plan_day is required"))
		return
	}

	h.logger.Info("Diet plan generation request",
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		zap.String("user_id", req.Profile.UserID),
		zap.String("diet_type", string(req.Preferences.DietType)),
		zap.String("plan_day", req.PlanDay),
	)

	resp, err := h.planService.GenerateDietPlan(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success:  true,
		Data:     resp.Plan,
		Metadata: resp.Metadata,
	})
}

// GenerateWorkoutPlan handles POST /api/v1/plans/workout
func (h *PlanAPIHandlers) GenerateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	var req inbound.GenerateWorkoutPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("Invalid JSON payload"))
		return
	}
	if req.PlanDay == "" {
		h.writeError(w, r, apperrors.NewBadRequestError("plan_day is required"))
		return
	}
	if req.WorkoutType == "" {
		h.writeError(w, r, apperrors.NewBadRequestError("workout_type is required"))
		return
	}

	h.logger.Info("Workout plan generation request",
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		zap.String("user_id", req.Profile.UserID),
		zap.String("workout_type", req.WorkoutType),
		zap.String("plan_day", req.PlanDay),
	)

	resp, err := h.planService.GenerateWorkoutPlan(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success:  true,
		Data:     resp.Plan,
		Metadata: resp.Metadata,
	})
}

// writeError maps pipeline errors onto the response envelope. Validation
// rejections surface the complete issue list so the caller sees every
// problem, not just the first.
func (h *PlanAPIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := chimiddleware.GetReqID(r.Context())

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		appErr := apperrors.NewPlanValidationError(vErr.Result.Errors).
			WithMetadata("warnings", vErr.Result.Warnings)
		h.logger.Warn("Plan rejected by validation",
			zap.String("request_id", requestID),
			zap.Int("blocking_issues", len(vErr.Result.Errors)),
		)
		h.writeAppError(w, requestID, appErr)
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			h.logger.Error("Plan generation failed", zap.String("request_id", requestID), zap.Error(err))
		}
		h.writeAppError(w, requestID, appErr)
		return
	}

	h.logger.Error("Unexpected plan generation error", zap.String("request_id", requestID), zap.Error(err))
	h.writeAppError(w, requestID, apperrors.NewInternalError(""))
}

func (h *PlanAPIHandlers) writeAppError(w http.ResponseWriter, requestID string, appErr *apperrors.AppError) {
	details := apperrors.ToErrorResponse(appErr, requestID).Error
	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   &details,
	})
}

func (h *PlanAPIHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
