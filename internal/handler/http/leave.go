package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hr/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req, err := decideRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req, err := decideRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter leave.ListFilter

	if email := r.URL.Query().Get("email"); email != "" {
		filter.EmployeeEmail = &email
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	filter.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))

	result, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// decideRequest builds an approval or rejection request from the URL param
// and the authenticated admin's email claim.
func decideRequest(r *http.Request) (leave.DecideRequest, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return leave.DecideRequest{}, auth.ErrInvalidToken
	}
	decidedBy, ok := claims["email"].(string)
	if !ok || decidedBy == "" {
		return leave.DecideRequest{}, auth.ErrInvalidToken
	}

	return leave.DecideRequest{
		ID:        chi.URLParam(r, "id"),
		DecidedBy: decidedBy,
	}, nil
}
