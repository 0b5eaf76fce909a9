package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	GetMonthSummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *AttendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

func (h *AttendanceHandlerImpl) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	req := attendance.MonthSummaryRequest{
		EmployeeEmail: r.URL.Query().Get("email"),
		TillToday:     r.URL.Query().Get("till_today") != "false",
	}
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetMonthSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
