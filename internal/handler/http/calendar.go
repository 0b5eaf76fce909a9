package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/calendar"
	"github.com/attendly-hr/attendly-backend-go/internal/handler/http/response"
)

var (
	errInvalidYear  = errors.New("year must be a number")
	errInvalidMonth = errors.New("month must be between 1 and 12")
)

type CalendarHandler interface {
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateWeekOff(w http.ResponseWriter, r *http.Request)
	ListWeekOffs(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

func (h *CalendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calendarService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

func (h *CalendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, svcErr := h.calendarService.ListHolidays(r.Context(), year, month)
	if svcErr != nil {
		response.HandleError(w, svcErr)
		return
	}

	response.Success(w, result)
}

func (h *CalendarHandlerImpl) CreateWeekOff(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateWeekOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calendarService.CreateWeekOff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Week off created", result)
}

func (h *CalendarHandlerImpl) ListWeekOffs(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, svcErr := h.calendarService.ListWeekOffs(r.Context(), r.URL.Query().Get("email"), year, month)
	if svcErr != nil {
		response.HandleError(w, svcErr)
		return
	}

	response.Success(w, result)
}

func monthQuery(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, errInvalidYear
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errInvalidMonth
	}
	return year, time.Month(month), nil
}
