package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly-hr/attendly-backend-go/internal/config"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	appHTTP "github.com/attendly-hr/attendly-backend-go/internal/handler/http"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendly-hr/attendly-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly-hr/attendly-backend-go/internal/service/attendance"
	authService "github.com/attendly-hr/attendly-backend-go/internal/service/auth"
	calendarService "github.com/attendly-hr/attendly-backend-go/internal/service/calendar"
	employeeService "github.com/attendly-hr/attendly-backend-go/internal/service/employee"
	leaveService "github.com/attendly-hr/attendly-backend-go/internal/service/leave"
	payrollService "github.com/attendly-hr/attendly-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	calendarSvc := calendarService.NewCalendarService(calendarRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		calendarRepo,
		leaveRepo,
		employeeRepo,
		cfg.Attendance.DefaultWeekOffDay,
	)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		attendanceSvc,
		payroll.Policy{
			DeductAbsence:    cfg.Payroll.DeductAbsence,
			FirstAbsencePaid: cfg.Payroll.FirstAbsencePaid,
		},
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		calendarHandler,
		leaveHandler,
		payrollHandler,
	)

	addr := ":" + cfg.App.Port
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
