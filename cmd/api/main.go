package main

import (
	"fmt"
	"net/http"

	"github.com/atlashr/atlashr-backend-go/internal/config"
	appHTTP "github.com/atlashr/atlashr-backend-go/internal/handler/http"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/database"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/jwt"
	"github.com/atlashr/atlashr-backend-go/internal/repository/postgresql"
	employeeService "github.com/atlashr/atlashr-backend-go/internal/service/employee"
	payrollService "github.com/atlashr/atlashr-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	elementRepo := postgresql.NewPayElementRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payslipRepo, elementRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, employeeHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
