package http

import (
	"log/slog"
	"os"

	"github.com/atlashr/atlashr-backend-go/internal/handler/http/middleware"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(JWTService jwt.Service, employeeHandler EmployeeHandler, payrollHandler PayrollHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "atlashr"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{employeeId}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Route("/elements", func(r chi.Router) {
						r.Get("/", payrollHandler.ListEmployeeElements)
						r.Post("/", payrollHandler.CreateElement)
					})
					r.Get("/payslips", payrollHandler.ListPayslips)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/payslips/generate", payrollHandler.GeneratePayslip)
				r.Get("/payslips/{id}", payrollHandler.GetPayslip)
				r.Get("/payslips/{id}/document", payrollHandler.DownloadPayslip)
				r.Put("/elements/{id}/amount", payrollHandler.UpdateElementAmount)
			})
		})
	})
	return r
}
