package routes

import (
	"fmt"

	"staffing-backoffice/internal/api/handlers"
	"staffing-backoffice/internal/api/middleware"
	"staffing-backoffice/internal/auth"
	"staffing-backoffice/internal/config"
	"staffing-backoffice/internal/repository"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/timeutil"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	zone, err := timeutil.NewZone(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load display timezone: %w", err)
	}
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(tokens)

	validator := service.NewValidator()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	clientTypeRepo := repository.NewClientTypeRepository(db)
	societyRepo := repository.NewSocietyRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	rosterRepo := repository.NewRosterRepository(db)
	visitRepo := repository.NewSiteVisitRepository(db)
	salaryRepo := repository.NewSalaryRecordRepository(db)
	ledgerRepo := repository.NewAdvanceTransactionRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	employeeService := service.NewEmployeeService(employeeRepo, activityService, validator)
	clientTypeService := service.NewClientTypeService(clientTypeRepo, activityService, validator)
	societyService := service.NewSocietyService(societyRepo, clientTypeRepo, activityService, validator)
	shiftService := service.NewShiftService(shiftRepo, activityService, validator)
	teamService := service.NewTeamService(teamRepo, employeeRepo, rosterRepo, transactor, activityService, validator)
	rosterService := service.NewRosterService(service.RosterDeps{
		Rosters:    rosterRepo,
		Employees:  employeeRepo,
		Societies:  societyRepo,
		Shifts:     shiftRepo,
		Teams:      teamRepo,
		Transactor: transactor,
		Activity:   activityService,
	}, validator, cfg.AllowRosterOverlap)
	visitService := service.NewVisitService(service.VisitDeps{
		Visits:     visitRepo,
		Employees:  employeeRepo,
		Societies:  societyRepo,
		Transactor: transactor,
		Activity:   activityService,
	}, validator, zone, cfg.MaxReportDays)
	advanceService := service.NewAdvanceService(service.AdvanceDeps{
		Salaries:   salaryRepo,
		Ledger:     ledgerRepo,
		Employees:  employeeRepo,
		Transactor: transactor,
		Activity:   activityService,
	}, validator)
	ticketService := service.NewTicketService(ticketRepo, societyRepo, activityService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	clientTypeHandler := handlers.NewClientTypeHandler(clientTypeService)
	societyHandler := handlers.NewSocietyHandler(societyService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	teamHandler := handlers.NewTeamHandler(teamService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	visitHandler := handlers.NewVisitHandler(visitService)
	advanceHandler := handlers.NewAdvanceHandler(advanceService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	activityHandler := handlers.NewActivityHandler(activityService)
	actionHandler := handlers.NewActionHandler(handlers.Handlers{
		Activity:   activityHandler,
		ClientType: clientTypeHandler,
		Ticket:     ticketHandler,
		Team:       teamHandler,
		Roster:     rosterHandler,
		Visit:      visitHandler,
		Advance:    advanceHandler,
	})

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	staff := auth.RequireRole(handlers.StaffRoles...)
	anyone := auth.RequireRole(handlers.AllRoles...)
	admin := auth.RequireRole(handlers.AdminRoles...)

	{
		// Roles are checked per action
		v1.GET("/actions", actionHandler.Dispatch)
		v1.POST("/actions", actionHandler.Dispatch)

		employees := v1.Group("/employees")
		{
			employees.GET("", anyone, employeeHandler.ListEmployees)
			employees.POST("", staff, employeeHandler.CreateEmployee)
			employees.GET("/:id", anyone, employeeHandler.GetEmployee)
			employees.PUT("/:id", staff, employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", staff, employeeHandler.DeleteEmployee)
			employees.GET("/:id/advances", staff, advanceHandler.Ledger)
			employees.GET("/:id/advances/outstanding", staff, advanceHandler.Outstanding)
		}

		clientTypes := v1.Group("/client-types")
		{
			clientTypes.GET("", anyone, clientTypeHandler.ListClientTypes)
			clientTypes.POST("", staff, clientTypeHandler.CreateClientType)
			clientTypes.POST("/manage", staff, clientTypeHandler.ManageClientType)
			clientTypes.GET("/:id", anyone, clientTypeHandler.GetClientType)
			clientTypes.PUT("/:id", staff, clientTypeHandler.UpdateClientType)
			clientTypes.DELETE("/:id", staff, clientTypeHandler.DeleteClientType)
		}

		societies := v1.Group("/societies")
		{
			societies.GET("", anyone, societyHandler.ListSocieties)
			societies.POST("", staff, societyHandler.CreateSociety)
			societies.GET("/:id", anyone, societyHandler.GetSociety)
			societies.PUT("/:id", staff, societyHandler.UpdateSociety)
			societies.DELETE("/:id", staff, societyHandler.DeleteSociety)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.GET("", anyone, shiftHandler.ListShifts)
			shifts.POST("", staff, shiftHandler.CreateShift)
			shifts.GET("/:id", anyone, shiftHandler.GetShift)
			shifts.PUT("/:id", staff, shiftHandler.UpdateShift)
			shifts.DELETE("/:id", staff, shiftHandler.DeleteShift)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", anyone, teamHandler.ListTeams)
			teams.POST("", staff, teamHandler.CreateTeam)
			teams.GET("/:id", anyone, teamHandler.GetTeam)
			teams.PUT("/:id", staff, teamHandler.UpdateTeam)
			teams.DELETE("/:id", staff, teamHandler.DeleteTeam)
		}

		rosters := v1.Group("/rosters")
		{
			rosters.GET("", anyone, rosterHandler.ListRosters)
			rosters.POST("", staff, rosterHandler.AssignRoster)
			rosters.POST("/bulk", staff, rosterHandler.BulkAssignRoster)
			rosters.GET("/export", staff, rosterHandler.ExportRosters)
			rosters.GET("/:id", anyone, rosterHandler.GetRoster)
			rosters.PUT("/:id", staff, rosterHandler.UpdateRoster)
			rosters.DELETE("/:id", staff, rosterHandler.DeleteRoster)
		}

		// Supervisors are limited to their own visits by the handler
		visits := v1.Group("/visits", anyone)
		{
			visits.GET("", visitHandler.ListVisits)
			visits.POST("/checkin", visitHandler.CheckIn)
			visits.POST("/checkout", visitHandler.CheckOut)
			visits.GET("/performance", visitHandler.Performance)
			visits.GET("/performance/export", visitHandler.ExportPerformance)
		}

		salaryRecords := v1.Group("/salary-records", staff)
		{
			salaryRecords.POST("", advanceHandler.CreateSalaryRecord)
			salaryRecords.GET("/balances", advanceHandler.ListBalances)
			salaryRecords.GET("/:id/balance", advanceHandler.CheckBalance)
			salaryRecords.POST("/:id/fix", advanceHandler.FixBalance)
		}

		advances := v1.Group("/advances", staff)
		{
			advances.POST("", advanceHandler.RecordAdvance)
			advances.POST("/deductions", advanceHandler.RecordDeduction)
		}

		tickets := v1.Group("/tickets")
		{
			tickets.GET("", anyone, ticketHandler.ListTickets)
			tickets.POST("", anyone, ticketHandler.CreateTicket)
			tickets.GET("/:id", anyone, ticketHandler.GetTicket)
			tickets.PUT("/:id/status", staff, ticketHandler.UpdateTicketStatus)
		}

		activities := v1.Group("/activities")
		{
			activities.GET("", staff, activityHandler.ListActivities)
			activities.DELETE("/:id", admin, activityHandler.DeleteActivity)
		}
	}

	return router, nil
}
