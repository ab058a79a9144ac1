package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/handlers"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/infra/storage"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/service-booking/internal/usecase/catalog"
	ucReview "github.com/BruksfildServices01/service-booking/internal/usecase/review"
	ucUser "github.com/BruksfildServices01/service-booking/internal/usecase/user"
	"github.com/BruksfildServices01/service-booking/internal/validators"
)

// Store is satisfied by both the gorm store and the in-memory store.
type Store interface {
	user.Repository
	catalog.Repository
	booking.Repository
	review.Repository
	audit.Store
}

type Deps struct {
	Store   Store
	Cache   cache.Cache
	Objects storage.ObjectStore
	Audit   *audit.Dispatcher
	Tokens  *auth.Manager
	Limiter middleware.Limiter
	Log     *slog.Logger

	FrontendURL     string
	Timezone        string
	CacheTTL        time.Duration
	RateLimitWindow time.Duration
	UploadDir       string
	Health          map[string]handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	validators.Register()

	if d.Cache == nil {
		d.Cache = cache.NewNoop()
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.CORSMiddleware(d.FrontendURL))

	// ======================================================
	// USE CASES
	// ======================================================
	store := d.Store

	registerUC := ucUser.NewRegister(store, d.Tokens, d.Audit)
	loginUC := ucUser.NewLogin(store, d.Tokens)
	meUC := ucUser.NewGetMe(store)
	listUsersUC := ucUser.NewListUsers(store)
	updateRoleUC := ucUser.NewUpdateUserRole(store, d.Audit)
	deleteUserUC := ucUser.NewDeleteUser(store, d.Audit)

	listServicesUC := ucCatalog.NewListServices(store, d.Cache, d.CacheTTL)
	getServiceUC := ucCatalog.NewGetService(store)
	createServiceUC := ucCatalog.NewCreateService(store, d.Cache, d.Audit)
	updateServiceUC := ucCatalog.NewUpdateService(store, d.Cache, d.Audit)
	deleteServiceUC := ucCatalog.NewDeleteService(store, d.Cache, d.Audit)
	uploadImageUC := ucCatalog.NewUploadServiceImage(store, d.Objects, d.Cache, d.Audit)

	createBookingUC := ucBooking.NewCreateBooking(store, store, d.Audit, d.Timezone)
	myBookingsUC := ucBooking.NewListMyBookings(store)
	allBookingsUC := ucBooking.NewListAllBookings(store)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(store, store, d.Audit)
	deleteBookingUC := ucBooking.NewDeleteBooking(store, d.Audit)

	createReviewUC := ucReview.NewCreateReview(store, store, d.Cache, d.Audit)
	listReviewsUC := ucReview.NewListReviews(store)
	reviewByBookingUC := ucReview.NewGetReviewByBooking(store)
	deleteReviewUC := ucReview.NewDeleteReview(store, d.Cache, d.Audit)
	summaryUC := ucReview.NewRatingSummary(store, d.Cache, d.CacheTTL)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.Health)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, meUC)
	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		getServiceUC,
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		uploadImageUC,
	)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		myBookingsUC,
		allBookingsUC,
		updateStatusUC,
		deleteBookingUC,
	)
	reviewHandler := handlers.NewReviewHandler(
		createReviewUC,
		listReviewsUC,
		reviewByBookingUC,
		deleteReviewUC,
		summaryUC,
	)
	userHandler := handlers.NewUserHandler(listUsersUC, updateRoleUC, deleteUserUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.NewListLogs(store))

	authMW := middleware.AuthMiddleware(d.Tokens, store)
	admin := func(perm authz.Permission) gin.HandlerFunc {
		return middleware.RequirePermission(perm)
	}

	// ======================================================
	// STATIC
	// ======================================================
	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	api := r.Group("/api")

	// ======================================================
	// PUBLIC
	// ======================================================
	api.GET("/health", healthHandler.Health)

	authGroup := api.Group("/auth")
	{
		if d.Limiter != nil {
			limited := authGroup.Group("", middleware.RateLimit(d.Limiter, d.RateLimitWindow))
			limited.POST("/register", authHandler.Register)
			limited.POST("/login", authHandler.Login)
		} else {
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
		authGroup.GET("/me", authMW, authHandler.Me)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewHandler.List)
		reviews.GET("/summary", reviewHandler.Summary)
		reviews.POST("", authMW, reviewHandler.Create)
		reviews.GET("/booking/:bookingId", authMW, reviewHandler.ByBooking)
		reviews.DELETE("/:id", authMW, reviewHandler.Delete)
	}

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	services := api.Group("/services", authMW)
	{
		services.GET("", serviceHandler.List)
		services.GET("/slug/:slug", serviceHandler.GetBySlug)
		services.GET("/:id", serviceHandler.Get)
		services.POST("", admin(authz.ManageCatalog), serviceHandler.Create)
		services.PUT("/:id", admin(authz.ManageCatalog), serviceHandler.Update)
		services.DELETE("/:id", admin(authz.ManageCatalog), serviceHandler.Delete)
		services.POST("/:id/image", admin(authz.ManageCatalog), serviceHandler.UploadImage)
	}

	bookings := api.Group("/bookings", authMW)
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/my-bookings", bookingHandler.MyBookings)
		bookings.GET("/all", admin(authz.ViewAllBookings), bookingHandler.All)
		bookings.PUT("/:id/status", admin(authz.UpdateBookingStatus), bookingHandler.UpdateStatus)
		bookings.DELETE("/:id", admin(authz.DeleteBooking), bookingHandler.Delete)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	users := api.Group("/users", authMW, admin(authz.ManageUsers))
	{
		users.GET("/all", userHandler.List)
		users.PUT("/:id/role", userHandler.UpdateRole)
		users.DELETE("/:id", userHandler.Delete)
	}

	api.GET("/audit-logs", authMW, admin(authz.ViewAuditLogs), auditLogsHandler.List)
}
