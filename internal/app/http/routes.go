package routes

import (
	adminapi "toadtoe-api/internal/api/admin"
	articlesapi "toadtoe-api/internal/api/articles"
	authapi "toadtoe-api/internal/api/auth"
	bannersapi "toadtoe-api/internal/api/banners"
	"toadtoe-api/internal/api/billing"
	marketapi "toadtoe-api/internal/api/market"
	mediaapi "toadtoe-api/internal/api/media"
	stripewebhooks "toadtoe-api/internal/api/stripewebhook"
	"toadtoe-api/internal/app/http/middleware"
	"toadtoe-api/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads. OptionalAuth lets the paywall tell anonymous visitors
	// from signed-in readers.
	public := r.Group("/")
	public.Use(middleware.OptionalAuth())
	public.GET("/sections", articlesapi.ListSections)
	public.GET("/articles", articlesapi.ListArticles)
	public.GET("/articles/:slug", articlesapi.GetArticleBySlug)
	public.GET("/banners", bannersapi.GetBannersForPlacement)
	public.POST("/market/quote", marketapi.Quote)

	// Public writes get input sanitization.
	signup := r.Group("/")
	signup.Use(middleware.SanitizeAndCleanInputMiddleware())
	signup.POST("/register", authapi.Register)
	signup.POST("/login", authapi.Login)
	signup.GET("/verify", authapi.VerifyEmail)
	signup.POST("/resend-verification", authapi.ResendVerification)
	signup.POST("/request-password-reset", authapi.RequestPasswordReset)
	signup.POST("/reset-password", authapi.ResetPassword)

	signup.GET("/auth/google", authapi.GoogleStart)
	signup.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated readers
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/change-password", authapi.ChangePassword)
	auth.POST("/articles/:slug/like", articlesapi.ToggleLike)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/billing/checkout", billing.CreateCheckoutSession)

	// Reporter dashboard: reachable with reporter or admin.
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.OptionalAuth(), middleware.RequireAnyRole(access.RoleReporter, access.RoleAdmin))
	dashboard.GET("/articles", articlesapi.ListDashboardArticles)
	dashboard.POST("/articles", articlesapi.CreateArticle)
	dashboard.PUT("/articles/:id", articlesapi.UpdateArticle)
	dashboard.DELETE("/articles/:id", articlesapi.DeleteArticle)
	dashboard.POST("/uploads", mediaapi.Upload)

	// Admin-only management tabs.
	admin := r.Group("/admin")
	admin.Use(middleware.OptionalAuth(), middleware.RequireAnyRole(access.RoleAdmin))
	admin.GET("/users", adminapi.ListUsersWithRoles)
	admin.POST("/user-details", adminapi.GetUserDetails)
	admin.POST("/users/:id/roles", adminapi.GrantRole)
	admin.DELETE("/users/:id/roles/:role", adminapi.RevokeRole)

	admin.GET("/banners", adminapi.ListBanners)
	admin.POST("/banners", adminapi.CreateBanner)
	admin.PUT("/banners/:id", adminapi.UpdateBanner)
	admin.DELETE("/banners/:id", adminapi.DeleteBanner)

	admin.GET("/email-templates", adminapi.ListEmailTemplates)
	admin.PUT("/email-templates/:key", adminapi.UpdateEmailTemplate)
	admin.POST("/email-templates/:key/test", adminapi.SendTestEmail)
	admin.POST("/send-introduction", adminapi.SendIntroductionEmail)
}
