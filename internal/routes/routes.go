package routes

import (
	"net/http"

	"github.com/Abhinay9346/portfolio/assets"
	"github.com/Abhinay9346/portfolio/internal/app"
	"github.com/Abhinay9346/portfolio/internal/handler"
	"github.com/Abhinay9346/portfolio/internal/middleware"
)

// SetupRoutes returns the site handler and the contact rate limiter, which the
// caller stops on shutdown.
func SetupRoutes(app *app.App) (http.Handler, *middleware.RateLimiter) {
	home := handler.NewHomeHandler(app.PortfolioService, app.BlogService)
	blog := handler.NewBlogHandler(app.BlogService)
	seo := handler.NewSEOHandler(app.BlogService, app.Cfg.AppURL)
	contact := handler.NewContactHandler(app.ContactService, app.PortfolioService, app.BlogService)
	resume := handler.NewResumeHandler(app.ResumeService)

	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(assets.AssetsFS)))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Pages
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /resume", resume.Download)

	// Blog
	mux.HandleFunc("GET /blog", blog.ListPosts)
	mux.HandleFunc("GET /blog/{slug}", blog.ShowPost)
	mux.HandleFunc("GET /blog/tag/{tag}", blog.ListByTag)

	// Contact (rate limited per IP)
	contactLimiter := middleware.NewRateLimiter(app.Cfg.ContactRateLimit, app.Cfg.ContactRateWindow)
	mux.HandleFunc("POST /contact", middleware.RateLimit(contactLimiter)(contact.Submit))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware, executed top to bottom
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // first: CSRF and SecurityHeaders read it
		middleware.Nonce,           // before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.WithURLPath,
	)

	return h, contactLimiter
}
