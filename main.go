package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/karimhelal/Portfolio/internal/githubstats"
)

func main() {
	if err := initDB(); err != nil {
		log.Fatal("Failed to open database:", err)
	}
	initAdminToken()
	initVisitorTracking()

	statsLogger := log.New(os.Stderr, "", log.LstdFlags)
	owner := getenvDefault("GITHUB_OWNER", GitHubOwner)
	fetcher, err := githubstats.NewGitHubFetcher(os.Getenv("GITHUB_TOKEN"), statsLogger)
	if err != nil {
		log.Fatal("Failed to create GitHub fetcher:", err)
	}
	stats := githubstats.NewService(fetcher, owner, GitHubRepos, statsLogger)

	r := newRouter(stats, newMailerFromEnv())

	port := getenvDefault("PORT", "8080")
	r.Run(":" + port)
}

// newRouter builds the gin engine with all routes wired. Split out from
// main so handler tests can run against the same routing.
func newRouter(stats *githubstats.Service, mailer Mailer) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent":      AboutMe,
			"projectOneContent":   ProjectOne,
			"projectTwoContent":   ProjectTwo,
			"projectThreeContent": ProjectThree,
			"projectFourContent":  ProjectFour,
		})
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Work experience content
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", gin.H{
			"jobTitle":  "Software Engineer",
			"company":   "Northwind Labs",
			"startDate": "Jun 2023",
			"endDate":   "Present",
			"logoPath":  "images/northwind-logo.png",
			"bulletPoints": []string{
				"Built and maintain Go microservices handling ingestion of third-party developer activity data",
				"Cut p95 API latency by 40% by introducing response caching and tightening N+1 query paths",
				"Own the team's observability setup, from structured logging conventions to on-call dashboards",
			},
			"jobTitle2":  "Web Developer (Intern)",
			"company2":   "Brightside Studio",
			"startDate2": "May 2022",
			"endDate2":   "Aug 2022",
			"logoPath2":  "images/brightside-logo.png",
			"bulletPoints2": []string{
				"Shipped marketing pages and interactive components for client sites on short deadlines",
				"Introduced visual regression checks that caught layout breakage before releases",
			},
		})
	})

	// Education content
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", gin.H{
			"degree":      "Bachelor of Science, Computer Science",
			"institution": "University of Toronto",
			"startDate":   "Sept 2019",
			"endDate":     "May 2023",
			"logoPath":    "images/uoft-logo.png",
			"bulletPoints": []string{
				"Specialized in distributed systems and computer networks",
				"Teaching assistant for the second-year data structures course",
			},
		})
	})

	// HTMX repository stats fragment - stars/forks per project plus totals
	r.GET("/repo-stats", func(c *gin.Context) {
		summaries := stats.GetStats(c.Request.Context())
		totals := githubstats.Totals(summaries)
		c.HTML(http.StatusOK, "repo-stats.html", gin.H{
			"repos":      summaries,
			"totalStars": totals.Stars,
			"totalForks": totals.Forks,
			"hasStats":   len(summaries) > 0,
		})
	})

	// JSON variant of the repository stats for client-side consumers
	r.GET("/api/stats", func(c *gin.Context) {
		summaries := stats.GetStats(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"repos":  summaries,
			"totals": githubstats.Totals(summaries),
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		var form ContactForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please fill in every field, with a valid email address and a message of at least ten characters.",
			})
			return
		}

		if err := mailer.Send(form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	setupAdminRoutes(r, stats)

	return r
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
