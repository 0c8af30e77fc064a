package router

import (
	"careerPlatform/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCareerRoutes(api *echo.Group, handler *rest.CareerHandler) {
	api.GET("/careers", handler.GetCareers)
	api.GET("/roadmap/:career_id", handler.GetRoadmap)
	api.GET("/learning-path/:career_id", handler.GetLearningPath)
}

func SetupAssessmentRoutes(api *echo.Group, handler *rest.AssessmentHandler) {
	api.GET("/assessment/questions", handler.GetQuestions)
	api.POST("/assess-career", handler.AssessCareer)
}

func SetupCourseRoutes(api *echo.Group, courses *rest.CourseHandler, recommend *rest.RecommendHandler) {
	grp := api.Group("/courses")

	grp.GET("/career/:career_id", courses.GetCoursesByCareer)
	grp.GET("/filter", courses.FilterCourses)
	grp.GET("/trending", recommend.TrendingCourses)
	grp.GET("/similar/:course_id", recommend.SimilarCourses)
	grp.POST("/skills", recommend.CoursesBySkills)
	grp.POST("/personalized", recommend.PersonalizedCourses)
	grp.POST("/feedback", recommend.Feedback)
	grp.GET("/:course_id", courses.GetCourseByID)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, authRequired echo.MiddlewareFunc) {
	admin := api.Group("/admin/recommender", authRequired)

	admin.GET("/stats", handler.GetStats)
	admin.GET("/debug", handler.DebugQuery)
}
