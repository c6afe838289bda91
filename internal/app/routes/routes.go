// Package routes wires controllers to URL paths
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/selim/lostfound/internal/app/controllers"
	"github.com/selim/lostfound/internal/middleware"
)

// Controllers bundles every controller the router needs.
type Controllers struct {
	Auth  *controllers.AuthController
	Item  *controllers.ItemController
	Claim *controllers.ClaimController
}

// SetupRoutes registers all application routes on the router.
func SetupRoutes(router *gin.Engine, ctrl Controllers, session *middleware.SessionMiddleware) {
	// Public catalog
	router.GET("/", ctrl.Item.ListItems)
	router.GET("/student_search_items", ctrl.Item.SearchItems)
	router.GET("/items/:id", ctrl.Item.GetItem)

	// Student accounts
	router.POST("/student_register", ctrl.Auth.RegisterStudent)
	router.POST("/student_login", ctrl.Auth.LoginStudent)
	router.POST("/student_alterpassword", ctrl.Auth.ChangePassword)
	router.GET("/student_logout", ctrl.Auth.LogoutStudent)

	student := router.Group("/", session.StudentRequired())
	{
		student.GET("/student_dashboard", ctrl.Auth.StudentDashboard)
		student.GET("/claim/:item_id", ctrl.Claim.ClaimForm)
		student.POST("/claim/:item_id", ctrl.Claim.SubmitClaim)
	}

	// Administrator accounts
	router.POST("/administrator_login", ctrl.Auth.LoginAdministrator)
	router.GET("/administrator_logout", ctrl.Auth.LogoutAdministrator)

	admin := router.Group("/", session.AdministratorRequired())
	{
		admin.GET("/administrator_dashboard", ctrl.Auth.AdministratorDashboard)
		admin.POST("/administrator_upload_items", ctrl.Item.UploadItem)
		admin.GET("/administrator_view_items", ctrl.Item.ViewItems)
		admin.GET("/administrator_items_detail/:id", ctrl.Item.ItemDetail)
		admin.POST("/administrator_delete_item/:id", ctrl.Item.DeleteItem)
		admin.GET("/administrator_view_claims", ctrl.Claim.ViewClaims)
		admin.GET("/administrator_review_claim_items/:claim_id", ctrl.Claim.ReviewClaimForm)
		admin.POST("/administrator_review_claim_items/:claim_id", ctrl.Claim.ReviewClaim)
	}
}
