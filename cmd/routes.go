package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	"dmbookAdmin/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.logRequest, app.recoverPanic, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Estates
	mux.Get("/estate-with-owner/:estateId", standardMiddleware.ThenFunc(app.estateHandler.GetEstateWithOwner))
	mux.Get("/providers", standardMiddleware.ThenFunc(app.estateHandler.GetProviders))
	mux.Get("/new-estate", standardMiddleware.ThenFunc(app.estateHandler.GetNewEstates))
	mux.Put("/update-isaccepted/:category/:estateId", standardMiddleware.ThenFunc(app.estateHandler.UpdateIsAccepted))

	// Users
	mux.Get("/providers/:id", standardMiddleware.ThenFunc(app.userHandler.GetProviderProfile))
	mux.Get("/allusers", standardMiddleware.ThenFunc(app.userHandler.GetAllUsers))
	mux.Get("/user-with-bookings/:userId", standardMiddleware.ThenFunc(app.userHandler.GetUserWithBookings))
	mux.Get("/user", standardMiddleware.ThenFunc(app.userHandler.GetCustomers))
	mux.Get("/provider", standardMiddleware.ThenFunc(app.userHandler.GetProviderUsers))
	mux.Put("/update-user-type/:userId", standardMiddleware.ThenFunc(app.userHandler.UpdateUserType))

	// Bookings
	mux.Get("/estate-bookings-with-users/:estateId", standardMiddleware.ThenFunc(app.bookingHandler.GetEstateBookingsWithUsers))

	// Feedback
	mux.Post("/feedbacks/:feedbackId/comments", standardMiddleware.ThenFunc(app.feedbackHandler.AddComment))
	mux.Get("/feedbacks", standardMiddleware.ThenFunc(app.feedbackHandler.GetFeedbacks))
	mux.Get("/provider-feedback-to-customer", standardMiddleware.ThenFunc(app.feedbackHandler.GetProviderFeedback))

	// Posts
	mux.Get("/posts", standardMiddleware.ThenFunc(app.postHandler.GetPosts))
	mux.Get("/posts/:postId", standardMiddleware.ThenFunc(app.postHandler.GetPostByID))
	mux.Add("PATCH", "/posts/:postId/status", standardMiddleware.ThenFunc(app.postHandler.UpdatePostStatus))

	mux.NotFound = standardMiddleware.ThenFunc(handlers.NotFound)

	c := cors.New(cors.Options{
		AllowedOrigins:       app.corsOrigins,
		AllowedMethods:       []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusNoContent,
	})
	return c.Handler(mux)
}
