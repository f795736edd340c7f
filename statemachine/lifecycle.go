package statemachine

import (
	"errors"

	"hostel-management-api/models"
)

// The two document lifecycles in the system are tiny but the rules live here
// rather than inline in handlers so an invalid move is a 422 everywhere.

// requestTransitions: who may move a meal request between statuses
var requestTransitions = map[models.RequestStatus][]models.RequestStatus{
	models.RequestPending: {models.RequestServed},
}

// mealTransitions: catalog lifecycle for upcoming meals
var mealTransitions = map[models.MealStatus][]models.MealStatus{
	models.MealUpcoming: {models.MealPublished},
}

// CanServeRequest checks the request status transition
func CanServeRequest(from, to models.RequestStatus) error {
	for _, next := range requestTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New("invalid transition: a " + string(from) + " request cannot become " + string(to))
}

// CanPublishMeal checks the meal status transition
func CanPublishMeal(from, to models.MealStatus) error {
	for _, next := range mealTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New("invalid transition: a " + string(from) + " meal cannot become " + string(to))
}
