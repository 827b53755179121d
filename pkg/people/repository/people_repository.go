package repository

import "fms/entities"

type PeopleRepository interface {
	ListByRole(role string) ([]entities.User, error)
	FindByIDRole(id, role string) (*entities.User, error)
	// DeleteMember removes the account plus its assignments (farmer) or
	// subscriptions (subscriber) in one transaction.
	DeleteMember(id, role string) error

	CreateAssignment(a *entities.FarmerAssignment) error
	AssignmentExists(farmerID, plotID string) (bool, error)
	ListAssignments(plotID string) ([]entities.FarmerAssignment, error)
	FindAssignment(id string) (*entities.FarmerAssignment, error)
	DeleteAssignment(id string) error

	CreateSubscription(s *entities.Subscription) error
	SubscriptionExists(subscriberID, plotID string) (bool, error)
	ListSubscriptions(subscriberID, plotID string) ([]entities.Subscription, error)
	FindSubscription(id string) (*entities.Subscription, error)
	DeleteSubscription(id string) error
}
