package repositoryImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/people/repository"
)

type peopleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PeopleRepository { return &peopleRepo{db} }

func (r *peopleRepo) ListByRole(role string) ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Where("role = ?", role).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *peopleRepo) FindByIDRole(id, role string) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, "id = ? AND role = ?", id, role).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *peopleRepo) DeleteMember(id, role string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		switch role {
		case entities.RoleFarmer:
			if err := tx.Delete(&entities.FarmerAssignment{}, "farmer_id = ?", id).Error; err != nil {
				return err
			}
		case entities.RoleSubscriber:
			if err := tx.Delete(&entities.Subscription{}, "subscriber_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entities.User{}, "id = ? AND role = ?", id, role).Error
	})
}

func (r *peopleRepo) CreateAssignment(a *entities.FarmerAssignment) error {
	return r.db.Create(a).Error
}

func (r *peopleRepo) AssignmentExists(farmerID, plotID string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.FarmerAssignment{}).
		Where("farmer_id = ? AND plot_id = ?", farmerID, plotID).Count(&n).Error
	return n > 0, err
}

func (r *peopleRepo) ListAssignments(plotID string) ([]entities.FarmerAssignment, error) {
	q := r.db.Order("assigned_at ASC")
	if plotID != "" {
		q = q.Where("plot_id = ?", plotID)
	}
	var out []entities.FarmerAssignment
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *peopleRepo) FindAssignment(id string) (*entities.FarmerAssignment, error) {
	var a entities.FarmerAssignment
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *peopleRepo) DeleteAssignment(id string) error {
	return r.db.Delete(&entities.FarmerAssignment{}, "id = ?", id).Error
}

func (r *peopleRepo) CreateSubscription(s *entities.Subscription) error {
	return r.db.Create(s).Error
}

func (r *peopleRepo) SubscriptionExists(subscriberID, plotID string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Subscription{}).
		Where("subscriber_id = ? AND plot_id = ?", subscriberID, plotID).Count(&n).Error
	return n > 0, err
}

func (r *peopleRepo) ListSubscriptions(subscriberID, plotID string) ([]entities.Subscription, error) {
	q := r.db.Order("created_at ASC")
	if subscriberID != "" {
		q = q.Where("subscriber_id = ?", subscriberID)
	}
	if plotID != "" {
		q = q.Where("plot_id = ?", plotID)
	}
	var out []entities.Subscription
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *peopleRepo) FindSubscription(id string) (*entities.Subscription, error) {
	var s entities.Subscription
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *peopleRepo) DeleteSubscription(id string) error {
	return r.db.Delete(&entities.Subscription{}, "id = ?", id).Error
}
