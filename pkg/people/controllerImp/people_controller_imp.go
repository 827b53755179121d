package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/entities"
	authsvc "fms/pkg/auth/service"
	"fms/pkg/middleware"
	"fms/pkg/people/repository"
	plotrepo "fms/pkg/plot/repository"
)

type PeopleCtrl struct {
	repo  repository.PeopleRepository
	plots plotrepo.PlotRepository
	auth  authsvc.AuthService
}

func New(repo repository.PeopleRepository, plots plotrepo.PlotRepository, auth authsvc.AuthService) *PeopleCtrl {
	return &PeopleCtrl{repo: repo, plots: plots, auth: auth}
}

type memberReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *PeopleCtrl) createMember(c echo.Context, role string) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	u, err := h.auth.CreateMember(req.Name, req.Email, role)
	switch {
	case errors.Is(err, authsvc.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email already registered"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"id":               u.ID,
		"email":            u.Email,
		"name":             u.Name,
		"role":             u.Role,
		"default_password": authsvc.DefaultPassword,
	})
}

func (h *PeopleCtrl) CreateFarmer(c echo.Context) error {
	return h.createMember(c, entities.RoleFarmer)
}

func (h *PeopleCtrl) CreateSubscriber(c echo.Context) error {
	return h.createMember(c, entities.RoleSubscriber)
}

func (h *PeopleCtrl) ListFarmers(c echo.Context) error {
	return h.listMembers(c, entities.RoleFarmer)
}

func (h *PeopleCtrl) ListSubscribers(c echo.Context) error {
	return h.listMembers(c, entities.RoleSubscriber)
}

func (h *PeopleCtrl) listMembers(c echo.Context, role string) error {
	out, err := h.repo.ListByRole(role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PeopleCtrl) DeleteFarmer(c echo.Context) error {
	return h.deleteMember(c, entities.RoleFarmer)
}

func (h *PeopleCtrl) DeleteSubscriber(c echo.Context) error {
	return h.deleteMember(c, entities.RoleSubscriber)
}

func (h *PeopleCtrl) deleteMember(c echo.Context, role string) error {
	id := c.Param("id")
	if _, err := h.repo.FindByIDRole(id, role); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": role + " not found"})
	}
	if err := h.repo.DeleteMember(id, role); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": role + " deleted successfully"})
}

type assignReq struct {
	FarmerID string `json:"farmer_id"`
	PlotID   string `json:"plot_id"`
}

func (h *PeopleCtrl) CreateAssignment(c echo.Context) error {
	u := middleware.CurrentUser(c)
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if _, err := h.repo.FindByIDRole(req.FarmerID, entities.RoleFarmer); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farmer not found"})
	}
	if err := h.requirePlotOwner(c, req.PlotID, u.ID); err != nil {
		return nil // response already written
	}
	exists, err := h.repo.AssignmentExists(req.FarmerID, req.PlotID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if exists {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "farmer already assigned to this plot"})
	}
	a := &entities.FarmerAssignment{FarmerID: req.FarmerID, PlotID: req.PlotID}
	if err := h.repo.CreateAssignment(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *PeopleCtrl) ListAssignments(c echo.Context) error {
	out, err := h.repo.ListAssignments(c.QueryParam("plot_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PeopleCtrl) DeleteAssignment(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.repo.FindAssignment(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "assignment not found"})
	}
	if err := h.repo.DeleteAssignment(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Farmer assignment removed successfully"})
}

type subscribeReq struct {
	SubscriberID string `json:"subscriber_id"`
	PlotID       string `json:"plot_id"`
}

func (h *PeopleCtrl) AssignSubscriber(c echo.Context) error {
	u := middleware.CurrentUser(c)
	var req subscribeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if _, err := h.repo.FindByIDRole(req.SubscriberID, entities.RoleSubscriber); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "subscriber not found"})
	}
	if err := h.requirePlotOwner(c, req.PlotID, u.ID); err != nil {
		return nil
	}
	exists, err := h.repo.SubscriptionExists(req.SubscriberID, req.PlotID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if exists {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "subscriber already assigned to this plot"})
	}
	s := &entities.Subscription{SubscriberID: req.SubscriberID, PlotID: req.PlotID, Status: "active"}
	if err := h.repo.CreateSubscription(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *PeopleCtrl) ListSubscriptions(c echo.Context) error {
	u := middleware.CurrentUser(c)
	plotID := c.QueryParam("plot_id")

	subscriberID := ""
	switch u.Role {
	case entities.RoleOwner:
	case entities.RoleSubscriber:
		subscriberID = u.ID
	default:
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
	}
	out, err := h.repo.ListSubscriptions(subscriberID, plotID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PeopleCtrl) DeleteSubscription(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.repo.FindSubscription(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "subscription not found"})
	}
	if err := h.repo.DeleteSubscription(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Subscription removed successfully"})
}

// requirePlotOwner writes the error response itself and returns a sentinel
// when the plot is missing or owned by someone else.
func (h *PeopleCtrl) requirePlotOwner(c echo.Context, plotID, userID string) error {
	ownerID, err := h.plots.OwnerOf(plotID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		_ = c.JSON(http.StatusNotFound, map[string]string{"error": "plot not found"})
		return err
	case err != nil:
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return err
	case ownerID != userID:
		_ = c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
		return errors.New("not plot owner")
	}
	return nil
}
