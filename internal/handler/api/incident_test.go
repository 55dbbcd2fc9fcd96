//go:build unit

package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"servicedesk/internal/handler/api"
	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/infra"
	"servicedesk/internal/usecase/queries"
	"servicedesk/tests/common/builder"
	"servicedesk/tests/common/httptest"
	commandsmock "servicedesk/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeIncidentViewRepo feeds the real query service so the handler tests
// cover the repo-error translation path, not just the mocked interface.
type fakeIncidentViewRepo struct {
	view *queries.IncidentView
	err  error
}

func (f *fakeIncidentViewRepo) FindByReporterID(_ context.Context, _ uuid.UUID) ([]*queries.IncidentView, error) {
	return nil, nil
}

func (f *fakeIncidentViewRepo) FindAll(_ context.Context) ([]*queries.IncidentView, error) {
	return nil, nil
}

func (f *fakeIncidentViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.IncidentView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

type IncidentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIncidentCommands
	repo         *fakeIncidentViewRepo
	actor        *builder.UserBuilder
}

func (s *IncidentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIncidentCommands(s.mockCtrl)
	s.repo = &fakeIncidentViewRepo{}
	s.actor = builder.NewUserBuilder().WithRole("employee")

	handler := api.NewIncidentHandler(s.mockCommands, queries.NewIncidentQueries(s.repo))
	s.router.GET("/incidents/:id", func(c *gin.Context) {
		c.Set("actor", s.actor.BuildActor())
		handler.GetIncident(c)
	})
}

func (s *IncidentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIncidentHandlerSuite(t *testing.T) {
	suite.Run(t, new(IncidentHandlerTestSuite))
}

func (s *IncidentHandlerTestSuite) TestGetIncident() {
	s.Run("success: returns 200 OK with the incident", func() {
		now := time.Now()
		s.repo.view = &queries.IncidentView{
			ID:               uuid.New(),
			Title:            "Printer on fire",
			Status:           "open",
			ReporterID:       uuid.New(),
			ReporterUsername: "reporter",
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		s.repo.err = nil

		url := fmt.Sprintf("/incidents/%s", s.repo.view.ID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.IncidentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Printer on fire", response.Title)
	})

	s.Run("error: 404 Not Found for a missing incident", func() {
		s.repo.view = nil
		s.repo.err = infra.NotFoundErr("incident not found")

		url := fmt.Sprintf("/incidents/%s", uuid.New())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Incident not found")
	})

	s.Run("error: 403 Forbidden when a customer views someone else's incident", func() {
		s.actor = builder.NewUserBuilder().WithRole("user")
		defer func() { s.actor = builder.NewUserBuilder().WithRole("employee") }()

		now := time.Now()
		s.repo.view = &queries.IncidentView{
			ID:         uuid.New(),
			Title:      "Not yours",
			Status:     "open",
			ReporterID: uuid.New(),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		s.repo.err = nil

		url := fmt.Sprintf("/incidents/%s", s.repo.view.ID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "incidents you reported")
	})

	s.Run("error: 400 Bad Request for a malformed incident ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/incidents/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid incident ID format")
	})
}
