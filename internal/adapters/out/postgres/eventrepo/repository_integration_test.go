package eventrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/eventrepo"
	"orders/internal/core/domain/model/event"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// EventRepositoryIntegrationTestSuite provides integration tests for
// GormEventRepository, the event id unique index in particular since the
// idempotent registration protocol depends on it.
type EventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *eventrepo.GormEventRepository
}

func (suite *EventRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&eventrepo.EventDTO{}))
}

func (suite *EventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE events").Error)
	suite.repository = eventrepo.NewGormEventRepository(suite.db, zap.NewNop())
}

func (suite *EventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EventRepositoryIntegrationTestSuite) createTestEvent(orderID int, id string, typ event.Type, date time.Time) *event.Event {
	user := "operator"
	e, err := event.New(orderID, id, typ, date, &user)
	suite.Require().NoError(err)
	return e
}

func (suite *EventRepositoryIntegrationTestSuite) TestAdd_ValidEvent_Success() {
	ctx := context.Background()
	date := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	err := suite.repository.Add(ctx, suite.createTestEvent(1, "evt-001", event.TypePaymentReceived, date))
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&eventrepo.EventDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *EventRepositoryIntegrationTestSuite) TestAdd_DuplicateEventID_Conflict() {
	ctx := context.Background()
	date := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestEvent(1, "evt-001", event.TypePaymentReceived, date)))

	err := suite.repository.Add(ctx,
		suite.createTestEvent(2, "evt-001", event.TypeCanceled, date))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *EventRepositoryIntegrationTestSuite) TestGetAllByOrderID_OrdersByDateAscending() {
	ctx := context.Background()
	base := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestEvent(1, "evt-002", event.TypeInvoiced, base.Add(time.Hour))))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestEvent(1, "evt-001", event.TypePaymentReceived, base)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestEvent(2, "evt-099", event.TypeCanceled, base)))

	events, err := suite.repository.GetAllByOrderID(ctx, 1)
	suite.Require().NoError(err)

	suite.Require().Len(events, 2)
	suite.Equal("evt-001", events[0].ID())
	suite.Equal("evt-002", events[1].ID())
	suite.Require().NotNil(events[0].User())
	suite.Equal("operator", *events[0].User())
}

func (suite *EventRepositoryIntegrationTestSuite) TestGetAllByOrderID_NoEvents_EmptyResult() {
	ctx := context.Background()

	events, err := suite.repository.GetAllByOrderID(ctx, 42)
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *EventRepositoryIntegrationTestSuite) TestGetMostRecentByOrderID_ReturnsLatest() {
	ctx := context.Background()
	base := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestEvent(1, "evt-001", event.TypePaymentReceived, base)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestEvent(1, "evt-002", event.TypeInvoiced, base.Add(time.Hour))))

	latest, err := suite.repository.GetMostRecentByOrderID(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("evt-002", latest.ID())
	suite.Equal(event.TypeInvoiced, latest.Type())
}

func (suite *EventRepositoryIntegrationTestSuite) TestGetMostRecentByOrderID_NoEvents_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetMostRecentByOrderID(ctx, 42)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryIntegrationTestSuite))
}
