package queries_test

import (
	"context"
	"testing"
	"time"

	"escrow/internal/adapters/out/postgres"
	"escrow/internal/adapters/out/postgres/eventrepo"
	"escrow/internal/adapters/out/postgres/orderrepo"
	"escrow/internal/adapters/out/postgres/registryrepo"
	"escrow/internal/adapters/out/postgres/settlementrepo"
	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/model/registry"
	"escrow/internal/core/domain/services"
	"escrow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	idGen     *services.OrderIDGenerator

	owner    kernel.Address
	partner  kernel.Address
	customer kernel.Address
	outsider kernel.Address
}

func (s *QueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres.Migrate(db))

	s.owner = kernel.MustAddress("0xbb00000000000000000000000000000000000001")
	s.partner = kernel.MustAddress("0xbb00000000000000000000000000000000000002")
	s.customer = kernel.MustAddress("0xbb00000000000000000000000000000000000003")
	s.outsider = kernel.MustAddress("0xbb00000000000000000000000000000000000004")
	s.idGen = services.NewOrderIDGenerator()
}

func (s *QueriesTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *QueriesTestSuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{
		"orders", "order_events", "delivery_partners", "settlement_balances",
	} {
		s.Require().NoError(s.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE role_registry CASCADE").Error)

	registryRepo := registryrepo.NewGormRegistryRepository(s.db)
	s.Require().NoError(registryRepo.EnsureOwner(ctx, s.owner))
	s.Require().NoError(registryRepo.AddPartner(ctx, s.partner))
}

func (s *QueriesTestSuite) addOrder(number string, amount int64) *order.Order {
	n, err := kernel.NewOrderNumber(number)
	s.Require().NoError(err)
	a, err := kernel.NewAmount(amount)
	s.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	o, err := order.NewOrder(s.idGen.Generate(s.owner, now), n, s.customer, a, now)
	s.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(s.db)
	s.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func (s *QueriesTestSuite) TestGetOrder() {
	o := s.addOrder("ORD-Q-1", 250)

	query, err := queries.NewGetOrderQuery(s.owner, o.ID())
	s.Require().NoError(err)
	handler := queries.NewGetOrderQueryHandler(s.db)

	resp, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.True(resp.ID.IsEqual(o.ID()))
	s.Equal(o.Number(), resp.Number)
	s.True(resp.Customer.IsEqual(s.customer))
	s.EqualValues(250, resp.Amount)
	s.Equal(order.Created, resp.Status)
	s.Nil(resp.PaidAt)
	s.Nil(resp.ClosedAt)
}

func (s *QueriesTestSuite) TestGetOrder_OwnerOnly() {
	o := s.addOrder("ORD-Q-2", 100)

	query, err := queries.NewGetOrderQuery(s.outsider, o.ID())
	s.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(s.db).Handle(context.Background(), query)
	s.ErrorIs(err, errs.ErrNotAuthorized)
}

func (s *QueriesTestSuite) TestGetOrder_NotFound() {
	var raw [32]byte
	raw[31] = 0x7b
	missing, err := kernel.OrderIDFromBytes(raw[:])
	s.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(s.owner, missing)
	s.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(s.db).Handle(context.Background(), query)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesTestSuite) TestGetOpenOrders_ExcludesFinalized() {
	open := s.addOrder("ORD-Q-3", 100)
	refunded := s.addOrder("ORD-Q-4", 100)

	amount, _ := kernel.NewAmount(100)
	now := time.Now().UTC()
	s.Require().NoError(refunded.Pay(amount, now))
	s.Require().NoError(refunded.Refund(now, 14*24*time.Hour))
	repo := orderrepo.NewGormOrderRepository(s.db)
	s.Require().NoError(repo.Update(context.Background(), refunded))

	query, err := queries.NewGetOpenOrdersQuery(s.owner)
	s.Require().NoError(err)

	result, err := queries.NewGetOpenOrdersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(open.ID()))
}

func (s *QueriesTestSuite) TestGetOwnersBalance() {
	ctx := context.Background()

	query, err := queries.NewGetOwnersBalanceQuery(s.owner)
	s.Require().NoError(err)
	handler := queries.NewGetOwnersBalanceQueryHandler(s.db)

	balance, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.EqualValues(0, balance)

	stored, err := registry.RestoreSettlementBalance(0)
	s.Require().NoError(err)
	amount, _ := kernel.NewAmount(900)
	s.Require().NoError(stored.Credit(amount))
	s.Require().NoError(settlementrepo.NewGormSettlementRepository(s.db).Save(ctx, stored))

	balance, err = handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.EqualValues(900, balance)
}

func (s *QueriesTestSuite) TestIsDeliveryPartner() {
	handler := queries.NewIsDeliveryPartnerQueryHandler(s.db)

	query, err := queries.NewIsDeliveryPartnerQuery(s.partner)
	s.Require().NoError(err)
	isPartner, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.True(isPartner)

	query, err = queries.NewIsDeliveryPartnerQuery(s.outsider)
	s.Require().NoError(err)
	isPartner, err = handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.False(isPartner)
}

func (s *QueriesTestSuite) TestGetOwner() {
	owner, err := queries.NewGetOwnerQueryHandler(s.db).
		Handle(context.Background(), queries.NewGetOwnerQuery())
	s.Require().NoError(err)
	s.True(owner.IsEqual(s.owner))
}

func (s *QueriesTestSuite) TestGetOrderEvents() {
	ctx := context.Background()
	o := s.addOrder("ORD-Q-5", 100)

	events := eventrepo.NewGormEventRepository(s.db)
	base := time.Now().UTC().Truncate(time.Microsecond)
	s.Require().NoError(events.Append(ctx, order.NewEvent(order.EventOrderCreated, o, s.owner, base)))
	s.Require().NoError(events.Append(ctx, order.NewEvent(order.EventOrderPaid, o, s.customer, base.Add(time.Minute))))

	query, err := queries.NewGetOrderEventsQuery(s.owner, o.ID())
	s.Require().NoError(err)

	trail, err := queries.NewGetOrderEventsQueryHandler(s.db).Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(trail, 2)
	s.Equal(order.EventOrderCreated, trail[0].Name)
	s.Equal(order.EventOrderPaid, trail[1].Name)
	s.True(trail[1].Actor.IsEqual(s.customer))
}

func (s *QueriesTestSuite) TestGetOrderEvents_UnknownOrder() {
	var raw [32]byte
	raw[31] = 0x7c
	missing, err := kernel.OrderIDFromBytes(raw[:])
	s.Require().NoError(err)

	query, err := queries.NewGetOrderEventsQuery(s.owner, missing)
	s.Require().NoError(err)

	_, err = queries.NewGetOrderEventsQueryHandler(s.db).Handle(context.Background(), query)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesTestSuite) TestInvalidQuery() {
	var query queries.GetOpenOrdersQuery
	_, err := queries.NewGetOpenOrdersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().Error(err)
	s.Contains(err.Error(), "must be created via NewGetOpenOrdersQuery constructor")
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
