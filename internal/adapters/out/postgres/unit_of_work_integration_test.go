package postgres_test

import (
	"context"
	"testing"
	"time"

	"escrow/internal/adapters/out/postgres"
	"escrow/internal/adapters/out/postgres/tokenrepo"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/services"
	"escrow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	idGen     *services.OrderIDGenerator

	owner    kernel.Address
	partner  kernel.Address
	customer kernel.Address
	escrow   kernel.Address
}

func (s *UnitOfWorkTestSuite) SetupSuite() {
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

	s.owner = kernel.MustAddress("0xaa00000000000000000000000000000000000001")
	s.partner = kernel.MustAddress("0xaa00000000000000000000000000000000000002")
	s.customer = kernel.MustAddress("0xaa00000000000000000000000000000000000003")
	s.escrow = kernel.MustAddress("0xaa00000000000000000000000000000000000004")

	s.factory = postgres.NewGormUnitOfWorkFactory(db, s.escrow)
	s.idGen = services.NewOrderIDGenerator()
}

func (s *UnitOfWorkTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	for _, table := range []string{
		"orders", "order_events", "delivery_partners",
		"settlement_balances", "token_accounts", "token_allowances",
	} {
		s.Require().NoError(s.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE role_registry CASCADE").Error)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(context.Background()))
	s.Require().NoError(uow.RegistryRepository().EnsureOwner(context.Background(), s.owner))
	s.Require().NoError(uow.Commit(context.Background()))
}

func (s *UnitOfWorkTestSuite) newOrder(number string, amount int64) *order.Order {
	n, err := kernel.NewOrderNumber(number)
	s.Require().NoError(err)
	a, err := kernel.NewAmount(amount)
	s.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	o, err := order.NewOrder(s.idGen.Generate(s.owner, now), n, s.customer, a, now)
	s.Require().NoError(err)
	return o
}

func (s *UnitOfWorkTestSuite) TestRegistry_EnsureOwnerIsIdempotent() {
	ctx := context.Background()
	other := kernel.MustAddress("0xaa000000000000000000000000000000000000ff")

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	// a second seed with a different address must not displace the owner
	s.Require().NoError(uow.RegistryRepository().EnsureOwner(ctx, other))
	reg, err := uow.RegistryRepository().Get(ctx)
	s.Require().NoError(err)
	s.Require().NoError(uow.Commit(ctx))

	s.True(reg.IsOwner(s.owner))
	s.False(reg.IsOwner(other))
}

func (s *UnitOfWorkTestSuite) TestRegistry_AddPartner() {
	ctx := context.Background()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.RegistryRepository().AddPartner(ctx, s.partner))
	s.Require().NoError(uow.RegistryRepository().AddPartner(ctx, s.partner))
	reg, err := uow.RegistryRepository().Get(ctx)
	s.Require().NoError(err)
	s.Require().NoError(uow.Commit(ctx))

	s.True(reg.IsPartner(s.partner))
	s.Len(reg.Partners(), 1)
}

func (s *UnitOfWorkTestSuite) TestOrders_AddGetUpdate() {
	ctx := context.Background()
	o := s.newOrder("ORD-IT-1", 300)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	loaded, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.True(loaded.IsEqual(o))
	s.Equal(order.Created, loaded.Status())

	amount, err := kernel.NewAmount(300)
	s.Require().NoError(err)
	s.Require().NoError(loaded.Pay(amount, time.Now().UTC()))

	uow = s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	s.Require().NoError(uow.Commit(ctx))

	reloaded, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Paid, reloaded.Status())
	s.False(reloaded.PaidAt().IsZero())
}

func (s *UnitOfWorkTestSuite) TestOrders_OpenNumberUniqueness() {
	ctx := context.Background()
	first := s.newOrder("ORD-IT-2", 100)
	duplicate := s.newOrder("ORD-IT-2", 100)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, first))
	err := uow.OrderRepository().Add(ctx, duplicate)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrValueIsInvalid)
	s.Require().NoError(uow.Rollback(ctx))
}

func (s *UnitOfWorkTestSuite) TestOrders_GetOpenByNumberSkipsFinalized() {
	ctx := context.Background()
	o := s.newOrder("ORD-IT-3", 100)
	amount, _ := kernel.NewAmount(100)
	s.Require().NoError(o.Pay(amount, time.Now().UTC()))
	s.Require().NoError(o.Refund(time.Now().UTC(), 14*24*time.Hour))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	_, err := s.factory.Create().OrderRepository().GetOpenByNumber(ctx, o.Number())
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkTestSuite) TestOrders_GetDeliveredBefore() {
	ctx := context.Background()
	window := 14 * 24 * time.Hour
	deliveredLongAgo := s.newOrder("ORD-IT-4", 100)
	deliveredRecently := s.newOrder("ORD-IT-5", 100)
	amount, _ := kernel.NewAmount(100)

	old := time.Now().UTC().Add(-window - time.Hour)
	s.Require().NoError(deliveredLongAgo.Pay(amount, old))
	s.Require().NoError(deliveredLongAgo.Ship(old))
	s.Require().NoError(deliveredLongAgo.Deliver(old))

	recent := time.Now().UTC().Add(-time.Hour)
	s.Require().NoError(deliveredRecently.Pay(amount, recent))
	s.Require().NoError(deliveredRecently.Ship(recent))
	s.Require().NoError(deliveredRecently.Deliver(recent))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, deliveredLongAgo))
	s.Require().NoError(uow.OrderRepository().Add(ctx, deliveredRecently))
	s.Require().NoError(uow.Commit(ctx))

	eligible, err := s.factory.Create().OrderRepository().
		GetDeliveredBefore(ctx, time.Now().UTC().Add(-window))
	s.Require().NoError(err)
	s.Require().Len(eligible, 1)
	s.True(eligible[0].ID().IsEqual(deliveredLongAgo.ID()))
}

func (s *UnitOfWorkTestSuite) TestSettlement_SaveAndReload() {
	ctx := context.Background()

	balance, err := s.factory.Create().SettlementRepository().Get(ctx)
	s.Require().NoError(err)
	s.EqualValues(0, balance.Balance())

	amount, _ := kernel.NewAmount(420)
	s.Require().NoError(balance.Credit(amount))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.SettlementRepository().Save(ctx, balance))
	s.Require().NoError(uow.Commit(ctx))

	reloaded, err := s.factory.Create().SettlementRepository().Get(ctx)
	s.Require().NoError(err)
	s.EqualValues(420, reloaded.Balance())
}

func (s *UnitOfWorkTestSuite) TestEvents_AppendAndList() {
	ctx := context.Background()
	o := s.newOrder("ORD-IT-6", 100)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.EventRepository().Append(ctx,
		order.NewEvent(order.EventOrderCreated, o, s.owner, time.Now().UTC())))
	s.Require().NoError(uow.Commit(ctx))

	events, err := s.factory.Create().EventRepository().ListByOrderID(ctx, o.ID())
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(order.EventOrderCreated, events[0].Name)
	s.True(events[0].OrderID.IsEqual(o.ID()))
	s.True(events[0].Actor.IsEqual(s.owner))
}

func (s *UnitOfWorkTestSuite) TestEvents_SameInstantKeepAppendOrder() {
	ctx := context.Background()
	o := s.newOrder("ORD-IT-10", 100)
	at := time.Now().UTC()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.EventRepository().Append(ctx,
		order.NewEvent(order.EventOrderCreated, o, s.owner, at)))
	s.Require().NoError(uow.EventRepository().Append(ctx,
		order.NewEvent(order.EventOrderPaid, o, s.customer, at)))
	s.Require().NoError(uow.EventRepository().Append(ctx,
		order.NewEvent(order.EventOrderShipped, o, s.partner, at)))
	s.Require().NoError(uow.Commit(ctx))

	events, err := s.factory.Create().EventRepository().ListByOrderID(ctx, o.ID())
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(order.EventOrderCreated, events[0].Name)
	s.Equal(order.EventOrderPaid, events[1].Name)
	s.Equal(order.EventOrderShipped, events[2].Name)
}

func (s *UnitOfWorkTestSuite) TestTokens_EscrowRoundTrip() {
	ctx := context.Background()
	amount, _ := kernel.NewAmount(500)

	gateway := tokenrepo.NewGormTokenGateway(s.db, s.escrow)
	s.Require().NoError(gateway.Mint(ctx, s.customer, amount))
	s.Require().NoError(gateway.Approve(ctx, s.customer, s.escrow, amount))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.TokenGateway().TransferFrom(ctx, s.customer, s.escrow, amount))
	s.Require().NoError(uow.Commit(ctx))

	escrowBalance, err := gateway.BalanceOf(ctx, s.escrow)
	s.Require().NoError(err)
	s.EqualValues(500, escrowBalance)

	remaining, err := gateway.Allowance(ctx, s.customer, s.escrow)
	s.Require().NoError(err)
	s.EqualValues(0, remaining)

	uow = s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.TokenGateway().Transfer(ctx, s.customer, amount))
	s.Require().NoError(uow.Commit(ctx))

	customerBalance, err := gateway.BalanceOf(ctx, s.customer)
	s.Require().NoError(err)
	s.EqualValues(500, customerBalance)
}

func (s *UnitOfWorkTestSuite) TestTokens_RejectsOverdraft() {
	ctx := context.Background()
	amount, _ := kernel.NewAmount(100)

	gateway := tokenrepo.NewGormTokenGateway(s.db, s.escrow)

	err := gateway.Transfer(ctx, s.customer, amount)
	s.ErrorIs(err, tokenrepo.ErrInsufficientFunds)

	err = gateway.TransferFrom(ctx, s.customer, s.escrow, amount)
	s.ErrorIs(err, tokenrepo.ErrInsufficientAllowance)
}

func (s *UnitOfWorkTestSuite) TestRollback_LeavesNoTrace() {
	ctx := context.Background()
	o := s.newOrder("ORD-IT-7", 100)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.EventRepository().Append(ctx,
		order.NewEvent(order.EventOrderCreated, o, s.owner, time.Now().UTC())))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)

	events, err := s.factory.Create().EventRepository().ListByOrderID(ctx, o.ID())
	s.Require().NoError(err)
	s.Empty(events)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
