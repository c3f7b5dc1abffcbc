package commands_test

import (
	"context"
	"errors"
	"time"

	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/model/registry"
	"escrow/internal/core/ports"
	"escrow/internal/pkg/errs"
)

// In-memory ledger with snapshot-based transactions. Handlers observe real
// rollback semantics: a failed operation leaves no trace in committed state.

type orderRecord struct {
	id          kernel.OrderID
	number      kernel.OrderNumber
	customer    kernel.Address
	amount      kernel.Amount
	status      order.Status
	createdAt   time.Time
	paidAt      time.Time
	shippedAt   time.Time
	deliveredAt time.Time
	returnedAt  time.Time
	refundedAt  time.Time
	closedAt    time.Time
}

func recordFromOrder(o *order.Order) orderRecord {
	return orderRecord{
		id:          o.ID(),
		number:      o.Number(),
		customer:    o.Customer(),
		amount:      o.Amount(),
		status:      o.Status(),
		createdAt:   o.CreatedAt(),
		paidAt:      o.PaidAt(),
		shippedAt:   o.ShippedAt(),
		deliveredAt: o.DeliveredAt(),
		returnedAt:  o.ReturnedAt(),
		refundedAt:  o.RefundedAt(),
		closedAt:    o.ClosedAt(),
	}
}

func (r orderRecord) toOrder() *order.Order {
	o, err := order.RestoreOrder(
		r.id, r.number, r.customer, r.amount, r.status,
		r.createdAt, r.paidAt, r.shippedAt, r.deliveredAt,
		r.returnedAt, r.refundedAt, r.closedAt,
	)
	if err != nil {
		panic(err)
	}
	return o
}

type ledgerState struct {
	orders     map[kernel.OrderID]orderRecord
	owner      kernel.Address
	partners   map[kernel.Address]struct{}
	settlement kernel.Amount
	events     []order.Event
	balances   map[kernel.Address]int64
	allowances map[kernel.Address]map[kernel.Address]int64
}

func (s *ledgerState) clone() *ledgerState {
	out := &ledgerState{
		orders:     make(map[kernel.OrderID]orderRecord, len(s.orders)),
		owner:      s.owner,
		partners:   make(map[kernel.Address]struct{}, len(s.partners)),
		settlement: s.settlement,
		events:     append([]order.Event(nil), s.events...),
		balances:   make(map[kernel.Address]int64, len(s.balances)),
		allowances: make(map[kernel.Address]map[kernel.Address]int64, len(s.allowances)),
	}
	for k, v := range s.orders {
		out.orders[k] = v
	}
	for k := range s.partners {
		out.partners[k] = struct{}{}
	}
	for k, v := range s.balances {
		out.balances[k] = v
	}
	for k, v := range s.allowances {
		inner := make(map[kernel.Address]int64, len(v))
		for k2, v2 := range v {
			inner[k2] = v2
		}
		out.allowances[k] = inner
	}
	return out
}

// fakeLedger is the shared committed state plus the escrow custody address.
type fakeLedger struct {
	state  *ledgerState
	escrow kernel.Address
}

func newFakeLedger(owner, escrow kernel.Address) *fakeLedger {
	return &fakeLedger{
		state: &ledgerState{
			orders:     make(map[kernel.OrderID]orderRecord),
			owner:      owner,
			partners:   make(map[kernel.Address]struct{}),
			balances:   make(map[kernel.Address]int64),
			allowances: make(map[kernel.Address]map[kernel.Address]int64),
		},
		escrow: escrow,
	}
}

func (l *fakeLedger) mint(addr kernel.Address, amount int64) {
	l.state.balances[addr] += amount
}

func (l *fakeLedger) approve(owner, spender kernel.Address, amount int64) {
	if l.state.allowances[owner] == nil {
		l.state.allowances[owner] = make(map[kernel.Address]int64)
	}
	l.state.allowances[owner][spender] = amount
}

func (l *fakeLedger) balanceOf(addr kernel.Address) int64 {
	return l.state.balances[addr]
}

func (l *fakeLedger) eventNames() []order.EventName {
	names := make([]order.EventName, 0, len(l.state.events))
	for _, e := range l.state.events {
		names = append(names, e.Name)
	}
	return names
}

// fakeUoW stages all writes on a copy of the ledger state and swaps it in on
// Commit. Rollback (or never committing) discards the copy.
type fakeUoW struct {
	ledger *fakeLedger
	tx     *ledgerState
}

func (u *fakeUoW) Begin(_ context.Context) error {
	u.tx = u.ledger.state.clone()
	return nil
}

func (u *fakeUoW) Commit(_ context.Context) error {
	if u.tx == nil {
		return errors.New("no active transaction")
	}
	u.ledger.state = u.tx
	u.tx = nil
	return nil
}

func (u *fakeUoW) Rollback(_ context.Context) error {
	u.tx = nil
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository           { return fakeOrderRepo{u} }
func (u *fakeUoW) RegistryRepository() ports.RegistryRepository     { return fakeRegistryRepo{u} }
func (u *fakeUoW) SettlementRepository() ports.SettlementRepository { return fakeSettlementRepo{u} }
func (u *fakeUoW) EventRepository() ports.EventRepository           { return fakeEventRepo{u} }
func (u *fakeUoW) TokenGateway() ports.TokenGateway                 { return fakeTokenGateway{u} }

type fakeUoWFactory struct {
	ledger *fakeLedger
}

func (f fakeUoWFactory) Create() commands.UoW {
	return &fakeUoW{ledger: f.ledger}
}

type fakeOrderRepo struct{ uow *fakeUoW }

func (r fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	for _, rec := range r.uow.tx.orders {
		if rec.number == o.Number() && !rec.status.IsTerminal() {
			return errs.NewValueIsInvalidError("orderNumber")
		}
	}
	r.uow.tx.orders[o.ID()] = recordFromOrder(o)
	return nil
}

func (r fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.uow.tx.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("orderID", o.ID().String())
	}
	r.uow.tx.orders[o.ID()] = recordFromOrder(o)
	return nil
}

func (r fakeOrderRepo) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	rec, ok := r.uow.tx.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return rec.toOrder(), nil
}

func (r fakeOrderRepo) GetOpenByNumber(_ context.Context, number kernel.OrderNumber) (*order.Order, error) {
	for _, rec := range r.uow.tx.orders {
		if rec.number == number && !rec.status.IsTerminal() {
			return rec.toOrder(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
}

func (r fakeOrderRepo) GetAllOpen(_ context.Context) ([]*order.Order, error) {
	var out []*order.Order
	for _, rec := range r.uow.tx.orders {
		if !rec.status.IsTerminal() {
			out = append(out, rec.toOrder())
		}
	}
	return out, nil
}

func (r fakeOrderRepo) GetDeliveredBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	var out []*order.Order
	for _, rec := range r.uow.tx.orders {
		if rec.status == order.Delivered && rec.deliveredAt.Before(cutoff) {
			out = append(out, rec.toOrder())
		}
	}
	return out, nil
}

type fakeRegistryRepo struct{ uow *fakeUoW }

func (r fakeRegistryRepo) EnsureOwner(_ context.Context, owner kernel.Address) error {
	if r.uow.tx.owner.IsZero() {
		r.uow.tx.owner = owner
	}
	return nil
}

func (r fakeRegistryRepo) Get(_ context.Context) (*registry.RoleRegistry, error) {
	partners := make([]kernel.Address, 0, len(r.uow.tx.partners))
	for p := range r.uow.tx.partners {
		partners = append(partners, p)
	}
	return registry.RestoreRoleRegistry(r.uow.tx.owner, partners)
}

func (r fakeRegistryRepo) AddPartner(_ context.Context, partner kernel.Address) error {
	r.uow.tx.partners[partner] = struct{}{}
	return nil
}

type fakeSettlementRepo struct{ uow *fakeUoW }

func (r fakeSettlementRepo) Get(_ context.Context) (*registry.SettlementBalance, error) {
	return registry.RestoreSettlementBalance(r.uow.tx.settlement)
}

func (r fakeSettlementRepo) Save(_ context.Context, balance *registry.SettlementBalance) error {
	r.uow.tx.settlement = balance.Balance()
	return nil
}

type fakeEventRepo struct{ uow *fakeUoW }

func (r fakeEventRepo) Append(_ context.Context, event order.Event) error {
	r.uow.tx.events = append(r.uow.tx.events, event)
	return nil
}

func (r fakeEventRepo) ListByOrderID(_ context.Context, id kernel.OrderID) ([]order.Event, error) {
	var out []order.Event
	for _, e := range r.uow.tx.events {
		if e.OrderID.IsEqual(id) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTokenGateway struct{ uow *fakeUoW }

func (g fakeTokenGateway) TransferFrom(_ context.Context, from, to kernel.Address, amount kernel.Amount) error {
	tx := g.uow.tx
	allowed := int64(0)
	if inner := tx.allowances[from]; inner != nil {
		allowed = inner[g.uow.ledger.escrow]
	}
	if allowed < amount.Int64() {
		return errs.NewValueIsOutOfRangeError("allowance", allowed, amount.Int64(), nil)
	}
	if tx.balances[from] < amount.Int64() {
		return errs.NewValueIsOutOfRangeError("balance", tx.balances[from], amount.Int64(), nil)
	}
	tx.allowances[from][g.uow.ledger.escrow] -= amount.Int64()
	tx.balances[from] -= amount.Int64()
	tx.balances[to] += amount.Int64()
	return nil
}

func (g fakeTokenGateway) Transfer(ctx context.Context, to kernel.Address, amount kernel.Amount) error {
	tx := g.uow.tx
	escrow := g.uow.ledger.escrow
	if tx.balances[escrow] < amount.Int64() {
		return errs.NewValueIsOutOfRangeError("balance", tx.balances[escrow], amount.Int64(), nil)
	}
	tx.balances[escrow] -= amount.Int64()
	tx.balances[to] += amount.Int64()
	return nil
}

func (g fakeTokenGateway) BalanceOf(_ context.Context, addr kernel.Address) (kernel.Amount, error) {
	return kernel.Amount(g.uow.tx.balances[addr]), nil
}

func (g fakeTokenGateway) Allowance(_ context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	if inner := g.uow.tx.allowances[owner]; inner != nil {
		return kernel.Amount(inner[spender]), nil
	}
	return 0, nil
}
