package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/auditrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// RepositoriesIntegrationTestSuite covers listing, soft deletion and
// constraint handling of the GORM repositories.
type RepositoriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cipher    *kernel.PasswordCipher
	uow       ports.UnitOfWork
}

func (suite *RepositoriesIntegrationTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(suite.T())
	suite.cipher = testCipher(suite.T())
}

func (suite *RepositoriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(truncateAll).Error)
	suite.uow = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.cipher).Create()
}

func (suite *RepositoriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RepositoriesIntegrationTestSuite) TestProduct_SoftDeleteScopes() {
	ctx := context.Background()
	repo := suite.uow.ProductRepository()
	live := createTestProduct(suite.T(), "1.00")
	gone := createTestProduct(suite.T(), "2.00")
	suite.Require().NoError(repo.Add(ctx, live))
	suite.Require().NoError(repo.Add(ctx, gone))

	gone.Delete(kernel.SystemActor())
	suite.Require().NoError(repo.Update(ctx, gone))

	q := ports.ListQuery{Limit: 10, OrderBy: "created_at"}

	items, total, err := repo.Find(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(items, 1)
	suite.True(live.ID().IsEqual(items[0].ID()))

	_, total, err = repo.FindIncludingDeleted(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)

	items, total, err = repo.FindOnlyDeleted(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.True(items[0].IsDeleted())

	_, err = repo.Get(ctx, gone.ID())
	suite.Equal(errs.KindNotFound, errs.KindOf(err))

	restored, err := repo.GetIncludingDeleted(ctx, gone.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsDeleted())
}

func (suite *RepositoriesIntegrationTestSuite) TestProduct_FiltersOrderingAndPaging() {
	ctx := context.Background()
	repo := suite.uow.ProductRepository()
	for _, price := range []string{"5.00", "10.00", "15.00", "20.00"} {
		suite.Require().NoError(repo.Add(ctx, createTestProduct(suite.T(), price)))
	}

	items, total, err := repo.Find(ctx, ports.ListQuery{
		Filters: []ports.Filter{
			{Field: "price", Operator: ports.OpGreaterThanOrEqual, Value: 10.0},
			{Field: "name", Operator: ports.OpContains, Value: "product"},
		},
		Limit:      2,
		OrderBy:    "price",
		Descending: true,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(items, 2)
	suite.Equal("20.00", items[0].Price().String())
	suite.Equal("15.00", items[1].Price().String())

	items, _, err = repo.Find(ctx, ports.ListQuery{Offset: 2, Limit: 2, OrderBy: "price"})
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("15.00", items[0].Price().String())
}

func (suite *RepositoriesIntegrationTestSuite) TestProduct_UnavailableIsPersisted() {
	ctx := context.Background()
	repo := suite.uow.ProductRepository()
	p := createTestProduct(suite.T(), "3.00")
	suite.Require().NoError(repo.Add(ctx, p))

	p.SetAvailable(false, kernel.SystemActor())
	suite.Require().NoError(repo.Update(ctx, p))

	loaded, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(loaded.Available())
}

func (suite *RepositoriesIntegrationTestSuite) TestProduct_UnknownFilterIsRejected() {
	_, _, err := suite.uow.ProductRepository().Find(context.Background(), ports.ListQuery{
		Filters: []ports.Filter{{Field: "password", Operator: ports.OpEqual, Value: "x"}},
		Limit:   10,
	})

	suite.Require().ErrorIs(err, errs.ErrBadRequest)
}

func (suite *RepositoriesIntegrationTestSuite) TestProduct_UpdateMissingIsNotFound() {
	err := suite.uow.ProductRepository().Update(context.Background(), createTestProduct(suite.T(), "1.00"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RepositoriesIntegrationTestSuite) TestCustomer_DuplicateEmailIsConflict() {
	ctx := context.Background()
	repo := suite.uow.CustomerRepository()
	first := createTestCustomer(suite.T(), suite.cipher)
	suite.Require().NoError(repo.Add(ctx, first))

	second := createTestCustomer(suite.T(), suite.cipher)
	suite.Require().NoError(second.ChangeEmail(first.Email(), kernel.SystemActor()))

	err := repo.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *RepositoriesIntegrationTestSuite) TestCustomer_GetByEmailRestoresPassword() {
	ctx := context.Background()
	repo := suite.uow.CustomerRepository()
	c := createTestCustomer(suite.T(), suite.cipher)
	suite.Require().NoError(repo.Add(ctx, c))

	loaded, err := repo.GetByEmail(ctx, c.Email())

	suite.Require().NoError(err)
	suite.True(loaded.CheckPassword("secret123"))
	suite.False(loaded.CheckPassword("secret124"))
	suite.Equal(c.Phone().String(), loaded.Phone().String())
}

func (suite *RepositoriesIntegrationTestSuite) TestOrderStatus_GetInitialIsOldestLive() {
	ctx := context.Background()
	repo := suite.uow.OrderStatusRepository()

	_, err := repo.GetInitial(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	first := createTestStatus(suite.T())
	suite.Require().NoError(repo.Add(ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := createTestStatus(suite.T())
	suite.Require().NoError(repo.Add(ctx, second))

	initial, err := repo.GetInitial(ctx)
	suite.Require().NoError(err)
	suite.True(first.ID().IsEqual(initial.ID()))

	first.Delete(kernel.SystemActor())
	suite.Require().NoError(repo.Update(ctx, first))

	initial, err = repo.GetInitial(ctx)
	suite.Require().NoError(err)
	suite.True(second.ID().IsEqual(initial.ID()))
}

func (suite *RepositoriesIntegrationTestSuite) TestOrder_UpdateUpsertsDetailsAndScopesByCustomer() {
	ctx := context.Background()
	owner := createTestCustomer(suite.T(), suite.cipher)
	other := createTestCustomer(suite.T(), suite.cipher)
	s := createTestStatus(suite.T())
	p := createTestProduct(suite.T(), "4.00")
	suite.Require().NoError(suite.uow.CustomerRepository().Add(ctx, owner))
	suite.Require().NoError(suite.uow.CustomerRepository().Add(ctx, other))
	suite.Require().NoError(suite.uow.OrderStatusRepository().Add(ctx, s))
	suite.Require().NoError(suite.uow.ProductRepository().Add(ctx, p))

	o := createTestOrder(suite.T(), owner, s)
	suite.Require().NoError(suite.uow.OrderRepository().Add(ctx, o))
	d := createTestDetail(suite.T(), o, p, 1)
	suite.Require().NoError(o.AddDetail(d, owner.Actor()))
	suite.Require().NoError(suite.uow.OrderRepository().Update(ctx, o))

	suite.Require().NoError(o.ChangeDetailQuantity(d.ID(), 5, owner.Actor()))
	suite.Require().NoError(suite.uow.OrderRepository().Update(ctx, o))

	loaded, err := suite.uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("20.00", loaded.Total().String())
	suite.Require().Len(loaded.Details(), 1)
	suite.Equal(5, loaded.Details()[0].Quantity())

	details := suite.uow.OrderDetailRepository()
	mine, total, err := details.Find(ctx, ports.ListQuery{
		Filters: []ports.Filter{{Field: "customer_id", Operator: ports.OpEqual, Value: owner.ID().Bytes()}},
		Limit:   10,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(p.Name().String(), mine[0].Product().Name().String())

	_, total, err = details.Find(ctx, ports.ListQuery{
		Filters: []ports.Filter{{Field: "customer_id", Operator: ports.OpEqual, Value: other.ID().Bytes()}},
		Limit:   10,
	})
	suite.Require().NoError(err)
	suite.Zero(total)

	orders, total, err := suite.uow.OrderRepository().Find(ctx, ports.ListQuery{
		Filters: []ports.Filter{{Field: "status_id", Operator: ports.OpEqual, Value: s.ID().Bytes()}},
		Limit:   10,
		OrderBy: "total",
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(owner.Name().String(), orders[0].Customer().Name().String())
}

func (suite *RepositoriesIntegrationTestSuite) TestOrder_UpdateWritesTotalAndLinesInTransaction() {
	ctx := context.Background()
	c := createTestCustomer(suite.T(), suite.cipher)
	s := createTestStatus(suite.T())
	p := createTestProduct(suite.T(), "10.00")
	suite.Require().NoError(suite.uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(suite.uow.OrderStatusRepository().Add(ctx, s))
	suite.Require().NoError(suite.uow.ProductRepository().Add(ctx, p))

	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.cipher).Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	o := createTestOrder(suite.T(), c, s)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	d := createTestDetail(suite.T(), o, p, 3)
	suite.Require().NoError(uow.OrderDetailRepository().Add(ctx, d))
	suite.Require().NoError(o.AddDetail(d, c.Actor()))

	suite.Require().NotPanics(func() {
		suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	})
	suite.Require().NoError(uow.Commit(ctx))

	var rows int64
	suite.Require().NoError(suite.db.Table("order_details").Where("order_id = ?", o.ID().Bytes()).Count(&rows).Error)
	suite.Equal(int64(1), rows)

	var total string
	suite.Require().NoError(suite.db.Table("orders").Select("total::text").Where("id = ?", o.ID().Bytes()).Scan(&total).Error)
	suite.Equal("30.00", total)
}

func (suite *RepositoriesIntegrationTestSuite) TestOrder_DeleteHidesOrderAndLines() {
	ctx := context.Background()
	c := createTestCustomer(suite.T(), suite.cipher)
	s := createTestStatus(suite.T())
	p := createTestProduct(suite.T(), "1.50")
	suite.Require().NoError(suite.uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(suite.uow.OrderStatusRepository().Add(ctx, s))
	suite.Require().NoError(suite.uow.ProductRepository().Add(ctx, p))

	o := createTestOrder(suite.T(), c, s)
	suite.Require().NoError(suite.uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.AddDetail(createTestDetail(suite.T(), o, p, 2), c.Actor()))
	suite.Require().NoError(suite.uow.OrderRepository().Update(ctx, o))

	o.Delete(c.Actor())
	suite.Require().NoError(suite.uow.OrderRepository().Update(ctx, o))

	_, err := suite.uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, total, err := suite.uow.OrderDetailRepository().Find(ctx, ports.ListQuery{Limit: 10})
	suite.Require().NoError(err)
	suite.Zero(total)

	deleted, err := suite.uow.OrderRepository().GetIncludingDeleted(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(deleted.IsDeleted())
	suite.Require().Len(deleted.Details(), 1)
	suite.True(deleted.Details()[0].IsDeleted())
}

func (suite *RepositoriesIntegrationTestSuite) TestAuditLog_Record() {
	ctx := context.Background()
	log := suite.uow.AuditLog()
	entityID := kernel.NewUUID()

	suite.Require().NoError(log.Record(ctx, ports.AuditEntry{
		Entity:   "product",
		EntityID: entityID,
		Actor:    kernel.SystemActor(),
		Changes:  []kernel.FieldChange{{Field: "price", Before: "10.00", After: "12.50"}},
		At:       kernel.Now(),
	}))
	suite.Require().NoError(log.Record(ctx, ports.AuditEntry{
		Entity:   "product",
		EntityID: entityID,
		Actor:    kernel.SystemActor(),
		At:       kernel.Now(),
	}))

	var rows []auditrepo.AuditEntryDTO
	suite.Require().NoError(suite.db.Find(&rows).Error)
	suite.Require().Len(rows, 1, "Entries without changes are not written")
	suite.Equal("product", rows[0].Entity)
	suite.Nil(rows[0].ActorID)
	suite.JSONEq(`[{"field":"price","before":"10.00","after":"12.50"}]`, string(rows[0].Changes))
}

func TestRepositoriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesIntegrationTestSuite))
}
