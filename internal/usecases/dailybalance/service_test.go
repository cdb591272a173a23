package dailybalance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/bankcore/report-service/infrastructure/repository/mocks"
	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/infrastructure/upstream/mocks"
	"github.com/bankcore/report-service/internal/domain"
)

type processorMocks struct {
	customerClient  *mocks.MockCustomerClient
	accountClient   *mocks.MockAccountClient
	creditClient    *mocks.MockCreditClient
	debitCardClient *mocks.MockDebitCardClient
	repo            *repomocks.MockDailyBalanceRepository
}

func newProcessorWithMocks(ctrl *gomock.Controller) (*Service, processorMocks) {
	m := processorMocks{
		customerClient:  mocks.NewMockCustomerClient(ctrl),
		accountClient:   mocks.NewMockAccountClient(ctrl),
		creditClient:    mocks.NewMockCreditClient(ctrl),
		debitCardClient: mocks.NewMockDebitCardClient(ctrl),
		repo:            repomocks.NewMockDailyBalanceRepository(ctrl),
	}

	service := NewService(
		m.customerClient,
		m.accountClient,
		m.creditClient,
		m.debitCardClient,
		m.repo,
		2,
	)

	return service, m
}

// snapshotCollector acumula os snapshots salvos pelos sub-tasks concorrentes
type snapshotCollector struct {
	mu        sync.Mutex
	snapshots []domain.DailyBalance
}

func (c *snapshotCollector) save(balance *domain.DailyBalance) (*domain.DailyBalance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshots = append(c.snapshots, *balance)
	saved := *balance
	saved.ID = "generated-id"
	return &saved, nil
}

func (c *snapshotCollector) byCustomerAndType() map[string]map[domain.ProductCategory]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]map[domain.ProductCategory]int)
	for _, snapshot := range c.snapshots {
		if result[snapshot.CustomerID] == nil {
			result[snapshot.CustomerID] = make(map[domain.ProductCategory]int)
		}
		result[snapshot.CustomerID][snapshot.ProductType]++
	}
	return result
}

func TestService_ProcessDailyBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("Falha na lista de clientes aborta a rodada inteira", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newProcessorWithMocks(ctrl)

		listErr := &upstream.UnavailableError{
			Upstream:  "customer-service",
			Operation: "all-customers",
			Err:       errors.New("connection refused"),
		}

		m.customerClient.EXPECT().
			GetAllCustomers(gomock.Any()).
			Return(nil, listErr)

		err := service.ProcessDailyBalances(ctx)

		assert.True(t, upstream.IsUnavailable(err))
	})

	t.Run("Nenhum cliente encerra a rodada com sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newProcessorWithMocks(ctrl)

		m.customerClient.EXPECT().
			GetAllCustomers(gomock.Any()).
			Return(nil, nil)

		assert.NoError(t, service.ProcessDailyBalances(ctx))
	})

	t.Run("Falha de um sub-task não bloqueia os demais produtos nem os demais clientes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newProcessorWithMocks(ctrl)
		collector := &snapshotCollector{}

		m.customerClient.EXPECT().
			GetAllCustomers(gomock.Any()).
			Return([]domain.Customer{
				{ID: "CUST-A", Status: domain.CustomerStatusActive},
				{ID: "CUST-B", Status: domain.CustomerStatusActive},
			}, nil)

		// Cliente A: a busca de créditos falha, o restante funciona
		m.accountClient.EXPECT().
			GetAccountsByCustomer(gomock.Any(), "CUST-A").
			Return([]domain.Account{
				{ID: "ACC-A1", AccountType: domain.AccountTypeSavings, Balance: 100},
			}, nil)
		m.creditClient.EXPECT().
			GetCreditsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, errors.New("credit-service down"))
		m.creditClient.EXPECT().
			GetCreditCardsByCustomer(gomock.Any(), "CUST-A").
			Return([]domain.CreditCard{
				{ID: "CC-A1", CardType: domain.CreditCardTypePersonal, AvailableBalance: 500},
			}, nil)
		m.debitCardClient.EXPECT().
			GetDebitCardsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)

		// Cliente B: tudo funciona
		m.accountClient.EXPECT().
			GetAccountsByCustomer(gomock.Any(), "CUST-B").
			Return([]domain.Account{
				{ID: "ACC-B1", AccountType: domain.AccountTypeChecking, Balance: 200},
			}, nil)
		m.creditClient.EXPECT().
			GetCreditsByCustomer(gomock.Any(), "CUST-B").
			Return([]domain.Credit{
				{ID: "CR-B1", CreditType: domain.CreditTypeBusiness, RemainingBalance: 900},
			}, nil)
		m.creditClient.EXPECT().
			GetCreditCardsByCustomer(gomock.Any(), "CUST-B").
			Return(nil, nil)
		m.debitCardClient.EXPECT().
			GetDebitCardsByCustomer(gomock.Any(), "CUST-B").
			Return([]domain.DebitCard{
				{ID: "DC-B1", PrimaryAccountID: "ACC-B1"},
			}, nil)
		m.accountClient.EXPECT().
			GetAccountByID(gomock.Any(), "ACC-B1").
			Return(&domain.Account{ID: "ACC-B1", Balance: 200}, nil)

		m.repo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(collector.save).
			AnyTimes()

		require.NoError(t, service.ProcessDailyBalances(ctx))

		saved := collector.byCustomerAndType()

		// Cliente A: conta e cartão de crédito gravados, créditos ausentes
		assert.Equal(t, 1, saved["CUST-A"][domain.CategoryAccount])
		assert.Equal(t, 1, saved["CUST-A"][domain.CategoryCreditCard])
		assert.Equal(t, 0, saved["CUST-A"][domain.CategoryCredit])

		// Cliente B: todos os quatro tipos gravados
		assert.Equal(t, 1, saved["CUST-B"][domain.CategoryAccount])
		assert.Equal(t, 1, saved["CUST-B"][domain.CategoryCredit])
		assert.Equal(t, 0, saved["CUST-B"][domain.CategoryCreditCard])
		assert.Equal(t, 1, saved["CUST-B"][domain.CategoryDebitCard])
	})

	t.Run("Cartão de débito sem conta resolvida não gera snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newProcessorWithMocks(ctrl)
		collector := &snapshotCollector{}

		m.customerClient.EXPECT().
			GetAllCustomers(gomock.Any()).
			Return([]domain.Customer{{ID: "CUST-A"}}, nil)

		m.accountClient.EXPECT().
			GetAccountsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.creditClient.EXPECT().
			GetCreditsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.creditClient.EXPECT().
			GetCreditCardsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.debitCardClient.EXPECT().
			GetDebitCardsByCustomer(gomock.Any(), "CUST-A").
			Return([]domain.DebitCard{
				{ID: "DC-A1", PrimaryAccountID: "ACC-404"},
			}, nil)
		m.accountClient.EXPECT().
			GetAccountByID(gomock.Any(), "ACC-404").
			Return(nil, &upstream.NotFoundError{Upstream: "account-service", Operation: "account-by-id", Key: "ACC-404"})

		m.repo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(collector.save).
			AnyTimes()

		require.NoError(t, service.ProcessDailyBalances(ctx))
		assert.Empty(t, collector.snapshots)
	})

	t.Run("Erro de gravação é engolido e a rodada termina com sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newProcessorWithMocks(ctrl)

		m.customerClient.EXPECT().
			GetAllCustomers(gomock.Any()).
			Return([]domain.Customer{{ID: "CUST-A"}}, nil)

		m.accountClient.EXPECT().
			GetAccountsByCustomer(gomock.Any(), "CUST-A").
			Return([]domain.Account{
				{ID: "ACC-A1", AccountType: domain.AccountTypeSavings, Balance: 100},
			}, nil)
		m.creditClient.EXPECT().
			GetCreditsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.creditClient.EXPECT().
			GetCreditCardsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.debitCardClient.EXPECT().
			GetDebitCardsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)

		m.repo.EXPECT().
			Save(gomock.Any()).
			Return(nil, errors.New("disk full"))

		assert.NoError(t, service.ProcessDailyBalances(ctx))
	})

	t.Run("Snapshot gravado carrega categoria, subtipo e data do dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newProcessorWithMocks(ctrl)

		m.customerClient.EXPECT().
			GetAllCustomers(gomock.Any()).
			Return([]domain.Customer{{ID: "CUST-A"}}, nil)

		m.accountClient.EXPECT().
			GetAccountsByCustomer(gomock.Any(), "CUST-A").
			Return([]domain.Account{
				{ID: "ACC-A1", AccountType: domain.AccountTypeFixedTerm, Balance: 1234.56},
			}, nil)
		m.creditClient.EXPECT().
			GetCreditsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.creditClient.EXPECT().
			GetCreditCardsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)
		m.debitCardClient.EXPECT().
			GetDebitCardsByCustomer(gomock.Any(), "CUST-A").
			Return(nil, nil)

		m.repo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(balance *domain.DailyBalance) (*domain.DailyBalance, error) {
				assert.Equal(t, "CUST-A", balance.CustomerID)
				assert.Equal(t, "ACC-A1", balance.ProductID)
				assert.Equal(t, domain.CategoryAccount, balance.ProductType)
				assert.Equal(t, domain.SubTypeFixedTerm, balance.SubType)
				assert.Equal(t, 1234.56, balance.Balance)
				assert.WithinDuration(t, time.Now(), balance.Date, time.Minute)

				saved := *balance
				saved.ID = "generated-id"
				return &saved, nil
			})

		assert.NoError(t, service.ProcessDailyBalances(ctx))
	})
}
