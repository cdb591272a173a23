package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bankcore/report-service/infrastructure/repository"
	"github.com/bankcore/report-service/infrastructure/upstream/accountclient"
	"github.com/bankcore/report-service/infrastructure/upstream/creditclient"
	"github.com/bankcore/report-service/infrastructure/upstream/debitcardclient"
	"github.com/bankcore/report-service/infrastructure/upstream/transactionclient"
	"github.com/bankcore/report-service/internal/domain"
)

// Service implementa o motor de agregação: fan-out concorrente para os
// upstreams, fusão dos produtos em uma visão única por cliente e os resumos
// derivados.
type Service struct {
	accountClient     accountclient.Client
	creditClient      creditclient.Client
	debitCardClient   debitcardclient.Client
	transactionClient transactionclient.Client
	dailyBalanceRepo  repository.DailyBalanceRepository
}

func NewService(
	accountClient accountclient.Client,
	creditClient creditclient.Client,
	debitCardClient debitcardclient.Client,
	transactionClient transactionclient.Client,
	dailyBalanceRepo repository.DailyBalanceRepository,
) Reporter {
	return &Service{
		accountClient:     accountClient,
		creditClient:      creditClient,
		debitCardClient:   debitCardClient,
		transactionClient: transactionClient,
		dailyBalanceRepo:  dailyBalanceRepo,
	}
}

// GetCustomerBalances dispara as quatro consultas de produto em paralelo e
// espera todas. A junção aqui é fail-fast: qualquer erro das quatro consultas
// de topo falha a operação inteira, sem resultado parcial. A única exceção é
// a resolução de conta de cada cartão de débito, que descarta o cartão com
// log em vez de propagar.
func (s *Service) GetCustomerBalances(ctx context.Context, customerID string) (*domain.CustomerBalances, error) {
	var (
		accounts    []domain.Account
		creditCards []domain.CreditCard
		credits     []domain.Credit
		debitCards  []domain.DebitCard
	)

	errCh := make(chan error, 4)
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		var err error
		accounts, err = s.accountClient.GetAccountsByCustomer(ctx, customerID)
		errCh <- err
	}()

	go func() {
		defer wg.Done()
		var err error
		creditCards, err = s.creditClient.GetCreditCardsByCustomer(ctx, customerID)
		errCh <- err
	}()

	go func() {
		defer wg.Done()
		var err error
		credits, err = s.creditClient.GetCreditsByCustomer(ctx, customerID)
		errCh <- err
	}()

	go func() {
		defer wg.Done()
		var err error
		debitCards, err = s.debitCardClient.GetDebitCardsByCustomer(ctx, customerID)
		errCh <- err
	}()

	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	products, err := mapProducts(accounts, creditCards, credits)
	if err != nil {
		return nil, err
	}

	products = append(products, s.resolveDebitCards(ctx, debitCards)...)

	return &domain.CustomerBalances{
		CustomerID: customerID,
		Products:   products,
	}, nil
}

// mapProducts converte cada variante de produto em um ProductBalance usando a
// tabela fixa de categoria/subtipo. Variante sem mapeamento falha alto.
func mapProducts(accounts []domain.Account, creditCards []domain.CreditCard, credits []domain.Credit) ([]domain.ProductBalance, error) {
	products := make([]domain.ProductBalance, 0, len(accounts)+len(creditCards)+len(credits))

	for _, account := range accounts {
		subType, err := domain.SubTypeForAccount(account.AccountType)
		if err != nil {
			return nil, err
		}
		products = append(products, domain.ProductBalance{
			ProductID:        account.ID,
			Type:             domain.CategoryAccount,
			SubType:          subType,
			AvailableBalance: account.Balance,
			CreatedAt:        account.CreatedAt,
		})
	}

	for _, card := range creditCards {
		subType, err := domain.SubTypeForCreditCard(card.CardType)
		if err != nil {
			return nil, err
		}
		products = append(products, domain.ProductBalance{
			ProductID:        card.ID,
			Type:             domain.CategoryCreditCard,
			SubType:          subType,
			AvailableBalance: card.AvailableBalance,
			CreatedAt:        card.CreatedAt,
		})
	}

	for _, credit := range credits {
		subType, err := domain.SubTypeForCredit(credit.CreditType)
		if err != nil {
			return nil, err
		}
		products = append(products, domain.ProductBalance{
			ProductID:        credit.ID,
			Type:             domain.CategoryCredit,
			SubType:          subType,
			AvailableBalance: credit.RemainingBalance,
			CreatedAt:        credit.CreatedAt,
		})
	}

	return products, nil
}

// resolveDebitCards resolve a conta principal de cada cartão em paralelo.
// Cartão cuja conta não pôde ser resolvida é descartado do resultado, nunca
// derruba a consulta.
func (s *Service) resolveDebitCards(ctx context.Context, debitCards []domain.DebitCard) []domain.ProductBalance {
	if len(debitCards) == 0 {
		return nil
	}

	resolved := make([]domain.ProductBalance, len(debitCards))
	ok := make([]bool, len(debitCards))

	var wg sync.WaitGroup
	for i, card := range debitCards {
		wg.Add(1)
		go func(i int, card domain.DebitCard) {
			defer wg.Done()

			account, err := s.accountClient.GetAccountByID(ctx, card.PrimaryAccountID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"card_id":            card.ID,
					"primary_account_id": card.PrimaryAccountID,
					"error":              err.Error(),
				}).Warn("Cartão de débito descartado: falha ao resolver a conta principal")
				return
			}

			resolved[i] = domain.ProductBalance{
				ProductID:        card.ID,
				Type:             domain.CategoryDebitCard,
				AvailableBalance: account.Balance,
				CreatedAt:        card.CreatedAt,
			}
			ok[i] = true
		}(i, card)
	}
	wg.Wait()

	products := make([]domain.ProductBalance, 0, len(debitCards))
	for i := range resolved {
		if ok[i] {
			products = append(products, resolved[i])
		}
	}

	return products
}

// GetResumeByTypeAndDates filtra os saldos do cliente por tipo de produto
// (categoria OU subtipo) e por janela de criação. Limite ausente libera o
// lado correspondente do filtro.
func (s *Service) GetResumeByTypeAndDates(ctx context.Context, typeProduct, customerID string, startDate, endDate *time.Time) (*domain.CustomerBalances, error) {
	balances, err := s.GetCustomerBalances(ctx, customerID)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.ProductBalance, 0, len(balances.Products))
	for _, product := range balances.Products {
		if !matchesType(product, typeProduct) {
			continue
		}
		if !withinDates(product.CreatedAt, startDate, endDate) {
			continue
		}
		filtered = append(filtered, product)
	}

	return &domain.CustomerBalances{
		CustomerID: balances.CustomerID,
		Products:   filtered,
	}, nil
}

func matchesType(product domain.ProductBalance, typeProduct string) bool {
	if typeProduct == "" {
		return true
	}
	return string(product.Type) == typeProduct || string(product.SubType) == typeProduct
}

func withinDates(createdAt time.Time, startDate, endDate *time.Time) bool {
	created := dateOnly(createdAt)
	if startDate != nil && created.Before(dateOnly(*startDate)) {
		return false
	}
	if endDate != nil && created.After(dateOnly(*endDate)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
