package dailybalance

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bankcore/report-service/infrastructure/repository"
	"github.com/bankcore/report-service/infrastructure/upstream/accountclient"
	"github.com/bankcore/report-service/infrastructure/upstream/creditclient"
	"github.com/bankcore/report-service/infrastructure/upstream/customerclient"
	"github.com/bankcore/report-service/infrastructure/upstream/debitcardclient"
	"github.com/bankcore/report-service/internal/domain"
)

// Processor é o contrato do cálculo de saldos diários usado pelo agendador.
type Processor interface {
	ProcessDailyBalances(ctx context.Context) error
}

// Service percorre a população de clientes e grava um snapshot de saldo por
// produto. Cada cliente é processado de forma independente: a falha de um
// sub-task ou de um cliente nunca bloqueia os demais.
type Service struct {
	customerClient  customerclient.Client
	accountClient   accountclient.Client
	creditClient    creditclient.Client
	debitCardClient debitcardclient.Client
	repo            repository.DailyBalanceRepository

	maxConcurrentCustomers int
}

func NewService(
	customerClient customerclient.Client,
	accountClient accountclient.Client,
	creditClient creditclient.Client,
	debitCardClient debitcardclient.Client,
	repo repository.DailyBalanceRepository,
	maxConcurrentCustomers int,
) *Service {
	if maxConcurrentCustomers <= 0 {
		maxConcurrentCustomers = 1
	}

	return &Service{
		customerClient:         customerClient,
		accountClient:          accountClient,
		creditClient:           creditClient,
		debitCardClient:        debitCardClient,
		repo:                   repo,
		maxConcurrentCustomers: maxConcurrentCustomers,
	}
}

// ProcessDailyBalances executa uma rodada completa do cálculo. A única falha
// que derruba a rodada é a busca da lista de clientes: não existe lista
// parcial. Depois disso a rodada termina com sucesso assim que todos os
// clientes tiverem sido tentados.
func (s *Service) ProcessDailyBalances(ctx context.Context) error {
	logrus.Info("Iniciando cálculo de saldos diários")
	startTime := time.Now()

	customers, err := s.customerClient.GetAllCustomers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar a lista de clientes; rodada abortada")
		return err
	}

	if len(customers) == 0 {
		logrus.Info("Nenhum cliente encontrado para o cálculo de saldos diários")
		return nil
	}

	// Paralelismo limitado entre clientes, como nos agendadores de
	// sincronização.
	semaphore := make(chan struct{}, s.maxConcurrentCustomers)
	var wg sync.WaitGroup

	for _, customer := range customers {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(customerID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			s.processCustomer(ctx, customerID)
		}(customer.ID)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"customers": len(customers),
		"duration":  time.Since(startTime).String(),
	}).Info("Cálculo de saldos diários concluído")

	return nil
}

// processCustomer dispara os quatro sub-tasks de produto em paralelo com
// junção collect-all: cada sub-task captura o próprio erro, loga e vira
// "zero produtos daquele tipo" sem abortar os demais.
func (s *Service) processCustomer(ctx context.Context, customerID string) {
	subTasks := []struct {
		name string
		run  func(context.Context, string)
	}{
		{"accounts", s.saveAccountBalances},
		{"credits", s.saveCreditBalances},
		{"credit-cards", s.saveCreditCardBalances},
		{"debit-cards", s.saveDebitCardBalances},
	}

	var wg sync.WaitGroup
	for _, subTask := range subTasks {
		wg.Add(1)
		go func(name string, run func(context.Context, string)) {
			defer wg.Done()
			run(ctx, customerID)
		}(subTask.name, subTask.run)
	}
	wg.Wait()
}

func (s *Service) saveAccountBalances(ctx context.Context, customerID string) {
	accounts, err := s.accountClient.GetAccountsByCustomer(ctx, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Warn("Sem contas para o cliente; seguindo sem contas")
		return
	}

	for _, account := range accounts {
		subType, err := domain.SubTypeForAccount(account.AccountType)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"product_id":  account.ID,
				"error":       err.Error(),
			}).Warn("Conta com tipo não mapeado ignorada no snapshot")
			continue
		}
		s.saveDailyBalance(customerID, account.ID, domain.CategoryAccount, subType, account.Balance)
	}
}

func (s *Service) saveCreditBalances(ctx context.Context, customerID string) {
	credits, err := s.creditClient.GetCreditsByCustomer(ctx, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Warn("Sem créditos para o cliente; seguindo sem créditos")
		return
	}

	for _, credit := range credits {
		subType, err := domain.SubTypeForCredit(credit.CreditType)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"product_id":  credit.ID,
				"error":       err.Error(),
			}).Warn("Crédito com tipo não mapeado ignorado no snapshot")
			continue
		}
		s.saveDailyBalance(customerID, credit.ID, domain.CategoryCredit, subType, credit.RemainingBalance)
	}
}

func (s *Service) saveCreditCardBalances(ctx context.Context, customerID string) {
	cards, err := s.creditClient.GetCreditCardsByCustomer(ctx, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Warn("Sem cartões de crédito para o cliente; seguindo sem cartões")
		return
	}

	for _, card := range cards {
		subType, err := domain.SubTypeForCreditCard(card.CardType)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"product_id":  card.ID,
				"error":       err.Error(),
			}).Warn("Cartão de crédito com tipo não mapeado ignorado no snapshot")
			continue
		}
		s.saveDailyBalance(customerID, card.ID, domain.CategoryCreditCard, subType, card.AvailableBalance)
	}
}

// saveDebitCardBalances resolve a conta principal de cada cartão de débito.
// Cartão não resolvido é descartado com log, a mesma política do caminho de
// leitura em tempo real.
func (s *Service) saveDebitCardBalances(ctx context.Context, customerID string) {
	cards, err := s.debitCardClient.GetDebitCardsByCustomer(ctx, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Warn("Sem cartões de débito para o cliente; seguindo sem cartões")
		return
	}

	for _, card := range cards {
		account, err := s.accountClient.GetAccountByID(ctx, card.PrimaryAccountID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id":        customerID,
				"card_id":            card.ID,
				"primary_account_id": card.PrimaryAccountID,
				"error":              err.Error(),
			}).Warn("Cartão de débito sem conta resolvida; snapshot descartado")
			continue
		}
		s.saveDailyBalance(customerID, card.ID, domain.CategoryDebitCard, "", account.Balance)
	}
}

// saveDailyBalance grava um snapshot. Falha de gravação é logada e não
// interrompe o restante: o armazenamento é append-only e um cliente gravado
// parcialmente é um modo de falha aceito.
func (s *Service) saveDailyBalance(customerID, productID string, productType domain.ProductCategory, subType domain.ProductSubType, balance float64) {
	snapshot := &domain.DailyBalance{
		CustomerID:  customerID,
		ProductID:   productID,
		ProductType: productType,
		SubType:     subType,
		Balance:     balance,
		Date:        time.Now(),
	}

	saved, err := s.repo.Save(snapshot)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id":  customerID,
			"product_id":   productID,
			"product_type": string(productType),
			"error":        err.Error(),
		}).Error("Erro ao salvar snapshot de saldo diário")
		return
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":  saved.ID,
		"product_type": string(productType),
		"product_id":   productID,
	}).Debug("Snapshot de saldo diário salvo")
}
