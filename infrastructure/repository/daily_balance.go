package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/bankcore/report-service/infrastructure/database/postgres"
	"github.com/bankcore/report-service/internal/domain"
	"github.com/bankcore/report-service/pkg/utils"
)

const (
	dailyBalancesTable = "daily_balances db"
)

// DailyBalanceRepository é o armazenamento append-only de snapshots de saldo.
// Linhas nunca são atualizadas nem removidas por este serviço.
type DailyBalanceRepository interface {
	Save(balance *domain.DailyBalance) (*domain.DailyBalance, error)
	FindByCustomerAndDateRange(customerID string, from, to time.Time) ([]domain.DailyBalance, error)
}

type dailyBalanceRepository struct {
	conn *postgres.Connection
}

func NewDailyBalanceRepository(conn *postgres.Connection) DailyBalanceRepository {
	return &dailyBalanceRepository{
		conn: conn,
	}
}

// Save insere um snapshot e devolve a linha com o ID gerado.
func (r *dailyBalanceRepository) Save(balance *domain.DailyBalance) (*domain.DailyBalance, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do snapshot")
	}

	var subType sql.NullString
	if balance.SubType != "" {
		subType = sql.NullString{String: string(balance.SubType), Valid: true}
	}

	query, args, err := squirrel.
		Insert("daily_balances").
		Columns("id", "customer_id", "product_id", "product_type", "sub_type", "balance", "date").
		Values(
			id,
			balance.CustomerID,
			balance.ProductID,
			string(balance.ProductType),
			subType,
			balance.Balance,
			balance.Date,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}

	saved := *balance
	saved.ID = id
	return &saved, nil
}

// FindByCustomerAndDateRange busca os snapshots de um cliente dentro da
// janela [from, to].
func (r *dailyBalanceRepository) FindByCustomerAndDateRange(customerID string, from, to time.Time) ([]domain.DailyBalance, error) {
	query, args, err := squirrel.
		Select("db.id, db.customer_id, db.product_id, db.product_type, db.sub_type, db.balance, db.date").
		From(dailyBalancesTable).
		Where(squirrel.Eq{"db.customer_id": customerID}).
		Where(squirrel.GtOrEq{"db.date": from}).
		Where(squirrel.LtOrEq{"db.date": to}).
		OrderBy("db.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	balances := make([]domain.DailyBalance, 0)
	for rows.Next() {
		balance, err := r.scanBalance(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear snapshot")
		}
		balances = append(balances, *balance)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return balances, nil
}

func (r *dailyBalanceRepository) scanBalance(rows *sql.Rows) (*domain.DailyBalance, error) {
	balance := &domain.DailyBalance{}
	var productType string
	var subType sql.NullString

	err := rows.Scan(
		&balance.ID,
		&balance.CustomerID,
		&balance.ProductID,
		&productType,
		&subType,
		&balance.Balance,
		&balance.Date,
	)
	if err != nil {
		return nil, err
	}

	balance.ProductType = domain.ProductCategory(productType)
	if subType.Valid {
		balance.SubType = domain.ProductSubType(subType.String)
	}

	return balance, nil
}
