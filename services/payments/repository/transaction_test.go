package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PaymentRepo{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	description := "Order 42"
	err := repo.CreateTransaction(context.Background(), &models.Transaction{
		ID:            "txn_abc123def456",
		AccountID:     "acct-1",
		Amount:        10000,
		Currency:      "KES",
		Phone:         "254712345678",
		PaymentMethod: models.ProviderMpesa,
		Description:   &description,
		Status:        models.TransactionStatusPending,
		FeeAmount:     2250,
		FeePercentage: 0.025,
		MerchantName:  "Soko Mart",
		CheckoutURL:   "https://pay.example.com/checkout?txn=txn_abc123def456",
		Metadata:      models.Metadata{"mode": "sandbox"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	ref := "SGH3KL2M1N"

	mock.ExpectExec("UPDATE transactions").
		WithArgs("txn_abc123def456", models.TransactionStatusSuccess, ref, models.TransactionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.FinalizeTransaction(context.Background(), "txn_abc123def456", models.TransactionStatusSuccess, &ref)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeTransactionAlreadyFinalized(t *testing.T) {
	repo, mock := newMockRepo(t)
	ref := "SGH3KL2M1N"

	// The PENDING guard matched no rows: the transaction was finalized
	// by another path and must not be flipped again
	mock.ExpectExec("UPDATE transactions").
		WithArgs("txn_abc123def456", models.TransactionStatusSuccess, ref, models.TransactionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.FinalizeTransaction(context.Background(), "txn_abc123def456", models.TransactionStatusSuccess, &ref)

	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByCheckoutRequestID(t *testing.T) {
	repo, mock := newMockRepo(t)

	columns := []string{
		"id", "account_id", "amount", "currency", "phone", "payment_method",
		"description", "status", "fee_amount", "fee_percentage", "external_ref",
		"redirect_url", "cancel_url", "merchant_name", "checkout_url",
		"provider_ref", "metadata", "created_at", "completed_at",
	}
	rows := sqlmock.NewRows(columns).AddRow(
		"txn_abc123def456", "acct-1", int64(10000), "KES", "254712345678", "MPESA",
		nil, models.TransactionStatusPending, int64(2250), 0.025, nil,
		nil, nil, "Soko Mart", "https://pay.example.com/checkout?txn=txn_abc123def456",
		nil, []byte(`{"checkout_request_id":"ws_CO_123","mode":"live"}`), time.Now(), nil,
	)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("ws_CO_123").
		WillReturnRows(rows)

	txn, err := repo.GetTransactionByCheckoutRequestID(context.Background(), "ws_CO_123")

	require.NoError(t, err)
	assert.Equal(t, "txn_abc123def456", txn.ID)
	assert.Equal(t, "ws_CO_123", txn.Metadata["checkout_request_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByCheckoutRequestIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("ws_CO_999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	txn, err := repo.GetTransactionByCheckoutRequestID(context.Background(), "ws_CO_999")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, txn)
}

func TestMergeTransactionMetadata(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE transactions").
		WithArgs("txn_abc123def456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MergeTransactionMetadata(context.Background(), "txn_abc123def456", models.Metadata{
		"checkout_request_id": "ws_CO_123",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
