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

func newMockRepo(t *testing.T) (*WebhookRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &WebhookRepo{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestListActiveEndpoints(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "account_id", "url", "secret", "events", "is_active", "created_at"}).
		AddRow("we-1", "acct-1", "https://merchant.example.com/hooks", "whsec_test",
			[]byte(`["charge.success","hold.created"]`), true, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM webhook_endpoints").
		WithArgs("acct-1").
		WillReturnRows(rows)

	endpoints, err := repo.ListActiveEndpoints(context.Background(), "acct-1")

	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, "we-1", endpoints[0].ID)
	assert.Equal(t, "whsec_test", endpoints[0].Secret)
	assert.True(t, endpoints[0].Events.Contains("charge.success"))
	assert.False(t, endpoints[0].Events.Contains("disburse.success"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDelivery(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO webhook_deliveries").
		WithArgs("wd-1", "we-1", "charge.success", sqlmock.AnyArg(), models.DeliveryStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDelivery(context.Background(), &models.WebhookDelivery{
		ID:                "wd-1",
		WebhookEndpointID: "we-1",
		EventType:         "charge.success",
		Payload:           models.Metadata{"event": "charge.success"},
		Status:            models.DeliveryStatusPending,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDelivered(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE webhook_deliveries").
		WithArgs("wd-1", models.DeliveryStatusDelivered, 200, `{"ok":true}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkDelivered(context.Background(), "wd-1", 200, `{"ok":true}`)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailedWithoutResponse(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Status 0 means no HTTP response and is stored as NULL
	mock.ExpectExec("UPDATE webhook_deliveries").
		WithArgs("wd-1", models.DeliveryStatusFailed, nil, "connection refused").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), "wd-1", 0, "connection refused")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
