package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/services/escrow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type escrowFixture struct {
	repo       *mocks.MockEscrowRepo
	simulator  *mocks.MockPayoutSimulator
	gw         *mocks.MockEscrowGW
	dispatcher *dispatcherStub
	uc         *escrowUC
}

// dispatcherStub records dispatched webhook events without HTTP
type dispatcherStub struct {
	events []string
	data   []map[string]interface{}
}

func (d *dispatcherStub) Dispatch(_ context.Context, _ string, eventType string, data map[string]interface{}) error {
	d.events = append(d.events, eventType)
	d.data = append(d.data, data)
	return nil
}

func newEscrowFixture(t *testing.T) *escrowFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &escrowFixture{
		repo:       mocks.NewMockEscrowRepo(ctrl),
		simulator:  mocks.NewMockPayoutSimulator(ctrl),
		gw:         mocks.NewMockEscrowGW(ctrl),
		dispatcher: &dispatcherStub{},
	}
	f.uc = NewEscrowUC(f.repo, f.simulator, f.gw, f.dispatcher).(*escrowUC)
	return f
}

func testAccount() *models.Account {
	return &models.Account{ID: "acct-1", BusinessName: "Soko Mart"}
}

func successTransaction() *models.Transaction {
	return &models.Transaction{
		ID:            "txn_abc123def456",
		AccountID:     "acct-1",
		Amount:        10000,
		Currency:      "KES",
		Phone:         "254712345678",
		PaymentMethod: models.ProviderMpesa,
		Status:        models.TransactionStatusSuccess,
	}
}

func TestHoldCreates(t *testing.T) {
	f := newEscrowFixture(t)
	txn := successTransaction()

	f.repo.EXPECT().GetAccountTransaction(gomock.Any(), "acct-1", txn.ID).Return(txn, nil)
	f.repo.EXPECT().HasActiveHold(gomock.Any(), txn.ID).Return(false, nil)

	var created *models.EscrowHold
	f.repo.EXPECT().
		CreateHold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hold *models.EscrowHold) error {
			created = hold
			return nil
		})
	f.gw.EXPECT().PublishHoldEvent(gomock.Any(), gomock.Any()).Return(nil)

	before := time.Now()
	resp, err := f.uc.Hold(context.Background(), testAccount(), models.ModeSandbox, &models.HoldRequest{
		TransactionID: txn.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, models.HoldStatusHeld, resp.Status)
	assert.Equal(t, int64(10000), resp.Amount)
	assert.Equal(t, "KES", resp.Currency)
	assert.Regexp(t, `^hold_[0-9a-f]{12}$`, resp.HoldID)

	// Defaults: manual condition, 72h expiry
	require.NotNil(t, created)
	assert.Equal(t, DefaultHoldCondition, created.ReleaseMethod)
	assert.WithinDuration(t, before.Add(72*time.Hour), created.ExpiresAt, time.Minute)
	assert.Equal(t, txn.Phone, created.Phone)

	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, models.EventHoldCreated, f.dispatcher.events[0])
	assert.Equal(t, txn.ID, f.dispatcher.data[0]["transaction_id"])
}

func TestHoldCustomConditionAndExpiry(t *testing.T) {
	f := newEscrowFixture(t)
	txn := successTransaction()

	f.repo.EXPECT().GetAccountTransaction(gomock.Any(), "acct-1", txn.ID).Return(txn, nil)
	f.repo.EXPECT().HasActiveHold(gomock.Any(), txn.ID).Return(false, nil)

	var created *models.EscrowHold
	f.repo.EXPECT().
		CreateHold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hold *models.EscrowHold) error {
			created = hold
			return nil
		})
	f.gw.EXPECT().PublishHoldEvent(gomock.Any(), gomock.Any()).Return(nil)

	before := time.Now()
	_, err := f.uc.Hold(context.Background(), testAccount(), models.ModeSandbox, &models.HoldRequest{
		TransactionID: txn.ID,
		Condition:     "delivery_confirmed",
		ExpiryHours:   24,
		Description:   "Order 42 escrow",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "delivery_confirmed", created.ReleaseMethod)
	assert.WithinDuration(t, before.Add(24*time.Hour), created.ExpiresAt, time.Minute)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Order 42 escrow", *created.Description)
}

func TestHoldRejectsNonSuccessTransaction(t *testing.T) {
	f := newEscrowFixture(t)
	txn := successTransaction()
	txn.Status = models.TransactionStatusPending

	f.repo.EXPECT().GetAccountTransaction(gomock.Any(), "acct-1", txn.ID).Return(txn, nil)

	resp, err := f.uc.Hold(context.Background(), testAccount(), models.ModeSandbox, &models.HoldRequest{
		TransactionID: txn.ID,
	})

	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.Nil(t, resp)
}

func TestHoldRejectsDuplicate(t *testing.T) {
	f := newEscrowFixture(t)
	txn := successTransaction()

	f.repo.EXPECT().GetAccountTransaction(gomock.Any(), "acct-1", txn.ID).Return(txn, nil)
	f.repo.EXPECT().HasActiveHold(gomock.Any(), txn.ID).Return(true, nil)

	resp, err := f.uc.Hold(context.Background(), testAccount(), models.ModeSandbox, &models.HoldRequest{
		TransactionID: txn.ID,
	})

	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Nil(t, resp)
}

func TestHoldUnknownTransaction(t *testing.T) {
	f := newEscrowFixture(t)

	f.repo.EXPECT().
		GetAccountTransaction(gomock.Any(), "acct-1", "txn_missing00000").
		Return(nil, models.ErrNotFound)

	resp, err := f.uc.Hold(context.Background(), testAccount(), models.ModeSandbox, &models.HoldRequest{
		TransactionID: "txn_missing00000",
	})

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, resp)
}
