package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releasedHold() *models.EscrowHold {
	transactionID := "txn_abc123def456"
	releasedAt := time.Now()
	return &models.EscrowHold{
		ID:            "hold_1a2b3c4d5e6f",
		AccountID:     "acct-1",
		TransactionID: &transactionID,
		Amount:        10000,
		Currency:      "KES",
		Phone:         "254712345678",
		PaymentMethod: models.ProviderMpesa,
		Status:        models.HoldStatusReleased,
		ReleaseMethod: "api",
		ReleasedAt:    &releasedAt,
	}
}

func TestDisburseFanOut(t *testing.T) {
	f := newEscrowFixture(t)
	hold := releasedHold()

	f.repo.EXPECT().GetHold(gomock.Any(), "acct-1", hold.ID).Return(hold, nil)

	var legs []*models.Disbursement
	f.repo.EXPECT().
		CreateDisbursements(gomock.Any(), hold.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, created []*models.Disbursement) error {
			legs = created
			return nil
		})
	f.simulator.EXPECT().SchedulePayoutOutcome(gomock.Any()).Times(2)
	f.gw.EXPECT().PublishDisburseEvent(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.Disburse(context.Background(), testAccount(), models.ModeSandbox, &models.DisburseRequest{
		HoldID: hold.ID,
		Splits: []models.Split{
			{Phone: "0712345678", Percentage: 70, Name: "Seller"},
			{Phone: "0789012345", Percentage: 30, Name: "Courier"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "DISBURSING", resp.Status)
	assert.Equal(t, int64(10000), resp.TotalAmount)
	require.Len(t, resp.Splits, 2)

	assert.Equal(t, int64(7000), resp.Splits[0].Amount)
	assert.Equal(t, int64(3000), resp.Splits[1].Amount)
	assert.Equal(t, "254712***678", resp.Splits[0].Phone)
	assert.Equal(t, "254789***345", resp.Splits[1].Phone)
	assert.Equal(t, models.DisbursementStatusQueued, resp.Splits[0].Status)

	require.Len(t, legs, 2)
	assert.Equal(t, "254712345678", legs[0].RecipientPhone)
	assert.Equal(t, models.ProviderMpesa, legs[0].PaymentMethod)
	assert.Equal(t, models.DisbursementStatusQueued, legs[0].Status)
	assert.Regexp(t, `^disb_[0-9a-f]{12}$`, legs[0].ID)

	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, models.EventDisburseSuccess, f.dispatcher.events[0])
}

func TestDisburseLiveSkipsSimulator(t *testing.T) {
	f := newEscrowFixture(t)
	hold := releasedHold()

	f.repo.EXPECT().GetHold(gomock.Any(), "acct-1", hold.ID).Return(hold, nil)
	f.repo.EXPECT().CreateDisbursements(gomock.Any(), hold.ID, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishDisburseEvent(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.Disburse(context.Background(), testAccount(), models.ModeLive, &models.DisburseRequest{
		HoldID: hold.ID,
		Splits: []models.Split{{Phone: "0712345678", Percentage: 100}},
	})

	require.NoError(t, err)
	assert.Equal(t, "DISBURSING", resp.Status)
}

func TestDisbursePayoutOutcome(t *testing.T) {
	f := newEscrowFixture(t)
	hold := releasedHold()

	f.repo.EXPECT().GetHold(gomock.Any(), "acct-1", hold.ID).Return(hold, nil)

	var legs []*models.Disbursement
	f.repo.EXPECT().
		CreateDisbursements(gomock.Any(), hold.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, created []*models.Disbursement) error {
			legs = created
			return nil
		})

	var outcome func(bool, string)
	f.simulator.EXPECT().
		SchedulePayoutOutcome(gomock.Any()).
		Do(func(fn func(bool, string)) { outcome = fn })
	f.gw.EXPECT().PublishDisburseEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.Disburse(context.Background(), testAccount(), models.ModeSandbox, &models.DisburseRequest{
		HoldID: hold.ID,
		Splits: []models.Split{{Phone: "0712345678", Percentage: 100}},
	})
	require.NoError(t, err)
	require.NotNil(t, outcome)
	require.Len(t, legs, 1)

	f.repo.EXPECT().
		FinalizeDisbursement(gomock.Any(), legs[0].ID, true, "SANDBOX_B2C_1700000000000", "").
		Return(nil)
	outcome(true, "SANDBOX_B2C_1700000000000")

	f.repo.EXPECT().
		FinalizeDisbursement(gomock.Any(), legs[0].ID, false, "", "Sandbox simulated failure").
		Return(nil)
	outcome(false, "")
}

func TestDisburseSplitValidation(t *testing.T) {
	tests := []struct {
		name   string
		splits []models.Split
	}{
		{
			name:   "empty splits",
			splits: nil,
		},
		{
			name:   "missing phone",
			splits: []models.Split{{Percentage: 100}},
		},
		{
			name:   "zero percentage",
			splits: []models.Split{{Phone: "0712345678", Percentage: 0}},
		},
		{
			name: "total below 100",
			splits: []models.Split{
				{Phone: "0712345678", Percentage: 50},
				{Phone: "0789012345", Percentage: 40},
			},
		},
		{
			name: "total above 100",
			splits: []models.Split{
				{Phone: "0712345678", Percentage: 60},
				{Phone: "0789012345", Percentage: 50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEscrowFixture(t)

			resp, err := f.uc.Disburse(context.Background(), testAccount(), models.ModeSandbox, &models.DisburseRequest{
				HoldID: "hold_1a2b3c4d5e6f",
				Splits: tt.splits,
			})

			assert.ErrorIs(t, err, models.ErrInvalidSplit)
			assert.Nil(t, resp)
		})
	}
}

func TestDisburseTotalWithinTolerance(t *testing.T) {
	f := newEscrowFixture(t)
	hold := releasedHold()

	f.repo.EXPECT().GetHold(gomock.Any(), "acct-1", hold.ID).Return(hold, nil)
	f.repo.EXPECT().CreateDisbursements(gomock.Any(), hold.ID, gomock.Any()).Return(nil)
	f.simulator.EXPECT().SchedulePayoutOutcome(gomock.Any()).Times(3)
	f.gw.EXPECT().PublishDisburseEvent(gomock.Any(), gomock.Any()).Return(nil)

	// 33.33 * 3 = 99.99, inside the 0.01 tolerance
	_, err := f.uc.Disburse(context.Background(), testAccount(), models.ModeSandbox, &models.DisburseRequest{
		HoldID: hold.ID,
		Splits: []models.Split{
			{Phone: "0712345678", Percentage: 33.33},
			{Phone: "0789012345", Percentage: 33.33},
			{Phone: "0701234567", Percentage: 33.33},
		},
	})

	assert.NoError(t, err)
}

func TestDisburseRejectsNonReleasedHold(t *testing.T) {
	f := newEscrowFixture(t)
	hold := releasedHold()
	hold.Status = models.HoldStatusHeld

	f.repo.EXPECT().GetHold(gomock.Any(), "acct-1", hold.ID).Return(hold, nil)

	resp, err := f.uc.Disburse(context.Background(), testAccount(), models.ModeSandbox, &models.DisburseRequest{
		HoldID: hold.ID,
		Splits: []models.Split{{Phone: "0712345678", Percentage: 100}},
	})

	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.Nil(t, resp)
}
