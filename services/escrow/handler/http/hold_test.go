package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/services/escrow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEscrowContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set("account", &models.Account{ID: "acct-1", BusinessName: "Soko Mart"})
	c.Set("mode", models.ModeSandbox)
	return c, rec
}

func TestHoldHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockEscrowUC(ctrl)
	h := NewEscrowHandler(uc)

	uc.EXPECT().
		Hold(gomock.Any(), gomock.Any(), models.ModeSandbox, gomock.Any()).
		Return(&models.HoldResponse{
			HoldID:    "hold_1a2b3c4d5e6f",
			Status:    models.HoldStatusHeld,
			ExpiresAt: time.Now().Add(72 * time.Hour),
			Amount:    10000,
			Currency:  "KES",
			Mode:      models.ModeSandbox,
		}, nil)

	c, rec := newEscrowContext(t, http.MethodPost, "/v1/holds", `{"transaction_id":"txn_abc123def456"}`)
	require.NoError(t, h.Hold(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    models.HoldResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "hold_1a2b3c4d5e6f", resp.Data.HoldID)
}

func TestHoldHandlerRequiresTransactionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewEscrowHandler(mocks.NewMockEscrowUC(ctrl))

	c, rec := newEscrowContext(t, http.MethodPost, "/v1/holds", `{}`)
	require.NoError(t, h.Hold(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHoldHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "transaction not found",
			err:      models.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "wrong state",
			err:      models.ErrInvalidState,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duplicate hold",
			err:      models.ErrConflict,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockEscrowUC(ctrl)
			h := NewEscrowHandler(uc)

			uc.EXPECT().
				Hold(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			c, rec := newEscrowContext(t, http.MethodPost, "/v1/holds", `{"transaction_id":"txn_abc123def456"}`)
			require.NoError(t, h.Hold(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestReleaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockEscrowUC(ctrl)
	h := NewEscrowHandler(uc)

	uc.EXPECT().
		Release(gomock.Any(), gomock.Any(), models.ModeSandbox, "hold_1a2b3c4d5e6f").
		Return(&models.ReleaseResponse{
			HoldID:     "hold_1a2b3c4d5e6f",
			Status:     models.HoldStatusReleased,
			Amount:     10000,
			Currency:   "KES",
			ReleasedAt: time.Now(),
			Mode:       models.ModeSandbox,
		}, nil)

	c, rec := newEscrowContext(t, http.MethodPost, "/v1/holds/hold_1a2b3c4d5e6f/release", "")
	c.SetParamNames("id")
	c.SetParamValues("hold_1a2b3c4d5e6f")
	require.NoError(t, h.Release(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDisburseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockEscrowUC(ctrl)
	h := NewEscrowHandler(uc)

	uc.EXPECT().
		Disburse(gomock.Any(), gomock.Any(), models.ModeSandbox, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Account, _ models.Mode, req *models.DisburseRequest) (*models.DisburseResponse, error) {
			// The hold id comes from the path, not the body
			assert.Equal(t, "hold_1a2b3c4d5e6f", req.HoldID)
			return &models.DisburseResponse{
				HoldID:      req.HoldID,
				Status:      "DISBURSING",
				TotalAmount: 10000,
				Currency:    "KES",
				Mode:        models.ModeSandbox,
			}, nil
		})

	body := `{"splits":[{"phone":"0712345678","percentage":100}]}`
	c, rec := newEscrowContext(t, http.MethodPost, "/v1/holds/hold_1a2b3c4d5e6f/disburse", body)
	c.SetParamNames("id")
	c.SetParamValues("hold_1a2b3c4d5e6f")
	require.NoError(t, h.Disburse(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDisburseHandlerInvalidSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockEscrowUC(ctrl)
	h := NewEscrowHandler(uc)

	uc.EXPECT().
		Disburse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidSplit)

	body := `{"splits":[{"phone":"0712345678","percentage":50}]}`
	c, rec := newEscrowContext(t, http.MethodPost, "/v1/holds/hold_1a2b3c4d5e6f/disburse", body)
	c.SetParamNames("id")
	c.SetParamValues("hold_1a2b3c4d5e6f")
	require.NoError(t, h.Disburse(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
