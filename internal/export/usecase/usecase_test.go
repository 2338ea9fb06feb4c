package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/export/dto"
	"github.com/fekuna/omnipos-commerce/internal/export/mock"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExportUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	uc := NewExportUseCase(repo, logger.NewNop())

	org := "912345678"
	repo.EXPECT().Users(gomock.Any()).Return([]model.User{{
		BaseModel:   model.BaseModel{CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		Name:        "Kari Nordmann",
		Email:       "kari@example.no",
		CompanyName: "Nordmann AS",
		OrgNumber:   &org,
		IsApproved:  true,
	}}, nil)

	data, err := uc.ExportUsers(context.Background())
	require.NoError(t, err)

	rows := readSheet(t, data, SheetUsers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Navn", rows[0][0])
	assert.Equal(t, []string{"Kari Nordmann", "kari@example.no", "Nordmann AS", "912345678"}, rows[1][:4])
	assert.Equal(t, "Ja", rows[1][8])
	assert.Equal(t, "Nei", rows[1][9])
	assert.Equal(t, "05.01.2026", rows[1][10])
}

func TestExportProductsWithoutStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	uc := NewExportUseCase(repo, logger.NewNop())

	repo.EXPECT().Products(gomock.Any()).Return([]dto.ProductRow{{SKU: "KAF-1", Name: "Kaffe", Price: 89.5, Unit: "stk", IsActive: true}}, nil)

	data, err := uc.ExportProducts(context.Background())
	require.NoError(t, err)

	rows := readSheet(t, data, SheetProducts)
	require.Len(t, rows, 2)
	assert.Equal(t, "KAF-1", rows[1][0])
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "89.5", rows[1][3])
	assert.Equal(t, "0", rows[1][5])
}

func TestExportOrdersEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	uc := NewExportUseCase(repo, logger.NewNop())

	repo.EXPECT().Orders(gomock.Any()).Return([]dto.OrderRow{}, nil)

	data, err := uc.ExportOrders(context.Background())
	require.NoError(t, err)
	rows := readSheet(t, data, SheetOrders)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ordrenr", rows[0][0])
}

func TestExportPropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	uc := NewExportUseCase(repo, logger.NewNop())

	repo.EXPECT().Orders(gomock.Any()).Return(nil, errors.New("db down"))
	_, err := uc.ExportOrders(context.Background())
	assert.EqualError(t, err, "db down")
}
