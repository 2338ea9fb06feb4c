package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-commerce/internal/export"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	SheetUsers    = "Kunder"
	SheetProducts = "Produkter"
	SheetOrders   = "Ordrer"
)

type exportUseCase struct {
	repo   export.Repository
	logger logger.ZapLogger
}

func NewExportUseCase(repo export.Repository, log logger.ZapLogger) export.UseCase {
	return &exportUseCase{repo: repo, logger: log}
}

func (uc *exportUseCase) ExportUsers(ctx context.Context) ([]byte, error) {
	users, err := uc.repo.Users(ctx)
	if err != nil {
		return nil, err
	}

	header := []any{"Navn", "E-post", "Firma", "Org.nr", "Telefon", "Adresse", "Postnr", "Sted", "Godkjent", "Verifisert", "Registrert"}
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{
			u.Name, u.Email, u.CompanyName,
			deref(u.OrgNumber), deref(u.Phone), deref(u.Address), deref(u.PostalCode), deref(u.City),
			yesNo(u.IsApproved), yesNo(u.IsVerified),
			utils.FormatDate(u.CreatedAt),
		})
	}
	return uc.render(SheetUsers, header, rows)
}

func (uc *exportUseCase) ExportProducts(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, err
	}

	header := []any{"SKU", "Navn", "Kategori", "Pris", "Enhet", "Lager", "Aktiv"}
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		qty := 0
		if p.Quantity != nil {
			qty = *p.Quantity
		}
		rows = append(rows, []any{p.SKU, p.Name, deref(p.CategoryName), p.Price, p.Unit, qty, yesNo(p.IsActive)})
	}
	return uc.render(SheetProducts, header, rows)
}

func (uc *exportUseCase) ExportOrders(ctx context.Context) ([]byte, error) {
	orders, err := uc.repo.Orders(ctx)
	if err != nil {
		return nil, err
	}

	header := []any{"Ordrenr", "Dato", "Status", "Kunde", "Firma", "E-post", "Varelinjer", "Sum", "Rabatt", "Total"}
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{
			o.OrderNumber, utils.FormatDateTime(o.CreatedAt), o.Status,
			o.CustomerName, o.CompanyName, o.CustomerEmail,
			o.ItemCount, o.Subtotal, o.DiscountTotal, o.Total,
		})
	}
	return uc.render(SheetOrders, header, rows)
}

// render writes a single-sheet workbook with a bold frozen header row.
func (uc *exportUseCase) render(sheet string, header []any, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			uc.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	uc.logger.Info("Export generated", zap.String("sheet", sheet), zap.Int("rows", len(rows)))
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Ja"
	}
	return "Nei"
}
