package export

import "context"

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

// UseCase renders admin spreadsheets as .xlsx bytes.
type UseCase interface {
	ExportUsers(ctx context.Context) ([]byte, error)
	ExportProducts(ctx context.Context) ([]byte, error)
	ExportOrders(ctx context.Context) ([]byte, error)
}
