package service

import (
	"context"

	"bitablog/internal/domain/entity"
)

// BitableClient is the upstream tabular-data API. Each call is a single attempt.
type BitableClient interface {
	// TenantAccessToken exchanges the configured app credentials for a tenant token.
	TenantAccessToken(ctx context.Context) (entity.Token, error)

	// ListRecords returns every record of the configured table.
	ListRecords(ctx context.Context, token string) ([]entity.RawRecord, error)
}
