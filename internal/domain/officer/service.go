package officer

import (
	"context"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

type OfficerService interface {
	Create(ctx context.Context, identity user.Identity, req CreateOfficerRequest) (OfficerResponse, error)

	Get(ctx context.Context, identity user.Identity, id string) (OfficerResponse, error)

	List(ctx context.Context, identity user.Identity, filter OfficerFilter) ([]OfficerResponse, int64, error)

	Update(ctx context.Context, identity user.Identity, id string, req UpdateOfficerRequest) (OfficerResponse, error)

	// Deactivate is the soft delete: the officer's status flips to
	// INACTIVE and the record stays queryable.
	Deactivate(ctx context.Context, identity user.Identity, id string) error

	ListStations(ctx context.Context, identity user.Identity) ([]string, error)
}
