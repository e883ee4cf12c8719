package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// SnapshotStore persists computed projections in the projection_snapshots
// table. The projection payload is stored verbatim as JSONB.
type SnapshotStore struct {
	client *Client
}

// NewSnapshotStore creates a snapshot store backed by the given client.
func NewSnapshotStore(client *Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snap *domain.ProjectionSnapshot) error {
	ctx, span := tracer.Start(ctx, "SnapshotStore.SaveSnapshot")
	defer span.End()

	_, err := s.client.doPost(ctx, "projection_snapshots", snap)
	return err
}

func (s *SnapshotStore) ListSnapshots(ctx context.Context, householdID string, limit int) ([]domain.ProjectionSnapshot, error) {
	ctx, span := tracer.Start(ctx, "SnapshotStore.ListSnapshots")
	defer span.End()

	path := fmt.Sprintf("projection_snapshots?household_id=eq.%s&order=computed_at.desc&limit=%d", householdID, limit)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.ProjectionSnapshot](body, "projection_snapshots")
}

func (s *SnapshotStore) GetSnapshot(ctx context.Context, householdID, snapshotID string) (*domain.ProjectionSnapshot, error) {
	ctx, span := tracer.Start(ctx, "SnapshotStore.GetSnapshot")
	defer span.End()

	path := fmt.Sprintf("projection_snapshots?id=eq.%s&household_id=eq.%s", snapshotID, householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	snap, err := decodeOne[domain.ProjectionSnapshot](body, "projection_snapshots")
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, &domain.ErrNotFound{Resource: "projection_snapshot", ID: snapshotID}
	}
	return snap, nil
}
