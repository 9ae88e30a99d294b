package response

import (
	"time"

	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type SnapshotResponse struct {
	Date           string    `json:"date"`
	TotalBookings  int64     `json:"totalBookings"`
	AvailableRooms int64     `json:"availableRooms"`
	CurrentGuests  int64     `json:"currentGuests"`
	EarningsCents  int64     `json:"earningsCents"`
	Currency       string    `json:"currency"`
	ComputedAt     time.Time `json:"computedAt"`
}

func FromSnapshotView(v *queries.SnapshotView) *SnapshotResponse {
	var resp SnapshotResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSnapshotViews(views []*queries.SnapshotView) []*SnapshotResponse {
	out := make([]*SnapshotResponse, len(views))
	for i, v := range views {
		out[i] = FromSnapshotView(v)
	}
	return out
}
