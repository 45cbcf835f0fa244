// Package listings reads the live food-listing feed from the external
// document store. The service is deliberately fail-open: when the store is
// unconfigured or unreachable the marketing page still renders, just with
// an empty feed.
package listings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aimanzahar/mealshare-web/appwrite"
	"github.com/aimanzahar/mealshare-web/config"
	"github.com/aimanzahar/mealshare-web/models"
)

// StatusAvailable is the externally-defined state meaning a listing is
// open for reservation.
const StatusAvailable = "AVAILABLE"

// ErrUnavailable reports that the database gateway is unconfigured. It is
// an expected state, not an outage.
var ErrUnavailable = errors.New("listing store is not configured")

// DocumentLister is the slice of the store gateway the service needs.
type DocumentLister interface {
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries ...string) (*appwrite.DocumentList, error)
}

// Service issues the one read this site performs: available listings,
// newest first, capped at the configured limit.
type Service struct {
	db           DocumentLister // nil when the gateway is unconfigured
	databaseID   string
	collectionID string
	limit        int
	log          *zap.Logger
}

// NewService wires the query target. db may be nil; every fetch then
// short-circuits to an empty result without network I/O.
func NewService(db DocumentLister, databaseID, collectionID string, limit int, log *zap.Logger) *Service {
	if limit <= 0 {
		limit = config.DefaultListingLimit
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, databaseID: databaseID, collectionID: collectionID, limit: limit, log: log}
}

// FetchAvailable returns the ordered, filtered, capped snapshot. The slice
// is never nil: rendering callers can ignore the error and fail open, the
// API route maps it to a 500.
func (s *Service) FetchAvailable(ctx context.Context) ([]models.Listing, error) {
	if s.db == nil {
		return []models.Listing{}, ErrUnavailable
	}

	res, err := s.db.ListDocuments(ctx, s.databaseID, s.collectionID,
		appwrite.Equal("status", StatusAvailable),
		appwrite.OrderDesc("$createdAt"),
		appwrite.Limit(s.limit),
	)
	if err != nil {
		s.log.Error("listDocuments failed", zap.Error(err))
		return []models.Listing{}, err
	}

	out := make([]models.Listing, 0, len(res.Documents))
	for _, raw := range res.Documents {
		var l models.Listing
		if err := json.Unmarshal(raw, &l); err != nil {
			s.log.Warn("skipping malformed listing document", zap.Error(err))
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Tally is the read-only reservation count shown on the dashboard.
type Tally struct {
	Pending   int
	Confirmed int
	Completed int
}

// TallyStatuses counts listings per reservation state, case-insensitively.
// Statuses outside the three display states are ignored.
func TallyStatuses(ls []models.Listing) Tally {
	var t Tally
	for _, l := range ls {
		switch strings.ToUpper(l.Status) {
		case "PENDING":
			t.Pending++
		case "CONFIRMED":
			t.Confirmed++
		case "COMPLETED":
			t.Completed++
		}
	}
	return t
}
