package listings

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/aimanzahar/mealshare-web/appwrite"
	"github.com/aimanzahar/mealshare-web/models"
)

// fakeStore interprets the query constraints the way the real store does,
// so the tests exercise the semantics the service actually requests.
type fakeStore struct {
	docs []map[string]any
	err  error

	calls      int
	gotDB      string
	gotCol     string
	gotQueries []string
}

var _ DocumentLister = (*fakeStore)(nil)

func (f *fakeStore) ListDocuments(_ context.Context, databaseID, collectionID string, queries ...string) (*appwrite.DocumentList, error) {
	f.calls++
	f.gotDB, f.gotCol = databaseID, collectionID
	f.gotQueries = append([]string(nil), queries...)
	if f.err != nil {
		return nil, f.err
	}

	type constraint struct {
		Method    string `json:"method"`
		Attribute string `json:"attribute"`
		Values    []any  `json:"values"`
	}

	docs := append([]map[string]any(nil), f.docs...)
	limit := len(docs)
	for _, raw := range queries {
		var q constraint
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, err
		}
		switch q.Method {
		case "equal":
			kept := docs[:0:0]
			for _, d := range docs {
				for _, v := range q.Values {
					if d[q.Attribute] == v {
						kept = append(kept, d)
						break
					}
				}
			}
			docs = kept
		case "orderDesc":
			sort.SliceStable(docs, func(i, j int) bool {
				a, _ := docs[i][q.Attribute].(string)
				b, _ := docs[j][q.Attribute].(string)
				return a > b
			})
		case "limit":
			if n, ok := q.Values[0].(float64); ok {
				limit = int(n)
			}
		}
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}

	out := &appwrite.DocumentList{Total: int64(len(docs))}
	for _, d := range docs {
		b, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, b)
	}
	return out, nil
}

func doc(id, createdAt, status string) map[string]any {
	return map[string]any{"$id": id, "$createdAt": createdAt, "status": status}
}

func TestFetchAvailable_UnconfiguredGateway(t *testing.T) {
	s := NewService(nil, "db", "col", 12, nil)
	got, err := s.FetchAvailable(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestFetchAvailable_QueryTarget(t *testing.T) {
	store := &fakeStore{}
	s := NewService(store, "mealshare_db", "food_listings", 12, nil)
	if _, err := s.FetchAvailable(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if store.gotDB != "mealshare_db" || store.gotCol != "food_listings" {
		t.Fatalf("wrong target: %s/%s", store.gotDB, store.gotCol)
	}
	if len(store.gotQueries) != 3 {
		t.Fatalf("want 3 query constraints, got %v", store.gotQueries)
	}
}

func TestFetchAvailable_OrderingNewestFirst(t *testing.T) {
	store := &fakeStore{docs: []map[string]any{
		doc("t1", "2024-05-01T10:00:00.000+00:00", StatusAvailable),
		doc("t3", "2024-05-01T12:00:00.000+00:00", StatusAvailable),
		doc("t2", "2024-05-01T11:00:00.000+00:00", StatusAvailable),
	}}
	s := NewService(store, "db", "col", 12, nil)
	got, err := s.FetchAvailable(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 3 || got[0].ID != "t3" || got[1].ID != "t2" || got[2].ID != "t1" {
		t.Fatalf("want t3,t2,t1 got %#v", ids(got))
	}
}

func TestFetchAvailable_LimitExact(t *testing.T) {
	store := &fakeStore{docs: []map[string]any{
		doc("a", "2024-05-01T10:00:00.000+00:00", StatusAvailable),
		doc("b", "2024-05-01T10:01:00.000+00:00", StatusAvailable),
		doc("c", "2024-05-01T10:02:00.000+00:00", StatusAvailable),
		doc("d", "2024-05-01T10:03:00.000+00:00", StatusAvailable),
	}}
	s := NewService(store, "db", "col", 3, nil)
	got, err := s.FetchAvailable(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want exactly the limit (3), got %d", len(got))
	}
}

func TestFetchAvailable_FiltersReserved(t *testing.T) {
	// AVAILABLE@10:00, AVAILABLE@10:05, RESERVED@10:10,
	// limit 2 -> the two AVAILABLE listings, newest first.
	store := &fakeStore{docs: []map[string]any{
		doc("first", "2024-05-01T10:00:00.000+00:00", StatusAvailable),
		doc("second", "2024-05-01T10:05:00.000+00:00", StatusAvailable),
		doc("reserved", "2024-05-01T10:10:00.000+00:00", "RESERVED"),
	}}
	s := NewService(store, "db", "col", 2, nil)
	got, err := s.FetchAvailable(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 2 || got[0].ID != "second" || got[1].ID != "first" {
		t.Fatalf("want [second first], got %v", ids(got))
	}
}

func TestFetchAvailable_StoreErrorFailsOpen(t *testing.T) {
	store := &fakeStore{err: errors.New("store unreachable")}
	s := NewService(store, "db", "col", 12, nil)
	got, err := s.FetchAvailable(context.Background())
	if err == nil {
		t.Fatal("want error for API-route visibility")
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("rendering callers need an empty slice, got %#v", got)
	}
}

func TestFetchAvailable_SkipsMalformedDocument(t *testing.T) {
	store := &fakeStore{docs: []map[string]any{
		doc("ok", "2024-05-01T10:00:00.000+00:00", StatusAvailable),
		{"$id": "bad", "$createdAt": 42, "status": StatusAvailable},
	}}
	s := NewService(store, "db", "col", 12, nil)
	got, err := s.FetchAvailable(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("malformed doc should be skipped, got %v", ids(got))
	}
}

func TestTallyStatuses_CaseInsensitive(t *testing.T) {
	ls := []models.Listing{
		{Status: "Pending"}, {Status: "PENDING"},
		{Status: "confirmed"},
		{Status: "Completed"}, {Status: "completed"}, {Status: "COMPLETED"},
		{Status: StatusAvailable}, {Status: ""},
	}
	got := TallyStatuses(ls)
	if got.Pending != 2 || got.Confirmed != 1 || got.Completed != 3 {
		t.Fatalf("tally mismatch: %+v", got)
	}
}

func ids(ls []models.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}
