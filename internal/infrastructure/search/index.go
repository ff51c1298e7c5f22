// Package search keeps an Elasticsearch index of growth sessions in step with the write path.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/event"
)

// Document is what gets stored per session.
type Document struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Topic     string   `json:"topic"`
	Location  string   `json:"location"`
	Date      string   `json:"date"`
	IsPublic  bool     `json:"is_public"`
	Owner     string   `json:"owner"`
	Attendees []string `json:"attendees"`
	UpdatedAt string   `json:"updated_at"`
}

func NewDocument(s *entity.GrowthSession) Document {
	doc := Document{
		ID:        s.ID,
		Title:     s.Title,
		Topic:     s.Topic,
		Location:  s.Location,
		Date:      s.Date.ToDateString(),
		IsPublic:  s.IsPublic,
		Attendees: make([]string, 0, len(s.Attendees)),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339Nano),
	}
	if s.Owner != nil {
		doc.Owner = s.Owner.Name
	}
	for _, a := range s.Attendees {
		doc.Attendees = append(doc.Attendees, a.Name)
	}
	return doc
}

type Index struct {
	es     *elasticsearch.Client
	index  string
	logger *logrus.Logger
}

func NewIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *Index {
	return &Index{es: es, index: index, logger: logger}
}

// Register subscribes the index to every session event.
func (i *Index) Register(d *event.Dispatcher) {
	for _, kind := range event.Kinds {
		d.Subscribe(kind, i)
	}
}

// Handle removes deleted sessions and reindexes everything else.
func (i *Index) Handle(ctx context.Context, e event.Event) error {
	if e.Session == nil {
		return nil
	}
	if e.Kind == event.SessionDeleted {
		return i.Remove(ctx, e.Session.ID)
	}
	return i.Put(ctx, e.Session)
}

func (i *Index) Put(ctx context.Context, s *entity.GrowthSession) error {
	b, err := json.Marshal(NewDocument(s))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: strconv.FormatInt(s.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.es)
	if err != nil {
		return fmt.Errorf("index session %d: %w", s.ID, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index session %d: %s", s.ID, res.Status())
	}
	return nil
}

// Remove treats a missing document as already removed.
func (i *Index) Remove(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: i.index, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.es)
	if err != nil {
		return fmt.Errorf("remove session %d: %w", id, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("remove session %d: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi_match over title, topic, location and people, returning matching ids
// by relevance.
func (i *Index) Search(ctx context.Context, q string, publicOnly bool, size int) ([]int64, error) {
	b, err := searchBody(q, publicOnly, size)
	if err != nil {
		return nil, fmt.Errorf("search sessions: %w", err)
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := i.es.Search(i.es.Search.WithContext(c), i.es.Search.WithIndex(i.index), i.es.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		if i.logger != nil {
			i.logger.WithField("status", res.Status()).Warn("es search response error")
		}
		return nil, fmt.Errorf("search sessions: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// searchBody builds the query; size outside 1..50 becomes 10.
func searchBody(q string, publicOnly bool, size int) ([]byte, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	boolQuery := map[string]any{
		"must": []any{map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^3", "topic^2", "location", "owner", "attendees"},
			},
		}},
	}
	if publicOnly {
		boolQuery["filter"] = []any{map[string]any{"term": map[string]any{"is_public": true}}}
	}
	return json.Marshal(map[string]any{"query": map[string]any{"bool": boolQuery}, "size": size, "_source": false})
}
