package dto

import (
	"strings"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
)

// DefaultLimit is the page size used when a list request sets none
const DefaultLimit = 20

// ListQuery holds the pagination and shaping parameters of list endpoints, e.g.
// ?offset=0&limit=20&order=-created_at&fields=id,title&expand=variants
type ListQuery struct {
	Offset int `form:"offset" binding:"gte=0"`
	Limit  int `form:"limit" binding:"gte=0,lte=1000"`
	// Order is a column, prefixed with "-" for descending order
	Order       string `form:"order"`
	Fields      string `form:"fields"`
	Expand      string `form:"expand"`
	WithDeleted bool   `form:"with_deleted"`
}

// RetrieveQuery holds the shaping parameters of single record endpoints
type RetrieveQuery struct {
	Fields      string `form:"fields"`
	Expand      string `form:"expand"`
	WithDeleted bool   `form:"with_deleted"`
}

// FindConfig converts q into a find config
func (q ListQuery) FindConfig() *shared.FindConfig {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	cfg := &shared.FindConfig{
		Select:      splitList(q.Fields),
		Relations:   splitList(q.Expand),
		Skip:        q.Offset,
		Take:        limit,
		WithDeleted: q.WithDeleted,
	}

	if order := strings.TrimSpace(q.Order); order != "" {
		direction := shared.OrderAsc
		if column, ok := strings.CutPrefix(order, "-"); ok {
			order, direction = column, shared.OrderDesc
		}
		cfg.Order = map[string]shared.OrderDirection{order: direction}
	}
	return cfg
}

// FindConfig converts q into a find config
func (q RetrieveQuery) FindConfig() *shared.FindConfig {
	return &shared.FindConfig{
		Select:      splitList(q.Fields),
		Relations:   splitList(q.Expand),
		WithDeleted: q.WithDeleted,
	}
}

// SoftDeleteQuery selects the linkable keys returned by soft delete and restore
type SoftDeleteQuery struct {
	// ReturnLinkableKeys is a comma separated list; "*" returns every key
	ReturnLinkableKeys string `form:"return_linkable_keys"`
}

// Keys returns the requested keys: nil when none were requested, an empty
// slice for every key
func (q SoftDeleteQuery) Keys() []string {
	raw := strings.TrimSpace(q.ReturnLinkableKeys)
	switch raw {
	case "":
		return nil
	case "*":
		return []string{}
	}
	return splitList(raw)
}

// IDsRequest is the body of bulk delete endpoints
type IDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
