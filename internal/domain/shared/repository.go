package shared

// Filters selects records by column. A slice value means "column IN values",
// any other value means equality.
type Filters map[string]any

// OrderDirection is a sort direction
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// FindConfig controls how records are fetched
type FindConfig struct {
	// Select restricts the returned columns; empty selects all
	Select []string `json:"select,omitempty"`
	// Relations lists the associations to load
	Relations []string `json:"relations,omitempty"`
	// Skip is the number of records to skip
	Skip int `json:"skip,omitempty" validate:"gte=0"`
	// Take is the maximum number of records to return; 0 means no limit
	Take int `json:"take,omitempty" validate:"gte=0,lte=1000"`
	// Order maps column to direction, applied in key order
	Order map[string]OrderDirection `json:"order,omitempty" validate:"dive,keys,required,endkeys,oneof=ASC DESC asc desc"`
	// WithDeleted includes soft-deleted records
	WithDeleted bool `json:"withDeleted,omitempty"`
}

// DefaultFindConfig returns a config that loads every column without pagination
func DefaultFindConfig() FindConfig {
	return FindConfig{}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items  []T   `json:"items"`
	Count  int64 `json:"count"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, count int64, offset, limit int) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Items:  items,
		Count:  count,
		Offset: offset,
		Limit:  limit,
	}
}
