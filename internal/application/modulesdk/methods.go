// Package modulesdk builds module services: the retrieve/list/listAndCount/
// delete/softDelete/restore operations of a main entity and its secondary
// entities, delegating to container-registered entity services and wiring in
// serialization, transactions and event emission.
package modulesdk

// Operation is one of the base operations every module entity exposes
type Operation string

const (
	OpRetrieve     Operation = "retrieve"
	OpList         Operation = "list"
	OpListAndCount Operation = "listAndCount"
	OpDelete       Operation = "delete"
	OpSoftDelete   Operation = "softDelete"
	OpRestore      Operation = "restore"
)

// Operations lists the base operations in declaration order
var Operations = []Operation{
	OpRetrieve,
	OpList,
	OpListAndCount,
	OpDelete,
	OpSoftDelete,
	OpRestore,
}

// ModelConfig describes a persisted entity and how its method names are formed
type ModelConfig struct {
	// Name is the entity name, e.g. "ProductVariant"
	Name string `toml:"name"`
	// Singular overrides the name used by retrieve
	Singular string `toml:"singular"`
	// Plural overrides the name used by every other operation
	Plural string `toml:"plural"`
}

// Model returns a ModelConfig for name without overrides
func Model(name string) ModelConfig {
	return ModelConfig{Name: name}
}

// WithSingular returns a copy of m with a singular override
func (m ModelConfig) WithSingular(singular string) ModelConfig {
	m.Singular = singular
	return m
}

// WithPlural returns a copy of m with a plural override
func (m ModelConfig) WithPlural(plural string) ModelConfig {
	m.Plural = plural
	return m
}

// SingularName is the name form used by retrieve
func (m ModelConfig) SingularName() string {
	if m.Singular != "" {
		return m.Singular
	}
	return m.Name
}

// PluralName is the name form used by list, listAndCount, delete, softDelete and restore
func (m ModelConfig) PluralName() string {
	if m.Plural != "" {
		return m.Plural
	}
	return Pluralize(m.Name)
}

// RegistrationName is the container key of the entity service: "productVariantService"
func (m ModelConfig) RegistrationName() string {
	return LowerFirst(m.Name) + "Service"
}

// DeletedEventName is the event emitted when an entity is deleted: "product-variant.deleted"
func (m ModelConfig) DeletedEventName() string {
	return KebabCase(m.Name) + ".deleted"
}

// MethodNames maps every operation to its public method name.
// Unsuffixed names are the bare operation names and are reserved for the main
// entity; suffixed names append the capitalized singular (retrieve) or plural
// (every other operation) name form.
func MethodNames(m ModelConfig, suffixed bool) map[Operation]string {
	names := make(map[Operation]string, len(Operations))
	for _, op := range Operations {
		if !suffixed {
			names[op] = string(op)
			continue
		}

		form := m.PluralName()
		if op == OpRetrieve {
			form = m.SingularName()
		}
		names[op] = string(op) + UpperFirst(form)
	}
	return names
}
