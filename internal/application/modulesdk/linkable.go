package modulesdk

import (
	"github.com/spf13/cast"
)

// LinkableKey maps records of an entity to an external key.
// The external key MapTo is filled with the ValueFrom field of each record.
type LinkableKey struct {
	MapTo     string `toml:"map_to" json:"mapTo"`
	ValueFrom string `toml:"value_from" json:"valueFrom"`
}

// MapToConfig maps entity names to the linkable keys they provide
type MapToConfig map[string][]LinkableKey

// SoftDeleteConfig controls which linkable keys SoftDelete and Restore return
type SoftDeleteConfig struct {
	// ReturnLinkableKeys requests the linkable keys of the affected records.
	// Nil returns nothing; an empty non-nil slice returns every key.
	ReturnLinkableKeys []string
}

// ReturnKeys builds a SoftDeleteConfig requesting keys
func ReturnKeys(keys ...string) *SoftDeleteConfig {
	if keys == nil {
		keys = []string{}
	}
	return &SoftDeleteConfig{ReturnLinkableKeys: keys}
}

// MapObjectTo projects the records of object onto the linkable keys of
// mapTo. Entities absent from mapTo are ignored, and when pick is not empty
// only the keys it names are produced. Records without a usable value are
// skipped.
func MapObjectTo(object CascadeMap, mapTo MapToConfig, pick []string) map[string][]string {
	picked := make(map[string]struct{}, len(pick))
	for _, key := range pick {
		picked[key] = struct{}{}
	}

	result := make(map[string][]string)
	for entity, records := range object {
		keys, ok := mapTo[entity]
		if !ok {
			continue
		}

		for _, key := range keys {
			if len(picked) > 0 {
				if _, ok := picked[key.MapTo]; !ok {
					continue
				}
			}

			values := result[key.MapTo]
			if values == nil {
				values = []string{}
			}
			for _, record := range records {
				v, err := cast.ToStringE(record[key.ValueFrom])
				if err != nil || v == "" {
					continue
				}
				values = append(values, v)
			}
			result[key.MapTo] = values
		}
	}
	return result
}
