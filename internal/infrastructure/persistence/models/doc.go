// Package models contains the GORM models of the product module and the
// tables they map to. JSON tags define the serialized form returned by the
// module services.
package models
