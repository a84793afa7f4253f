package config

import (
	"io"
	"time"
)

// TimeConfig reads duration values stored as plain integers, so the YAML
// stays free of unit-suffixed strings.
type TimeConfig interface {
	// GetSecond reads the key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetMinute reads the key as a number of minutes.
	GetMinute(key string) time.Duration

	// GetHour reads the key as a number of hours.
	GetHour(key string) time.Duration
}

// Config reads typed values by dotted key. Implementations return the
// type's zero value when the key is missing or does not convert, callers
// that need a hard failure must check for the zero themselves.
type Config interface {
	io.Closer
	TimeConfig

	// GetInt reads the key as an int.
	GetInt(key string) int

	// GetInt32 reads the key as an int32.
	GetInt32(key string) int32

	// GetInt64 reads the key as an int64.
	GetInt64(key string) int64

	// GetFloat64 reads the key as a float64.
	GetFloat64(key string) float64

	// GetUint16 reads the key as a uint16, used for network ports.
	GetUint16(key string) uint16

	// GetBool reads the key as a bool.
	GetBool(key string) bool

	// GetString reads the key as a string.
	GetString(key string) string

	// GetBinary reads the key as bytes. The stored value is base64
	// encoded, signing keys are kept this way.
	GetBinary(key string) []byte

	// GetArray reads the key as a string slice. Scalar values are split
	// on commas.
	GetArray(key string) []string

	// GetMap reads the key as a string map. Scalar values use the
	// <key1>:<value1>,<key2>:<value2> format.
	GetMap(key string) map[string]string
}
