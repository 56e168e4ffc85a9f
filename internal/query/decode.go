package query

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode converts records into typed values using `mapstructure` tags.
// Timestamps delivered as RFC 3339 strings are parsed.
func Decode[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		var v T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &v,
			TagName: "mapstructure",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
			),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build decoder: %w", err)
		}
		if err := dec.Decode(map[string]any(rec)); err != nil {
			return nil, fmt.Errorf("failed to decode record %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
