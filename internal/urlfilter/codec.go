// Package urlfilter maps filter chips to and from a query-string so filtered
// views can be shared: the TUI's "copy filters" action emits one, and the
// --filter flag accepts one at startup. Encoding is deterministic — keys are
// emitted sorted, values in chip order — which lets callers compare encoded
// strings to detect echoes instead of keeping a mutable guard flag.
package urlfilter

import (
	"net/url"
	"sort"
	"strings"

	"github.com/ozank/plank/internal/model"
)

// ChipsToParams groups chips by key into url.Values; repeated keys carry
// multiple values, preserving the chip order within each key.
func ChipsToParams(chips []model.FilterChip) url.Values {
	params := url.Values{}
	for _, c := range chips {
		if c.Key == "" {
			continue
		}
		params.Add(c.Key, c.Value)
	}
	return params
}

// Encode returns the canonical query-string for the chips. url.Values.Encode
// already sorts by key, so the same chip multiset always yields the same
// string regardless of chip order across keys.
func Encode(chips []model.FilterChip) string {
	return ChipsToParams(chips).Encode()
}

// ParamsToChips flattens url.Values back into a chip sequence, keys in
// sorted order, values in their stored order. Together with ChipsToParams
// this round-trips the (key,value) multiset exactly.
func ParamsToChips(params url.Values) []model.FilterChip {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var chips []model.FilterChip
	for _, k := range keys {
		for _, v := range params[k] {
			chips = append(chips, model.FilterChip{Key: k, Value: v})
		}
	}
	return chips
}

// Decode parses a raw query-string into chips. Malformed input degrades to
// an empty chip set; this never returns an error to the caller.
func Decode(raw string) []model.FilterChip {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if raw == "" {
		return nil
	}
	params, err := url.ParseQuery(raw)
	if err != nil {
		return nil
	}
	return ParamsToChips(params)
}
