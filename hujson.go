// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"fmt"

	"github.com/tailscale/hujson"
)

// BeginHuJSON starts a decoding session over input in the HuJSON dialect,
// which extends JSON with comments and trailing commas. The input is first
// standardized to plain JSON; comments and trailing commas become spaces, so
// byte offsets reported during the session still refer to positions in the
// original input. The decoder retains the standardized copy, not input, so
// the caller may reuse its buffer immediately.
//
// If standardization fails, the error is returned directly: no session is
// opened and no error is latched on d.
func (d *Decoder) BeginHuJSON(input []byte) error {
	std, err := hujson.Standardize(input)
	if err != nil {
		return fmt.Errorf("standardize hujson: %w", err)
	}
	d.BeginBytes(std)
	return nil
}
