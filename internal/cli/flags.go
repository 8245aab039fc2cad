package cli

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/theory/tempo/internal/config"
)

// zoneValue is a pflag.Value for time zone flags. It accepts IANA
// identifiers and UTC offsets.
type zoneValue struct {
	loc *time.Location
}

var _ pflag.Value = (*zoneValue)(nil)

func (z *zoneValue) String() string {
	if z.loc == nil {
		return ""
	}
	return z.loc.String()
}

func (z *zoneValue) Set(s string) error {
	loc, err := config.ParseZone(s)
	if err != nil {
		return err
	}
	z.loc = loc
	return nil
}

func (*zoneValue) Type() string { return "zone" }
