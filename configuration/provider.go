package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// errUnsupported is returned by the provider methods that only make sense for file based providers.
var errUnsupported = ierrors.New("pflag provider does not support this method")

// lowerPosflag is a koanf provider that reads a pflag.FlagSet and lower cases all flag names.
type lowerPosflag struct {
	delim   string
	flagSet *flag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider that merges the flags of the FlagSet into a nested map, splitting the flag
// names at delim. Flags that were not changed on the command line only contribute their default value if ko does not
// know the key yet.
func lowerPosflagProvider(flagSet *flag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	values := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *flag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		switch f.Value.Type() {
		case "bool":
			values[key], _ = p.flagSet.GetBool(f.Name)
		case "int":
			i, _ := p.flagSet.GetInt(f.Name)
			values[key] = int64(i)
		case "stringSlice":
			values[key], _ = p.flagSet.GetStringSlice(f.Name)
		default:
			values[key] = f.Value.String()
		}
	})

	return maps.Unflatten(values, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, errUnsupported
}

// Watch is not supported.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return errUnsupported
}
