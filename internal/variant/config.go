package variant

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadOverride reads an optional TOML/YAML/JSON config file and applies
// any fields it sets on top of base. Fields absent from the file keep
// base's value. This exists purely for experimenting with ROM size,
// PC width, and fill byte without rebuilding, and never changes
// encoding semantics by itself.
func LoadOverride(path string, base Variant) (Variant, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Variant{}, fmt.Errorf("reading variant config %s: %w", path, err)
	}

	out := base
	if v.IsSet("rom_size") {
		out.ROMSize = v.GetInt("rom_size")
	}
	if v.IsSet("pc_width") {
		out.PCWidth = v.GetInt("pc_width")
	}
	if v.IsSet("fill_byte") {
		out.FillByte = byte(v.GetInt("fill_byte"))
	}
	if out.ROMSize <= 0 || out.ROMSize > (1<<out.PCWidth) {
		return Variant{}, fmt.Errorf("variant config %s: rom_size %d incompatible with pc_width %d", path, out.ROMSize, out.PCWidth)
	}
	return out, nil
}
