package minilang

import (
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DumpFormat selects how a symbol table is written out.
type DumpFormat string

const (
	DumpText DumpFormat = "text"
	DumpYAML DumpFormat = "yaml"
	DumpTOML DumpFormat = "toml"
)

// ParseDumpFormat checks that s names a known format.
func ParseDumpFormat(s string) (DumpFormat, error) {
	switch f := DumpFormat(s); f {
	case DumpText, DumpYAML, DumpTOML:
		return f, nil
	}
	return "", errors.Errorf("unknown dump format %q (want text, yaml or toml)", s)
}

// Dump writes every symbol in name order.
func (st *SymbolTable) Dump(w io.Writer, format DumpFormat) error {
	switch format {
	case DumpText:
		for _, name := range st.Names() {
			if _, err := fmt.Fprintf(w, "%s = %s\n", name, formatValue(st.values[name])); err != nil {
				return err
			}
		}
		return nil
	case DumpYAML:
		if st.Len() == 0 {
			return nil
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(st.values); err != nil {
			return err
		}
		return enc.Close()
	case DumpTOML:
		return toml.NewEncoder(w).Encode(st.values)
	}
	return errors.Errorf("unknown dump format %q", format)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
