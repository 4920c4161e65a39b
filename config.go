package zerocopy

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with all the
// default values expected by the entry points.
func NewConfig() *Config {
	m := make(Config)
	// create *Error values with position and expectations rather
	// than the bare ErrNoMatch
	m.SetBool("errors.detailed", true)
	// fail unless the parser consumes the whole input
	m.SetBool("parse.require_end", false)
	// mode used by the command line when none is informed
	m.SetString("parse.mode", Emit.String())
	// log entry and exit of the top level parser
	m.SetBool("trace.enabled", false)
	return &m
}

// Keys returns the names of all the settings, sorted
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(*c))
	for k := range *c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Debug writes each setting and its value to `w`, one per line
func (c *Config) Debug(w io.Writer) {
	keys := c.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s : %s\n", k, strings.Repeat(" ", width-len(k)), (*c)[k])
	}
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors, it
// refuses to change the type of a setting that already has one
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (v *cfgVal) String() string {
	switch v.typ {
	case cfgValType_Bool:
		return fmt.Sprintf("%t (bool)", v.asBool)
	case cfgValType_Int:
		return fmt.Sprintf("%d (int)", v.asInt)
	case cfgValType_String:
		return fmt.Sprintf("%s (string)", v.asString)
	case cfgValType_Undefined:
		return "(undefined)"
	default:
		panic(fmt.Sprintf("unknown cfgVal type: %v", v.typ))
	}
}

func (c *Config) entry(path string) *cfgVal {
	if val, ok := (*c)[path]; ok {
		return val
	}
	val := &cfgVal{}
	(*c)[path] = val
	return val
}

func (c *Config) SetBool(path string, v bool) {
	val := c.entry(path)
	val.assignType(cfgValType_Bool)
	val.asBool = v
}

func (c *Config) SetInt(path string, v int) {
	val := c.entry(path)
	val.assignType(cfgValType_Int)
	val.asInt = v
}

func (c *Config) SetString(path string, v string) {
	val := c.entry(path)
	val.assignType(cfgValType_String)
	val.asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("Int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}
