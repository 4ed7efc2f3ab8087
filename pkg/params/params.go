package params

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValString returns the parameter with the given key converted to a string, or d if it
// doesn't exist or is nil.
func ValString(k, d string, p map[string]interface{}) string {

	v, ok := p[k]
	if !ok || v == nil {
		return d
	}

	return toString(v)
}

// ValBool returns a boolean parameter if present, d otherwise. Strings are parsed with
// strconv.ParseBool.
func ValBool(k string, d bool, p map[string]interface{}) (v bool, err error) {

	raw, ok := p[k]
	if !ok || raw == nil {
		v = d
		return
	}

	tErr := fmt.Errorf("invalid value for the parameter %s", k)
	switch b := raw.(type) {
	case bool:
		v = b
	case string:
		v, err = strconv.ParseBool(b)
		if err != nil {
			err = tErr
		}
	default:
		err = tErr
	}

	return
}

// ValMap returns an object parameter if present, an empty map otherwise.
func ValMap(k string, p map[string]interface{}) (v map[string]interface{}, err error) {

	raw, ok := p[k]
	if !ok || raw == nil {
		v = map[string]interface{}{}
		return
	}

	v, ok = raw.(map[string]interface{})
	if !ok {
		err = fmt.Errorf("invalid value for the parameter %s", k)
	}

	return
}

func toString(v interface{}) string {

	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case []byte:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t)
	}

	// objects and arrays are rendered as they came in
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(buf)
}
