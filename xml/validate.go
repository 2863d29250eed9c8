package xml

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule is a schema-less constraint over a query path, adapted from the
// teacher's Rule/Validate engine (xml/query.go in the teacher repo) to run
// against the parsed Node tree instead of an OrderedMap.
type Rule struct {
	Path     string
	Required bool
	Type     string // "int", "float", "string", "bool"
	Min      float64
	Max      float64
	Regex    string
	Enum     []string
}

// Validate checks every rule against n and returns one human-readable
// message per violation.
func Validate(n *Node, rules []Rule) []string {
	var errs []string
	for _, r := range rules {
		match, err := Query(n, r.Path)
		if err != nil || match == nil {
			if r.Required {
				errs = append(errs, "missing: "+r.Path)
			}
			continue
		}
		val := ruleValue(match)

		switch r.Type {
		case "int":
			if _, err := strconv.Atoi(val); err != nil {
				errs = append(errs, fmt.Sprintf("%s must be an int", r.Path))
				continue
			}
		case "float":
			if _, err := strconv.ParseFloat(val, 64); err != nil {
				errs = append(errs, fmt.Sprintf("%s must be numeric", r.Path))
				continue
			}
		case "bool":
			if _, err := strconv.ParseBool(val); err != nil {
				errs = append(errs, fmt.Sprintf("%s must be a bool", r.Path))
				continue
			}
		}

		if r.Type == "int" || r.Type == "float" {
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				if r.Min != 0 && f < r.Min {
					errs = append(errs, fmt.Sprintf("%s value %.2f is less than minimum %.2f", r.Path, f, r.Min))
				}
				if r.Max != 0 && f > r.Max {
					errs = append(errs, fmt.Sprintf("%s value %.2f is greater than maximum %.2f", r.Path, f, r.Max))
				}
			}
		}

		if r.Regex != "" {
			if matched, _ := regexp.MatchString(r.Regex, val); !matched {
				errs = append(errs, fmt.Sprintf("%s does not match pattern %s", r.Path, r.Regex))
			}
		}

		if len(r.Enum) > 0 {
			found := false
			for _, allowed := range r.Enum {
				if val == allowed {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Sprintf("%s value %q is not one of %v", r.Path, val, r.Enum))
			}
		}
	}
	return errs
}

// ruleValue extracts the comparable string value of a matched node: its
// attribute-set membership is irrelevant here since Query already resolved
// through attributes or child text; this just normalizes Element vs Text.
func ruleValue(n *Node) string {
	if n.Kind() == KindElement {
		return elementText(n)
	}
	return n.Value()
}

var structValidator = validator.New()

// Bind copies n's attributes (tag `xml:"attr,name"`) and direct text (tag
// `xml:"text"`) into the fields of target, a pointer to a struct, then runs
// github.com/go-playground/validator struct-tag validation
// (`validate:"..."`) over the result. This is the teacher's informal
// Rule/Validate engine generalized to real struct binding, the way
// EvilBit-Labs/opnDossier and unclesp1d3r/opnFocus validate config structs.
func Bind(n *Node, target any) error {
	if n.Kind() != KindElement {
		return fmt.Errorf("xmlkit: Bind requires an Element node, got %s", n.Kind())
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xmlkit: Bind target must be a pointer to struct")
	}
	elem := v.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("xml")
		if tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		fv := elem.Field(i)
		if !fv.CanSet() {
			continue
		}

		switch {
		case len(parts) == 2 && parts[0] == "attr":
			if val, ok := n.Attr(parts[1]); ok {
				if err := setFieldValue(fv, val); err != nil {
					return fmt.Errorf("xmlkit: field %s: %w", field.Name, err)
				}
			}
		case parts[0] == "text":
			if err := setFieldValue(fv, elementText(n)); err != nil {
				return fmt.Errorf("xmlkit: field %s: %w", field.Name, err)
			}
		default:
			if child := n.FirstChildNamed(parts[0]); child != nil {
				if err := setFieldValue(fv, elementText(child)); err != nil {
					return fmt.Errorf("xmlkit: field %s: %w", field.Name, err)
				}
			}
		}
	}

	if err := structValidator.Struct(target); err != nil {
		return fmt.Errorf("xmlkit: validation failed: %w", err)
	}
	return nil
}

func setFieldValue(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(i)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", fv.Kind())
	}
	return nil
}
