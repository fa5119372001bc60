package maps

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Attribute readers with an explicit default policy: a missing
// attribute yields the supplied default and never an error, while an
// attribute that is present but unparsable propagates
// ErrMalformedAttribute. Optional fields therefore declare their
// defaults at the call site instead of hiding them in nil checks.

func stringAttr(e *etree.Element, name string, def string) string {
	return e.SelectAttrValue(name, def)
}

func intAttr(e *etree.Element, name string, def int) (int, error) {
	attr := e.SelectAttr(name)
	if attr == nil {
		return def, nil
	}

	value, err := strconv.Atoi(attr.Value)
	if err != nil {
		return 0, fmt.Errorf("<%s> %s=%q: %w", e.Tag, name, attr.Value, ErrMalformedAttribute)
	}

	return value, nil
}

func floatAttr(e *etree.Element, name string, def float64) (float64, error) {
	attr := e.SelectAttr(name)
	if attr == nil {
		return def, nil
	}

	value, err := strconv.ParseFloat(attr.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("<%s> %s=%q: %w", e.Tag, name, attr.Value, ErrMalformedAttribute)
	}

	return value, nil
}

// boolAttr treats "1" as true and anything else as false. Object
// groups do not use this; they test for the "0" hidden sentinel
// instead (see parseObjectGroup).
func boolAttr(e *etree.Element, name string, def bool) bool {
	attr := e.SelectAttr(name)
	if attr == nil {
		return def
	}

	return attr.Value == "1"
}

func requireStringAttr(e *etree.Element, name string) (string, error) {
	attr := e.SelectAttr(name)
	if attr == nil {
		return "", fmt.Errorf("<%s> %s: %w", e.Tag, name, ErrMissingAttribute)
	}

	return attr.Value, nil
}

func requireIntAttr(e *etree.Element, name string) (int, error) {
	if _, err := requireStringAttr(e, name); err != nil {
		return 0, err
	}

	return intAttr(e, name, 0)
}

func requireFloatAttr(e *etree.Element, name string) (float64, error) {
	if _, err := requireStringAttr(e, name); err != nil {
		return 0, err
	}

	return floatAttr(e, name, 0)
}

func requireUintAttr(e *etree.Element, name string) (uint32, error) {
	raw, err := requireStringAttr(e, name)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("<%s> %s=%q: %w", e.Tag, name, raw, ErrMalformedAttribute)
	}

	return uint32(value), nil
}
