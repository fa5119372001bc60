package maps

import "github.com/beevik/etree"

// elementProperties collects the name/value pairs of the first
// <properties> block that is a direct child of e. Scanning direct
// children only is a structural invariant: a nested tileset or tile
// owns its own block, and those must never leak into an outer scope.
// Additional sibling blocks are ignored.
func elementProperties(e *etree.Element) map[string]string {
	properties := make(map[string]string)

	for _, child := range e.ChildElements() {
		if child.Tag != "properties" {
			continue
		}

		for _, property := range child.ChildElements() {
			if property.Tag != "property" {
				continue
			}

			name := property.SelectAttrValue("name", "")
			properties[name] = property.SelectAttrValue("value", "")
		}

		break
	}

	return properties
}
