package extractor

// Properties lists the properties of class: its public instance fields in
// declaration order, then the properties implied by public instance accessors
// and mutators. It returns nil when class cannot be resolved or has none.
func (e *ReflectionExtractor) Properties(class string, _ ...ContextOption) []string {
	desc, ok := e.describe(class)
	if !ok {
		return nil
	}

	var properties []string

	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			properties = append(properties, name)
		}
	}

	for _, f := range desc.Fields {
		if f.IsPublic() && !f.Static {
			add(f.Name)
		}
	}

	knownFields := desc.FieldNames()

	for _, m := range desc.Methods {
		if !m.IsPublic() || m.Static {
			continue
		}

		name, ok := e.propertyFromMethod(m.Name, knownFields)
		if !ok || seen[name] {
			continue
		}

		if _, isField := desc.Field(name); !isField && !e.startsWithAcronym(name) {
			name = lowerFirst(name)
		}

		add(name)
	}

	return properties
}
