package render

import "github.com/goliatone/go-modeldoc/internal/model"

const (
	ruleToken = "---"

	headingAttributes    = "### Attributes"
	headingRelationships = "### Relationships"

	bulletOptional = "- optional"
	bulletRequired = "- required"
	bulletToMany   = "- to-many"
	bulletToOne    = "- to-one"
)

// Lines renders every entity in document order.
func Lines(entities []model.Entity) []string {
	var out []string
	for _, entity := range entities {
		out = appendEntity(out, entity)
	}
	return out
}

func appendEntity(out []string, entity model.Entity) []string {
	out = append(out, "", ruleToken, ruleToken, "")
	out = append(out, "## "+entity.Name)

	if entity.RepresentedClassName != "" && entity.RepresentedClassName != entity.Name {
		out = append(out, "", "Class: "+entity.RepresentedClassName, "")
	}
	out = append(out, "")

	out = append(out, headingAttributes, "")
	for _, attr := range entity.Attributes {
		out = appendAttribute(out, attr)
	}

	out = append(out, headingRelationships, "")
	for _, rel := range entity.Relationships {
		out = appendRelationship(out, rel)
	}
	return out
}

func appendAttribute(out []string, attr model.Attribute) []string {
	out = append(out, "#### "+attr.Name, "")
	out = append(out, "- Type: "+attr.AttributeType)
	if attr.DefaultValueString != "" {
		out = append(out, "- Default: "+attr.DefaultValueString)
	}
	out = append(out, optionality(attr.IsOptional()))
	if attr.CustomClassName != "" {
		out = append(out, "- Custom class: "+attr.CustomClassName)
	}
	return append(out, "")
}

func appendRelationship(out []string, rel model.Relationship) []string {
	out = append(out, "#### "+rel.Name, "")
	out = append(out, "- Target: "+rel.Target())
	if rel.IsToMany() {
		out = append(out, bulletToMany)
	} else {
		out = append(out, bulletToOne)
	}
	out = append(out, optionality(rel.IsOptional()))
	out = append(out, "- Deletion rule: "+rel.DeletionRule)
	return append(out, "", "")
}

func optionality(optional bool) string {
	if optional {
		return bulletOptional
	}
	return bulletRequired
}
