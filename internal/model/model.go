package model

// FlagYes is the only value treated as true for optional and toMany flags.
const FlagYes = "YES"

// Entity is a named model type. Attributes and relationships keep the order
// in which they appeared in the source document.
type Entity struct {
	Name                 string
	RepresentedClassName string
	// Syncable is stored as read but not rendered.
	Syncable      string
	Attributes    []Attribute
	Relationships []Relationship
}

// Attribute is a scalar field of an entity.
type Attribute struct {
	Name               string
	AttributeType      string
	DefaultValueString string
	CustomClassName    string
	Optional           string
}

// IsOptional reports whether the raw optional flag equals "YES".
func (a Attribute) IsOptional() bool {
	return a.Optional == FlagYes
}

// Relationship is a directed link from the owning entity to DestinationEntity.
type Relationship struct {
	Name              string
	DestinationEntity string
	InverseEntity     string
	InverseName       string
	DeletionRule      string
	Optional          string
	ToMany            string
}

// IsOptional reports whether the raw optional flag equals "YES".
func (r Relationship) IsOptional() bool {
	return r.Optional == FlagYes
}

// IsToMany reports whether the raw toMany flag equals "YES".
func (r Relationship) IsToMany() bool {
	return r.ToMany == FlagYes
}

// Target renders the "<destinationEntity>.<inverseName>" reference.
func (r Relationship) Target() string {
	return r.DestinationEntity + "." + r.InverseName
}

// Model is the complete parse result.
type Model struct {
	Entities []Entity
}

// Stats summarises the size of a model.
type Stats struct {
	Entities      int `json:"entities" yaml:"entities"`
	Attributes    int `json:"attributes" yaml:"attributes"`
	Relationships int `json:"relationships" yaml:"relationships"`
}

// Stats counts entities and their children.
func (m Model) Stats() Stats {
	stats := Stats{Entities: len(m.Entities)}
	for _, entity := range m.Entities {
		stats.Attributes += len(entity.Attributes)
		stats.Relationships += len(entity.Relationships)
	}
	return stats
}

// NewEntity builds an entity from raw element attributes. Missing keys
// become empty strings.
func NewEntity(attrs map[string]string) Entity {
	return Entity{
		Name:                 attrs["name"],
		RepresentedClassName: attrs["representedClassName"],
		Syncable:             attrs["syncable"],
	}
}

// NewAttribute builds an attribute from raw element attributes.
func NewAttribute(attrs map[string]string) Attribute {
	return Attribute{
		Name:               attrs["name"],
		AttributeType:      attrs["attributeType"],
		DefaultValueString: attrs["defaultValueString"],
		CustomClassName:    attrs["customClassName"],
		Optional:           attrs["optional"],
	}
}

// NewRelationship builds a relationship from raw element attributes.
func NewRelationship(attrs map[string]string) Relationship {
	return Relationship{
		Name:              attrs["name"],
		DestinationEntity: attrs["destinationEntity"],
		InverseEntity:     attrs["inverseEntity"],
		InverseName:       attrs["inverseName"],
		DeletionRule:      attrs["deletionRule"],
		Optional:          attrs["optional"],
		ToMany:            attrs["toMany"],
	}
}
