package collector

import "github.com/goliatone/go-modeldoc/internal/model"

const (
	ElementEntity       = "entity"
	ElementAttribute    = "attribute"
	ElementRelationship = "relationship"
)

// Event is a single element-start notification. Attrs holds the element's
// attributes keyed by local name; absent attributes are absent from the map.
type Event struct {
	Name  string
	Attrs map[string]string
}

// Collector accumulates entities from a sequence of events. The zero value
// is not ready for use; call New.
type Collector struct {
	entities []model.Entity
	current  int
	dropped  int
}

// New returns an empty collector with no current entity.
func New() *Collector {
	return &Collector{current: -1}
}

// Start consumes one element-start event.
func (c *Collector) Start(evt Event) {
	switch evt.Name {
	case ElementEntity:
		c.entities = append(c.entities, model.NewEntity(evt.Attrs))
		c.current = len(c.entities) - 1
	case ElementAttribute:
		if c.current < 0 {
			c.dropped++
			return
		}
		entity := &c.entities[c.current]
		entity.Attributes = append(entity.Attributes, model.NewAttribute(evt.Attrs))
	case ElementRelationship:
		if c.current < 0 {
			c.dropped++
			return
		}
		entity := &c.entities[c.current]
		entity.Relationships = append(entity.Relationships, model.NewRelationship(evt.Attrs))
	}
}

// Dropped returns how many attribute or relationship events arrived before
// any entity and were discarded.
func (c *Collector) Dropped() int {
	return c.dropped
}

// Model returns the accumulated document model.
func (c *Collector) Model() model.Model {
	return model.Model{Entities: c.entities}
}
