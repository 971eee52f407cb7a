package collector

import "testing"

func TestCollectorAttachesChildrenToMostRecentEntity(t *testing.T) {
	c := New()
	c.Start(Event{Name: "entity", Attrs: map[string]string{"name": "A"}})
	c.Start(Event{Name: "attribute", Attrs: map[string]string{"name": "a1"}})
	c.Start(Event{Name: "entity", Attrs: map[string]string{"name": "B"}})
	c.Start(Event{Name: "attribute", Attrs: map[string]string{"name": "b1"}})
	c.Start(Event{Name: "relationship", Attrs: map[string]string{"name": "toA"}})
	c.Start(Event{Name: "attribute", Attrs: map[string]string{"name": "b2"}})

	entities := c.Model().Entities
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if len(entities[0].Attributes) != 1 || entities[0].Attributes[0].Name != "a1" {
		t.Fatalf("unexpected attributes for A: %#v", entities[0].Attributes)
	}
	if len(entities[1].Attributes) != 2 || entities[1].Attributes[1].Name != "b2" {
		t.Fatalf("unexpected attributes for B: %#v", entities[1].Attributes)
	}
	if len(entities[1].Relationships) != 1 || entities[1].Relationships[0].Name != "toA" {
		t.Fatalf("unexpected relationships for B: %#v", entities[1].Relationships)
	}
}

func TestCollectorDropsChildrenBeforeFirstEntity(t *testing.T) {
	c := New()
	c.Start(Event{Name: "attribute", Attrs: map[string]string{"name": "orphan"}})
	c.Start(Event{Name: "relationship", Attrs: map[string]string{"name": "orphan"}})

	if got := len(c.Model().Entities); got != 0 {
		t.Fatalf("expected no entities, got %d", got)
	}
	if c.Dropped() != 2 {
		t.Fatalf("expected 2 dropped children, got %d", c.Dropped())
	}

	c.Start(Event{Name: "entity", Attrs: map[string]string{"name": "Late"}})
	if attrs := c.Model().Entities[0].Attributes; len(attrs) != 0 {
		t.Fatalf("expected dropped children to stay dropped, got %#v", attrs)
	}
}

func TestCollectorIgnoresUnknownElements(t *testing.T) {
	c := New()
	c.Start(Event{Name: "model"})
	c.Start(Event{Name: "elements"})
	c.Start(Event{Name: "element", Attrs: map[string]string{"name": "Person"}})
	c.Start(Event{Name: "fetchRequest", Attrs: map[string]string{"name": "All"}})

	if got := len(c.Model().Entities); got != 0 {
		t.Fatalf("expected unknown elements to be ignored, got %d entities", got)
	}
	if c.Dropped() != 0 {
		t.Fatalf("expected unknown elements not to count as dropped, got %d", c.Dropped())
	}
}

func TestCollectorNilAttrsDefaultToEmpty(t *testing.T) {
	c := New()
	c.Start(Event{Name: "entity"})
	c.Start(Event{Name: "attribute"})

	entity := c.Model().Entities[0]
	if entity.Name != "" || entity.Attributes[0].AttributeType != "" {
		t.Fatalf("expected empty defaults, got %#v", entity)
	}
}
