package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func testCatalog() []Product {
	// ten products, four tagged "Office", in a fixed insertion order
	mk := func(id int, name string, price int, categories []string, material string, featured bool) Product {
		return Product{
			ID:         id,
			Name:       name,
			Price:      price,
			Categories: categories,
			Material:   material,
			Featured:   featured,
		}
	}
	return []Product{
		mk(1, "5ft Desk", 18200, []string{"Office", "Modern"}, "Melamine", true),
		mk(2, "4ft Desk", 16200, []string{"Office"}, "Melamine", true),
		mk(3, "Dining Table", 16500, []string{"Dining"}, "Teak", false),
		mk(4, "Study Desk", 14600, []string{"Office", "Desk"}, "Melamine", false),
		mk(5, "Coffee Table", 9000, []string{"Living Room"}, "Teak", false),
		mk(6, "Bookshelf", 12000, []string{"Living Room"}, "Pine", false),
		mk(7, "Conference Table", 30000, []string{"Office", "Conference"}, "Melamine", true),
		mk(8, "TV Stand", 11000, []string{"Living Room"}, "Pine", false),
		mk(9, "Side Table", 7000, []string{"Living Room"}, "Teak", false),
		mk(10, "Bar Stool", 5000, []string{"Dining"}, "Pine", false),
	}
}

func newTestService() *Service {
	return NewService(NewInMemoryRepository(testCatalog()))
}

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_EmptyReturnsAll(t *testing.T) {
	s := newTestService()
	got := s.Filter(Filter{})
	if len(got) != 10 {
		t.Fatalf("expected full catalog, got %d products", len(got))
	}
	if !reflect.DeepEqual(ids(got), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}) {
		t.Fatalf("expected catalog insertion order, got %v", ids(got))
	}
}

func TestFilter_CategoryAlone(t *testing.T) {
	s := newTestService()
	got := s.Filter(Filter{Categories: []string{"Office"}})
	want := []int{1, 2, 4, 7}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected office products %v in catalog order, got %v", want, ids(got))
	}
}

func TestFilter_PredicatesCompose(t *testing.T) {
	s := newTestService()

	// category AND material AND price range
	got := s.Filter(Filter{
		Categories: []string{"Office"},
		Materials:  []string{"Melamine"},
		MinPrice:   15000,
		MaxPrice:   20000,
	})
	want := []int{1, 2}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	// price bounds are inclusive
	got = s.Filter(Filter{MinPrice: 16200, MaxPrice: 16200})
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("expected inclusive bounds to keep product 2, got %v", ids(got))
	}
}

func TestFilter_SearchMatchesNameDescriptionMaterial(t *testing.T) {
	s := newTestService()

	got := s.Filter(Filter{Search: "desk"})
	if !reflect.DeepEqual(ids(got), []int{1, 2, 4}) {
		t.Fatalf("expected case-insensitive name match, got %v", ids(got))
	}

	got = s.Filter(Filter{Search: "teak"})
	if !reflect.DeepEqual(ids(got), []int{3, 5, 9}) {
		t.Fatalf("expected material match, got %v", ids(got))
	}

	got = s.Filter(Filter{Search: "no-such-term"})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestAllCategoriesSortedAndDeduplicated(t *testing.T) {
	s := newTestService()
	got := s.AllCategories()
	want := []string{"Conference", "Desk", "Dining", "Living Room", "Modern", "Office"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAllMaterialsSortedAndDeduplicated(t *testing.T) {
	s := newTestService()
	got := s.AllMaterials()
	want := []string{"Melamine", "Pine", "Teak"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFeatured(t *testing.T) {
	s := newTestService()
	got := s.Featured()
	if !reflect.DeepEqual(ids(got), []int{1, 2, 7}) {
		t.Fatalf("expected featured products in catalog order, got %v", ids(got))
	}
}

func TestGetByID(t *testing.T) {
	s := newTestService()

	p, err := s.GetByID(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Dining Table" {
		t.Fatalf("unexpected product %q", p.Name)
	}

	if _, err := s.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedIsWellFormed(t *testing.T) {
	seen := make(map[int]bool)
	for _, p := range Seed() {
		if p.ID <= 0 || p.Name == "" || p.Price <= 0 {
			t.Fatalf("malformed seed product %+v", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate seed id %d", p.ID)
		}
		seen[p.ID] = true
	}
}
