package catalog

import (
	"sort"
	"strings"
)

// Filter describes the browse predicates. Zero-value fields are unset and
// filter nothing; set predicates combine with logical AND.
type Filter struct {
	// Search matches case-insensitively against name, description and material.
	Search string
	// Categories keeps products tagged with at least one of the given categories.
	Categories []string
	// Materials keeps products whose material is one of the given labels.
	Materials []string
	// MinPrice/MaxPrice bound the unit price inclusively. MaxPrice <= 0 means
	// no upper bound.
	MinPrice int
	MaxPrice int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Featured returns the products flagged for the landing page.
func (s *Service) Featured() []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies f to the catalog. Results preserve catalog insertion order;
// there is no relevance or price sort.
func (s *Service) Filter(f Filter) []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// AllCategories returns every category tag in the catalog, deduplicated and
// sorted.
func (s *Service) AllCategories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range s.repo.List() {
		for _, c := range p.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Strings(out)
	return out
}

// AllMaterials returns every material label in the catalog, deduplicated and
// sorted.
func (s *Service) AllMaterials() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range s.repo.List() {
		if !seen[p.Material] {
			seen[p.Material] = true
			out = append(out, p.Material)
		}
	}
	sort.Strings(out)
	return out
}

func matches(p Product, f Filter) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Material), term) {
			return false
		}
	}
	if len(f.Categories) > 0 && !anyOverlap(p.Categories, f.Categories) {
		return false
	}
	if len(f.Materials) > 0 && !contains(f.Materials, p.Material) {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

func anyOverlap(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
