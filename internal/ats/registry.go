package ats

import (
	"sort"

	"github.com/ternarybob/hireradar/internal/interfaces"
)

// StaticRegistry is a fixed, priority-sorted capability table built once at
// startup from the providers known at compile time.
type StaticRegistry struct {
	providers []interfaces.ATSProvider
	byName    map[string]interfaces.ATSProvider
}

// NewRegistry builds the registry from the fifteen providers this package
// implements, sorted by Priority() ascending.
func NewRegistry() *StaticRegistry {
	providers := []interfaces.ATSProvider{
		Greenhouse{},
		Lever{},
		Ashby{},
		Workday{},
		SmartRecruiters{},
		ICIMS{},
		Taleo{},
		SuccessFactors{},
		Workable{},
		Breezy{},
		Recruitee{},
		Personio{},
		Teamtailor{},
		Jazz{},
		Pinpoint{},
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Priority() < providers[j].Priority()
	})

	byName := make(map[string]interfaces.ATSProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &StaticRegistry{providers: providers, byName: byName}
}

func (r *StaticRegistry) Providers() []interfaces.ATSProvider {
	return r.providers
}

func (r *StaticRegistry) ByName(name string) (interfaces.ATSProvider, bool) {
	p, ok := r.byName[name]
	return p, ok
}

var _ interfaces.Registry = (*StaticRegistry)(nil)
