package catalog

import (
	"testing"

	"github.com/SwagCode4U/projectmaker/internal/framework"
)

func TestCatalogRegistersShippedModules(t *testing.T) {
	t.Parallel()

	reg := New()

	backendPorts := map[string]int{
		"fastapi":    8000,
		"flask":      5000,
		"django":     8000,
		"express":    5177,
		"nextjs_api": 5177,
	}
	for id, port := range backendPorts {
		meta, ok := reg.Meta(id, framework.Backend)
		if !ok {
			t.Errorf("backend module %q not registered", id)
			continue
		}
		if meta.DevPort != port {
			t.Errorf("%s dev port = %d, want %d", id, meta.DevPort, port)
		}
	}

	frontendPorts := map[string]int{
		"react":   3010,
		"vue":     3010,
		"svelte":  3010,
		"angular": 3010,
		"nextjs":  3010,
		"html":    0,
	}
	for id, port := range frontendPorts {
		meta, ok := reg.Meta(id, framework.Frontend)
		if !ok {
			t.Errorf("frontend module %q not registered", id)
			continue
		}
		if meta.DevPort != port {
			t.Errorf("%s dev port = %d, want %d", id, meta.DevPort, port)
		}
	}

	if got := len(reg.Registered(framework.Backend)); got != len(backendPorts) {
		t.Errorf("backend module count = %d, want %d", got, len(backendPorts))
	}
	if got := len(reg.Registered(framework.Frontend)); got != len(frontendPorts) {
		t.Errorf("frontend module count = %d, want %d", got, len(frontendPorts))
	}
}
