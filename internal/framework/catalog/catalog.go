// Package catalog wires the shipped framework modules into a registry.
// It exists so that adding a framework is one registration line here,
// instead of a runtime import-by-name.
package catalog

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/framework/backend"
	"github.com/SwagCode4U/projectmaker/internal/framework/frontend"
)

// New returns a registry with every shipped framework module registered.
func New(opts ...framework.Option) *framework.Registry {
	r := framework.NewRegistry(opts...)

	r.Register(framework.Backend, backend.FastAPI{})
	r.Register(framework.Backend, backend.Flask{})
	r.Register(framework.Backend, backend.Django{})
	r.Register(framework.Backend, backend.Express{})
	r.Register(framework.Backend, backend.NextAPI{})

	r.Register(framework.Frontend, frontend.React{})
	r.Register(framework.Frontend, frontend.Vue{})
	r.Register(framework.Frontend, frontend.Svelte{})
	r.Register(framework.Frontend, frontend.Angular{})
	r.Register(framework.Frontend, frontend.NextJS{})
	r.Register(framework.Frontend, frontend.HTML{})

	return r
}
