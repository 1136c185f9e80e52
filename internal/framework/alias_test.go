package framework

import "testing"

func TestNormalizeBackendAliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"fastapi", "fastapi"},
		{"FastAPI", "fastapi"},
		{"  Express.js  ", "express"},
		{"expressjs", "express"},
		{"node", "express"},
		{"nodejs", "express"},
		{"nest", "nestjs"},
		{"next", "nextjs"},
		{"Next.js", "nextjs"},
		{"nextjs-api", "nextjs_api"},
		{"nextjs_api", "nextjs_api"},
		{"nextjsapi", "nextjs_api"},
		{"nextjs api", "nextjs_api"},
		{"next js api", "nextjs_api"},
		{"bun.js", "bun"},
		{"spring-boot", "springboot"},
		{"koa.js", "koa"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw, Backend); got != tc.want {
			t.Errorf("Normalize(%q, Backend) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeFrontendAliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"react", "react"},
		{"Next", "nextjs"},
		{"next.js", "nextjs"},
		{"solid", "solidjs"},
		{"solid.js", "solidjs"},
		{"nuxt.js", "nuxt"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw, Frontend); got != tc.want {
			t.Errorf("Normalize(%q, Frontend) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeNamespacesAreIndependent(t *testing.T) {
	t.Parallel()

	// The API-flavored spellings are backend-only; in the frontend
	// namespace they pass through untouched (lowercased).
	if got := Normalize("nextjs-api", Frontend); got != "nextjs-api" {
		t.Errorf("Normalize(nextjs-api, Frontend) = %q, want pass-through", got)
	}
	if got := Normalize("nextjs-api", Backend); got != "nextjs_api" {
		t.Errorf("Normalize(nextjs-api, Backend) = %q, want nextjs_api", got)
	}
}

func TestNormalizeUnknownPassesThrough(t *testing.T) {
	t.Parallel()

	if got := Normalize("  MyCustomFramework ", Backend); got != "mycustomframework" {
		t.Errorf("unknown id: got %q", got)
	}
	if got := Normalize("", Backend); got != "" {
		t.Errorf("empty id: got %q", got)
	}
	if got := Normalize("   ", Frontend); got != "" {
		t.Errorf("blank id: got %q", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, ns := range []Namespace{Backend, Frontend} {
		for _, raw := range []string{"next.js", "Express", "react", "nextjs api", "unknown-thing"} {
			once := Normalize(raw, ns)
			twice := Normalize(once, ns)
			if once != twice {
				t.Errorf("Normalize not idempotent in %s: %q -> %q -> %q", ns, raw, once, twice)
			}
		}
	}
}
