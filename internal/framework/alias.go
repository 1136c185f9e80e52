package framework

import "strings"

// Namespace selects which alias table and module table a lookup uses.
type Namespace string

const (
	Backend  Namespace = "backend"
	Frontend Namespace = "frontend"
)

// backendAliases maps free-form backend tokens to canonical ids.
//
// Plain "next"/"next.js" means the frontend framework even in the backend
// slot; only explicitly API-flavored tokens route to the distinct
// "nextjs_api" backend variant.
var backendAliases = map[string]string{
	"express.js": "express",
	"expressjs":  "express",
	"node":       "express",
	"nodejs":     "express",

	"nest":      "nestjs",
	"nestjs.js": "nestjs",

	"nextjs-api":  "nextjs_api",
	"nextjs_api":  "nextjs_api",
	"nextjsapi":   "nextjs_api",
	"nextjs api":  "nextjs_api",
	"next js api": "nextjs_api",

	"bunjs":  "bun",
	"bun.js": "bun",

	"spring":      "springboot",
	"spring-boot": "springboot",

	"koa.js": "koa",
	"koajs":  "koa",

	"next":    "nextjs",
	"next.js": "nextjs",
	"next js": "nextjs",
}

// frontendAliases maps free-form frontend tokens to canonical ids.
var frontendAliases = map[string]string{
	"next":    "nextjs",
	"next.js": "nextjs",

	"solid":    "solidjs",
	"solid.js": "solidjs",

	"nuxtjs":  "nuxt",
	"nuxt.js": "nuxt",
}

// Normalize maps a raw framework name to its canonical id in the given
// namespace. Lookup is case-insensitive after trimming; unknown tokens pass
// through lower-cased so ids that need no aliasing keep working. Empty input
// yields the empty string. Normalize never fails.
func Normalize(raw string, ns Namespace) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ""
	}
	table := frontendAliases
	if ns == Backend {
		table = backendAliases
	}
	if canonical, ok := table[v]; ok {
		return canonical
	}
	return v
}
