package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Backend slots accept the API-flavored spellings as Next.js too; frontend
// slots only the plain ones. Both sides landing on Next.js collapses the
// project into a single App Router app instead of split folders.
var (
	backendNextSpellings  = []string{"nextjs", "next", "next.js", "nextjs-api", "nextjs_api", "nextjsapi"}
	frontendNextSpellings = []string{"nextjs", "next", "next.js"}
)

func isNextSpelling(raw string, spellings []string) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, s := range spellings {
		if raw == s {
			return true
		}
	}
	return false
}

// IsNextFullstack reports whether cfg selects Next.js on both sides, which
// switches preview and build into the single-app layout.
func IsNextFullstack(cfg models.ProjectConfig) bool {
	return isNextSpelling(cfg.BackendFramework, backendNextSpellings) &&
		isNextSpelling(cfg.FrontendFramework, frontendNextSpellings)
}

func nextFullstackTree(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.ProjectName,
		models.Dir("app",
			models.Dir("api",
				models.Dir("v1",
					models.Dir("hello", models.File("route.ts")),
					models.Dir("users", models.File("route.ts")),
				),
			),
			models.Dir("components",
				models.File("Navbar.tsx"),
				models.File("Footer.tsx"),
				models.File("Button.tsx"),
			),
			models.File("layout.tsx"),
			models.File("page.tsx"),
			models.File("globals.css"),
		),
		models.Dir("public",
			models.File("favicon.ico"),
			models.Dir("images"),
		),
		models.File(".env.example"),
		models.File("next.config.mjs"),
		models.File("postcss.config.mjs"),
		models.File("tailwind.config.mjs"),
		models.File("tsconfig.json"),
		models.File("package.json"),
		models.File("README.md"),
	)
}

const fullstackPackageJSON = `{
  "name": "nextjs-boilerplate",
  "version": "1.0.0",
  "private": true,
  "scripts": { "dev": "next dev -p 3010", "build": "next build", "start": "next start", "lint": "next lint" },
  "dependencies": { "next": "latest", "react": "^18", "react-dom": "^18" },
  "devDependencies": { "autoprefixer": "^10", "postcss": "^8", "tailwindcss": "^3", "typescript": "^5" }
}
`

const fullstackNextConfig = `/** @type {import('next').NextConfig} */
const nextConfig = { reactStrictMode: true, experimental: { appDir: true } }
export default nextConfig
`

const fullstackTSConfig = `{ "compilerOptions": { "target": "ES2020", "lib": ["dom","dom.iterable","esnext"], "strict": true, "esModuleInterop": true, "module": "esnext", "moduleResolution": "bundler", "resolveJsonModule": true, "isolatedModules": true, "jsx": "preserve", "incremental": true, "plugins": [{ "name": "next" }] }, "include": ["next-env.d.ts","**/*.ts","**/*.tsx"], "exclude": ["node_modules"] }
`

const fullstackLayout = `import "./globals.css";
import Navbar from "./components/Navbar";
import Footer from "./components/Footer";
export const metadata = { title: "Next.js Boilerplate", description: "A clean starter for modern Next.js apps" };
export default function RootLayout({ children }: { children: React.ReactNode }) {
  return (
    <html lang="en">
      <body className="bg-gray-50 text-gray-900">
        <Navbar />
        <main className="max-w-4xl mx-auto p-6">{children}</main>
        <Footer />
      </body>
    </html>
  );
}
`

const fullstackPage = `export default function Home(){ return (<div className="text-center mt-10"><h1 className="text-4xl font-bold text-blue-600">Next.js Boilerplate</h1><p className="mt-4 text-lg text-gray-700">Start building your app instantly, powered by Next.js 14 + Tailwind CSS.</p></div>); }
`

const fullstackNavbar = `import Link from "next/link";
export default function Navbar(){ return (<nav className="flex justify-between p-4 shadow bg-white"><Link href="/" className="font-semibold text-blue-600">NextBoiler</Link><div className="space-x-4"><Link href="/about">About</Link><Link href="/contact">Contact</Link></div></nav>); }
`

const fullstackFooter = `export default function Footer(){ return (<footer className="text-center p-4 bg-white shadow mt-10"><p className="text-gray-600">© 2025 NextBoiler. All rights reserved.</p></footer>); }
`

const fullstackButton = `export default function Button({ children }:{ children: React.ReactNode }){ return (<button className="px-4 py-2 bg-blue-600 text-white rounded">{children}</button>); }
`

const fullstackHelloRoute = `import { NextResponse } from "next/server";
export async function GET(){ return NextResponse.json({ message: "Hello from Next.js API Route!" }); }
`

const fullstackUsersRoute = `import { NextResponse } from "next/server";
export async function GET(){ const users=[{id:1,name:"John Doe"},{id:2,name:"Jane Doe"}]; return NextResponse.json(users); }
`

const fullstackGlobalsCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;
body { font-family: 'Inter', sans-serif; }
`

const fullstackReadme = `# Next.js Boilerplate

A clean, modern boilerplate built with **Next.js 14**, **App Router**, **TypeScript**, and **Tailwind CSS**.
`

// buildNextFullstack lays the single-app files directly under the project
// root. The empty images directory is created explicitly since WriteTree
// only materializes file parents.
func buildNextFullstack(root string, cfg models.ProjectConfig) models.BuildResult {
	res := framework.WriteTree(root, "", []framework.FileSpec{
		{Rel: "package.json", Content: []byte(fullstackPackageJSON)},
		{Rel: "next.config.mjs", Content: []byte(fullstackNextConfig)},
		{Rel: "postcss.config.mjs", Content: []byte("export default { plugins: { tailwindcss: {}, autoprefixer: {} } }\n")},
		{Rel: "tailwind.config.mjs", Content: []byte(`export default { content: ["./app/**/*.{ts,tsx}"], theme: { extend: {} }, plugins: [] }` + "\n")},
		{Rel: "tsconfig.json", Content: []byte(fullstackTSConfig)},
		{Rel: ".env.example", Content: []byte("NEXT_PUBLIC_API_URL=http://localhost:3010/api/v1\n")},
		{Rel: "README.md", Content: []byte(fullstackReadme)},
		{Rel: "app/layout.tsx", Content: []byte(fullstackLayout)},
		{Rel: "app/page.tsx", Content: []byte(fullstackPage)},
		{Rel: "app/components/Navbar.tsx", Content: []byte(fullstackNavbar)},
		{Rel: "app/components/Footer.tsx", Content: []byte(fullstackFooter)},
		{Rel: "app/components/Button.tsx", Content: []byte(fullstackButton)},
		{Rel: "app/api/v1/hello/route.ts", Content: []byte(fullstackHelloRoute)},
		{Rel: "app/api/v1/users/route.ts", Content: []byte(fullstackUsersRoute)},
		{Rel: "app/globals.css", Content: []byte(fullstackGlobalsCSS)},
		{Rel: "public/favicon.ico", Content: []byte("placeholder")},
	})
	if err := os.MkdirAll(filepath.Join(root, "public", "images"), framework.DirPerm); err != nil {
		res.Err(fmt.Sprintf("mkdir public/images: %v", err))
	}
	res.Type = "nextjs"
	return res
}
