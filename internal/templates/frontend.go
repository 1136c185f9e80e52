package templates

import "github.com/SwagCode4U/projectmaker/pkg/models"

// ReactPackageJSON returns package.json for a React (Vite) frontend.
func ReactPackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("react_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-frontend",
  "private": true,
  "version": "1.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite --port 3010",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.1",
    "autoprefixer": "^10.4.20",
    "postcss": "^8.4.45",
    "tailwindcss": "^3.4.10",
    "vite": "^5.4.3"
  }
}
`, cfg)
}

// ReactIndexHTML returns index.html.
func ReactIndexHTML(cfg models.ProjectConfig) []byte {
	return mustRender("react_index_html", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <link rel="icon" href="/favicon.ico" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.ProjectName}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`, cfg)
}

// ReactApp returns src/App.jsx.
func ReactApp(cfg models.ProjectConfig) []byte {
	return mustRender("react_app", `import Navbar from './components/Navbar'
import Hero from './components/Hero'
import Footer from './components/Footer'

export default function App() {
  return (
    <div className="min-h-screen bg-gray-50">
      <Navbar />
      <Hero />
      <Footer />
    </div>
  )
}
`, cfg)
}

// ReactMain returns src/main.jsx.
func ReactMain(cfg models.ProjectConfig) []byte {
	return []byte(`import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App'
import './index.css'

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`)
}

// ReactCSS returns src/index.css.
func ReactCSS(cfg models.ProjectConfig) []byte {
	return []byte(`@tailwind base;
@tailwind components;
@tailwind utilities;

body {
  font-family: 'Inter', sans-serif;
}
`)
}

// ReactNavbar returns src/components/Navbar.jsx.
func ReactNavbar(cfg models.ProjectConfig) []byte {
	return mustRender("react_navbar", `export default function Navbar() {
  return (
    <nav className="flex justify-between p-4 shadow bg-white">
      <span className="font-semibold text-blue-600">{{.ProjectName}}</span>
    </nav>
  )
}
`, cfg)
}

// ReactHero returns src/components/Hero.jsx.
func ReactHero(cfg models.ProjectConfig) []byte {
	return mustRender("react_hero", `export default function Hero() {
  return (
    <div className="text-center mt-10">
      <h1 className="text-4xl font-bold text-blue-600">{{.ProjectName}}</h1>
      <p className="mt-4 text-lg text-gray-700">{{.Description}}</p>
    </div>
  )
}
`, cfg)
}

// ReactFooter returns src/components/Footer.jsx.
func ReactFooter(cfg models.ProjectConfig) []byte {
	return mustRender("react_footer", `export default function Footer() {
  return (
    <footer className="text-center p-4 bg-white shadow mt-10">
      <p className="text-gray-600">{{.ProjectName}}</p>
    </footer>
  )
}
`, cfg)
}

// ReactUseLenis returns src/hooks/useLenis.js.
func ReactUseLenis(cfg models.ProjectConfig) []byte {
	return []byte(`import { useEffect } from 'react'

// Smooth-scroll hook placeholder; wire up lenis when the dependency is added.
export default function useLenis() {
  useEffect(() => {}, [])
}
`)
}

// ReactTheme returns src/styles/theme.js.
func ReactTheme(cfg models.ProjectConfig) []byte {
	return []byte(`export const theme = {
  colors: {
    primary: '#2563eb',
    surface: '#f9fafb',
  },
}
`)
}

// TailwindConfig returns tailwind.config.js for the given content globs.
func TailwindConfig(contentGlobs string) []byte {
	return mustRender("tailwind_config", `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [{{.Globs}}],
  theme: { extend: {} },
  plugins: [],
}
`, map[string]string{"Globs": contentGlobs})
}

// PostcssConfig returns postcss.config.js.
func PostcssConfig() []byte {
	return []byte(`module.exports = {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`)
}

// VuePackageJSON returns package.json for a Vue frontend.
func VuePackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("vue_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-frontend",
  "private": true,
  "version": "1.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite --port 3010",
    "build": "vite build"
  },
  "dependencies": {
    "vue": "^3.4.38"
  },
  "devDependencies": {
    "@vitejs/plugin-vue": "^5.1.3",
    "vite": "^5.4.3"
  }
}
`, cfg)
}

// VueIndexHTML returns index.html.
func VueIndexHTML(cfg models.ProjectConfig) []byte {
	return mustRender("vue_index_html", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>{{.ProjectName}}</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.js"></script>
  </body>
</html>
`, cfg)
}

// VueApp returns src/App.vue.
func VueApp(cfg models.ProjectConfig) []byte {
	return mustRender("vue_app", `<template>
  <main>
    <h1>{{"{{"}} title {{"}}"}}</h1>
    <p>{{"{{"}} description {{"}}"}}</p>
  </main>
</template>

<script setup>
const title = '{{.ProjectName}}'
const description = '{{.Description}}'
</script>
`, cfg)
}

// VueMain returns src/main.js.
func VueMain(cfg models.ProjectConfig) []byte {
	return []byte(`import { createApp } from 'vue'
import App from './App.vue'

createApp(App).mount('#app')
`)
}

// SveltePackageJSON returns package.json for a Svelte frontend.
func SveltePackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("svelte_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-frontend",
  "private": true,
  "version": "1.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite --port 3010",
    "build": "vite build"
  },
  "devDependencies": {
    "@sveltejs/vite-plugin-svelte": "^3.1.1",
    "autoprefixer": "^10.4.20",
    "postcss": "^8.4.45",
    "svelte": "^4.2.19",
    "tailwindcss": "^3.4.10",
    "vite": "^5.4.3"
  }
}
`, cfg)
}

// SvelteViteConfig returns vite.config.js.
func SvelteViteConfig(cfg models.ProjectConfig) []byte {
	return []byte(`import { defineConfig } from 'vite'
import { svelte } from '@sveltejs/vite-plugin-svelte'

export default defineConfig({
  plugins: [svelte()],
  server: { port: 3010 },
})
`)
}

// SvelteIndexHTML returns index.html.
func SvelteIndexHTML(cfg models.ProjectConfig) []byte {
	return mustRender("svelte_index_html", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>{{.ProjectName}}</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.js"></script>
  </body>
</html>
`, cfg)
}

// SvelteApp returns src/App.svelte.
func SvelteApp(cfg models.ProjectConfig) []byte {
	return mustRender("svelte_app", `<script>
  import Home from './routes/Home.svelte'
</script>

<main class="min-h-screen bg-gray-50">
  <Home title="{{.ProjectName}}" />
</main>
`, cfg)
}

// SvelteAppCSS returns src/app.css.
func SvelteAppCSS(cfg models.ProjectConfig) []byte {
	return []byte(`@tailwind base;
@tailwind components;
@tailwind utilities;
`)
}

// SvelteMainJS returns src/main.js.
func SvelteMainJS(cfg models.ProjectConfig) []byte {
	return []byte(`import './app.css'
import App from './App.svelte'

const app = new App({ target: document.getElementById('app') })

export default app
`)
}

// SvelteLibAPIJS returns src/lib/api.js.
func SvelteLibAPIJS(cfg models.ProjectConfig) []byte {
	return []byte(`const BASE = import.meta.env.VITE_API_URL || 'http://localhost:8000'

export async function get(path) {
  const res = await fetch(BASE + path)
  if (!res.ok) throw new Error('request failed: ' + res.status)
  return res.json()
}
`)
}

// SvelteLibUtilsJS returns src/lib/utils.js.
func SvelteLibUtilsJS(cfg models.ProjectConfig) []byte {
	return []byte(`export function classNames(...parts) {
  return parts.filter(Boolean).join(' ')
}
`)
}

// SvelteHome returns src/routes/Home.svelte.
func SvelteHome(cfg models.ProjectConfig) []byte {
	return mustRender("svelte_home", `<script>
  export let title = '{{.ProjectName}}'
</script>

<div class="text-center mt-10">
  <h1 class="text-4xl font-bold text-blue-600">{title}</h1>
</div>
`, cfg)
}

// AngularPackageJSON returns package.json for an Angular frontend.
func AngularPackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("angular_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-frontend",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "start": "ng serve --port 3010",
    "build": "ng build"
  },
  "dependencies": {
    "@angular/common": "^18.2.0",
    "@angular/compiler": "^18.2.0",
    "@angular/core": "^18.2.0",
    "@angular/platform-browser": "^18.2.0",
    "rxjs": "~7.8.0",
    "zone.js": "~0.14.10"
  },
  "devDependencies": {
    "@angular/cli": "^18.2.0",
    "typescript": "~5.5.4"
  }
}
`, cfg)
}

// AngularJSON returns angular.json.
func AngularJSON(cfg models.ProjectConfig) []byte {
	return mustRender("angular_json", `{
  "$schema": "./node_modules/@angular/cli/lib/config/schema.json",
  "version": 1,
  "projects": {
    "{{jsonEscape (slug .ProjectName)}}": {
      "projectType": "application",
      "root": "",
      "sourceRoot": "src"
    }
  }
}
`, cfg)
}

// AngularTSConfig returns tsconfig.json.
func AngularTSConfig(cfg models.ProjectConfig) []byte {
	return []byte(`{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ES2022",
    "moduleResolution": "bundler",
    "strict": true,
    "experimentalDecorators": true
  }
}
`)
}

// AngularIndexHTML returns src/index.html.
func AngularIndexHTML(cfg models.ProjectConfig) []byte {
	return mustRender("angular_index_html", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>{{.ProjectName}}</title>
  </head>
  <body>
    <app-root></app-root>
  </body>
</html>
`, cfg)
}

// AngularMain returns src/main.ts.
func AngularMain(cfg models.ProjectConfig) []byte {
	return []byte(`import { bootstrapApplication } from '@angular/platform-browser'
import { AppComponent } from './app/app.component'

bootstrapApplication(AppComponent).catch((err) => console.error(err))
`)
}

// AngularComponent returns src/app/app.component.ts.
func AngularComponent(cfg models.ProjectConfig) []byte {
	return mustRender("angular_component", `import { Component } from '@angular/core'

@Component({
  selector: 'app-root',
  standalone: true,
  templateUrl: './app.component.html',
})
export class AppComponent {
  title = '{{.ProjectName}}'
}
`, cfg)
}

// AngularComponentHTML returns src/app/app.component.html.
func AngularComponentHTML(cfg models.ProjectConfig) []byte {
	return mustRender("angular_component_html", `<h1>{{"{{"}} title {{"}}"}}</h1>
`, cfg)
}

// NextPackageJSON returns package.json for a Next.js frontend.
func NextPackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("next_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-frontend",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "dev": "next dev -p 3010",
    "build": "next build",
    "start": "next start",
    "lint": "next lint"
  },
  "dependencies": {
    "next": "latest",
    "react": "^18",
    "react-dom": "^18"
  }
}
`, cfg)
}

// NextLayout returns app/layout.jsx.
func NextLayout(cfg models.ProjectConfig) []byte {
	return mustRender("next_layout", `export const metadata = {
  title: '{{.ProjectName}}',
  description: '{{.Description}}',
}

export default function RootLayout({ children }) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  )
}
`, cfg)
}

// NextPage returns app/page.jsx.
func NextPage(cfg models.ProjectConfig) []byte {
	return mustRender("next_page", `export default function Home() {
  return (
    <main>
      <h1>{{.ProjectName}}</h1>
      <p>{{.Description}}</p>
    </main>
  )
}
`, cfg)
}

// PlainHTML returns index.html for a dependency-free frontend.
func PlainHTML(cfg models.ProjectConfig) []byte {
	return mustRender("plain_html", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>{{.ProjectName}}</title>
    <link rel="stylesheet" href="style.css" />
  </head>
  <body>
    <h1>{{.ProjectName}}</h1>
    <p>{{.Description}}</p>
    <script src="script.js"></script>
  </body>
</html>
`, cfg)
}

// PlainCSS returns style.css.
func PlainCSS(cfg models.ProjectConfig) []byte {
	return []byte(`body {
  font-family: sans-serif;
  margin: 2rem auto;
  max-width: 48rem;
}
`)
}

// PlainJS returns script.js.
func PlainJS(cfg models.ProjectConfig) []byte {
	return mustRender("plain_js", `console.log('{{.ProjectName}} ready')
`, cfg)
}
