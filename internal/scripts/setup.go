package scripts

import (
	"fmt"
	"strings"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

func bashSetup(cfg models.ProjectConfig) string {
	backend := strings.ToLower(cfg.BackendFramework)
	frontend := strings.ToLower(cfg.FrontendFramework)

	var b strings.Builder
	fmt.Fprintf(&b, `#!/bin/bash
# ============================================================================
# ProjectMaker - Automated Setup Script
# Project: %s
# %s
# ============================================================================

set -e

echo "Starting setup for %s..."

GREEN='\033[0;32m'
BLUE='\033[0;34m'
NC='\033[0m'

# ============================================================================
# STEP 1: Git Repository Setup
# ============================================================================
`, cfg.ProjectName, cfg.Description, cfg.ProjectName)

	if cfg.GitRepoURL != "" {
		fmt.Fprintf(&b, `
echo "${BLUE}Setting up Git repository...${NC}"
git init
git remote add origin %s
git add .
git commit -m "Initial commit from ProjectMaker"
# Uncomment to push:
# git push -u origin main
echo "${GREEN}Git repository initialized${NC}"
`, cfg.GitRepoURL)
	} else {
		b.WriteString(`
echo "${BLUE}Initializing Git...${NC}"
git init
echo "${GREEN}Git initialized${NC}"
`)
	}

	switch {
	case isPythonBackend(backend):
		fmt.Fprintf(&b, `
# ============================================================================
# STEP 2: Backend Setup (%s)
# ============================================================================
echo "${BLUE}Setting up Python backend...${NC}"
cd %s

echo "Creating virtual environment..."
python3 -m venv venv

echo "Activating virtual environment..."
source venv/bin/activate

echo "Upgrading pip..."
pip install --upgrade pip

echo "Installing Python packages..."
pip install -r requirements.txt
`, strings.ToUpper(backend), cfg.BackendFolder())
		if backend == "django" {
			b.WriteString(`
echo "Applying Django migrations..."
python manage.py migrate || true
`)
		}
		b.WriteString(`
echo "${GREEN}Backend setup complete!${NC}"
cd ..
`)
	case isNodeBackend(backend):
		fmt.Fprintf(&b, `
# ============================================================================
# STEP 2: Backend Setup (%s)
# ============================================================================
echo "${BLUE}Setting up Node.js backend...${NC}"
cd %s

echo "Installing npm packages..."
npm install

echo "${GREEN}Backend setup complete!${NC}"
cd ..
`, strings.ToUpper(backend), cfg.BackendFolder())
	}

	if frontend != "" {
		// Vue scaffolds hit ESLint v9 peer conflicts without the legacy flag.
		install := "npm install"
		if frontend == "vue" {
			install = "npm install --legacy-peer-deps"
		}
		libsCmd := ""
		if pkgs := npmPackages(cfg.Libraries); len(pkgs) > 0 {
			libsCmd = fmt.Sprintf("\necho \"Installing additional libraries...\"\nnpm install %s\n", strings.Join(pkgs, " "))
		}
		fmt.Fprintf(&b, `
# ============================================================================
# STEP 3: Frontend Setup (%s)
# ============================================================================
echo "${BLUE}Setting up frontend...${NC}"
cd %s

echo "Installing npm packages..."
%s
%s
echo "${GREEN}Frontend setup complete!${NC}"
cd ..
`, strings.ToUpper(frontend), cfg.FrontendFolder(), install, libsCmd)
	}

	if cfg.DatabaseType != "" {
		fmt.Fprintf(&b, `
# ============================================================================
# STEP 4: Database Setup (%s)
# ============================================================================
echo "${BLUE}Setting up database...${NC}"
bash db_setup.sh
echo "${GREEN}Database setup complete!${NC}"
`, strings.ToUpper(cfg.DatabaseType))
	}

	fmt.Fprintf(&b, `
# ============================================================================
# SETUP COMPLETE
# ============================================================================
echo ""
echo "${GREEN}Setup complete for %s!${NC}"
echo ""
echo "${BLUE}Next steps:${NC}"
echo ""
`, cfg.ProjectName)

	if isPythonBackend(backend) {
		run := map[string]string{
			"fastapi": "uvicorn app.main:app --reload",
			"flask":   "python app.py",
			"django":  "python manage.py runserver",
		}[backend]
		fmt.Fprintf(&b, `echo "1. Start Backend:"
echo "   cd %s"
echo "   source venv/bin/activate"
echo "   %s"
echo ""
`, cfg.BackendFolder(), run)
	} else if isNodeBackend(backend) {
		fmt.Fprintf(&b, `echo "1. Start Backend:"
echo "   cd %s"
echo "   npm run dev"
echo ""
`, cfg.BackendFolder())
	}

	if frontend != "" {
		fmt.Fprintf(&b, `echo "2. Start Frontend:"
echo "   cd %s"
echo "   npm run dev"
echo ""
`, cfg.FrontendFolder())
	}

	b.WriteString(`echo "Frontend: http://localhost:3000"
echo "Backend:  http://localhost:8000"
echo ""
echo "${GREEN}Happy coding!${NC}"
`)

	return b.String()
}

func windowsSetup(cfg models.ProjectConfig) string {
	backend := strings.ToLower(cfg.BackendFramework)

	var b strings.Builder
	fmt.Fprintf(&b, `@echo off
REM ============================================================================
REM ProjectMaker - Windows Setup Script
REM Project: %s
REM ============================================================================

echo Starting setup for %s...

`, cfg.ProjectName, cfg.ProjectName)

	if isPythonBackend(backend) {
		fmt.Fprintf(&b, `
echo Setting up Python backend...
cd %s
python -m venv venv
call venv\Scripts\activate
pip install --upgrade pip
pip install -r requirements.txt
`, cfg.BackendFolder())
		if backend == "django" {
			b.WriteString(`
REM Apply Django migrations
python manage.py migrate
`)
		}
		b.WriteString(`
cd ..
`)
	}

	if cfg.FrontendFramework != "" {
		fmt.Fprintf(&b, `
echo Setting up frontend...
cd %s
npm install
cd ..
`, cfg.FrontendFolder())
	}

	b.WriteString(`
echo.
echo Setup Complete!
echo.
pause
`)

	return b.String()
}

func migrationSetup(cfg models.ProjectConfig) string {
	return fmt.Sprintf(`#!/bin/bash
# ============================================================================
# Alembic Migration Setup
# ============================================================================

echo "Setting up Alembic for database migrations..."

cd %s

alembic init alembic

echo "Alembic initialized!"
echo ""
echo "Next steps:"
echo "1. Configure alembic.ini with your database URL"
echo "2. Create your first migration:"
echo "   alembic revision --autogenerate -m 'Initial migration'"
echo "3. Apply migrations:"
echo "   alembic upgrade head"
`, cfg.BackendFolder())
}
