package templates

import (
	"time"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// RootReadme renders the project-root README.md.
func RootReadme(cfg models.ProjectConfig, created time.Time) []byte {
	data := struct {
		ProjectName    string
		Description    string
		Backend        string
		Frontend       string
		BackendFolder  string
		FrontendFolder string
		Created        string
	}{
		ProjectName:    cfg.ProjectName,
		Description:    orDefault(cfg.Description, "A project generated with ProjectMaker"),
		Backend:        orDefault(cfg.BackendFramework, "N/A"),
		Frontend:       orDefault(cfg.FrontendFramework, "N/A"),
		BackendFolder:  cfg.BackendFolder(),
		FrontendFolder: cfg.FrontendFolder(),
		Created:        created.Format("2006-01-02 15:04:05"),
	}
	return mustRender("root_readme", `# {{.ProjectName}}

{{.Description}}

## Tech Stack

**Backend:** {{.Backend}}
**Frontend:** {{.Frontend}}

## Getting Started

### Backend Setup

`+"```bash"+`
cd {{.BackendFolder}}
pip install -r requirements.txt
python -m uvicorn app.main:app --reload  # For FastAPI
`+"```"+`

### Frontend Setup

`+"```bash"+`
cd {{.FrontendFolder}}
npm install
npm run dev
`+"```"+`

## Project Structure

Generated with [ProjectMaker](https://github.com/SwagCode4U/projectmaker)

Created: {{.Created}}
`, data)
}

// RootGitignore returns the project-root .gitignore. The payload covers both
// Python and Node stacks since most generated projects carry one of each.
func RootGitignore() []byte {
	return []byte(`# Python
__pycache__/
*.py[cod]
*$py.class
*.so
.Python
env/
venv/
.env

# Node
node_modules/
dist/
build/
*.log

# IDEs
.vscode/
.idea/
*.swp

# OS
.DS_Store
Thumbs.db

# Database
*.db
*.sqlite3
`)
}
