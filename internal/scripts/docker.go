package scripts

import (
	"fmt"
	"strings"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

func dockerfile(cfg models.ProjectConfig) string {
	backend := strings.ToLower(cfg.BackendFramework)

	if isPythonBackend(backend) {
		return fmt.Sprintf(`# Dockerfile for %s
FROM python:3.11-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 8000

CMD ["uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"]
`, cfg.ProjectName)
	}
	if isNodeBackend(backend) {
		return fmt.Sprintf(`# Dockerfile for %s
FROM node:18-alpine

WORKDIR /app

COPY package*.json ./
RUN npm install

COPY . .

RUN npm run build || true

EXPOSE 3000

CMD ["npm", "start"]
`, cfg.ProjectName)
	}
	return ""
}

func dockerCompose(cfg models.ProjectConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, `version: '3.8'

services:
  backend:
    build: ./%s
    ports:
      - "8000:8000"
    environment:
      - DATABASE_URL=${DATABASE_URL}
    depends_on:
      - db
`, cfg.BackendFolder())

	switch strings.ToLower(cfg.DatabaseType) {
	case "postgresql":
		b.WriteString(`
  db:
    image: postgres:15
    environment:
      POSTGRES_PASSWORD: password
      POSTGRES_DB: mydb
    ports:
      - "5432:5432"
    volumes:
      - postgres_data:/var/lib/postgresql/data

volumes:
  postgres_data:
`)
	case "mongodb":
		b.WriteString(`
  db:
    image: mongo:7
    ports:
      - "27017:27017"
    volumes:
      - mongo_data:/data/db

volumes:
  mongo_data:
`)
	default:
		b.WriteString(`
  db:
    image: mysql:8.0
    environment:
      MYSQL_ROOT_PASSWORD: password
      MYSQL_DATABASE: mydb
    ports:
      - "3306:3306"
    volumes:
      - mysql_data:/var/lib/mysql

volumes:
  mysql_data:
`)
	}

	return b.String()
}
