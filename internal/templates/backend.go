package templates

import (
	"fmt"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// FastAPIMain returns app/main.py for a FastAPI backend.
func FastAPIMain(cfg models.ProjectConfig) []byte {
	return mustRender("fastapi_main", `from fastapi import FastAPI
from fastapi.middleware.cors import CORSMiddleware

from .routes import api_routes

app = FastAPI(title="{{.ProjectName}}", description="{{.Description}}")

app.add_middleware(
    CORSMiddleware,
    allow_origins=["*"],
    allow_methods=["*"],
    allow_headers=["*"],
)

app.include_router(api_routes.router)


@app.get("/")
def root():
    return {"project": "{{.ProjectName}}", "status": "running"}
`, cfg)
}

// FastAPIRootApp returns the uvicorn entry shim at the backend root.
func FastAPIRootApp(cfg models.ProjectConfig) []byte {
	return mustRender("fastapi_root_app", `"""Entry shim so 'uvicorn app:app' works from the backend root."""
from app.main import app  # noqa: F401
`, cfg)
}

// FastAPIDatabase returns app/database.py.
func FastAPIDatabase(cfg models.ProjectConfig) []byte {
	url := "sqlite:///./app.db"
	if cfg.DatabaseType == "postgresql" || cfg.DatabaseType == "postgres" {
		url = fmt.Sprintf("postgresql://%s:%s@localhost/%s",
			orDefault(cfg.DatabaseUser, "postgres"),
			orDefault(cfg.DatabasePassword, "postgres"),
			orDefault(cfg.DatabaseName, "app"))
	}
	return mustRender("fastapi_database", `from sqlalchemy import create_engine
from sqlalchemy.orm import declarative_base, sessionmaker

DATABASE_URL = "{{.URL}}"

engine = create_engine(DATABASE_URL)
SessionLocal = sessionmaker(autocommit=False, autoflush=False, bind=engine)
Base = declarative_base()


def get_db():
    db = SessionLocal()
    try:
        yield db
    finally:
        db.close()
`, map[string]string{"URL": url})
}

// FastAPIModels returns app/models.py.
func FastAPIModels(cfg models.ProjectConfig) []byte {
	return mustRender("fastapi_models", `from sqlalchemy import Column, DateTime, Integer, String, func

from .database import Base


class Item(Base):
    __tablename__ = "items"

    id = Column(Integer, primary_key=True, index=True)
    name = Column(String, index=True)
    description = Column(String, default="")
    created_at = Column(DateTime, server_default=func.now())
`, cfg)
}

// FastAPISchemas returns app/schemas.py.
func FastAPISchemas(cfg models.ProjectConfig) []byte {
	return mustRender("fastapi_schemas", `from datetime import datetime

from pydantic import BaseModel


class ItemBase(BaseModel):
    name: str
    description: str = ""


class ItemCreate(ItemBase):
    pass


class ItemResponse(ItemBase):
    id: int
    created_at: datetime

    class Config:
        from_attributes = True
`, cfg)
}

// FastAPICRUD returns app/crud.py.
func FastAPICRUD(cfg models.ProjectConfig) []byte {
	return mustRender("fastapi_crud", `from sqlalchemy.orm import Session

from . import models, schemas


def create_item(db: Session, item: schemas.ItemCreate):
    db_item = models.Item(**item.model_dump())
    db.add(db_item)
    db.commit()
    db.refresh(db_item)
    return db_item


def list_items(db: Session):
    return db.query(models.Item).all()
`, cfg)
}

// FastAPIRoutes returns app/routes/api_routes.py.
func FastAPIRoutes(cfg models.ProjectConfig) []byte {
	return mustRender("fastapi_routes", `from fastapi import APIRouter, Depends
from sqlalchemy.orm import Session

from .. import crud, database, schemas

router = APIRouter(prefix="/api", tags=["{{.ProjectName}}"])


@router.post("/items", response_model=schemas.ItemResponse)
def create_item(item: schemas.ItemCreate, db: Session = Depends(database.get_db)):
    return crud.create_item(db, item)


@router.get("/items", response_model=list[schemas.ItemResponse])
def list_items(db: Session = Depends(database.get_db)):
    return crud.list_items(db)
`, cfg)
}

// FastAPIRequirements returns requirements.txt for a FastAPI backend.
func FastAPIRequirements() []byte {
	return []byte(`fastapi==0.115.0
uvicorn[standard]==0.30.6
sqlalchemy==2.0.35
pydantic==2.9.2
python-dotenv==1.0.1
`)
}

// EnvExample returns a backend .env.example derived from the database config.
func EnvExample(cfg models.ProjectConfig) []byte {
	return mustRender("env_example", `# Environment configuration for {{.ProjectName}}
DATABASE_TYPE={{.DatabaseType}}
DATABASE_NAME={{.DatabaseName}}
DATABASE_USER={{.DatabaseUser}}
DATABASE_PASSWORD=
SECRET_KEY=change-me
`, cfg)
}

// FlaskApp returns app.py for a Flask backend.
func FlaskApp(cfg models.ProjectConfig) []byte {
	return mustRender("flask_app", `from flask import Flask, jsonify

from config import Config
from routes import api

app = Flask(__name__)
app.config.from_object(Config)
app.register_blueprint(api)


@app.get("/health")
def health():
    return jsonify(status="ok", project="{{.ProjectName}}")


if __name__ == "__main__":
    app.run(debug=True, port=5000)
`, cfg)
}

// FlaskConfig returns config.py.
func FlaskConfig(cfg models.ProjectConfig) []byte {
	return mustRender("flask_config", `import os


class Config:
    SECRET_KEY = os.environ.get("SECRET_KEY", "dev")
    SQLALCHEMY_DATABASE_URI = os.environ.get("DATABASE_URL", "sqlite:///app.db")
    SQLALCHEMY_TRACK_MODIFICATIONS = False
`, cfg)
}

// FlaskModels returns models.py.
func FlaskModels(cfg models.ProjectConfig) []byte {
	return mustRender("flask_models", `from flask_sqlalchemy import SQLAlchemy

db = SQLAlchemy()


class Item(db.Model):
    id = db.Column(db.Integer, primary_key=True)
    name = db.Column(db.String(120), nullable=False)
    description = db.Column(db.String(500), default="")

    def to_dict(self):
        return {"id": self.id, "name": self.name, "description": self.description}
`, cfg)
}

// FlaskRoutes returns routes.py.
func FlaskRoutes(cfg models.ProjectConfig) []byte {
	return mustRender("flask_routes", `from flask import Blueprint, jsonify, request

api = Blueprint("api", __name__, url_prefix="/api")

items = []


@api.get("/items")
def list_items():
    return jsonify(items)


@api.post("/items")
def create_item():
    item = request.get_json() or {}
    item["id"] = len(items) + 1
    items.append(item)
    return jsonify(item), 201
`, cfg)
}

// FlaskRequirements returns requirements.txt for a Flask backend.
func FlaskRequirements() []byte {
	return []byte(`flask==3.0.3
flask-sqlalchemy==3.1.1
python-dotenv==1.0.1
`)
}

// DjangoManage returns manage.py.
func DjangoManage(cfg models.ProjectConfig) []byte {
	return mustRender("django_manage", `#!/usr/bin/env python
import os
import sys


def main():
    os.environ.setdefault("DJANGO_SETTINGS_MODULE", "core.settings")
    from django.core.management import execute_from_command_line

    execute_from_command_line(sys.argv)


if __name__ == "__main__":
    main()
`, cfg)
}

// DjangoSettings returns core/settings.py.
func DjangoSettings(cfg models.ProjectConfig) []byte {
	return mustRender("django_settings", `from pathlib import Path

BASE_DIR = Path(__file__).resolve().parent.parent

SECRET_KEY = "change-me"
DEBUG = True
ALLOWED_HOSTS = ["*"]

INSTALLED_APPS = [
    "django.contrib.admin",
    "django.contrib.auth",
    "django.contrib.contenttypes",
    "django.contrib.sessions",
    "django.contrib.messages",
    "django.contrib.staticfiles",
]

ROOT_URLCONF = "core.urls"
WSGI_APPLICATION = "core.wsgi.application"

DATABASES = {
    "default": {
        "ENGINE": "django.db.backends.sqlite3",
        "NAME": BASE_DIR / "db.sqlite3",
    }
}

STATIC_URL = "static/"
`, cfg)
}

// DjangoURLs returns core/urls.py.
func DjangoURLs(cfg models.ProjectConfig) []byte {
	return mustRender("django_urls", `from django.contrib import admin
from django.urls import path

urlpatterns = [
    path("admin/", admin.site.urls),
]
`, cfg)
}

// DjangoWSGI returns core/wsgi.py.
func DjangoWSGI(cfg models.ProjectConfig) []byte {
	return mustRender("django_wsgi", `import os

from django.core.wsgi import get_wsgi_application

os.environ.setdefault("DJANGO_SETTINGS_MODULE", "core.settings")

application = get_wsgi_application()
`, cfg)
}

// DjangoRequirements returns requirements.txt for a Django backend.
func DjangoRequirements() []byte {
	return []byte(`django==5.1.1
python-dotenv==1.0.1
`)
}

// ExpressPackageJSON returns package.json for an Express backend.
func ExpressPackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("express_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-backend",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "dev": "node --watch src/server.js",
    "start": "node src/server.js"
  },
  "dependencies": {
    "cors": "^2.8.5",
    "dotenv": "^16.4.5",
    "express": "^4.19.2"
  }
}
`, cfg)
}

// ExpressAppJS returns src/app.js.
func ExpressAppJS(cfg models.ProjectConfig) []byte {
	return mustRender("express_app", `const express = require('express');
const cors = require('cors');
const routes = require('./routes');
const errorHandler = require('./middlewares/errorHandler');

const app = express();
app.use(cors());
app.use(express.json());
app.use('/api', routes);
app.use(errorHandler);

module.exports = app;
`, cfg)
}

// ExpressServerJS returns src/server.js.
func ExpressServerJS(cfg models.ProjectConfig) []byte {
	return mustRender("express_server", `require('dotenv').config();
const app = require('./app');

const port = process.env.PORT || 5177;
app.listen(port, () => console.log('{{.ProjectName}} listening on :' + port));
`, cfg)
}

// ExpressRoutesIndexJS returns src/routes/index.js.
func ExpressRoutesIndexJS(cfg models.ProjectConfig) []byte {
	return mustRender("express_routes", `const { Router } = require('express');
const home = require('../controllers/homeController');

const router = Router();
router.get('/', home.index);

module.exports = router;
`, cfg)
}

// ExpressHomeControllerJS returns src/controllers/homeController.js.
func ExpressHomeControllerJS(cfg models.ProjectConfig) []byte {
	return mustRender("express_controller", `exports.index = (req, res) => {
  res.json({ project: '{{.ProjectName}}', status: 'running' });
};
`, cfg)
}

// ExpressErrorHandlerJS returns src/middlewares/errorHandler.js.
func ExpressErrorHandlerJS(cfg models.ProjectConfig) []byte {
	return mustRender("express_error_handler", `module.exports = (err, req, res, next) => {
  console.error(err);
  res.status(err.status || 500).json({ error: err.message || 'Internal Server Error' });
};
`, cfg)
}

// ExpressLoggerJS returns src/utils/logger.js.
func ExpressLoggerJS(cfg models.ProjectConfig) []byte {
	return mustRender("express_logger", `exports.log = (...args) => console.log('[{{.ProjectName}}]', ...args);
`, cfg)
}

// NextAPIPackageJSON returns package.json for a Next.js API-only backend.
func NextAPIPackageJSON(cfg models.ProjectConfig) []byte {
	return mustRender("nextapi_package_json", `{
  "name": "{{jsonEscape (slug .ProjectName)}}-api",
  "private": true,
  "version": "1.0.0",
  "scripts": {
    "dev": "next dev -p 5177",
    "build": "next build",
    "start": "next start -p 5177"
  },
  "dependencies": {
    "next": "latest",
    "react": "^18",
    "react-dom": "^18"
  }
}
`, cfg)
}

// NextConfigMJS returns next.config.mjs, shared by the Next.js variants.
func NextConfigMJS(cfg models.ProjectConfig) []byte {
	return []byte(`/** @type {import('next').NextConfig} */
const nextConfig = { reactStrictMode: true }
export default nextConfig
`)
}

// NextAPIHelloRoute returns pages/api/hello.js.
func NextAPIHelloRoute(cfg models.ProjectConfig) []byte {
	return mustRender("nextapi_hello", `export default function handler(req, res) {
  res.status(200).json({ message: 'Hello from {{.ProjectName}}' })
}
`, cfg)
}

// NextAPIItemsRoute returns pages/api/items.js.
func NextAPIItemsRoute(cfg models.ProjectConfig) []byte {
	return []byte(`let items = [{ id: 1, title: 'Sample item' }]

export default function handler(req, res) {
  if (req.method === 'GET') return res.status(200).json(items)
  if (req.method === 'POST') {
    const item = { id: Date.now(), ...(req.body || {}) }
    items.push(item)
    return res.status(201).json(item)
  }
  res.status(405).json({ error: 'Method not allowed' })
}
`)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
