package models

// ScriptFile is one helper script written at the project root during a
// build, such as setup.sh or docker-compose.yml.
type ScriptFile struct {
	Name    string `yaml:"name" json:"name"`
	Content string `yaml:"content" json:"content"`
}
